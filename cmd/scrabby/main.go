package main

import "github.com/mcoot/scrabby/internal/cli"

func main() {
	cli.Execute()
}
