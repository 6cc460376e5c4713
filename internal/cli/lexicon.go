package cli

import (
	"bufio"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabby/internal/api/request"
	"github.com/mcoot/scrabby/internal/api/response"
)

func newLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lexicon",
		Aliases: []string{"lexicons"},
		Short:   "Manage the word lists a server checks moves against",
	}

	cmd.AddCommand(newLexiconListCmd())
	cmd.AddCommand(newLexiconShowCmd())
	cmd.AddCommand(newLexiconUploadCmd())
	cmd.AddCommand(newLexiconCheckCmd())
	cmd.AddCommand(newLexiconDeleteCmd())

	return cmd
}

func newLexiconListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List loaded lexicons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.Lexicon
			if err := client.Get(cmd.Context(), "/api/v1/lexicons", &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newLexiconShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a lexicon's size",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := cfg.LexiconName
			if len(args) == 1 {
				name = args[0]
			}

			var result response.Lexicon
			if err := client.Get(cmd.Context(), "/api/v1/lexicons/"+url.PathEscape(name), &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newLexiconUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <name> <file>",
		Short: "Upload a word list, one word per line",
		Long: `Upload a word list, one word per line. The list replaces any lexicon
with the same name. Words are upper-cased by the server and entries with
characters outside A-Z are dropped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := readWords(args[1])
			if err != nil {
				return err
			}

			var result response.Lexicon
			path := "/api/v1/lexicons/" + url.PathEscape(args[0])
			if err := client.Put(cmd.Context(), path, request.LexiconRequest{Words: words}, &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newLexiconCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>",
		Short: "Look a word up in the lexicon named by --lexicon-name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WordCheck
			path := "/api/v1/lexicons/" + url.PathEscape(cfg.LexiconName) + "/words/" + url.PathEscape(args[0])
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newLexiconDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Unload a lexicon and remove it from server storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Delete(cmd.Context(), "/api/v1/lexicons/"+url.PathEscape(args[0]))
		},
	}
}

func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return words, scanner.Err()
}
