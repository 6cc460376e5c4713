package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scrabby",
		Short: "Find the best moves for a rack on a crossword board",
		Long: `scrabby ranks every legal placement of a rack of tiles on a crossword
board, scores single moves, and checks moves against a lexicon.

Commands talk to a scrabby server by default. With --local the engine runs
in-process using the word list given by --lexicon.

Moves are written WORD@ROW,COL,DIR with 0-indexed coordinates, for example
HELLO@11,11,right. A space in a word or rack stands for a blank tile.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SCRABBY_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.Local, "local", cfg.Local, "Run the engine in-process instead of calling a server (env: SCRABBY_LOCAL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LexiconPath, "lexicon", cfg.LexiconPath, "Word list file for --local (env: SCRABBY_LEXICON_PATH)")
	rootCmd.PersistentFlags().StringVar(&cfg.LexiconName, "lexicon-name", cfg.LexiconName, "Lexicon to check words against (env: SCRABBY_LEXICON_NAME)")
	rootCmd.PersistentFlags().IntVar(&cfg.BoardSize, "board-size", cfg.BoardSize, "Board size, 0 for the engine default (env: SCRABBY_BOARD_SIZE)")
	rootCmd.PersistentFlags().IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel anchors for --local, 0 for GOMAXPROCS (env: SCRABBY_WORKERS)")

	// Add subcommands
	rootCmd.AddCommand(newMovesCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newStrategiesCmd())
	rootCmd.AddCommand(newAnalysisCmd())
	rootCmd.AddCommand(newLexiconCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newEngine picks the engine for this invocation. Callers must Close it.
func newEngine(cmd *cobra.Command) (Engine, error) {
	if cfg.Local {
		return NewLocalEngine(cmd.Context(), cfg)
	}
	return NewRemoteEngine(client), nil
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
