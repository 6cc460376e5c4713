package cli

import (
	"errors"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabby/internal/api/request"
	"github.com/mcoot/scrabby/internal/api/response"
	"github.com/mcoot/scrabby/internal/model"
)

func newMovesCmd() *cobra.Command {
	var (
		pos    positionFlags
		limit  int
		stream bool
	)

	cmd := &cobra.Command{
		Use:   "moves <rack>",
		Short: "Rank the legal moves for a rack",
		Example: `  scrabby moves RADICA --move HELLO@11,11,right
  scrabby moves "CAT S" --limit 5 --stream`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := pos.position(cfg)
			if err != nil {
				return err
			}
			req := request.MovesRequest{Position: position, Rack: args[0], Limit: limit}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			out := newOutput(cmd)
			if !stream {
				analysis, err := engine.Analyze(cmd.Context(), req)
				if err != nil {
					return err
				}
				out.Print(analysis)
				return nil
			}

			rank := 0
			done, err := engine.Stream(cmd.Context(), req, func(m response.Move) error {
				rank++
				out.PrintStreamed(rank, m)
				return nil
			})
			if err != nil {
				return err
			}
			out.PrintStreamDone(done)
			return nil
		},
	}

	pos.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum moves to list, 0 for all")
	cmd.Flags().BoolVar(&stream, "stream", false, "Print moves as they are found")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	var pos positionFlags

	cmd := &cobra.Command{
		Use:   "verify <move>",
		Short: "Check whether a move is legal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := moveRequest(&pos, args[0])
			if err != nil {
				return err
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			result, err := engine.Verify(cmd.Context(), req)
			if err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}

	pos.register(cmd)
	return cmd
}

func newScoreCmd() *cobra.Command {
	var pos positionFlags

	cmd := &cobra.Command{
		Use:   "score <move>",
		Short: "Score a move without checking it against the lexicon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := moveRequest(&pos, args[0])
			if err != nil {
				return err
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			result, err := engine.Score(cmd.Context(), req)
			if err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}

	pos.register(cmd)
	return cmd
}

func newSuggestCmd() *cobra.Command {
	var (
		pos      positionFlags
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "suggest <rack>",
		Short: "Pick one move for a rack using a bot strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := pos.position(cfg)
			if err != nil {
				return err
			}
			req := request.SuggestRequest{
				MovesRequest: request.MovesRequest{Position: position, Rack: args[0]},
				Strategy:     strategy,
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			result, err := engine.Suggest(cmd.Context(), req)
			if err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}

	pos.register(cmd)
	cmd.Flags().StringVarP(&strategy, "strategy", "s", model.StrategyBest, "Bot strategy (see 'scrabby strategies')")
	return cmd
}

func newBoardCmd() *cobra.Command {
	var (
		pos       positionFlags
		highlight string
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Draw the board a move history produces",
		Long: `Draw the board a move history produces.

With --highlight the move is drawn on top of the position and the squares it
would fill are shown in lowercase. The highlighted move is not checked
against the lexicon.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := pos.position(cfg)
			if err != nil {
				return err
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			board, err := engine.Board(cmd.Context(), position)
			if err != nil {
				return err
			}

			if highlight != "" {
				move, err := ParseMove(highlight)
				if err != nil {
					return err
				}
				next := position
				next.Moves = append(append([]model.Move{}, position.Moves...), move)
				after, err := engine.Board(cmd.Context(), next)
				if err != nil {
					return err
				}
				board = HighlightBoard(board, after)
			}

			newOutput(cmd).Print(board)
			return nil
		},
	}

	pos.register(cmd)
	cmd.Flags().StringVar(&highlight, "highlight", "", "Move to draw on top of the position, as WORD@ROW,COL,DIR")
	return cmd
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the bot strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = engine.Close() }()

			names, err := engine.Strategies(cmd.Context())
			if err != nil {
				return err
			}
			newOutput(cmd).Print(names)
			return nil
		},
	}
}

func newAnalysisCmd() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "analysis <id>",
		Short: "Show or delete an analysis saved by the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Local {
				return errors.New("saved analyses are only kept by a server")
			}

			engine := NewRemoteEngine(client)
			if remove {
				return engine.DeleteAnalysis(cmd.Context(), args[0])
			}

			analysis, err := engine.Analysis(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newOutput(cmd).Print(analysis)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remove, "delete", false, "Delete the analysis instead of showing it")
	return cmd
}

func moveRequest(pos *positionFlags, text string) (request.MoveRequest, error) {
	position, err := pos.position(cfg)
	if err != nil {
		return request.MoveRequest{}, err
	}
	move, err := ParseMove(text)
	if err != nil {
		return request.MoveRequest{}, err
	}
	return request.MoveRequest{Position: position, Move: move}, nil
}

// HighlightBoard lowercases the squares filled in after but empty in before
func HighlightBoard(before, after response.Board) response.Board {
	if before.Size != after.Size || len(before.Rows) != len(after.Rows) {
		return after
	}
	rows := make([]string, len(after.Rows))
	for i, row := range after.Rows {
		prev := []rune(before.Rows[i])
		cells := []rune(row)
		for j, r := range cells {
			if j < len(prev) && prev[j] == '.' && r != '.' {
				cells[j] = unicode.ToLower(r)
			}
		}
		rows[i] = string(cells)
	}
	return response.Board{Size: after.Size, Rows: rows}
}
