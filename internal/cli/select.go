package cli

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/Davincible/qrmeta/pkg/mask"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// SelectResult is the JSON form of the select command
type SelectResult struct {
	Candidates []ScoreResult `json:"candidates"`
	Best       int           `json:"best"`
	Score      float64       `json:"score"`
}

func NewSelectCommand() *cobra.Command {
	var (
		base    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "select [file...]",
		Short: "Pick the candidate matrix with the lowest penalty",
		Long: `Scores candidate matrices in parallel and reports the one with the lowest
penalty. On ties the first candidate given wins.

With --base, the eight standard mask patterns are applied to every module
of a single unmasked matrix to produce the candidates. Function patterns are
masked too, so this is a preview rather than a substitute for the encoder's
own selection.`,
		Example: `  qrmeta select mask0.txt mask1.txt mask2.txt
  qrmeta select --base unmasked.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			var (
				candidates []mask.Matrix
				names      []string
			)
			switch {
			case base != "" && len(args) > 0:
				return fmt.Errorf("--base cannot be combined with candidate files")
			case base != "":
				grid, name, err := readMatrix(cmd, s, base)
				if err != nil {
					return err
				}
				candidates = mask.Candidates(grid, nil)
				for i := range candidates {
					names = append(names, fmt.Sprintf("%s (mask %d)", name, i))
				}
			case len(args) > 0:
				for _, path := range args {
					grid, name, err := readMatrix(cmd, s, path)
					if err != nil {
						return err
					}
					if len(candidates) > 0 && grid.ModuleCount() != candidates[0].ModuleCount() {
						return fmt.Errorf("%s has %d modules per side, expected %d", name, grid.ModuleCount(), candidates[0].ModuleCount())
					}
					candidates = append(candidates, grid)
					names = append(names, name)
				}
			default:
				return fmt.Errorf("no candidates given")
			}

			if !cmd.Flags().Changed("workers") {
				workers = s.cfg.Defaults.Workers
			}
			if workers <= 0 {
				workers = runtime.GOMAXPROCS(0)
			}

			scores, err := mask.EvaluateAll(cmd.Context(), candidates, workers)
			if err != nil {
				return fmt.Errorf("failed to score candidates: %w", err)
			}
			best, score := mask.Best(scores)
			slog.Debug("selected candidate", "best", best, "score", score, "candidates", len(candidates), "workers", workers)

			result := SelectResult{Best: best, Score: score}
			for i, m := range candidates {
				result.Candidates = append(result.Candidates, scoreResult(names[i], m))
			}

			if s.json {
				return printJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			green := color.New(color.FgGreen, color.Bold)
			for i, c := range result.Candidates {
				line := fmt.Sprintf("%2d  %-12g %s\n", i, c.Total, c.Source)
				if i == best {
					green.Fprint(out, "→ "+line)
					continue
				}
				fmt.Fprint(out, "  "+line)
			}
			fmt.Fprintln(out)
			green.Fprintf(out, "Best: %s (penalty %g)\n", names[best], score)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Unmasked matrix to generate the 8 mask candidates from")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Parallel scoring workers (0 uses config, then GOMAXPROCS)")

	return cmd
}
