package cli

import (
	"fmt"
	"log/slog"

	"github.com/Davincible/qrmeta/pkg/mask"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ScoreResult is the JSON form of a scored matrix
type ScoreResult struct {
	Source  string       `json:"source"`
	Modules int          `json:"modules"`
	Version int          `json:"version,omitempty"`
	Penalty mask.Penalty `json:"penalty"`
	Total   float64      `json:"total"`
}

func scoreResult(source string, m mask.Matrix) ScoreResult {
	p := mask.Breakdown(m)
	return ScoreResult{
		Source:  source,
		Modules: m.ModuleCount(),
		Version: versionForSize(m.ModuleCount()),
		Penalty: p,
		Total:   p.Total(),
	}
}

func NewScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Compute the mask penalty of a matrix",
		Long: `Scores a finished candidate matrix with the four penalty rules used for
mask selection. Reads stdin when no file (or "-") is given.`,
		Example: `  qrmeta score candidate.txt
  cat candidate.txt | qrmeta score --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			grid, name, err := readMatrix(cmd, s, path)
			if err != nil {
				return err
			}

			result := scoreResult(name, grid)
			slog.Debug("scored matrix", "source", name, "total", result.Total)
			if result.Version == 0 {
				slog.Warn("matrix size does not match any version", "source", name, "modules", result.Modules)
			}

			if s.json {
				return printJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold)
			green := color.New(color.FgGreen, color.Bold)

			cyan.Fprintf(out, "%s: %dx%d modules", name, result.Modules, result.Modules)
			if result.Version != 0 {
				cyan.Fprintf(out, " (version %d)", result.Version)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Adjacent:    %g\n", result.Penalty.Adjacent)
			fmt.Fprintf(out, "  Blocks:      %g\n", result.Penalty.Blocks)
			fmt.Fprintf(out, "  Finder-like: %g\n", result.Penalty.FinderLike)
			fmt.Fprintf(out, "  Balance:     %g\n", result.Penalty.Balance)
			green.Fprintf(out, "  Total:       %g\n", result.Total)
			return nil
		},
	}

	return cmd
}
