package cli

import (
	"fmt"

	"github.com/Davincible/qrmeta/pkg/bch"
	"github.com/Davincible/qrmeta/pkg/symbol"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print generated format or version information tables",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "format",
			Short: "All 32 format information words",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := loadSettings(cmd)
				if err != nil {
					return err
				}

				var rows []InfoResult
				for _, level := range []bch.Level{bch.LevelL, bch.LevelM, bch.LevelQ, bch.LevelH} {
					for pattern := 0; pattern < bch.MaskPatterns; pattern++ {
						row, err := formatResult(level, pattern)
						if err != nil {
							return err
						}
						rows = append(rows, row)
					}
				}

				if s.json {
					return printJSON(cmd, rows)
				}

				out := cmd.OutOrStdout()
				color.New(color.Bold).Fprintln(out, "LEVEL MASK DATA   WORD")
				for _, r := range rows {
					fmt.Fprintf(out, "%-5s %-4d %05b  %s %s\n", r.Level, *r.Mask, r.Data, r.Binary, r.Hex)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Version information words for versions 7-40",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := loadSettings(cmd)
				if err != nil {
					return err
				}

				var rows []InfoResult
				for v := symbol.MinVersion; v <= symbol.MaxVersion; v++ {
					if symbol.HasVersionInfo(v) {
						rows = append(rows, versionResult(v))
					}
				}

				if s.json {
					return printJSON(cmd, rows)
				}

				out := cmd.OutOrStdout()
				color.New(color.Bold).Fprintln(out, "VERSION WORD")
				for _, r := range rows {
					fmt.Fprintf(out, "%-7d %s %s\n", r.Version, r.Binary, r.Hex)
				}
				return nil
			},
		},
	)

	return cmd
}
