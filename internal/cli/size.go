package cli

import (
	"fmt"

	"github.com/Davincible/qrmeta/internal/validation"
	"github.com/Davincible/qrmeta/pkg/symbol"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// SizeResult is the JSON form of the size command
type SizeResult struct {
	Version        int  `json:"version"`
	Size           int  `json:"size"`
	TotalCodewords int  `json:"total_codewords"`
	HasVersionInfo bool `json:"has_version_info"`
}

func NewSizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size <version>",
		Short: "Show symbol size and codeword capacity of a version",
		Example: `  qrmeta size 1
  qrmeta size 40 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			version, err := validation.ValidateVersion(args[0])
			if err != nil {
				return err
			}

			size, err := symbol.SymbolSize(version)
			if err != nil {
				return err
			}

			result := SizeResult{
				Version:        version,
				Size:           size,
				TotalCodewords: symbol.TotalCodewords(version),
				HasVersionInfo: symbol.HasVersionInfo(version),
			}

			if s.json {
				return printJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold)
			cyan.Fprintf(out, "Version %d\n", result.Version)
			fmt.Fprintf(out, "  Size:            %dx%d modules\n", result.Size, result.Size)
			fmt.Fprintf(out, "  Total codewords: %d\n", result.TotalCodewords)
			fmt.Fprintf(out, "  Version info:    %t\n", result.HasVersionInfo)
			return nil
		},
	}

	return cmd
}
