package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// NewRootCommand assembles the qrmeta command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qrmeta",
		Short: "QR Code format/version information and mask penalty tools",
		Long: `qrmeta exposes the structural-integrity pieces of a QR Code encoder.

Features:
- Symbol size and codeword capacity per version
- BCH-protected format information (EC level + mask pattern)
- BCH-protected version information (versions 7-40)
- Verification and correction of format/version words read from a symbol
- Mask penalty scoring and selection over candidate matrices

Matrices are plain text files, one row per line, '#' or '1' for dark and
'.' or '0' for light modules.`,
		Version:       fmt.Sprintf("%s (built %s, commit %s)", info.Version, info.BuildTime, info.GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	rootCmd.AddCommand(
		NewSizeCommand(),
		NewFormatCommand(),
		NewVersionInfoCommand(),
		NewCheckCommand(),
		NewTableCommand(),
		NewScoreCommand(),
		NewSelectCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/qrmeta/config.yaml)")

	return rootCmd
}
