package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Davincible/qrmeta/internal/matrixio"
	"github.com/Davincible/qrmeta/pkg/config"
	"github.com/Davincible/qrmeta/pkg/mask"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// settings merges the config file with the persistent flags
type settings struct {
	cfg  *config.Config
	json bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	path, _ := cmd.Flags().GetString("config")

	mgr, err := config.NewManager(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slog.Debug("config loaded", "path", mgr.Path())

	cfg := mgr.Config()
	jsonOut, _ := cmd.Flags().GetBool("json")

	s := &settings{
		cfg:  cfg,
		json: jsonOut || cfg.UI.JSON,
	}
	if s.json || !cfg.UI.UseColor {
		color.NoColor = true
	}

	return s, nil
}

// printJSON writes v to the command output
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// openInput opens path, or the command's stdin for "" and "-". An
// interactive terminal is refused since matrices are never typed by hand.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, string, error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open matrix: %w", err)
		}
		return f, path, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, "", fmt.Errorf("no matrix file given and stdin is a terminal")
	}
	return io.NopCloser(in), "stdin", nil
}

// readMatrix opens and parses one matrix file
func readMatrix(cmd *cobra.Command, s *settings, path string) (mask.Grid, string, error) {
	r, name, err := openInput(cmd, path)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()

	grid, err := matrixio.Parse(r, s.cfg.Input.Dark, s.cfg.Input.Light)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	slog.Debug("matrix loaded", "source", name, "modules", grid.ModuleCount())

	return grid, name, nil
}

// versionForSize returns the version whose symbols have side n, or 0
func versionForSize(n int) int {
	if n < 21 || (n-17)%4 != 0 {
		return 0
	}
	if v := (n - 17) / 4; v <= 40 {
		return v
	}
	return 0
}
