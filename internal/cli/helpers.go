package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ferret-dev/ferret/internal/config"
)

// resolveSettings loads the config file and applies flag overrides on top.
// Returns the effective settings and the config path that was consulted.
func resolveSettings(cmd *cobra.Command) (config.Settings, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Settings{}, "", err
	}
	if configPath == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			// No resolvable config dir (e.g. stripped-down CI env):
			// run on defaults plus flags.
			return applyFlagOverrides(cmd, config.DefaultSettings(), "")
		}
		configPath = defaultPath
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, configPath, err
	}
	return applyFlagOverrides(cmd, settings, configPath)
}

func applyFlagOverrides(cmd *cobra.Command, settings config.Settings, configPath string) (config.Settings, string, error) {
	racerBin, err := cmd.Flags().GetString("racer")
	if err != nil {
		return settings, configPath, err
	}
	if racerBin != "" {
		settings.Racer = racerBin
	}

	searchPaths, err := cmd.Flags().GetStringArray("search-path")
	if err != nil {
		return settings, configPath, err
	}
	if len(searchPaths) > 0 {
		settings.SearchPaths = append(searchPaths, settings.SearchPaths...)
	}

	timeout, err := cmd.Flags().GetInt("timeout")
	if err != nil {
		return settings, configPath, err
	}
	if timeout > 0 {
		settings.TimeoutSeconds = timeout
	}

	return settings, configPath, nil
}

// newLogger builds the diagnostic sink: stderr when --verbose, nop otherwise.
func newLogger(cmd *cobra.Command) (*zap.SugaredLogger, error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	if !verbose {
		return zap.NewNop().Sugar(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger.Sugar(), nil
}

// readBuffer consumes the full buffer content from stdin.
func readBuffer(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read buffer from stdin: %w", err)
	}
	return string(data), nil
}

// parsePosition extracts the 1-based (row, col) leading arguments and the
// optional on-disk file path.
func parsePosition(args []string) (row int, col int, activePath string, err error) {
	row, err = strconv.Atoi(args[0])
	if err != nil || row <= 0 {
		return 0, 0, "", fmt.Errorf("invalid row %q: expected positive integer", args[0])
	}
	col, err = strconv.Atoi(args[1])
	if err != nil || col <= 0 {
		return 0, 0, "", fmt.Errorf("invalid column %q: expected positive integer", args[1])
	}
	if len(args) == 3 {
		activePath = args[2]
	}
	return row, col, activePath, nil
}
