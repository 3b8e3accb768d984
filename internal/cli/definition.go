package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferret-dev/ferret/internal/config"
	"github.com/ferret-dev/ferret/pkg/ferret"
)

func RunDefinition(cmd *cobra.Command, args []string) error {
	row, col, activePath, err := parsePosition(args)
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	openPaths, err := cmd.Flags().GetStringArray("open")
	if err != nil {
		return err
	}

	settings, _, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	buffer, err := readBuffer(cmd)
	if err != nil {
		return err
	}

	client := ferret.NewFromStore(config.NewStore(settings), ferret.WithLogger(logger))
	target, err := client.GetDefinition(cmd.Context(), buffer, row, col, activePath, openPaths)
	if errors.Is(err, ferret.ErrNoTarget) {
		if asJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(map[string]any{"target": nil})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "no definition target")
		return nil
	}
	if err != nil {
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{"target": target})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d\n", target.Path, target.Row, target.Column)
	return nil
}
