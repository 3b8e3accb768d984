package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferret-dev/ferret/internal/config"
	"github.com/ferret-dev/ferret/pkg/ferret"
)

func RunComplete(cmd *cobra.Command, args []string) error {
	row, col, activePath, err := parsePosition(args)
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	withSnippets, err := cmd.Flags().GetBool("snippets")
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
	list, err := client.GetCompletions(cmd.Context(), buffer, row, col, activePath, openPaths)
	if errors.Is(err, ferret.ErrNoResults) {
		if asJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(ferret.CompletionList{Entries: []ferret.Completion{}})
		}
		return nil
	}
	if err != nil {
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(list)
	}

	for _, entry := range list.Entries {
		if withSnippets {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Display, entry.Snippet)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), entry.Display)
		}
	}
	return nil
}
