package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ferret",
		Short: "Rust code completion and navigation via racer",
		Long: `Ferret is a thin client for the racer completion engine. It pipes the
current buffer to racer over stdin, parses the MATCH output lines, and
prints ranked completions or a definition target.

Buffer content is read from stdin so unsaved editor buffers work; pass the
on-disk path as the optional [file] argument when one exists.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default: user config dir, ferret/config.toml)")
	rootCmd.PersistentFlags().String("racer", "", "Racer binary override")
	rootCmd.PersistentFlags().StringArray("search-path", nil, "Additional RUST_SRC_PATH entry (repeatable, ~ allowed)")
	rootCmd.PersistentFlags().Int("timeout", 0, "Racer invocation timeout in seconds")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log diagnostics to stderr")

	completeCmd := &cobra.Command{
		Use:   "complete <row> <col> [file]",
		Short: "Complete at a 1-based cursor position, buffer on stdin",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  RunComplete,
	}
	completeCmd.Flags().Bool("json", false, "Print machine-readable completions")
	completeCmd.Flags().Bool("snippets", false, "Append the snippet after each display row")
	completeCmd.Flags().StringArray("open", nil, "Path of another open .rs buffer (repeatable)")

	definitionCmd := &cobra.Command{
		Use:   "definition <row> <col> [file]",
		Short: "Find the definition for the symbol under the cursor",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  RunDefinition,
	}
	definitionCmd.Flags().Bool("json", false, "Print machine-readable definition target")
	definitionCmd.Flags().StringArray("open", nil, "Path of another open .rs buffer (repeatable)")

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate racer availability and effective settings",
		RunE:  RunDoctor,
	}
	doctorCmd.Flags().Bool("json", false, "Print machine-readable doctor output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ferret %s\n", version)
		},
	}

	rootCmd.AddCommand(
		completeCmd,
		definitionCmd,
		doctorCmd,
		versionCmd,
	)

	return rootCmd
}
