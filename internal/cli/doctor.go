package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ferret-dev/ferret/internal/config"
	"github.com/ferret-dev/ferret/internal/racer"
)

// DoctorSummary reports whether a completion request would succeed with the
// effective settings.
type DoctorSummary struct {
	Racer          string   `json:"racer"`
	RacerPath      string   `json:"racer_path,omitempty"`
	Available      bool     `json:"available"`
	Reason         string   `json:"reason,omitempty"`
	ConfigPath     string   `json:"config_path,omitempty"`
	ConfigPresent  bool     `json:"config_present"`
	SearchPaths    []string `json:"search_paths,omitempty"`
	RustSrcPathSet bool     `json:"rust_src_path_set"`
	TimeoutSeconds int      `json:"timeout_seconds"`
}

func RunDoctor(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	settings, configPath, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	summary := buildDoctorSummary(settings, configPath, exec.LookPath)

	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	status := "issues"
	if summary.Available {
		status = "ok"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "doctor: %s\n", status)
	if summary.Available {
		fmt.Fprintf(cmd.OutOrStdout(), "racer: %s (%s)\n", summary.Racer, summary.RacerPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "racer: %s unavailable (%s)\n", summary.Racer, summary.Reason)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config: %s present=%t\n", summary.ConfigPath, summary.ConfigPresent)
	fmt.Fprintf(cmd.OutOrStdout(), "search paths (%d): %s\n", len(summary.SearchPaths), strings.Join(summary.SearchPaths, string(os.PathListSeparator)))
	fmt.Fprintf(cmd.OutOrStdout(), "%s set: %t\n", racer.SearchPathEnv, summary.RustSrcPathSet)
	fmt.Fprintf(cmd.OutOrStdout(), "timeout: %ds\n", summary.TimeoutSeconds)
	if !summary.Available {
		fmt.Fprintln(cmd.OutOrStdout(), "next: install racer (cargo install racer) or set racer in the config file")
	}
	return nil
}

func buildDoctorSummary(settings config.Settings, configPath string, lookPath func(file string) (string, error)) DoctorSummary {
	summary := DoctorSummary{
		Racer:          settings.Racer,
		ConfigPath:     configPath,
		SearchPaths:    settings.SearchPaths,
		RustSrcPathSet: os.Getenv(racer.SearchPathEnv) != "",
		TimeoutSeconds: settings.TimeoutSeconds,
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			summary.ConfigPresent = true
		}
	}

	if resolved, err := lookPath(settings.Racer); err == nil {
		summary.Available = true
		summary.RacerPath = resolved
	} else {
		summary.Reason = "engine_not_found"
	}
	return summary
}
