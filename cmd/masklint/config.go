// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"masklint-cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	configInitForce bool

	// configCmd groups the configuration subcommands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage masklint configuration",
		Long: `Manage masklint configuration.

Configuration is stored in:
  - Linux: ~/.config/masklint/config.toml
  - macOS: ~/Library/Application Support/masklint/config.toml
  - Windows: %APPDATA%\masklint\config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE:  runConfigInit,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE:  runConfigPath,
	}
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	path, pathErr := config.FilePath()
	if pathErr == nil && fileExists(path) {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("maskfile"), SuccessStyle.Render(cfg.Maskfile))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.UI.Verbose)))
	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("ui.color"), SuccessStyle.Render(string(cfg.UI.Color)))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.FilePath()
	if err != nil {
		return err
	}
	if fileExists(path) && !configInitForce {
		return fmt.Errorf("config file '%s' already exists. Use --force to overwrite", path)
	}

	written, err := config.Save(config.Default())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", SuccessStyle.Render("✓"), written)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.FilePath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
