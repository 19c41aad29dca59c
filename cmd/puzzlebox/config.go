// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"puzzlebox-cli/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `puzzlebox config` command tree.
// Subcommands that read configuration use the App's config provider.
func newConfigCommand(app *App, root *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage puzzlebox configuration",
		Long: `Manage puzzlebox configuration.

Configuration is stored in:
  - Linux: ~/.config/puzzlebox/config.cue
  - macOS: ~/Library/Application Support/puzzlebox/config.cue
  - Windows: %APPDATA%\puzzlebox\config.cue

Every key can be overridden by a PUZZLEBOX_ environment variable,
for example PUZZLEBOX_WORDSEARCH_WORD=SAMX.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app, root)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfgPath, err := config.CreateDefaultConfig()
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			fmt.Fprintf(app.stdout, "%s Configuration file at %s\n", SuccessStyle.Render("✓"), cfgPath)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfigPath(app.stdout, root)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(cmd.Context(), root.cfgFile, nil)
			if err != nil {
				return renderAndExit(app, root, err)
			}
			_, err = fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return err
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, root *rootFlags) error {
	opts := config.LoadOptions{ConfigFilePath: root.cfgFile}
	cfg, err := app.loadConfig(ctx, root.cfgFile, nil)
	if err != nil {
		return renderAndExit(app, root, err)
	}
	cfgPath, err := config.Resolve(ctx, opts)
	if err != nil {
		return renderAndExit(app, root, err)
	}

	w := app.stdout
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if cfgPath != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("input"), valueStyle.Render(cfg.Input))

	printSection(w, "ui")
	printValue(w, "color_scheme", valueStyle.Render(string(cfg.UI.ColorScheme)))
	printValue(w, "verbose", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))

	printSection(w, "grid")
	printValue(w, "allow_unterminated", valueStyle.Render(strconv.FormatBool(cfg.Grid.AllowUnterminated)))

	printSection(w, "wordsearch")
	printValue(w, "word", valueStyle.Render(cfg.WordSearch.Word))
	printValue(w, "parallel", valueStyle.Render(strconv.FormatBool(cfg.WordSearch.Parallel)))

	printSection(w, "reports")
	printValue(w, "max_step", valueStyle.Render(strconv.Itoa(cfg.Reports.MaxStep)))

	return nil
}

func printSection(w io.Writer, name string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render(name))
}

func printValue(w io.Writer, key, rendered string) {
	fmt.Fprintf(w, "  %s: %s\n", key, rendered)
}

func showConfigPath(w io.Writer, root *rootFlags) error {
	if root.cfgFile != "" {
		fmt.Fprintf(w, "Config file: %s\n", root.cfgFile)
		return nil
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(w, "Config file: %s\n", config.ConfigFilePath(cfgDir))
	return nil
}
