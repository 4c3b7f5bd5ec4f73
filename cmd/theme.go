package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/codeblock/internal/config"
	"github.com/zjrosen/codeblock/internal/ui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme [preset]",
	Short: "List theme presets or select one",
	Long: `Without arguments, list the built-in theme presets and the color tokens
that can be overridden under theme.colors. With a preset name, store it as
theme.preset in the active config file (or .codeblock/config.yaml).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, "Presets:")
		for _, name := range styles.PresetNames() {
			marker := " "
			if name == cfg.Theme.Preset || (cfg.Theme.Preset == "" && name == "default") {
				marker = "*"
			}
			fmt.Fprintf(out, " %s %s\n", marker, name)
		}
		fmt.Fprintln(out, "\nColor tokens:")
		for _, tok := range styles.AllTokens() {
			fmt.Fprintf(out, "   %s\n", tok)
		}
		return nil
	}

	preset := args[0]
	if !slices.Contains(styles.PresetNames(), preset) {
		return fmt.Errorf("unknown preset %q", preset)
	}

	path := viper.ConfigFileUsed()
	if path == "" {
		path = localConfigPath
	}
	if err := config.SaveThemePreset(path, preset); err != nil {
		return err
	}
	fmt.Fprintf(out, "theme.preset = %s (%s)\n", preset, path)
	return nil
}
