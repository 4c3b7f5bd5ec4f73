package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/codeblock/internal/clipboard"
	"github.com/zjrosen/codeblock/internal/config"
	"github.com/zjrosen/codeblock/internal/flags"
	"github.com/zjrosen/codeblock/internal/highlight"
	"github.com/zjrosen/codeblock/internal/log"
	"github.com/zjrosen/codeblock/internal/tracing"
	"github.com/zjrosen/codeblock/internal/ui/styles"
)

const localConfigPath = ".codeblock/config.yaml"

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config

	// Set up in PersistentPreRunE and released in PersistentPostRunE.
	service    *highlight.Service
	flagReg    *flags.Registry
	traceProv  *tracing.Provider
	logCleanup func()
	loadErr    error
)

// annotationInteractive marks commands that run a Bubble Tea program.
const annotationInteractive = "interactive"

var rootCmd = &cobra.Command{
	Use:   "codeblock",
	Short: "Highlight markup code blocks in the terminal and as HTML",
	Long: `codeblock tokenizes template markup (tags, quoted attribute strings,
line and block comments), splits it into numbered lines and renders it
as a styled terminal block or an HTML figure with a copy button.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .codeblock/config.yaml or ~/.config/codeblock/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"write debug logs to codeblock.log (or set "+log.EnvDebug+"=1)")
}

func initConfig() {
	viper.Reset()

	defaults := config.Defaults()
	viper.SetDefault("show_line_numbers", defaults.ShowLineNumbers)
	viper.SetDefault("language", defaults.Language)
	viper.SetDefault("tab_width", defaults.TabWidth)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.ttl", defaults.Cache.TTL)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)
	viper.SetDefault("theme.preset", defaults.Theme.Preset)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)
	viper.SetDefault("flags", defaults.Flags)

	viper.SetEnvPrefix("CODEBLOCK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .codeblock/config.yaml (current directory)
		// 2. ~/.config/codeblock/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "codeblock"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// A missing config file is fine, defaults apply. Other read errors
	// surface in setup through loadErr.
	loadErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			loadErr = fmt.Errorf("reading config: %w", err)
		}
	}

	cfg = config.Config{}
	if err := viper.Unmarshal(&cfg); err != nil && loadErr == nil {
		loadErr = fmt.Errorf("decoding config: %w", err)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	if loadErr != nil {
		return loadErr
	}

	if debug || os.Getenv(log.EnvDebug) != "" {
		var (
			cleanup func()
			err     error
		)
		if cmd.Annotations[annotationInteractive] == "true" {
			cleanup, err = log.InitWithTeaLog("codeblock.log", "codeblock")
		} else {
			cleanup, err = log.Init("codeblock.log")
		}
		if err != nil {
			return fmt.Errorf("initializing log: %w", err)
		}
		logCleanup = cleanup
	}
	log.Debug(log.CatConfig, "config loaded", "file", viper.ConfigFileUsed(), "command", cmd.Name())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Without a preset or overrides the adaptive light/dark defaults stay.
	if colors := cfg.Theme.FlattenedColors(); cfg.Theme.Preset != "" || len(colors) > 0 {
		if err := styles.ApplyTheme(styles.ThemeConfig{Preset: cfg.Theme.Preset, Colors: colors}); err != nil {
			return fmt.Errorf("applying theme: %w", err)
		}
	}

	flagReg = flags.New(cfg.Flags)

	prov, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	traceProv = prov

	service = highlight.NewService(highlight.Options{
		CacheEnabled: cfg.Cache.Enabled,
		CacheTTL:     cfg.Cache.TTL,
		Tracer:       prov.Tracer(),
	})
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	var err error
	if traceProv != nil {
		err = traceProv.Shutdown(context.Background())
		traceProv = nil
	}
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
	return err
}

// clipboardFor returns the clipboard used by copy actions. OSC 52 sequences
// go to w when the osc52-clipboard flag is on.
func clipboardFor(w io.Writer) clipboard.Clipboard {
	if copyClipboard != nil {
		return copyClipboard
	}
	if flagReg.Enabled(flags.FlagOSC52) {
		return clipboard.Default(w)
	}
	return clipboard.System{}
}

// readSource reads the file named by args[0], or stdin when there are no
// args or the name is "-". The returned name is used for titles.
func readSource(cmd *cobra.Command, args []string) (source, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), filepath.Base(args[0]), nil
}

// languageFor returns the explicit label, then the configured one, then the
// file extension.
func languageFor(flag, name string) string {
	if flag != "" {
		return flag
	}
	if cfg.Language != "" {
		return cfg.Language
	}
	if ext := filepath.Ext(name); len(ext) > 1 {
		return ext[1:]
	}
	return ""
}

// Execute runs the root command
func Execute() error {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 response does not race with the input loop.
	_ = lipgloss.HasDarkBackground()
	defer func() { _ = teardown(rootCmd, nil) }()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
