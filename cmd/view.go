package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/zjrosen/codeblock/internal/flags"
	"github.com/zjrosen/codeblock/internal/log"
	"github.com/zjrosen/codeblock/internal/ui/viewer"
	"github.com/zjrosen/codeblock/internal/watcher"
)

var (
	viewWatch bool
	viewLang  string
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Open a code block in the interactive viewer",
	Long: `Open a file in a full-screen viewer.

Keys: c/y copy, n toggle line numbers, r reload, j/k scroll, ? help, q quit.
Clicking the copy button in the toolbar also copies. With --watch the
block is re-highlighted whenever the file changes on disk.`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runView,
}

func init() {
	viewCmd.Flags().BoolVar(&viewWatch, "watch", false, "reload when the file changes")
	viewCmd.Flags().StringVarP(&viewLang, "lang", "l", "", "language label for the badge (display only)")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	var changes <-chan struct{}
	if viewWatch {
		w, err := watcher.New(watcher.Config{Path: path, DebounceDur: cfg.Watch.Debounce})
		if err != nil {
			return err
		}
		defer func() {
			if err := w.Stop(); err != nil {
				log.ErrorErr(log.CatWatcher, "stopping watcher", err)
			}
		}()
		changes, err = w.Start()
		if err != nil {
			return err
		}
	}

	zone.NewGlobal()

	model := viewer.New(viewer.Config{
		Service:   service,
		Clipboard: clipboardFor(os.Stderr),
		Load: func() (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("reading %s: %w", path, err)
			}
			return string(data), nil
		},
		Changes:         changes,
		Title:           path,
		Language:        languageFor(viewLang, path),
		ShowLineNumbers: cfg.ShowLineNumbers,
		TabWidth:        cfg.TabWidth,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if flagReg.Enabled(flags.FlagViewerMouse) {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
