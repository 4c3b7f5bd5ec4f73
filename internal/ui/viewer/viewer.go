// Package viewer provides the interactive full-screen code block viewer.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/codeblock/internal/clipboard"
	"github.com/zjrosen/codeblock/internal/highlight"
	"github.com/zjrosen/codeblock/internal/keys"
	"github.com/zjrosen/codeblock/internal/log"
	"github.com/zjrosen/codeblock/internal/render/terminal"
	"github.com/zjrosen/codeblock/internal/ui/styles"
)

const (
	copyZoneID = "codeblock-copy"

	// StatusTimeout is how long a status message stays visible.
	StatusTimeout = 2 * time.Second
)

// Config holds the viewer's collaborators and initial settings.
type Config struct {
	Service   *highlight.Service
	Clipboard clipboard.Clipboard

	// Load reads the current source text. It is called on start, on
	// reload, and on every change notification.
	Load func() (string, error)

	// Changes delivers file change notifications. Nil disables watching.
	Changes <-chan struct{}

	Title           string
	Language        string
	ShowLineNumbers bool
	TabWidth        int
}

// Messages

type loadedMsg struct {
	doc highlight.Document
}

type loadErrMsg struct {
	err error
}

type fileChangedMsg struct{}

type copiedMsg struct {
	bytes int
	err   error
}

type dismissStatusMsg struct {
	seq int
}

// Model is the viewer state.
type Model struct {
	cfg      Config
	keys     keys.ViewerKeyMap
	viewport viewport.Model
	help     help.Model

	doc    highlight.Document
	loaded bool

	showLineNumbers bool
	copied          bool

	status    string
	statusErr bool
	statusSeq int

	width  int
	height int
}

// New creates a viewer model.
func New(cfg Config) Model {
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.Mock{}
	}
	if cfg.Service == nil {
		cfg.Service = highlight.NewService(highlight.DefaultOptions())
	}
	if zone.DefaultManager == nil {
		zone.NewGlobal()
	}
	return Model{
		cfg:             cfg,
		keys:            keys.Viewer,
		viewport:        viewport.New(0, 0),
		help:            help.New(),
		showLineNumbers: cfg.ShowLineNumbers,
	}
}

// Init loads the source and starts listening for changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.waitForChange())
}

// Document returns the currently displayed document.
func (m Model) Document() highlight.Document {
	return m.doc
}

// ShowLineNumbers reports whether the gutter is visible.
func (m Model) ShowLineNumbers() bool {
	return m.showLineNumbers
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		m.help.Width = msg.Width
		m.refreshContent()
		return m, nil

	case loadedMsg:
		m.doc = msg.doc
		m.loaded = true
		m.refreshContent()
		return m, nil

	case loadErrMsg:
		log.ErrorErr(log.CatUI, "load failed", msg.err)
		return m.setStatus("load failed: "+msg.err.Error(), true)

	case fileChangedMsg:
		log.Debug(log.CatUI, "source changed, reloading")
		return m, tea.Batch(m.load(), m.waitForChange())

	case copiedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatClipboard, "copy failed", msg.err)
			return m.setStatus("copy failed: "+msg.err.Error(), true)
		}
		m.copied = true
		return m.setStatus(fmt.Sprintf("copied %d bytes", msg.bytes), false)

	case dismissStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
			m.copied = false
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if z := zone.Get(copyZoneID); z != nil && z.InBounds(msg) {
				return m, m.copy()
			}
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			return m, m.copy()
		case key.Matches(msg, m.keys.ToggleLineNumbers):
			m.showLineNumbers = !m.showLineNumbers
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			return m, m.load()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the toolbar, the code and the status line.
func (m Model) View() string {
	if !m.loaded {
		if m.cfg.Title == "" {
			return styles.MutedStyle.Render("loading…")
		}
		return styles.MutedStyle.Render("loading " + m.cfg.Title + "…")
	}

	left, right := terminal.ToolbarParts(m.renderOptions())
	toolbar := terminal.JoinToolbar(left, zone.Mark(copyZoneID, right), m.width)

	footer := m.help.View(m.keys)
	if m.status != "" {
		style := styles.CopiedStyle
		if m.statusErr {
			style = styles.ErrorStyle
		}
		footer = style.Render(m.status)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, toolbar, m.viewport.View(), footer))
}

func (m Model) renderOptions() terminal.Options {
	return terminal.Options{
		ShowLineNumbers: m.showLineNumbers,
		Language:        m.cfg.Language,
		Width:           m.width,
		TabWidth:        m.cfg.TabWidth,
		Copied:          m.copied,
		Bare:            true,
	}
}

func (m *Model) refreshContent() {
	if !m.loaded {
		return
	}
	m.viewport.SetContent(terminal.RenderBody(m.doc.Lines(), m.renderOptions()))
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return m, tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return dismissStatusMsg{seq: seq}
	})
}

func (m Model) load() tea.Cmd {
	svc := m.cfg.Service
	loadFn := m.cfg.Load
	block := highlight.Block{
		Language:        m.cfg.Language,
		ShowLineNumbers: m.showLineNumbers,
	}
	return func() tea.Msg {
		if loadFn == nil {
			return loadErrMsg{err: fmt.Errorf("no source configured")}
		}
		src, err := loadFn()
		if err != nil {
			return loadErrMsg{err: err}
		}
		block.Source = src
		doc, err := svc.Highlight(context.Background(), block)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return loadedMsg{doc: doc}
	}
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.cfg.Changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

func (m Model) copy() tea.Cmd {
	if !m.loaded {
		return nil
	}
	cb := m.cfg.Clipboard
	text := m.doc.CopyText()
	return func() tea.Msg {
		return copiedMsg{bytes: len(text), err: cb.Copy(text)}
	}
}
