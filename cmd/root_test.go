package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/codeblock/internal/clipboard"
	"github.com/zjrosen/codeblock/internal/flags"
	"github.com/zjrosen/codeblock/internal/markup"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

const sample = `
    <div class="x">
      // note
    </div>
`

const dedented = "<div class=\"x\">\n  // note\n</div>"

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command in a fresh working directory with HOME
// pointed at it, so no real user config is picked up.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return executeHere(t, stdin, args...)
}

// executeHere runs the root command in the current directory.
func executeHere(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	_ = teardown(rootCmd, nil)
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestRender_BareFromStdin(t *testing.T) {
	out, err := execute(t, "  <a>\n  b\n", "render", "--bare", "--no-line-numbers")
	require.NoError(t, err)
	require.Equal(t, "<a>\nb\n", out)
}

func TestRender_BareWithLineNumbers(t *testing.T) {
	out, err := execute(t, sample, "render", "--bare", "-")
	require.NoError(t, err)
	require.Equal(t, "1 │ <div class=\"x\">\n2 │   // note\n3 │ </div>\n", out)
}

func TestRender_FileUsesExtensionAsLanguage(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	writeFile(t, filepath.Join(dir, "page.vue"), sample)

	out, err := executeHere(t, "", "render", "page.vue")
	require.NoError(t, err)
	require.Contains(t, out, "● ● ●  vue")
	require.Contains(t, out, "⧉ copy")
	require.Contains(t, out, "3 │ </div>")
}

func TestRender_LangFlag(t *testing.T) {
	out, err := execute(t, sample, "render", "--lang", "svelte")
	require.NoError(t, err)
	require.Contains(t, out, "svelte")
}

func TestRender_MissingFile(t *testing.T) {
	_, err := execute(t, "", "render", "nope.html")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading nope.html")
}

func TestRender_HTML(t *testing.T) {
	out, err := execute(t, sample, "render", "--html", "--id", "cb", "--lang", "html")
	require.NoError(t, err)
	require.Contains(t, out, `<figure class="codeblock" id="cb" data-language="html">`)
	require.Contains(t, out, `<span class="tok-line-comment">// note</span>`)
	require.Contains(t, out, "&lt;div class=\"x\"&gt;\n  // note\n&lt;/div&gt;</textarea>")
	require.NotContains(t, out, "<!DOCTYPE html>")
}

func TestRender_HTMLPage(t *testing.T) {
	out, err := execute(t, sample, "render", "--html", "--page")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, "<title>stdin</title>")
}

func TestRender_Width(t *testing.T) {
	out, err := execute(t, sample, "render", "--bare", "--width", "8")
	require.NoError(t, err)
	require.Equal(t, "1 │ <di…\n2 │   /…\n3 │ </d…\n", out)
}

func TestRender_ConfigDisablesLineNumbers(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	writeFile(t, filepath.Join(dir, ".codeblock", "config.yaml"), "show_line_numbers: false\n")

	out, err := executeHere(t, sample, "render", "--bare")
	require.NoError(t, err)
	require.Equal(t, dedented+"\n", out)
}

func TestRender_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "show_line_numbers: false\n")

	out, err := executeHere(t, sample, "--config", path, "render", "--bare")
	require.NoError(t, err)
	require.Equal(t, dedented+"\n", out)
}

func TestRender_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	writeFile(t, filepath.Join(dir, ".codeblock", "config.yaml"), "tab_width: 0\n")

	_, err := executeHere(t, sample, "render")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestRender_UnknownThemePreset(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	writeFile(t, filepath.Join(dir, ".codeblock", "config.yaml"), "theme:\n  preset: solarized\n")

	_, err := executeHere(t, sample, "render")
	require.Error(t, err)
	require.Contains(t, err.Error(), "applying theme")
}

func TestTokens_Table(t *testing.T) {
	out, err := execute(t, `<a href="x">`, "tokens")
	require.NoError(t, err)
	require.Contains(t, out, "tag")
	require.Contains(t, out, `"<a href=\"x\">"`)
}

func TestTokens_YAML(t *testing.T) {
	out, err := execute(t, "<a href=\"x\">\n// c", "tokens", "--yaml")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)
	require.Equal(t, "tag", records[0]["kind"])
	require.Equal(t, `<a href="x">`, records[0]["text"])
	require.Equal(t, []any{[]any{8, 11}}, records[0]["strings"])
	require.Equal(t, "newline", records[1]["kind"])
	require.Equal(t, "line-comment", records[2]["kind"])
}

func TestTokens_LinesYAML(t *testing.T) {
	out, err := execute(t, "/* a\nb */", "tokens", "--lines", "--yaml")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	require.Equal(t, 1, records[0]["number"])
	require.Equal(t, 2, records[1]["number"])
}

func TestTokens_LinesTable(t *testing.T) {
	out, err := execute(t, "a\n\nb", "tokens", "--lines")
	require.NoError(t, err)
	require.Contains(t, out, "2  -")
}

type mockClipboard struct {
	mock.Mock
}

func (m *mockClipboard) Copy(text string) error {
	return m.Called(text).Error(0)
}

func useClipboard(t *testing.T, cb clipboard.Clipboard) {
	t.Helper()
	prev := copyClipboard
	copyClipboard = cb
	t.Cleanup(func() { copyClipboard = prev })
}

func TestCopy_Stdout(t *testing.T) {
	out, err := execute(t, sample, "copy", "--stdout")
	require.NoError(t, err)
	require.Equal(t, dedented, out)
}

func TestCopy_Clipboard(t *testing.T) {
	cb := &mockClipboard{}
	cb.On("Copy", dedented).Return(nil)
	useClipboard(t, cb)

	out, err := execute(t, sample, "copy")
	require.NoError(t, err)
	require.Equal(t, "copied 32 bytes\n", out)
	cb.AssertExpectations(t)
}

func TestCopy_ClipboardUnavailable(t *testing.T) {
	cb := &mockClipboard{}
	cb.On("Copy", mock.Anything).Return(clipboard.ErrUnavailable)
	useClipboard(t, cb)

	_, err := execute(t, sample, "copy")
	require.ErrorIs(t, err, clipboard.ErrUnavailable)
}

func TestVerify_OK(t *testing.T) {
	out, err := execute(t, sample, "verify")
	require.NoError(t, err)
	require.Equal(t, "ok: 3 lines, 7 tokens\n", out)
}

func TestVerify_Unterminated(t *testing.T) {
	out, err := execute(t, "<p title=\"open\n/* never closed", "verify")
	require.NoError(t, err)
	require.Contains(t, out, "ok: 2 lines")
}

func TestCheckRoundTrip_Mismatch(t *testing.T) {
	res := markup.Highlight("<a>\nb")
	res.Lines = res.Lines[:1]

	var out bytes.Buffer
	err := checkRoundTrip(&out, res)

	require.ErrorIs(t, err, ErrRoundTrip)
	require.Contains(t, out.String(), "reconstructed lines differ from source")
	require.Contains(t, out.String(), "line count: got 1, want 2")
}

func TestCheckRoundTrip_TokenMismatch(t *testing.T) {
	res := markup.Highlight("<a>b")
	res.Tokens = res.Tokens[:1]

	var out bytes.Buffer
	err := checkRoundTrip(&out, res)

	require.ErrorIs(t, err, ErrRoundTrip)
	require.Contains(t, out.String(), "token text differs from source")
	require.NotContains(t, out.String(), "reconstructed")
}

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	out, err := executeHere(t, "", "init")
	require.NoError(t, err)
	require.Equal(t, "wrote .codeblock/config.yaml\n", out)

	data, err := os.ReadFile(filepath.Join(dir, ".codeblock", "config.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "show_line_numbers: true")

	_, err = executeHere(t, "", "init")
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	_, err = executeHere(t, "", "init", "--force")
	require.NoError(t, err)
}

func TestInit_Global(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	_, err := executeHere(t, "", "init", "--global")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".config", "codeblock", "config.yaml"))
	require.NoError(t, err)
}

func TestTheme_List(t *testing.T) {
	out, err := execute(t, "", "theme")
	require.NoError(t, err)
	require.Contains(t, out, " * default")
	require.Contains(t, out, "   dracula")
	require.Contains(t, out, "code.tag")
}

func TestTheme_Select(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	out, err := executeHere(t, "", "theme", "nord")
	require.NoError(t, err)
	require.Contains(t, out, "theme.preset = nord")

	out, err = executeHere(t, "", "theme")
	require.NoError(t, err)
	require.Contains(t, out, " * nord")
}

func TestTheme_Unknown(t *testing.T) {
	_, err := execute(t, "", "theme", "solarized")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown preset "solarized"`)
}

func TestLanguageFor(t *testing.T) {
	cfg.Language = ""
	require.Equal(t, "vue", languageFor("vue", "page.html"))
	require.Equal(t, "html", languageFor("", "page.html"))
	require.Equal(t, "", languageFor("", "stdin"))

	cfg.Language = "twig"
	t.Cleanup(func() { cfg.Language = "" })
	require.Equal(t, "twig", languageFor("", "page.html"))
}

func TestClipboardFor_OSC52Flag(t *testing.T) {
	prev := flagReg
	t.Cleanup(func() { flagReg = prev })

	flagReg = flags.New(map[string]bool{flags.FlagOSC52: false})
	require.Equal(t, clipboard.System{}, clipboardFor(io.Discard))

	flagReg = flags.New(flags.Defaults())
	require.IsType(t, clipboard.Fallback{}, clipboardFor(io.Discard))

	cb := &mockClipboard{}
	useClipboard(t, cb)
	require.Same(t, cb, clipboardFor(io.Discard))
}
