package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zjrosen/codeblock/internal/highlight"
	"github.com/zjrosen/codeblock/internal/markup"
)

// ErrRoundTrip is returned when a source does not survive tokenizing and
// line splitting unchanged.
var ErrRoundTrip = errors.New("round-trip mismatch")

var verifyCmd = &cobra.Command{
	Use:   "verify [file|-]",
	Short: "Check that a source round-trips through the highlighter",
	Long: `Check the lossless guarantees for a source:

  - the concatenated token text equals the dedented source
  - unescaping and joining the line fragments equals the dedented source
  - the number of lines is the number of newlines plus one

On a mismatch a character diff is printed and the command fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	doc, err := service.Highlight(cmd.Context(), highlight.Block{Source: source})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := checkRoundTrip(out, doc.Result); err != nil {
		return err
	}

	fmt.Fprintf(out, "ok: %d lines, %d tokens\n", len(doc.Lines()), len(doc.Result.Tokens))
	return nil
}

func checkRoundTrip(w io.Writer, res markup.Result) error {
	var failed bool

	if joined := markup.Join(res.Tokens); joined != res.Source {
		fmt.Fprintln(w, "token text differs from source:")
		printDiff(w, res.Source, joined)
		failed = true
	}

	if rebuilt := markup.Reconstruct(res.Lines); rebuilt != res.Source {
		fmt.Fprintln(w, "reconstructed lines differ from source:")
		printDiff(w, res.Source, rebuilt)
		failed = true
	}

	if want := strings.Count(res.Source, "\n") + 1; len(res.Lines) != want {
		fmt.Fprintf(w, "line count: got %d, want %d\n", len(res.Lines), want)
		failed = true
	}

	if failed {
		return ErrRoundTrip
	}
	return nil
}

func printDiff(w io.Writer, want, got string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))
	fmt.Fprintln(w, dmp.DiffPrettyText(diffs))
}
