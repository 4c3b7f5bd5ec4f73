package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/codeblock/internal/clipboard"
	"github.com/zjrosen/codeblock/internal/highlight"
	"github.com/zjrosen/codeblock/internal/tracing"
)

var copyStdout bool

// copyClipboard overrides clipboardFor in tests.
var copyClipboard clipboard.Clipboard

var copyCmd = &cobra.Command{
	Use:   "copy [file|-]",
	Short: "Copy the dedented source to the clipboard",
	Long: `Copy exactly what the copy button of a rendered block yields: the
dedented source, byte for byte, with no markup escaping.

Falls back to an OSC 52 terminal sequence when no system clipboard is
available. --stdout prints the text instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&copyStdout, "stdout", false, "print instead of copying")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	ctx, span := traceProv.Tracer().Start(cmd.Context(), tracing.SpanCopy)
	defer span.End()

	doc, err := service.Highlight(ctx, highlight.Block{Source: source})
	if err != nil {
		return err
	}
	text := doc.CopyText()
	span.SetAttributes(attribute.Int(tracing.AttrSourceBytes, len(text)))

	if copyStdout {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}

	if err := clipboardFor(cmd.ErrOrStderr()).Copy(text); err != nil {
		return fmt.Errorf("copying: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "copied %d bytes\n", len(text))
	return nil
}
