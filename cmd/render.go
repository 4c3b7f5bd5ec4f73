package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/codeblock/internal/highlight"
	"github.com/zjrosen/codeblock/internal/render/html"
	"github.com/zjrosen/codeblock/internal/render/terminal"
	"github.com/zjrosen/codeblock/internal/tracing"
)

var (
	renderHTML          bool
	renderPage          bool
	renderNoLineNumbers bool
	renderLang          string
	renderWidth         int
	renderWrap          bool
	renderBare          bool
	renderID            string
	renderLight         bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render a code block to the terminal or as HTML",
	Long: `Render a code block from a file or stdin.

The source is dedented, tokenized into tags, attribute strings and
comments, and printed as a framed terminal block. With --html the block
is emitted as a <figure> element whose copy button yields the exact
dedented source.

Examples:
  # Render a template in the terminal
  codeblock render page.html

  # Pipe a snippet through, without the frame
  pbpaste | codeblock render --bare

  # Standalone HTML page with styles and copy script
  codeblock render --html --page page.html > page.out.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderHTML, "html", false, "emit HTML instead of terminal output")
	renderCmd.Flags().BoolVar(&renderPage, "page", false, "with --html, wrap the block in a standalone page")
	renderCmd.Flags().BoolVar(&renderNoLineNumbers, "no-line-numbers", false, "hide the line number gutter")
	renderCmd.Flags().StringVarP(&renderLang, "lang", "l", "", "language label for the badge (display only)")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "maximum output width in columns (0 = unlimited)")
	renderCmd.Flags().BoolVar(&renderWrap, "wrap", false, "wrap long lines instead of truncating (needs --width)")
	renderCmd.Flags().BoolVar(&renderBare, "bare", false, "omit the toolbar and border")
	renderCmd.Flags().StringVar(&renderID, "id", "", "HTML element id (default: random)")
	renderCmd.Flags().BoolVar(&renderLight, "light", false, "with --page, use the light palette")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	block := highlight.Block{
		Source:          source,
		Language:        languageFor(renderLang, name),
		ShowLineNumbers: cfg.ShowLineNumbers && !renderNoLineNumbers,
	}

	ctx, span := traceProv.Tracer().Start(cmd.Context(), tracing.SpanRender)
	defer span.End()
	span.SetAttributes(attribute.Int(tracing.AttrSourceBytes, len(source)))

	doc, err := service.Highlight(ctx, block)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if renderHTML {
		span.SetAttributes(attribute.String(tracing.AttrRenderer, "html"))
		fragment := html.Render(doc.Lines(), html.Options{
			ShowLineNumbers: block.ShowLineNumbers,
			Language:        block.Language,
			ID:              renderID,
		})
		if renderPage {
			fragment = html.Page(name, fragment, !renderLight)
		}
		_, err = fmt.Fprint(out, fragment)
		return err
	}

	span.SetAttributes(attribute.String(tracing.AttrRenderer, "terminal"))
	_, err = fmt.Fprintln(out, terminal.Render(doc.Lines(), terminal.Options{
		ShowLineNumbers: block.ShowLineNumbers,
		Language:        block.Language,
		Width:           renderWidth,
		TabWidth:        cfg.TabWidth,
		Wrap:            renderWrap,
		Bare:            renderBare,
	}))
	return err
}
