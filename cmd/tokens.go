package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/codeblock/internal/highlight"
	"github.com/zjrosen/codeblock/internal/markup"
)

var (
	tokensYAML  bool
	tokensLines bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Print the token stream or line records for a source",
	Long: `Print how a source is classified.

By default every token is listed with its kind and quoted text. With
--lines the per-line fragments are listed instead, showing how tokens
that span lines are split. --yaml emits either form as YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensYAML, "yaml", false, "emit YAML")
	tokensCmd.Flags().BoolVar(&tokensLines, "lines", false, "list line fragments instead of tokens")
	rootCmd.AddCommand(tokensCmd)
}

type tokenRecord struct {
	Kind    string   `yaml:"kind"`
	Text    string   `yaml:"text"`
	Strings [][2]int `yaml:"strings,omitempty,flow"`
}

type partRecord struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

type fragmentRecord struct {
	Kind  string       `yaml:"kind"`
	Text  string       `yaml:"text"`
	Parts []partRecord `yaml:"parts,omitempty"`
}

type lineRecord struct {
	Number    int              `yaml:"number"`
	Fragments []fragmentRecord `yaml:"fragments"`
}

func tokenRecords(tokens []markup.Token) []tokenRecord {
	out := make([]tokenRecord, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenRecord{Kind: tok.Kind.String(), Text: tok.Text}
		for _, s := range tok.Strings {
			out[i].Strings = append(out[i].Strings, [2]int{s.Start, s.End})
		}
	}
	return out
}

func lineRecords(lines []markup.Line) []lineRecord {
	out := make([]lineRecord, len(lines))
	for i, line := range lines {
		out[i] = lineRecord{Number: line.Number, Fragments: make([]fragmentRecord, len(line.Fragments))}
		for j, f := range line.Fragments {
			fr := fragmentRecord{Kind: f.Kind.String(), Text: f.Text}
			for _, p := range f.Parts {
				fr.Parts = append(fr.Parts, partRecord{Kind: p.Kind.String(), Text: p.Text})
			}
			out[i].Fragments[j] = fr
		}
	}
	return out
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	doc, err := service.Highlight(cmd.Context(), highlight.Block{Source: source})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if tokensYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		if tokensLines {
			return enc.Encode(lineRecords(doc.Lines()))
		}
		return enc.Encode(tokenRecords(doc.Result.Tokens))
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if tokensLines {
		for _, line := range doc.Lines() {
			for _, f := range line.Fragments {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", line.Number, f.Kind, strconv.Quote(f.Text))
			}
			if len(line.Fragments) == 0 {
				fmt.Fprintf(tw, "%d\t-\t\n", line.Number)
			}
		}
		return tw.Flush()
	}

	for i, tok := range doc.Result.Tokens {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, tok.Kind, strconv.Quote(tok.Text))
	}
	return tw.Flush()
}
