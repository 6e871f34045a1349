package ui

import (
	"fmt"
	"io"
	"strings"

	"pibench/internal/benchmark"

	"github.com/charmbracelet/glamour"
)

// MarkdownPresenter writes a markdown report rendered for the terminal by
// glamour. When rendering fails the raw markdown is written instead.
type MarkdownPresenter struct {
	out      io.Writer
	renderer *glamour.TermRenderer
}

// NewMarkdownPresenter builds a presenter. An empty style selects glamour's
// automatic terminal style; "notty" gives plain output.
func NewMarkdownPresenter(out io.Writer, style string) *MarkdownPresenter {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	renderer, _ := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(120))
	return &MarkdownPresenter{out: out, renderer: renderer}
}

func (p *MarkdownPresenter) Present(r benchmark.Result) error {
	return p.write(ResultMarkdown(r))
}

func (p *MarkdownPresenter) Summarize(summaries []benchmark.Summary) error {
	return p.write(SummaryMarkdown(summaries))
}

func (p *MarkdownPresenter) write(md string) error {
	if p.renderer != nil {
		if out, err := p.renderer.Render(md); err == nil {
			_, err = io.WriteString(p.out, out)
			return err
		}
	}
	_, err := io.WriteString(p.out, md)
	return err
}

// ResultMarkdown formats one result as a markdown section.
func ResultMarkdown(r benchmark.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", Title(r))
	fmt.Fprintf(&b, "| Run | %s | Estimate | Absolute Error | Runtime (s) |\n", r.Unit)
	b.WriteString("|---:|---:|---:|---:|---:|\n")
	for _, run := range r.Runs {
		for _, m := range run.Measurements {
			fmt.Fprintf(&b, "| %d | %d | %.10f | %.3e | %.10f |\n",
				run.Index, m.Param, m.Estimate, m.AbsError, m.Runtime.Seconds())
		}
	}
	return b.String()
}

// SummaryMarkdown formats the cross-method comparison.
func SummaryMarkdown(summaries []benchmark.Summary) string {
	var b strings.Builder
	b.WriteString("## Comparison\n\n")
	b.WriteString("| Method | Calls | Best Error | Digits | Mean Runtime (s) |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | %d | %.3e | %.1f | %.10f |\n",
			s.Method, s.Calls, s.BestError, s.Digits, s.MeanRuntime.Seconds())
	}
	return b.String()
}
