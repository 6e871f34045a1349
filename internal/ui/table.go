package ui

import (
	"fmt"
	"io"
	"strconv"

	"pibench/internal/benchmark"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// noHighlight is never a valid row index, header included.
const noHighlight = -2

// TablePresenter prints one lipgloss table per result and a comparison table.
type TablePresenter struct {
	out    io.Writer
	styles styles
}

func NewTablePresenter(out io.Writer, noColor bool) *TablePresenter {
	return &TablePresenter{
		out:    out,
		styles: newStyles(newRenderer(out, noColor)),
	}
}

func (p *TablePresenter) Present(r benchmark.Result) error {
	headers := []string{"Run", r.Unit, "Estimate", "Absolute Error", "Runtime (s)"}

	var rows [][]string
	for _, run := range r.Runs {
		for _, m := range run.Measurements {
			rows = append(rows, []string{
				strconv.Itoa(run.Index),
				strconv.Itoa(m.Param),
				fmt.Sprintf("%.10f", m.Estimate),
				fmt.Sprintf("%.3e", m.AbsError),
				fmt.Sprintf("%.10f", m.Runtime.Seconds()),
			})
		}
	}

	caption := fmt.Sprintf("axes: x=%s y=%s", r.Axes.X, r.Axes.Y)
	return p.write(Title(r), headers, rows, noHighlight, caption)
}

func (p *TablePresenter) Summarize(summaries []benchmark.Summary) error {
	headers := []string{"Method", "Calls", "Largest workload", "Best Error", "Digits", "Final Error", "Mean Runtime (s)", "Total Runtime (s)"}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Method,
			strconv.Itoa(s.Calls),
			strconv.Itoa(s.FinalParam),
			fmt.Sprintf("%.3e", s.BestError),
			fmt.Sprintf("%.1f", s.Digits),
			fmt.Sprintf("%.3e", s.FinalError),
			fmt.Sprintf("%.10f", s.MeanRuntime.Seconds()),
			fmt.Sprintf("%.10f", s.TotalRuntime.Seconds()),
		})
	}

	// Compare sorts the most precise method first.
	return p.write("Comparison: Runtime vs Precision", headers, rows, 0, "ordered by best absolute error")
}

func (p *TablePresenter) write(title string, headers []string, rows [][]string, highlight int, caption string) error {
	st := p.styles
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header
			case row == highlight:
				return st.best
			default:
				return st.cell
			}
		})

	_, err := fmt.Fprintf(p.out, "%s\n%s\n%s\n", st.title.Render(title), t.String(), st.caption.Render(caption))
	return err
}
