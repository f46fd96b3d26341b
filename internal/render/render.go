// Package render prints outs analyses for a terminal or for machines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/pokerouts/internal/config"
	"github.com/lox/pokerouts/outs"
	"github.com/lox/pokerouts/poker"
	"github.com/muesli/termenv"
)

const columnGap = 2

// Options controls colouring.
type Options struct {
	// Threshold splits red (below) from green (above); equal is plain.
	Threshold int
	// Color enables styling. When false output never has escape codes.
	Color bool
	// ForceColor styles output even when the writer is not a terminal.
	ForceColor bool
}

// Printer writes analyses to a writer.
type Printer struct {
	w         io.Writer
	threshold int

	lowStyle    lipgloss.Style
	highStyle   lipgloss.Style
	plainStyle  lipgloss.Style
	headerStyle lipgloss.Style
	redCard     lipgloss.Style
	blackCard   lipgloss.Style
}

// New creates a Printer bound to w.
func New(w io.Writer, opts Options) *Printer {
	return NewWithRenderer(w, NewRenderer(w, opts), opts.Threshold)
}

// NewRenderer returns a lipgloss renderer for w with the colour profile
// opts asks for. Without Color the profile is Ascii.
func NewRenderer(w io.Writer, opts Options) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case !opts.Color:
		r.SetColorProfile(termenv.Ascii)
	case opts.ForceColor:
		r.SetColorProfile(termenv.ANSI)
	}
	return r
}

// NewWithRenderer creates a Printer whose styles come from r. w may be nil
// when only Line and Cards are used.
func NewWithRenderer(w io.Writer, r *lipgloss.Renderer, threshold int) *Printer {
	return &Printer{
		w:           w,
		threshold:   threshold,
		lowStyle:    r.NewStyle().Foreground(lipgloss.Color("9")),
		highStyle:   r.NewStyle().Foreground(lipgloss.Color("10")),
		plainStyle:  r.NewStyle(),
		headerStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		redCard:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		blackCard:   r.NewStyle().Bold(true),
	}
}

// StyleFor returns the style used for a completion percentage.
func (p *Printer) StyleFor(percent int) lipgloss.Style {
	switch {
	case percent < p.threshold:
		return p.lowStyle
	case percent > p.threshold:
		return p.highStyle
	default:
		return p.plainStyle
	}
}

// Line formats one estimate, e.g. "Flush has the probability of 20%".
func (p *Printer) Line(e outs.Estimate) string {
	style := p.StyleFor(e.Percent)
	return fmt.Sprintf("%s has the probability of %s",
		style.Render(e.Rank.String()),
		style.Render(fmt.Sprintf("%d%%", e.Percent)))
}

// Cards formats a hand with suit symbols, red suits in red.
func (p *Printer) Cards(h poker.Hand) string {
	cards := h.Cards()
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = p.redCard.Render(c.Pretty())
		} else {
			parts[i] = p.blackCard.Render(c.Pretty())
		}
	}
	return strings.Join(parts, " ")
}

// Write prints a in the named format.
func (p *Printer) Write(format string, a *outs.Analysis) error {
	switch format {
	case config.FormatText, "":
		return p.Text(a)
	case config.FormatTable:
		return p.Table(a)
	case config.FormatJSON:
		return p.JSON(a)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Text prints one line per rank.
func (p *Printer) Text(a *outs.Analysis) error {
	for _, e := range a.Estimates {
		if _, err := fmt.Fprintln(p.w, p.Line(e)); err != nil {
			return err
		}
	}
	return nil
}

// Table prints the cards followed by an aligned rank/outs/chance table.
// Each estimate row takes the colour of its percentage.
func (p *Printer) Table(a *outs.Analysis) error {
	fmt.Fprintf(p.w, "%s  %s\n", p.headerStyle.Render("hand"), p.Cards(a.Hole))
	fmt.Fprintf(p.w, "%s %s\n", p.headerStyle.Render("board"), p.Cards(a.Community))
	fmt.Fprintf(p.w, "%s %s, %d unseen cards", p.headerStyle.Render("street"), a.Street, a.DeckSize)
	if a.AllIn {
		fmt.Fprint(p.w, ", all-in")
	}
	fmt.Fprint(p.w, "\n\n")

	rows := make([][]string, len(a.Estimates))
	for i, e := range a.Estimates {
		rows[i] = []string{e.Rank.String(), e.Outcome.String(), fmt.Sprintf("%d%%", e.Percent)}
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers("rank", "outs", "chance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = p.headerStyle
			case col == 1:
				style = p.plainStyle
			default:
				style = p.StyleFor(a.Estimates[row].Percent)
			}
			if col < 2 {
				style = style.PaddingRight(columnGap)
			}
			return style
		})

	_, err := fmt.Fprintln(p.w, t.String())
	return err
}

type jsonAnalysis struct {
	Hole      []string        `json:"hole"`
	Community []string        `json:"community"`
	AllIn     bool            `json:"all_in"`
	Street    outs.Street     `json:"street"`
	DeckSize  int             `json:"deck_size"`
	Estimates []outs.Estimate `json:"estimates"`
}

// JSON prints the analysis as indented JSON.
func (p *Printer) JSON(a *outs.Analysis) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonAnalysis{
		Hole:      cardStrings(a.Hole),
		Community: cardStrings(a.Community),
		AllIn:     a.AllIn,
		Street:    a.Street,
		DeckSize:  a.DeckSize,
		Estimates: a.Estimates,
	})
}

func cardStrings(h poker.Hand) []string {
	cards := h.Cards()
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
