package env

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerenv/internal/deck"
)

var (
	renderSeatStyle   = lipgloss.NewStyle().Bold(true)
	renderActorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	renderFoldedStyle = lipgloss.NewStyle().Faint(true)
	renderBoardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	renderPotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// RenderTo redirects human rendering away from stdout, for tests and
// embedding.
func (e *Env) RenderTo(w io.Writer) {
	e.renderOut = w
}

// Render prints a single-line table summary to the render writer. It is a
// no-op before the first reset.
func (e *Env) Render() {
	if !e.started {
		return
	}
	st := e.ad.state

	var b strings.Builder
	stacks := st.Stacks()
	bets := st.Bets()
	statuses := st.Statuses()
	mover := e.ad.mover()

	for seat := range statuses {
		if seat > 0 {
			b.WriteString("  ")
		}
		label := fmt.Sprintf("s%d:%d", seat, stacks[seat])
		if bets[seat] > 0 {
			label += fmt.Sprintf("(%d)", bets[seat])
		}
		switch {
		case !statuses[seat]:
			b.WriteString(renderFoldedStyle.Render(label))
		case seat == mover:
			b.WriteString(renderActorStyle.Render(label + "*"))
		default:
			b.WriteString(renderSeatStyle.Render(label))
		}
	}

	if board := st.Board(); len(board) > 0 {
		b.WriteString("  ")
		b.WriteString(renderBoardStyle.Render("board " + cardList(board)))
	}

	pot := 0
	for _, c := range st.PotContributions() {
		pot += c
	}
	b.WriteString("  ")
	b.WriteString(renderPotStyle.Render(fmt.Sprintf("pot %d", pot)))

	fmt.Fprintln(e.renderOut, b.String())
}

func cardList(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
