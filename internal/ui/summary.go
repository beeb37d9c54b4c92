package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/casinobreakout/internal/engine"
)

var (
	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	summaryWin   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	summaryLoss  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Summary renders the end-of-run report printed after the screen is closed.
func Summary(outcome engine.Outcome, snap engine.Snapshot) string {
	verdict := summaryLoss
	if outcome == engine.OutcomeVictory {
		verdict = summaryWin
	}

	stats := fmt.Sprintf("Turns %d  Cash $%d  HP %d  Alert %d  Wanted %d",
		snap.Turn, snap.Player.Cash, snap.Player.Health, snap.Alert, snap.Wanted)

	return summaryBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		summaryTitle.Render(title),
		verdict.Render(outcome.Verdict()),
		stats,
	))
}
