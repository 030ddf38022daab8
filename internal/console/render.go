/*
Package console
File: render.go
Description:
    Turns session state into text: the map panel, the status block and the
    numbered route menu. Styling goes through a lipgloss renderer bound to
    the output writer, so pipes and test buffers get plain text.
*/

package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/everforgeworks/cargo-run/internal/game"
)

const rule = "--------------------------------------------"

type styles struct {
	title   lipgloss.Style
	hazard  lipgloss.Style
	station lipgloss.Style
	win     lipgloss.Style
	lose    lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		hazard:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		station: r.NewStyle().Foreground(lipgloss.Color("10")),
		win:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		lose:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// renderMap draws the static overview of the active topology.
func (st styles) renderMap(m *game.Map) string {
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString(st.title.Render("SPACE MAP ("+strings.ToUpper(m.Name)+")") + "\n")
	b.WriteString(rule + "\n\n")
	b.WriteString(m.Summary() + "\n")
	b.WriteString("\n" + rule + "\n")
	return b.String()
}

func (st styles) renderStatus(s *game.Session) string {
	p := s.Player
	return fmt.Sprintf("\n%s\nPlanet: %s\nFuel: %d | Cargo: %s | Insurance: %s | Moves: %d\n",
		st.title.Render("STATUS:"), p.Location, p.Fuel, yesNo(p.Cargo), yesNo(p.Insured), s.Moves)
}

// renderRoutes lists departures as a 1-based menu, flagging the ones the tank cannot cover.
func (st styles) renderRoutes(s *game.Session) string {
	var b strings.Builder
	b.WriteString("\nAvailable routes:\n")
	for i, r := range s.Routes() {
		line := fmt.Sprintf("%d. %s -> Fuel: %d | Risk: %d%%", i+1, r.To, r.FuelCost, r.Risk)
		if r.BonusFuel > 0 {
			line += fmt.Sprintf(" | Bonus: +%d", r.BonusFuel)
		}
		if !s.Player.CanAfford(r) {
			line = st.dim.Render(line + " (Not enough fuel)")
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n0. Map | 9. Quit\n")
	return b.String()
}

// renderFlight highlights hazard banners and station notices.
func (st styles) renderFlight(f *game.Flight) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, l := range f.Lines {
		switch {
		case strings.HasPrefix(l, "["):
			b.WriteString("\n" + st.hazard.Render(l) + "\n")
		case strings.HasPrefix(l, "You landed at a space station"):
			b.WriteString("\n" + st.station.Render(l) + "\n")
		default:
			b.WriteString(l + "\n")
		}
	}
	return b.String()
}

func (st styles) renderOutcome(s *game.Session) string {
	switch s.Outcome() {
	case game.CargoLost:
		return st.lose.Render("Cargo lost - Game Over!")
	case game.FuelDepleted:
		return st.lose.Render("Fuel depleted - Game Over!")
	case game.Won:
		return st.win.Render(fmt.Sprintf("Goal reached in %d moves!", s.Moves))
	default:
		return ""
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
