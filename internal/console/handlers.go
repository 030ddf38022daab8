/*
Package console
File: handlers.go
Description:
    One handler per menu action.
    Handlers validate nothing themselves; the session rejects bad choices and
    the handler turns the error into a short message. A rejected choice costs
    no turn.
*/

package console

import (
	"errors"
	"fmt"

	"github.com/everforgeworks/cargo-run/internal/game"
)

// handleShowMap redraws the overview.
func (c *Console) handleShowMap(s *game.Session) {
	fmt.Fprint(c.out, c.style.renderMap(s.Map))
}

// handleQuit ends the run. It is neither a win nor a loss.
func (c *Console) handleQuit(s *game.Session) {
	s.Quit()
	fmt.Fprintln(c.out, "Exiting game.")
}

// handleRoute flies the chosen route, then settles the station and bonus fuel.
func (c *Console) handleRoute(s *game.Session, choice int) {
	// 1. Launch
	f, err := s.Fly(choice)
	switch {
	case errors.Is(err, game.ErrInsufficientFuel):
		fmt.Fprintln(c.out, "Not enough fuel!")
		return
	case errors.Is(err, game.ErrInvalidChoice):
		fmt.Fprintln(c.out, "Invalid choice!")
		return
	case err != nil:
		c.log.Printf("CONSOLE: fly rejected: %v", err)
		return
	}
	fmt.Fprint(c.out, c.style.renderFlight(f))

	// 2. Insurance desk. Only a literal "1" buys.
	buy := false
	if f.OfferInsurance {
		cost := s.Balance().InsuranceCost
		answer, _ := c.prompt(fmt.Sprintf("Do you want to insure your cargo for %d fuel? (1 = yes, 0 = no): ", cost))
		buy = answer == "1"
	}

	// 3. Land
	lines, err := s.Land(buy)
	if err != nil {
		c.log.Printf("CONSOLE: land failed: %v", err)
		return
	}
	for _, l := range lines {
		fmt.Fprintln(c.out, l)
	}
	fmt.Fprintln(c.out)
}
