/*
Package game
File: session.go
Description:
    The turn state machine for one delivery run.
    A turn is two calls: Fly (fuel, risk roll, hazard, arrival, station refuel)
    and Land (insurance purchase, bonus fuel). Between them the caller may ask
    the player about insurance. Neither call touches the console; both return
    the lines to display.
*/

package game

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
)

// Phase is where the session sits in the turn cycle.
// Flying has no phase of its own: Fly runs the whole flight in one call.
type Phase int

const (
	PhaseChoosing Phase = iota
	PhaseResolvingStation
	PhaseTerminal
)

// Outcome is how the run ended, or Playing if it has not.
type Outcome int

const (
	Playing Outcome = iota
	Won
	CargoLost
	FuelDepleted
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case CargoLost:
		return "cargo lost"
	case FuelDepleted:
		return "fuel depleted"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidChoice    = errors.New("invalid choice")
	ErrInsufficientFuel = errors.New("not enough fuel")
	ErrFlightPending    = errors.New("previous flight has not landed")
	ErrNoFlight         = errors.New("no flight to land")
	ErrSessionOver      = errors.New("session is over")
)

// Flight is the result of the first half of a turn.
type Flight struct {
	Route          Route
	Hazard         *HazardKind // nil when the flight was uneventful
	Station        bool        // landed at a station and refuelled
	OfferInsurance bool        // caller should ask before Land
	Lines          []string
}

// Session owns the mutable state of one run.
type Session struct {
	ID     uuid.UUID
	Map    *Map
	Player Player
	Moves  int

	balance GameBalance
	rng     Roller
	log     *log.Logger
	phase   Phase
	outcome Outcome
	pending *Flight
}

// NewSession places a fresh ship at the start of the difficulty's map.
// A nil logger discards diagnostics.
func NewSession(u *Universe, d Difficulty, rng Roller, logger *log.Logger) (*Session, error) {
	m, err := NewMap(u, d)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		ID:      uuid.New(),
		Map:     m,
		Player:  NewPlayer(m.StartingFuel, m.Start),
		balance: u.BalanceConfig,
		rng:     rng,
		log:     logger,
	}
	s.log.Printf("SESSION %s: started %s map at %s with %d fuel", s.ID, m.Name, m.Start, m.StartingFuel)
	return s, nil
}

func (s *Session) Phase() Phase     { return s.phase }
func (s *Session) Outcome() Outcome { return s.outcome }

// Balance exposes the tuning constants, for prompts that quote prices.
func (s *Session) Balance() GameBalance { return s.balance }

// Current is the planet the ship is docked at.
func (s *Session) Current() *Planet {
	p, _ := s.Map.Planet(s.Player.Location)
	return p
}

// Routes lists the departures from the current planet. Menu index i+1 selects Routes()[i].
func (s *Session) Routes() []Route {
	if p := s.Current(); p != nil {
		return p.Routes
	}
	return nil
}

// Check evaluates the end conditions in order: cargo, fuel, goal.
// The first that holds ends the session.
func (s *Session) Check() Outcome {
	if s.phase == PhaseTerminal || s.phase == PhaseResolvingStation {
		return s.outcome
	}
	switch {
	case !s.Player.Cargo:
		s.end(CargoLost)
	case s.Player.Fuel <= 0:
		s.end(FuelDepleted)
	case s.Player.Location == s.Map.Goal:
		s.end(Won)
	}
	return s.outcome
}

// Fly takes the 1-based route choice and resolves the flight up to the station refuel.
// Rejected choices leave the session untouched.
func (s *Session) Fly(choice int) (*Flight, error) {
	if s.pending != nil {
		return nil, ErrFlightPending
	}
	if s.Check() != Playing {
		return nil, ErrSessionOver
	}

	routes := s.Routes()
	if choice < 1 || choice > len(routes) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}
	r := routes[choice-1]
	if !s.Player.CanAfford(r) {
		return nil, fmt.Errorf("%w: %s needs %d, have %d", ErrInsufficientFuel, r.To, r.FuelCost, s.Player.Fuel)
	}

	// 1. Burn and launch
	s.Player.ConsumeFuel(r.FuelCost)
	s.Moves++
	f := &Flight{Route: r}
	f.Lines = append(f.Lines, fmt.Sprintf("Flying to %s (risk: %d%%)", r.To, r.Risk))

	// 2. Risk roll. Hazards never stop the ship from arriving.
	if s.rng.IntN(100) < r.Risk {
		kind, lines := RollHazard(&s.Player, s.rng, s.balance)
		f.Hazard = &kind
		f.Lines = append(f.Lines, "A dangerous event occurred!")
		f.Lines = append(f.Lines, lines...)
		s.log.Printf("SESSION %s: %s en route to %s", s.ID, kind, r.To)
	} else {
		f.Lines = append(f.Lines, "Flight successful.")
	}
	s.Player.MoveTo(r.To)

	// 3. Station services
	if p, ok := s.Map.Planet(s.Player.Location); ok && p.Station {
		s.Player.Refuel(s.balance.StationRefuel)
		f.Station = true
		f.Lines = append(f.Lines, fmt.Sprintf("You landed at a space station. +%d fuel.", s.balance.StationRefuel))
		f.OfferInsurance = s.Player.Fuel >= s.balance.InsuranceCost && !s.Player.Insured
	}

	s.pending = f
	s.phase = PhaseResolvingStation
	s.log.Printf("SESSION %s: move %d to %s, fuel %d", s.ID, s.Moves, s.Player.Location, s.Player.Fuel)
	return f, nil
}

// Land finishes the pending flight. buyInsurance only matters when the flight offered it.
func (s *Session) Land(buyInsurance bool) ([]string, error) {
	f := s.pending
	if f == nil {
		return nil, ErrNoFlight
	}

	var lines []string
	if f.OfferInsurance && buyInsurance && s.Player.BuyInsurance(s.balance.InsuranceCost) {
		lines = append(lines, "Cargo insured.")
		s.log.Printf("SESSION %s: insurance bought at %s", s.ID, s.Player.Location)
	}
	if f.Route.BonusFuel > 0 {
		s.Player.Refuel(f.Route.BonusFuel)
		lines = append(lines, fmt.Sprintf("Bonus fuel: +%d", f.Route.BonusFuel))
	}

	s.pending = nil
	s.phase = PhaseChoosing
	return lines, nil
}

// Quit ends the run without a win or a loss.
func (s *Session) Quit() {
	if s.phase == PhaseTerminal {
		return
	}
	s.pending = nil
	s.end(Quit)
}

func (s *Session) end(o Outcome) {
	s.phase = PhaseTerminal
	s.outcome = o
	s.log.Printf("SESSION %s: ended (%s) after %d moves", s.ID, o, s.Moves)
}
