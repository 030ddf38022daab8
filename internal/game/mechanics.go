/*
Package game
File: mechanics.go
Description:
    Contains the map builder and the rules for the ship's resources.
    This includes planet lookup, route connectivity, and fuel, cargo and
    insurance bookkeeping on the Player.
*/

package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Map is one fully built topology.
type Map struct {
	Name         string
	Difficulty   Difficulty
	Start        string
	StartingFuel int
	Goal         string

	summary string
	planets []Planet
}

// NewMap builds the topology registered for d.
func NewMap(u *Universe, d Difficulty) (*Map, error) {
	t, err := u.Topology(d)
	if err != nil {
		return nil, err
	}
	return buildMap(t)
}

func buildMap(t Topology) (*Map, error) {
	m := &Map{
		Name:         t.Name,
		Difficulty:   t.Difficulty,
		Start:        t.Start,
		StartingFuel: t.StartingFuel,
		Goal:         t.Goal,
		summary:      strings.TrimRight(t.Summary, "\n"),
		planets:      make([]Planet, 0, len(t.Planets)),
	}

	for _, pc := range t.Planets {
		if _, dup := m.Planet(pc.Name); dup {
			return nil, fmt.Errorf("map %s: duplicate planet %q", t.Name, pc.Name)
		}
		m.planets = append(m.planets, Planet{Name: pc.Name, Station: pc.Station})
	}

	for _, rc := range t.Routes {
		if rc.Fuel < 0 || rc.Bonus < 0 || rc.Risk < 0 || rc.Risk > 100 {
			return nil, fmt.Errorf("map %s: bad route %s-%s", t.Name, rc.From, rc.To)
		}
		a, okA := m.Planet(rc.From)
		b, okB := m.Planet(rc.To)
		if !okA || !okB {
			return nil, fmt.Errorf("map %s: route %s-%s references an unknown planet", t.Name, rc.From, rc.To)
		}
		a.Routes = append(a.Routes, Route{To: rc.To, FuelCost: rc.Fuel, Risk: rc.Risk, BonusFuel: rc.Bonus})
		b.Routes = append(b.Routes, Route{To: rc.From, FuelCost: rc.Fuel, Risk: rc.Risk, BonusFuel: rc.Bonus})
	}

	if _, ok := m.Planet(m.Start); !ok {
		return nil, fmt.Errorf("map %s: unknown start %q", t.Name, m.Start)
	}
	if _, ok := m.Planet(m.Goal); !ok {
		return nil, fmt.Errorf("map %s: unknown goal %q", t.Name, m.Goal)
	}
	return m, nil
}

// Planet retrieves a planet by name. The bool is false if it is not on this map.
func (m *Map) Planet(name string) (*Planet, bool) {
	for i := range m.planets {
		if m.planets[i].Name == name {
			return &m.planets[i], true
		}
	}
	return nil, false
}

// Planets returns the planets in declaration order.
func (m *Map) Planets() []Planet {
	return m.planets
}

// Summary is the hand-drawn overview of the active topology.
func (m *Map) Summary() string {
	return m.summary
}

// Reachable reports whether a chain of routes leads from one planet to another.
// Fuel is ignored.
func (m *Map) Reachable(from, to string) bool {
	if _, ok := m.Planet(from); !ok {
		return false
	}
	visited := mapset.New[string]()
	visited.Put(from)
	queue := []string{from}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if name == to {
			return true
		}
		p, _ := m.Planet(name)
		for _, r := range p.Routes {
			if !visited.Has(r.To) {
				visited.Put(r.To)
				queue = append(queue, r.To)
			}
		}
	}
	return false
}

// ParseDifficulty maps the startup answer to a Difficulty.
// Anything that is not 1, 2 or 3 falls back to Easy.
func ParseDifficulty(s string) Difficulty {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Easy
	}
	switch d := Difficulty(n); d {
	case Easy, Medium, Hard:
		return d
	}
	return Easy
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// NewPlayer returns a loaded, uninsured ship.
func NewPlayer(fuel int, location string) Player {
	return Player{Fuel: fuel, Cargo: true, Location: location}
}

// ConsumeFuel burns x fuel. The tank never goes below zero.
func (p *Player) ConsumeFuel(x int) {
	p.Fuel = max(0, p.Fuel-x)
}

func (p *Player) Refuel(amount int) {
	p.Fuel += amount
}

// CanAfford reports whether the route's cost is covered by the tank.
func (p *Player) CanAfford(r Route) bool {
	return p.Fuel >= r.FuelCost
}

func (p *Player) MoveTo(location string) {
	p.Location = location
}

func (p *Player) LoseCargo() {
	p.Cargo = false
}

// UseInsurance spends the policy. It returns false when there was none.
func (p *Player) UseInsurance() bool {
	if !p.Insured {
		return false
	}
	p.Insured = false
	return true
}

// BuyInsurance trades cost fuel for one policy.
func (p *Player) BuyInsurance(cost int) bool {
	if p.Insured || p.Fuel < cost {
		return false
	}
	p.ConsumeFuel(cost)
	p.Insured = true
	return true
}
