/*
Package game
File: hazards.go
Description:
    Handles the dangers of deep space.
    A failed risk roll picks one hazard uniformly and applies it to the Player.
    Each hazard returns the lines to show instead of printing them.
*/

package game

import "fmt"

// Roller is the source of randomness for a session. *rand.Rand from math/rand/v2 satisfies it.
type Roller interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

type HazardKind int

const (
	Piracy HazardKind = iota
	Storm
	Leak
	NavigationError
)

func (k HazardKind) String() string {
	switch k {
	case Piracy:
		return "PIRATES"
	case Storm:
		return "STORM"
	case Leak:
		return "FUEL LEAK"
	case NavigationError:
		return "NAVIGATION ERROR"
	default:
		return "UNKNOWN"
	}
}

type hazardFunc func(p *Player, rng Roller, b GameBalance) []string

// Hazards lists every kind in dispatch order. Selection is uniform over this slice.
var Hazards = []HazardKind{Piracy, Storm, Leak, NavigationError}

var hazardTable = map[HazardKind]hazardFunc{
	Piracy: func(p *Player, _ Roller, _ GameBalance) []string {
		lines := []string{"Your cargo was attacked!"}
		if p.UseInsurance() {
			return append(lines, "Insurance activated - cargo is safe.")
		}
		p.LoseCargo()
		return append(lines, "Cargo stolen!")
	},
	Storm: func(p *Player, _ Roller, b GameBalance) []string {
		p.ConsumeFuel(b.StormFuelLoss)
		return []string{fmt.Sprintf("You lost %d fuel.", b.StormFuelLoss)}
	},
	Leak: func(p *Player, _ Roller, b GameBalance) []string {
		p.ConsumeFuel(b.LeakFuelLoss)
		return []string{fmt.Sprintf("You lost %d fuel.", b.LeakFuelLoss)}
	},
	NavigationError: func(p *Player, rng Roller, b GameBalance) []string {
		o := b.NavigationErrors[rng.IntN(len(b.NavigationErrors))]
		p.ConsumeFuel(o.FuelLoss)
		if o.Relocate {
			p.MoveTo(b.DriftLocation)
		}
		return []string{o.Message}
	},
}

// Apply runs the hazard against the player. The first line is the hazard's banner.
func (k HazardKind) Apply(p *Player, rng Roller, b GameBalance) []string {
	fn, ok := hazardTable[k]
	if !ok {
		return nil
	}
	return append([]string{"[" + k.String() + "]"}, fn(p, rng, b)...)
}

// RollHazard picks one hazard uniformly and applies it.
func RollHazard(p *Player, rng Roller, b GameBalance) (HazardKind, []string) {
	k := Hazards[rng.IntN(len(Hazards))]
	return k, k.Apply(p, rng, b)
}
