/*
Package game
File: state.go
Description:
    Loads the static universe that ships inside the binary.
    The three topologies and the balance constants live in universe.yaml,
    which is embedded at build time and parsed once at startup.

    It also handles validation, so a broken map never reaches the turn loop.
*/

package game

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed universe.yaml
var universeYAML []byte

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// LoadConfig parses the embedded 'universe.yaml'.
func LoadConfig() (*Universe, error) {
	return ParseUniverse(universeYAML)
}

// ParseUniverse unmarshals and validates a universe document.
func ParseUniverse(data []byte) (*Universe, error) {
	// 1. Unmarshal into the Universe struct
	var uni Universe
	if err := yaml.Unmarshal(data, &uni); err != nil {
		return nil, fmt.Errorf("parse universe: %w", err)
	}

	// 2. Balance sanity
	b := uni.BalanceConfig
	if len(b.NavigationErrors) == 0 {
		return nil, errors.New("universe: no navigation error outcomes")
	}
	if b.StationRefuel < 0 || b.InsuranceCost < 0 || b.StormFuelLoss < 0 || b.LeakFuelLoss < 0 {
		return nil, errors.New("universe: balance values must not be negative")
	}

	// 3. Every topology must build and be winnable
	seen := make(map[Difficulty]bool)
	for _, t := range uni.Topologies {
		if seen[t.Difficulty] {
			return nil, fmt.Errorf("universe: duplicate topology for difficulty %d", t.Difficulty)
		}
		seen[t.Difficulty] = true

		m, err := buildMap(t)
		if err != nil {
			return nil, err
		}
		if _, ok := m.Planet(b.DriftLocation); !ok {
			return nil, fmt.Errorf("universe: %s map has no drift location %q", t.Name, b.DriftLocation)
		}
		if !m.Reachable(m.Start, m.Goal) {
			return nil, fmt.Errorf("universe: %s map goal %q unreachable from %q", t.Name, m.Goal, m.Start)
		}
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if !seen[d] {
			return nil, fmt.Errorf("universe: missing topology for difficulty %d", d)
		}
	}

	return &uni, nil
}

// Topology returns the topology registered for d.
func (u *Universe) Topology(d Difficulty) (Topology, error) {
	for _, t := range u.Topologies {
		if t.Difficulty == d {
			return t, nil
		}
	}
	return Topology{}, fmt.Errorf("%w: %d", ErrUnknownDifficulty, d)
}
