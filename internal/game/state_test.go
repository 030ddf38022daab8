package game

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadConfigBuildsEveryDifficulty(t *testing.T) {
	u := mustUniverse(t)

	tests := []struct {
		d     Difficulty
		start string
		fuel  int
		goal  string
		count int
	}{
		{Easy, "Earth", 700, "Neptune", 6},
		{Medium, "Earth", 600, "Pluto", 9},
		{Hard, "Sun", 600, "Kuiper Belt", 9},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			m, err := NewMap(u, tt.d)
			if err != nil {
				t.Fatalf("NewMap: %v", err)
			}
			if m.Start != tt.start || m.StartingFuel != tt.fuel || m.Goal != tt.goal {
				t.Fatalf("got start=%s fuel=%d goal=%s", m.Start, m.StartingFuel, m.Goal)
			}
			if len(m.Planets()) != tt.count {
				t.Fatalf("expected %d planets, got %d", tt.count, len(m.Planets()))
			}
		})
	}
}

func TestLoadConfigBalance(t *testing.T) {
	b := mustUniverse(t).BalanceConfig
	if b.StationRefuel != 200 || b.InsuranceCost != 100 || b.StormFuelLoss != 90 || b.LeakFuelLoss != 70 {
		t.Fatalf("unexpected balance: %+v", b)
	}
	if b.DriftLocation != "Earth" {
		t.Fatalf("drift location = %q", b.DriftLocation)
	}
	if len(b.NavigationErrors) != 3 {
		t.Fatalf("expected 3 navigation outcomes, got %d", len(b.NavigationErrors))
	}
}

func TestUniverseTopologyUnknown(t *testing.T) {
	_, err := mustUniverse(t).Topology(Difficulty(7))
	if !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestParseUniverseRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(u *Universe)
		want   string
	}{
		{"route to unknown planet", func(u *Universe) {
			u.Topologies[0].Routes = append(u.Topologies[0].Routes, RouteConfig{From: "Earth", To: "Vulcan", Fuel: 10})
		}, "unknown planet"},
		{"unreachable goal", func(u *Universe) {
			var kept []RouteConfig
			for _, r := range u.Topologies[0].Routes {
				if r.To != "Neptune" {
					kept = append(kept, r)
				}
			}
			u.Topologies[0].Routes = kept
		}, "unreachable"},
		{"missing difficulty", func(u *Universe) {
			u.Topologies = u.Topologies[:2]
		}, "missing topology"},
		{"duplicate difficulty", func(u *Universe) {
			u.Topologies[1].Difficulty = Easy
		}, "duplicate topology"},
		{"risk above 100", func(u *Universe) {
			u.Topologies[2].Routes[0].Risk = 101
		}, "bad route"},
		{"duplicate planet", func(u *Universe) {
			u.Topologies[0].Planets = append(u.Topologies[0].Planets, PlanetConfig{Name: "Mars"})
		}, "duplicate planet"},
		{"no navigation outcomes", func(u *Universe) {
			u.BalanceConfig.NavigationErrors = nil
		}, "navigation"},
		{"drift location missing", func(u *Universe) {
			u.BalanceConfig.DriftLocation = "Vulcan"
		}, "drift location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustUniverse(t)
			tt.mutate(u)
			data, err := yaml.Marshal(u)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			_, err = ParseUniverse(data)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseUniverseBadYAML(t *testing.T) {
	if _, err := ParseUniverse([]byte("topologies: [::")); err == nil {
		t.Fatalf("expected parse error")
	}
}
