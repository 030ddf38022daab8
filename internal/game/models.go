/*
Package game
File: models.go
Description:
    Types for the courier run: the ship, the planets and the routes
    between them, plus the YAML shapes of universe.yaml that describe
    the three maps and the hazard and station numbers.
*/

package game

// Difficulty selects one of the fixed topologies.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

// GameBalance stores global tuning variables loaded from 'universe.yaml'.
type GameBalance struct {
	StationRefuel    int                 `yaml:"station_refuel"`    // Fuel granted on landing at a station
	InsuranceCost    int                 `yaml:"insurance_cost"`    // Fuel price of one cargo insurance policy
	StormFuelLoss    int                 `yaml:"storm_fuel_loss"`   // Fuel lost to a storm
	LeakFuelLoss     int                 `yaml:"leak_fuel_loss"`    // Fuel lost to a tank leak
	DriftLocation    string              `yaml:"drift_location"`    // Where a drifting ship ends up
	NavigationErrors []NavigationOutcome `yaml:"navigation_errors"` // Equally likely navigation error outcomes
}

// NavigationOutcome is one branch of the navigation error hazard.
type NavigationOutcome struct {
	Message  string `yaml:"message"`   // Line shown to the player
	FuelLoss int    `yaml:"fuel_loss"` // Fuel consumed
	Relocate bool   `yaml:"relocate"`  // Moves the ship to GameBalance.DriftLocation
}

// Route is one direction of an edge between two planets.
type Route struct {
	To        string // Destination planet name
	FuelCost  int    // Fuel consumed by the flight
	Risk      int    // Percent chance (0-100) of a hazard
	BonusFuel int    // Fuel granted on arrival, 0 if none
}

// Planet represents a static location (Node) in the universe.
type Planet struct {
	Name    string
	Station bool
	Routes  []Route
}

// Player represents the courier ship and its cargo.
type Player struct {
	Fuel     int
	Cargo    bool
	Insured  bool
	Location string
}

// PlanetConfig is a planet entry of a topology.
type PlanetConfig struct {
	Name    string `yaml:"name"`
	Station bool   `yaml:"station"`
}

// RouteConfig declares an undirected edge. It is stored on both endpoints.
type RouteConfig struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Fuel  int    `yaml:"fuel"`
	Risk  int    `yaml:"risk"`
	Bonus int    `yaml:"bonus"`
}

// Topology is one hardcoded map, keyed by difficulty.
type Topology struct {
	Difficulty   Difficulty     `yaml:"difficulty"`
	Name         string         `yaml:"name"`
	Start        string         `yaml:"start"`
	StartingFuel int            `yaml:"starting_fuel"`
	Goal         string         `yaml:"goal"`
	Summary      string         `yaml:"summary"` // Static map drawing, not derived from Routes
	Planets      []PlanetConfig `yaml:"planets"`
	Routes       []RouteConfig  `yaml:"routes"`
}

// Universe is the root configuration struct, mapping to the entire 'universe.yaml' file.
type Universe struct {
	BalanceConfig GameBalance `yaml:"game_balance"`
	Topologies    []Topology  `yaml:"topologies"`
}
