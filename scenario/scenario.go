// Package scenario reads city descriptions and trip lists from YAML.
//
//	nodes:
//	  - {id: 1, x: 0, y: 0, region: 10}
//	edges:
//	  - {id: 100, from: 1, to: 2, barriers: [7]}
//	barriers:
//	  - {id: 7, type: water, coords: [[0, -5], [50, -5]]}
//	trips:
//	  - {origin: 1, destination: 4, route_choice: RBDS}
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/simulation"
)

// ErrInvalidScenario is returned for files failing structural validation.
var ErrInvalidScenario = errors.New("scenario: invalid file")

var validate = validator.New()

// File is a decoded scenario.
type File struct {
	Name     string       `yaml:"name"`
	Nodes    []NodeDef    `yaml:"nodes" validate:"required,min=1,dive"`
	Edges    []EdgeDef    `yaml:"edges" validate:"dive"`
	Barriers []BarrierDef `yaml:"barriers" validate:"dive"`
	TripDefs []TripDef    `yaml:"trips" validate:"dive"`
}

// NodeDef is one street junction.
type NodeDef struct {
	ID     int64   `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Region *int64  `yaml:"region" validate:"required,gte=0"`
}

// EdgeDef is one street segment. Length and DualNode are optional.
type EdgeDef struct {
	ID       int64   `yaml:"id"`
	From     int64   `yaml:"from"`
	To       int64   `yaml:"to"`
	Length   float64 `yaml:"length,omitempty" validate:"gte=0"`
	DualNode *int64  `yaml:"dual_node,omitempty"`
	Barriers []int64 `yaml:"barriers,omitempty"`
}

// BarrierDef is a typed line geometry.
type BarrierDef struct {
	ID     int64        `yaml:"id"`
	Type   string       `yaml:"type" validate:"required"`
	Coords [][2]float64 `yaml:"coords" validate:"min=2"`
}

// TripDef is one agent trip.
type TripDef struct {
	Origin      int64  `yaml:"origin"`
	Destination int64  `yaml:"destination"`
	RouteChoice string `yaml:"route_choice" validate:"required"`
}

// Load reads and parses the scenario at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	return &f, nil
}

// Graph builds the immutable city graph.
//
// Errors:
//   - core builder errors (wrapped), e.g. core.ErrDuplicateID,
//     core.ErrNodeNotFound, core.ErrBarrierNotFound.
func (f *File) Graph() (*core.Graph, error) {
	b := core.NewBuilder()
	for _, n := range f.Nodes {
		if err := b.AddNode(core.NodeID(n.ID), orb.Point{n.X, n.Y}, core.RegionID(*n.Region)); err != nil {
			return nil, fmt.Errorf("Graph: node %d: %w", n.ID, err)
		}
	}
	for _, bar := range f.Barriers {
		line := make(orb.LineString, len(bar.Coords))
		for i, c := range bar.Coords {
			line[i] = orb.Point{c[0], c[1]}
		}
		if err := b.AddBarrier(core.BarrierID(bar.ID), bar.Type, line); err != nil {
			return nil, fmt.Errorf("Graph: barrier %d: %w", bar.ID, err)
		}
	}
	for _, e := range f.Edges {
		var opts []core.EdgeOption
		if len(e.Barriers) > 0 {
			ids := make([]core.BarrierID, len(e.Barriers))
			for i, id := range e.Barriers {
				ids[i] = core.BarrierID(id)
			}
			opts = append(opts, core.WithBarriers(ids...))
		}
		if e.Length > 0 {
			opts = append(opts, core.WithLength(e.Length))
		}
		if e.DualNode != nil {
			opts = append(opts, core.WithDualNode(core.NodeID(*e.DualNode)))
		}
		if err := b.AddEdge(core.EdgeID(e.ID), core.NodeID(e.From), core.NodeID(e.To), opts...); err != nil {
			return nil, fmt.Errorf("Graph: edge %d: %w", e.ID, err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}

	return g, nil
}

// Trips converts the trip list; agent ids follow list order.
//
// Errors:
//   - agent.ErrUnknownRouteChoice (wrapped).
func (f *File) Trips() ([]simulation.Trip, error) {
	out := make([]simulation.Trip, len(f.TripDefs))
	for i, t := range f.TripDefs {
		a, err := agent.ParseRouteChoice(t.RouteChoice)
		if err != nil {
			return nil, fmt.Errorf("Trips: trip %d: %w", i, err)
		}
		a.ID = i
		out[i] = simulation.Trip{
			Origin:      core.NodeID(t.Origin),
			Destination: core.NodeID(t.Destination),
			Agent:       a,
		}
	}

	return out, nil
}
