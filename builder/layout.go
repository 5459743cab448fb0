// SPDX-License-Identifier: MIT
// Package: pedroute/builder
//
// layout.go - staging area shared by constructors, frozen into a core.Graph.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pedroute/core"
)

type edgeSpec struct {
	id       core.EdgeID
	from, to core.NodeID
	barriers []core.BarrierID
}

type barrierSpec struct {
	id       core.BarrierID
	kind     string
	geometry orb.LineString
}

// layout is the mutable city under construction. Node i is grid cell
// (i / cols, i % cols).
type layout struct {
	rows, cols int
	spacing    float64

	coords   []orb.Point
	regions  []core.RegionID
	edges    []edgeSpec
	byPair   map[[2]core.NodeID]int
	barriers []barrierSpec
}

func (l *layout) addEdge(from, to core.NodeID) {
	l.byPair[[2]core.NodeID{from, to}] = len(l.edges)
	l.edges = append(l.edges, edgeSpec{id: core.EdgeID(len(l.edges)), from: from, to: to})
}

// markAlong attaches barrier b to the edge joining u and v, if any.
func (l *layout) markAlong(u, v core.NodeID, b core.BarrierID) bool {
	idx, ok := l.byPair[[2]core.NodeID{u, v}]
	if !ok {
		idx, ok = l.byPair[[2]core.NodeID{v, u}]
	}
	if !ok {
		return false
	}
	l.edges[idx].barriers = append(l.edges[idx].barriers, b)

	return true
}

func (l *layout) addBarrier(kind string, geometry orb.LineString) core.BarrierID {
	id := core.BarrierID(len(l.barriers))
	l.barriers = append(l.barriers, barrierSpec{id: id, kind: kind, geometry: geometry})

	return id
}

// freeze hands the layout to core.Builder in id order.
func (l *layout) freeze() (*core.Graph, error) {
	b := core.NewBuilder()
	for i, pt := range l.coords {
		if err := b.AddNode(core.NodeID(i), pt, l.regions[i]); err != nil {
			return nil, fmt.Errorf("freeze: %w", err)
		}
	}
	for _, bs := range l.barriers {
		if err := b.AddBarrier(bs.id, bs.kind, bs.geometry); err != nil {
			return nil, fmt.Errorf("freeze: %w", err)
		}
	}
	for _, es := range l.edges {
		var opts []core.EdgeOption
		if len(es.barriers) > 0 {
			opts = append(opts, core.WithBarriers(es.barriers...))
		}
		if err := b.AddEdge(es.id, es.from, es.to, opts...); err != nil {
			return nil, fmt.Errorf("freeze: %w", err)
		}
	}

	return b.Build()
}
