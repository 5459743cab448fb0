package simulation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/core"
)

// maxDraws bounds the destination draws per origin.
const maxDraws = 64

// RandomTrips draws n trips over g. Origins are non-gateway nodes;
// destinations lie at a distance in [minDist, maxDist] from their origin.
// Trip i uses route choice codes[i % len(codes)] and agent id i. The same
// seed yields the same trips.
//
// Errors:
//   - ErrGraphNil, ErrBadBand.
//   - agent.ErrUnknownRouteChoice for an unknown code (wrapped).
//   - ErrNoCandidates when no node pair fits the band.
func RandomTrips(g *core.Graph, n int, minDist, maxDist float64, codes []string, seed int64) ([]Trip, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if minDist < 0 || maxDist <= minDist {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadBand, minDist, maxDist)
	}
	if len(codes) == 0 {
		codes = agent.RouteChoices()
	}
	props := make([]agent.Properties, len(codes))
	for i, c := range codes {
		p, err := agent.ParseRouteChoice(c)
		if err != nil {
			return nil, fmt.Errorf("RandomTrips: %w", err)
		}
		props[i] = p
	}

	nodes := g.Nodes()
	var origins []core.NodeID
	for _, id := range nodes {
		if nd, err := g.Node(id); err == nil && !nd.Gateway {
			origins = append(origins, id)
		}
	}
	if len(origins) == 0 {
		return nil, fmt.Errorf("RandomTrips: no non-gateway node: %w", ErrNoCandidates)
	}

	rng := rand.New(rand.NewSource(seed))
	trips := make([]Trip, 0, n)
	misses := 0
	for len(trips) < n {
		origin := origins[rng.Intn(len(origins))]
		dest, ok := drawDestination(g, rng, nodes, origin, minDist, maxDist)
		if !ok {
			misses++
			if misses > maxDraws*len(origins) {
				return nil, fmt.Errorf("RandomTrips: [%g, %g]: %w", minDist, maxDist, ErrNoCandidates)
			}
			continue
		}
		a := props[len(trips)%len(props)]
		a.ID = len(trips)
		trips = append(trips, Trip{Origin: origin, Destination: dest, Agent: a})
	}

	return trips, nil
}

// drawDestination samples nodes until one lies inside the band.
func drawDestination(g *core.Graph, rng *rand.Rand, nodes []core.NodeID, origin core.NodeID, minDist, maxDist float64) (core.NodeID, bool) {
	for i := 0; i < maxDraws; i++ {
		cand := nodes[rng.Intn(len(nodes))]
		if cand == origin {
			continue
		}
		if d := g.Distance(origin, cand); d >= minDist && d <= maxDist {
			return cand, true
		}
	}

	return core.NoNode, false
}
