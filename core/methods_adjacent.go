// File: methods_adjacent.go
// Role: Derivation of region adjacency (gateways, adjacent regions, adjacent
// region entries) and of barrier links during Build.
// Determinism:
//   - Cross-region edges are processed in ascending Edge.ID order.
//   - Region.Gateways are sorted by GatewayKey; node annotations ascending.
// Concurrency:
//   - Called only from Build, before the Graph is published.
// AI-HINT (file):
//   - Every cross-region edge yields two gateways, one per direction.
//   - Parallel edges between the same pair collapse into one gateway (shortest edge wins).

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pedroute/angles"
)

// deriveGateways builds the gateway catalog from the cross-region edges and
// annotates the exit nodes.
//
// Errors:
//   - ErrInvalidGateway if a gateway would point back into its own region.
//
// Complexity: O(E + G log G), G = number of gateways.
func (g *Graph) deriveGateways() error {
	for _, eid := range g.edgeIDs {
		e := g.edges[eid]
		if e.Region != CrossRegion {
			continue
		}
		for _, pair := range [2][2]NodeID{{e.From, e.To}, {e.To, e.From}} {
			exit, entry := g.nodes[pair[0]], g.nodes[pair[1]]
			if exit.Region == entry.Region {
				return fmt.Errorf("edge %d: %w", eid, ErrInvalidGateway)
			}
			key := GatewayKey{Exit: exit.ID, Entry: entry.ID}
			if prev, ok := g.gateways[key]; ok {
				// Parallel edge: keep the shorter crossing.
				if e.Length < g.edges[prev.Edge].Length {
					prev.Edge = eid
				}
				continue
			}
			g.gateways[key] = &Gateway{
				Exit:       exit.ID,
				Entry:      entry.ID,
				Edge:       eid,
				RegionTo:   entry.Region,
				Distance:   angles.Distance(exit.Coord, entry.Coord),
				EntryAngle: angles.Bearing(exit.Coord, entry.Coord),
			}
		}
	}

	keys := make([]GatewayKey, 0, len(g.gateways))
	for k := range g.gateways {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	seen := make(map[RegionID]map[RegionID]bool)
	for _, k := range keys {
		gw := g.gateways[k]
		exit := g.nodes[k.Exit]
		from := exit.Region
		r := g.regions[from]
		r.Gateways = append(r.Gateways, *gw)

		exit.Gateway = true
		if !exit.HasAdjacentRegion(gw.RegionTo) {
			exit.AdjacentRegions = append(exit.AdjacentRegions, gw.RegionTo)
		}
		exit.AdjacentRegionEntries = append(exit.AdjacentRegionEntries, gw.Entry)

		if seen[from] == nil {
			seen[from] = make(map[RegionID]bool)
		}
		if !seen[from][gw.RegionTo] {
			seen[from][gw.RegionTo] = true
			g.neighbors[from] = append(g.neighbors[from], gw.RegionTo)
		}
	}

	for _, n := range g.nodes {
		if !n.Gateway {
			continue
		}
		sort.Slice(n.AdjacentRegions, func(i, j int) bool { return n.AdjacentRegions[i] < n.AdjacentRegions[j] })
		sort.Slice(n.AdjacentRegionEntries, func(i, j int) bool {
			return n.AdjacentRegionEntries[i] < n.AdjacentRegionEntries[j]
		})
	}
	for _, rs := range g.neighbors {
		sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	}

	return nil
}

// linkBarriers fills Barrier.EdgesAlong and Region.Barriers from the
// barrier marks carried by the edges.
//
// Complexity: O(E·b + R·b log b), b = barriers per edge/region.
func (g *Graph) linkBarriers() {
	inRegion := make(map[RegionID]map[BarrierID]bool)
	for _, eid := range g.edgeIDs {
		e := g.edges[eid]
		for _, bid := range e.Barriers {
			bar := g.barriers[bid]
			bar.EdgesAlong = append(bar.EdgesAlong, eid)
			if e.Region == CrossRegion {
				continue
			}
			if inRegion[e.Region] == nil {
				inRegion[e.Region] = make(map[BarrierID]bool)
			}
			inRegion[e.Region][bid] = true
		}
	}
	for rid, set := range inRegion {
		r := g.regions[rid]
		for bid := range set {
			r.Barriers = append(r.Barriers, bid)
		}
		sort.Slice(r.Barriers, func(i, j int) bool { return r.Barriers[i] < r.Barriers[j] })
	}
}
