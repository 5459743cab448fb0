// File: sequencer.go
// Role: Per-call Planning/Backtracking state machine.
// Concurrency:
//   - A sequencer is created per call and never shared.

package planner

import (
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/gateway"
	"github.com/katalvlaran/pedroute/logging"
)

type state int

const (
	planning state = iota
	backtracking
	done
)

// sequencer holds the attempt-local state of one planning call.
type sequencer struct {
	p    *Planner
	dest *core.Node

	seq      []core.NodeID
	current  core.NodeID
	region   core.RegionID
	target   core.RegionID
	previous core.NodeID

	visited    map[core.RegionID]bool
	visitOrder []core.RegionID
	bad        map[core.GatewayKey]bool
	state      state
	res        *Result
}

func newSequencer(p *Planner, origin, dest *core.Node, cfg planConfig) *sequencer {
	s := &sequencer{
		p:          p,
		dest:       dest,
		seq:        []core.NodeID{origin.ID},
		current:    origin.ID,
		region:     origin.Region,
		target:     dest.Region,
		previous:   core.NoNode,
		visited:    map[core.RegionID]bool{origin.Region: true},
		visitOrder: []core.RegionID{origin.Region},
		bad:        make(map[core.GatewayKey]bool, len(cfg.badExits)),
		res:        &Result{},
	}
	for _, k := range cfg.badExits {
		s.bad[k] = true
	}

	return s
}

// run drives the machine to Done.
func (s *sequencer) run() {
	if s.region == s.target {
		s.seq = append(s.seq, s.dest.ID)
		s.finish()
		return
	}

	for s.state != done {
		switch s.state {
		case planning:
			s.step()
		case backtracking:
			s.backtrack()
		}
	}
	s.finish()
}

// step asks the scorer for the next hop out of the current region.
func (s *sequencer) step() {
	s.res.Steps++
	key, ok := s.p.scorer.FindGateway(gateway.Query{
		Current:     s.current,
		Region:      s.region,
		Desired:     gateway.AnyRegion,
		Destination: s.dest.ID,
		Visited:     s.visited,
		BadExits:    s.bad,
	})
	if !ok {
		if s.previous != core.NoNode {
			s.state = backtracking
			return
		}
		s.p.log.Debug("no usable exit, falling back to destination",
			logging.Node(int(s.current)), logging.Region(int(s.region)))
		s.seq = append(s.seq, s.dest.ID)
		s.res.Fallback = true
		s.state = done
		return
	}

	s.res.Hops++
	s.previous = s.current
	s.seq = append(s.seq, key.Exit, key.Entry)
	s.current = key.Entry
	s.region = s.p.g.RegionOf(key.Entry)
	s.visited[s.region] = true
	s.visitOrder = append(s.visitOrder, s.region)

	if s.region == s.target {
		s.seq = append(s.seq, s.dest.ID)
		s.state = done
	}
}

// backtrack undoes the last hop and bans its gateway pair.
func (s *sequencer) backtrack() {
	n := len(s.seq)
	key := core.GatewayKey{Exit: s.seq[n-2], Entry: s.seq[n-1]}
	s.bad[key] = true
	s.seq = s.seq[:n-2]
	s.res.Backtracks++
	s.p.opts.Metrics.RecordBacktrack()
	s.p.log.Debug("backtracking", logging.Gateway(int(key.Exit), int(key.Entry)),
		logging.Region(int(s.region)))

	s.current = s.previous
	s.region = s.p.g.RegionOf(s.previous)
	last := s.visitOrder[len(s.visitOrder)-1]
	s.visitOrder = s.visitOrder[:len(s.visitOrder)-1]
	delete(s.visited, last)
	s.previous = core.NoNode
	s.state = planning
}

// finish clears the attempt-local state.
func (s *sequencer) finish() {
	s.state = done
	s.visited = nil
	s.visitOrder = nil
	s.bad = nil
}
