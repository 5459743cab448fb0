// Package agent describes the pedestrian properties the planners consume.
//
// Route-choice codes name the combination of cognitive cues an agent uses:
//
//	DS    road distance           (no regions)
//	AC    angular change          (no regions)
//	RDS   regions, road distance
//	RAC   regions, angular change
//	RBDS  regions and barriers, road distance
//	RBAC  regions and barriers, angular change
//
// The coarse planner reads only BarrierBasedNavigation; the local
// minimisation (distance or angle) is carried for the intra-region router.
package agent

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRouteChoice indicates a route-choice code outside the known set.
var ErrUnknownRouteChoice = errors.New("agent: unknown route choice")

// Minimisation is the local cost an agent minimises inside a region.
type Minimisation int

const (
	// RoadDistance minimises metric length.
	RoadDistance Minimisation = iota
	// AngularChange minimises cumulative turning.
	AngularChange
)

// String returns "distance" or "angular".
func (m Minimisation) String() string {
	if m == AngularChange {
		return "angular"
	}

	return "distance"
}

// Properties is the per-agent configuration of a planning call.
type Properties struct {
	ID          int
	RouteChoice string
	Minimise    Minimisation

	RegionBasedNavigation  bool
	BarrierBasedNavigation bool
}

// Label returns the route-choice code, derived from the flags when
// RouteChoice is empty.
func (p Properties) Label() string {
	if p.RouteChoice != "" {
		return p.RouteChoice
	}
	var b strings.Builder
	if p.RegionBasedNavigation {
		b.WriteByte('R')
	}
	if p.BarrierBasedNavigation {
		b.WriteByte('B')
	}
	if p.Minimise == AngularChange {
		b.WriteString("AC")
	} else {
		b.WriteString("DS")
	}

	return b.String()
}

var codes = map[string]Properties{
	"DS":   {Minimise: RoadDistance},
	"AC":   {Minimise: AngularChange},
	"RDS":  {Minimise: RoadDistance, RegionBasedNavigation: true},
	"RAC":  {Minimise: AngularChange, RegionBasedNavigation: true},
	"RBDS": {Minimise: RoadDistance, RegionBasedNavigation: true, BarrierBasedNavigation: true},
	"RBAC": {Minimise: AngularChange, RegionBasedNavigation: true, BarrierBasedNavigation: true},
}

// ParseRouteChoice returns the properties named by code (case-insensitive).
//
// Errors:
//   - ErrUnknownRouteChoice for codes outside DS, AC, RDS, RAC, RBDS, RBAC.
func ParseRouteChoice(code string) (Properties, error) {
	norm := strings.ToUpper(strings.TrimSpace(code))
	p, ok := codes[norm]
	if !ok {
		return Properties{}, fmt.Errorf("ParseRouteChoice(%q): %w", code, ErrUnknownRouteChoice)
	}
	p.RouteChoice = norm

	return p, nil
}

// RouteChoices returns every known code in a fixed order.
func RouteChoices() []string {
	return []string{"DS", "AC", "RDS", "RAC", "RBDS", "RBAC"}
}
