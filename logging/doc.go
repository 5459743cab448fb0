// Package logging provides the structured logger used across pedroute.
//
// A Logger writes one JSON object per line with a timestamp, a level, a
// message and optional key/value fields. Child loggers created with With carry
// preset fields, which is how the planner tags every line with the agent and
// route-choice model it is working for.
//
// Planners default to NopLogger, so library users opt into output explicitly:
//
//	log := logging.NewJSONLogger(os.Stderr, logging.DebugLevel)
//	p := planner.NewPlanner(g, planner.WithLogger(log.With(logging.Component("planner"))))
package logging
