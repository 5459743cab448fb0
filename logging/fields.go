package logging

import "time"

// String returns a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int returns an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Float64 returns a float field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool returns a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Duration returns a duration field rendered with time.Duration.String.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Any returns a field holding an arbitrary JSON-encodable value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Error returns the "error" field; a nil error encodes as null.
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}

	return Field{Key: "error", Value: err.Error()}
}

// Domain helpers.

func Component(name string) Field   { return String("component", name) }
func Node(id int) Field             { return Int("node", id) }
func Region(id int) Field           { return Int("region", id) }
func Agent(id int) Field            { return Int("agent", id) }
func RouteChoice(code string) Field { return String("route_choice", code) }
func RunID(id string) Field         { return String("run_id", id) }
func Count(n int) Field             { return Int("count", n) }
func Latency(d time.Duration) Field { return Duration("latency", d) }

// Gateway returns the "gateway" field as an [exit, entry] pair.
func Gateway(exit, entry int) Field {
	return Field{Key: "gateway", Value: [2]int{exit, entry}}
}
