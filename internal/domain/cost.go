package domain

// Travel cost of a single matrix cell.
//
// Unreachable marks a leg with no usable route (no route found, provider
// failure, or deadline expiry). It is kept separate from Seconds so that a
// very long real trip is never confused with a missing one.
type Cost struct {
	Seconds     int
	Unreachable bool
}

// Unreachable is the infinite-duration sentinel.
var Unreachable = Cost{Unreachable: true}

// Seconds returns a reachable cost of s seconds.
func Seconds(s int) Cost { return Cost{Seconds: s} }

// Less orders reachable costs by duration and places every reachable cost
// before any unreachable one. Two unreachable costs are equal.
func (c Cost) Less(o Cost) bool {
	if c.Unreachable {
		return false
	}
	if o.Unreachable {
		return true
	}
	return c.Seconds < o.Seconds
}
