package glide

import "math"

// FollowMode determines what a [Follower] does when it reaches the end of
// its track.
type FollowMode int

const (
	// Once stops at the end of the track.
	Once FollowMode = iota
	// Loop jumps back to the start of the track.
	Loop
	// PingPong reverses direction at either end of the track.
	PingPong
)

func (m FollowMode) String() string {
	switch m {
	case Once:
		return "once"
	case Loop:
		return "loop"
	case PingPong:
		return "pingpong"
	default:
		return "FollowMode(?)"
	}
}

// Follower moves along a [Track] at a constant speed, measured in units of
// arc length per unit of time.
//
// Because the track's length is queried on every tick, a follower keeps its
// travelled distance, rather than its fraction, when the track changes
// shape.
type Follower struct {
	Track Track
	Speed float64
	Mode  FollowMode

	// Distance is the arc length travelled from the start of the track.
	Distance float64

	reverse bool
}

// Tick advances the follower by dt and returns its new position and facing
// point, as reported by [Track.PointAt]. Tracks without length, including
// those without a curve, yield zero points and don't move the follower.
func (f *Follower) Tick(dt float64) (pos, facing Point) {
	l := f.Track.Length()
	if l <= 0 {
		return Point{}, Point{}
	}
	step := f.Speed * dt
	var d float64
	switch f.Mode {
	default: // Once
		d = min(max(f.Distance+step, 0), l)
	case Loop:
		d = math.Mod(f.Distance+step, l)
		if d < 0 {
			d += l
		}
	case PingPong:
		// Unfold the back and forth movement into a loop of twice the
		// track's length.
		u := f.Distance
		if f.reverse {
			u = 2*l - u
		}
		u = math.Mod(u+step, 2*l)
		if u < 0 {
			u += 2 * l
		}
		f.reverse = u > l
		if f.reverse {
			d = 2*l - u
		} else {
			d = u
		}
	}
	f.Distance = d
	return f.Track.PointAt(d / l)
}

// Done reports whether a follower in [Once] mode has reached the end of its
// track.
func (f *Follower) Done() bool {
	return f.Mode == Once && f.Distance >= f.Track.Length()
}

// Reset moves the follower back to the start of its track.
func (f *Follower) Reset() {
	f.Distance = 0
	f.reverse = false
}
