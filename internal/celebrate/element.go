// internal/celebrate/element.go
//
// Stage elements: ephemeral visual particles. Created in bursts or
// waves, self-expiring, never persisted.

package celebrate

import "time"

// Kind of stage element.
type Kind string

const (
	KindFlash    Kind = "flash"    // short-lived burst center
	KindSpark    Kind = "spark"    // radially moving firework particle
	KindConfetto Kind = "confetto" // single falling confetti piece
)

// palette is the shared 8-color celebration palette.
var palette = []string{
	"#ff5252", "#ffd740", "#69f0ae", "#40c4ff",
	"#e040fb", "#ff6e40", "#eeff41", "#18ffff",
}

// shapes is the fixed confetti shape set.
var shapes = []rune{'▪', '▴', '●', '♦'}

// Element is a single transient particle on the stage. Position is in
// stage cells with the origin at the top left; VX/VY are cells per
// second, so a renderer derives the current position from Born.
type Element struct {
	ID    int
	Kind  Kind
	X, Y  float64 // spawn position
	VX    float64 // horizontal velocity, cells/sec
	VY    float64 // vertical velocity, cells/sec
	Color string  // hex color from the palette
	Shape rune    // confetti only
	Scale float64 // confetti only
	Born  time.Time
	TTL   time.Duration
}

// PosAt returns the element's position at time now.
func (e Element) PosAt(now time.Time) (float64, float64) {
	age := now.Sub(e.Born).Seconds()
	return e.X + e.VX*age, e.Y + e.VY*age
}
