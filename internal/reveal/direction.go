package reveal

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/unveil/internal/errors"
)

// Direction is the order in which sequential runs reveal positions.
type Direction int

const (
	// DirectionStart reveals from the first position towards the last.
	DirectionStart Direction = iota
	// DirectionEnd reveals from the last position towards the first.
	DirectionEnd
	// DirectionCenter reveals outward from the middle of the text.
	DirectionCenter
)

// Directions lists every supported direction in display order.
var Directions = []Direction{DirectionStart, DirectionEnd, DirectionCenter}

func (d Direction) String() string {
	switch d {
	case DirectionStart:
		return "start"
	case DirectionEnd:
		return "end"
	case DirectionCenter:
		return "center"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the supported directions.
func (d Direction) Valid() bool {
	return d >= DirectionStart && d <= DirectionCenter
}

// ParseDirection converts a name such as "start", "end" or "center" into a Direction.
// Matching is case-insensitive and accepts "centre".
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "start", "":
		return DirectionStart, nil
	case "end":
		return DirectionEnd, nil
	case "center", "centre":
		return DirectionCenter, nil
	default:
		return DirectionStart, fmt.Errorf("%w: %q (expected start, end or center)", kerrors.ErrUnknownDirection, name)
	}
}
