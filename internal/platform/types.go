package platform

import "strconv"

// MouseButton is an X pointer button number.
type MouseButton int

const (
	MouseLeft   MouseButton = 1
	MouseMiddle MouseButton = 2
	MouseRight  MouseButton = 3
)

// Valid reports whether b is one of the three supported buttons.
func (b MouseButton) Valid() bool {
	return b >= MouseLeft && b <= MouseRight
}

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	default:
		return "button" + strconv.Itoa(int(b))
	}
}
