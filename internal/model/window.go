package model

// Window is a visible top-level window as reported by the window-control
// utility. ID is kept as the utility prints it.
type Window struct {
	ID    string `yaml:"id"    json:"id"`
	Title string `yaml:"title" json:"title"`
}

// Point is a pointer location in screen pixel space.
type Point struct {
	X      int    `yaml:"x"                json:"x"`
	Y      int    `yaml:"y"                json:"y"`
	Screen int    `yaml:"screen"           json:"screen"`
	Window string `yaml:"window,omitempty" json:"window,omitempty"`
}
