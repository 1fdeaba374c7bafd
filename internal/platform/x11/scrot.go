package x11

import "context"

// Screenshotter implements platform.Screenshotter with scrot.
type Screenshotter struct {
	r     *runner
	scrot string
}

// NewScreenshotter returns a Screenshotter running the given scrot binary.
func NewScreenshotter(r *runner, scrot string) *Screenshotter {
	return &Screenshotter{r: r, scrot: scrot}
}

func (s *Screenshotter) Capture(ctx context.Context, path string) error {
	_, err := s.r.run(ctx, s.scrot, path)
	return err
}
