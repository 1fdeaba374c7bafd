package x11

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mj1618/desktopctl/internal/errs"
)

// Opener implements platform.URLOpener by trying each configured opener in
// order. Only a launch failure moves on to the next candidate; an opener that
// runs and fails is reported as is.
type Opener struct {
	r       *runner
	openers [][]string
}

// NewOpener returns an Opener over the given argv prefixes.
func NewOpener(r *runner, openers [][]string) *Opener {
	return &Opener{r: r, openers: openers}
}

func (o *Opener) OpenURL(ctx context.Context, url string) (string, error) {
	var tried []string
	var lastErr error
	for _, prefix := range o.openers {
		args := append(append([]string(nil), prefix...), url)
		_, err := o.r.run(ctx, args...)
		if err == nil {
			return prefix[0], nil
		}
		var launchErr *errs.LaunchError
		if !errors.As(err, &launchErr) {
			return prefix[0], err
		}
		tried = append(tried, prefix[0])
		lastErr = err
	}
	if lastErr == nil {
		return "", errors.New("no URL opener configured")
	}
	return "", &errs.LaunchError{
		Program: strings.Join(tried, ", "),
		Package: "xdg-utils",
		Err:     fmt.Errorf("no URL opener found: %w", errors.Unwrap(lastErr)),
	}
}
