package action_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/mj1618/desktopctl/internal/action"
	"github.com/mj1618/desktopctl/internal/config"
	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/mj1618/desktopctl/internal/platform"
	_ "github.com/mj1618/desktopctl/internal/platform/x11"
	"github.com/mj1618/desktopctl/internal/process/processtest"
	"github.com/mj1618/desktopctl/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T, opts ...action.Option) (*action.Runner, *processtest.Recorder) {
	t.Helper()
	env, err := session.Resolve([]string{"DISPLAY=:0"}, session.Overrides{})
	require.NoError(t, err)
	rec := processtest.New()
	p, err := platform.NewProvider(platform.Options{Env: env, Invoker: rec, Config: config.Default()})
	require.NoError(t, err)
	return action.NewRunner(p, opts...), rec
}

func stubWindows(rec *processtest.Recorder, titles ...string) {
	ids := ""
	for i, title := range titles {
		id := strconv.Itoa(100 + i)
		ids += id + "\n"
		rec.On("xdotool", "getwindowname", id).Return(title + "\n")
	}
	if len(titles) == 0 {
		rec.On("xdotool", "search").Fail(1, "")
		return
	}
	rec.On("xdotool", "search").Return(ids)
}

func TestActivate_FirstSubstringMatch(t *testing.T) {
	r, rec := newRunner(t)
	stubWindows(rec, "Chromium - tab", "Other")

	res, err := r.Activate(context.Background(), action.ActivateRequest{Title: "Chrom"})
	require.NoError(t, err)
	assert.Equal(t, "Chromium - tab", res.Title)
	assert.Equal(t, "Chromium - tab", res.Text())
	assert.Equal(t, "100", res.ID)

	argvs := rec.Argvs()
	assert.Equal(t, []string{"xdotool", "windowactivate", "100"}, argvs[len(argvs)-1])
}

func TestActivate_MultipleMatchesUsesListingOrder(t *testing.T) {
	r, rec := newRunner(t)
	stubWindows(rec, "Other", "Chromium - second", "Chromium - first")

	res, err := r.Activate(context.Background(), action.ActivateRequest{Title: "Chromium"})
	require.NoError(t, err)
	assert.Equal(t, "Chromium - second", res.Title)
}

func TestActivate_CaseSensitive(t *testing.T) {
	r, rec := newRunner(t)
	stubWindows(rec, "Chromium - tab")

	_, err := r.Activate(context.Background(), action.ActivateRequest{Title: "chrom"})
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestActivate_NoMatchIsNotFound(t *testing.T) {
	r, rec := newRunner(t)
	stubWindows(rec, "Other")

	_, err := r.Activate(context.Background(), action.ActivateRequest{Title: "Chrom"})
	var notFound *errs.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, errs.ExitNotFound, errs.ExitCode(err))
	for _, argv := range rec.Argvs() {
		assert.NotEqual(t, "windowactivate", argv[1], "nothing should be activated")
	}
}

func TestActivate_NoWindowsAtAll(t *testing.T) {
	r, rec := newRunner(t)
	stubWindows(rec)

	_, err := r.Activate(context.Background(), action.ActivateRequest{Title: "x"})
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestActivate_EmptyTitleIsUsageError(t *testing.T) {
	r, rec := newRunner(t)
	_, err := r.Activate(context.Background(), action.ActivateRequest{})
	var usage *errs.UsageError
	assert.True(t, errors.As(err, &usage))
	assert.Empty(t, rec.Calls())
}

func TestClick_CoordinatesFollowMousemove(t *testing.T) {
	r, rec := newRunner(t)
	res, err := r.Click(context.Background(), action.ClickRequest{X: 320, Y: 240, Button: platform.MouseLeft})
	require.NoError(t, err)
	assert.Equal(t, "clicked button 1 at 320,240", res.Text())

	argv := rec.Argvs()[0]
	assert.Equal(t, []string{"xdotool", "mousemove", "--", "320", "240", "click", "1"}, argv)
}

func TestClick_InvalidButtonNeverInvokes(t *testing.T) {
	r, rec := newRunner(t)
	for _, b := range []platform.MouseButton{0, 4, -1} {
		_, err := r.Click(context.Background(), action.ClickRequest{X: 1, Y: 1, Button: b})
		var usage *errs.UsageError
		assert.True(t, errors.As(err, &usage), "button %d", b)
	}
	assert.Empty(t, rec.Calls())
}

func TestClick_ExternalFailureNamesAction(t *testing.T) {
	r, rec := newRunner(t)
	rec.On("xdotool", "mousemove").Fail(1, "Can't open display")

	_, err := r.Click(context.Background(), action.ClickRequest{X: 1, Y: 1, Button: platform.MouseLeft})
	require.Error(t, err)
	assert.Equal(t, "click: xdotool exited with status 1: Can't open display", err.Error())
}

func TestWhereThenClick_RoundTrip(t *testing.T) {
	r, rec := newRunner(t)
	rec.On("xdotool", "getmouselocation").Return("X=1919\nY=7\nSCREEN=1\nWINDOW=42\n")

	where, err := r.Where(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1919 7", where.Text())

	_, err = r.Click(context.Background(), action.ClickRequest{X: where.X, Y: where.Y, Button: platform.MouseLeft})
	require.NoError(t, err)

	argvs := rec.Argvs()
	assert.Equal(t, []string{"xdotool", "mousemove", "--", "1919", "7", "click", "1"}, argvs[1])
}

func TestType_PassThrough(t *testing.T) {
	r, rec := newRunner(t)
	text := "  -- weird ${text}\n"
	res, err := r.Type(context.Background(), action.TypeRequest{Text: text, DelayMs: 0})
	require.NoError(t, err)
	assert.Equal(t, text, res.Typed)
	assert.Equal(t, "typed 19 characters", res.Text())
	assert.Equal(t, []string{"xdotool", "type", "--delay", "0", "--", text}, rec.Argvs()[0])
}

func TestType_NegativeDelay(t *testing.T) {
	r, rec := newRunner(t)
	_, err := r.Type(context.Background(), action.TypeRequest{Text: "a", DelayMs: -1})
	assert.Equal(t, errs.ExitUsage, errs.ExitCode(err))
	assert.Empty(t, rec.Calls())
}

func TestKey(t *testing.T) {
	r, rec := newRunner(t)
	res, err := r.Key(context.Background(), action.KeyRequest{Keys: "ctrl+l"})
	require.NoError(t, err)
	assert.Equal(t, "sent key ctrl+l", res.Text())
	assert.Equal(t, []string{"xdotool", "key", "--", "ctrl+l"}, rec.Argvs()[0])
}

func TestWindows_Text(t *testing.T) {
	r, rec := newRunner(t)
	stubWindows(rec, "Chromium - tab", "Other")

	res, err := r.Windows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "100\tChromium - tab\n101\tOther", res.Text())
}

func TestScreenshot_DefaultPathWithFixedClock(t *testing.T) {
	dir := t.TempDir()
	fixed := time.Date(2026, 10, 19, 8, 30, 5, 123_000_000, time.UTC)
	r, rec := newRunner(t, action.WithClock(func() time.Time { return fixed }), action.WithScreenshotDir(filepath.Join(dir, "shots")))

	res, err := r.Screenshot(context.Background(), action.ScreenshotRequest{})
	require.NoError(t, err)

	want := filepath.Join(dir, "shots", "desktop-20261019-083005.123.png")
	assert.Equal(t, want, res.Path)
	assert.Equal(t, want, res.Text())
	assert.Equal(t, [][]string{{"scrot", want}}, rec.Argvs())

	info, err := os.Stat(filepath.Join(dir, "shots"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestScreenshot_DefaultPathsDistinctWithinSameSecond(t *testing.T) {
	base := time.Date(2026, 10, 19, 8, 30, 5, 0, time.UTC)
	a := action.DefaultScreenshotPath("tmp", base.Add(1*time.Millisecond))
	b := action.DefaultScreenshotPath("tmp", base.Add(2*time.Millisecond))
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}

func TestScreenshot_ExplicitOutIsMadeAbsolute(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	r, rec := newRunner(t)

	res, err := r.Screenshot(context.Background(), action.ScreenshotRequest{Out: "nested/shot.png"})
	require.NoError(t, err)

	want := filepath.Join(dir, "nested", "shot.png")
	assert.Equal(t, want, res.Path)
	assert.Equal(t, [][]string{{"scrot", want}}, rec.Argvs())
}

func TestScreenshot_OutDirOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r, _ := newRunner(t, action.WithClock(func() time.Time { return fixed }))

	res, err := r.Screenshot(context.Background(), action.ScreenshotRequest{OutDir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "desktop-20260102-030405.000.png"), res.Path)
}

func TestScreenshot_MissingScrotIsLaunchError(t *testing.T) {
	r, rec := newRunner(t)
	rec.On("scrot").Missing()

	_, err := r.Screenshot(context.Background(), action.ScreenshotRequest{Out: filepath.Join(t.TempDir(), "a.png")})
	assert.Equal(t, errs.ExitLaunchFailed, errs.ExitCode(err))
}

func TestOpen(t *testing.T) {
	r, rec := newRunner(t)
	res, err := r.Open(context.Background(), action.OpenRequest{URL: "example.com/no scheme"})
	require.NoError(t, err)
	assert.Equal(t, "xdg-open", res.Opener)
	assert.Equal(t, "opened example.com/no scheme", res.Text())
	assert.Equal(t, [][]string{{"xdg-open", "example.com/no scheme"}}, rec.Argvs())
}
