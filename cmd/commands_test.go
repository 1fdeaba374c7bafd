package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickCmd_Flags(t *testing.T) {
	f := clickCmd.Flags().Lookup("button")
	if f == nil {
		t.Fatal("expected --button flag")
	}
	if f.DefValue != "1" {
		t.Errorf("expected --button default 1, got %s", f.DefValue)
	}
}

func TestScreenshotCmd_Flags(t *testing.T) {
	for _, name := range []string{"out", "out-dir"} {
		if screenshotCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag", name)
		}
	}
}

func TestTypeCmd_Flags(t *testing.T) {
	if typeCmd.Flags().Lookup("delay") == nil {
		t.Error("expected --delay flag")
	}
}

func TestServeCmd_Flags(t *testing.T) {
	f := serveCmd.Flags().Lookup("transport")
	if f == nil || f.DefValue != "stdio" {
		t.Error("expected --transport flag defaulting to stdio")
	}
	f = serveCmd.Flags().Lookup("port")
	if f == nil || f.DefValue != "8080" {
		t.Error("expected --port flag defaulting to 8080")
	}
}

func TestClick(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("click", "640", "360"))
	assert.Equal(t, [][]string{{"xdotool", "mousemove", "--", "640", "360", "click", "1"}}, h.rec.Argvs())
	assert.Equal(t, "clicked button 1 at 640,360\n", h.stdout.String())
	assert.Empty(t, h.stderr.String())
}

func TestClick_RightButton(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("click", "5", "6", "--button", "3"))
	assert.Equal(t, [][]string{{"xdotool", "mousemove", "--", "5", "6", "click", "3"}}, h.rec.Argvs())
}

func TestClick_NegativeCoordinatesAfterDoubleDash(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("click", "--", "-10", "20"))
	assert.Equal(t, [][]string{{"xdotool", "mousemove", "--", "-10", "20", "click", "1"}}, h.rec.Argvs())
}

func TestClick_UsageErrors(t *testing.T) {
	h := newHarness(t)
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"click"}, "missing required arguments X Y"},
		{[]string{"click", "10"}, "missing required argument Y"},
		{[]string{"click", "a", "10"}, `invalid X "a"`},
		{[]string{"click", "10", "1.5"}, `invalid Y "1.5"`},
		{[]string{"click", "1", "2", "3"}, `unexpected argument "3"`},
		{[]string{"click", "1", "2", "--button", "4"}, "invalid --button 4"},
	} {
		assert.Equal(t, errs.ExitUsage, h.run(tc.args...), "args %v", tc.args)
		assert.Contains(t, h.stderr.String(), tc.want)
		assert.Contains(t, h.stderr.String(), "Run 'desktopctl click --help' for usage.")
	}
	assert.Empty(t, h.rec.Calls())
}

func TestType(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("type", "hello world"))
	assert.Equal(t, [][]string{{"xdotool", "type", "--delay", "12", "--", "hello world"}}, h.rec.Argvs())
	assert.Equal(t, "typed 11 characters\n", h.stdout.String())
}

func TestType_DelayFlag(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("type", "x", "--delay", "0"))
	assert.Equal(t, [][]string{{"xdotool", "type", "--delay", "0", "--", "x"}}, h.rec.Argvs())
}

func TestType_LeadingDashTextIsLiteral(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("type", "--", "--not-a-flag $HOME"))
	assert.Equal(t, [][]string{{"xdotool", "type", "--delay", "12", "--", "--not-a-flag $HOME"}}, h.rec.Argvs())
}

func TestKey(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("key", "ctrl+l"))
	assert.Equal(t, [][]string{{"xdotool", "key", "--", "ctrl+l"}}, h.rec.Argvs())
	assert.Equal(t, "sent key ctrl+l\n", h.stdout.String())
}

func TestKey_ExternalFailureIsRelayed(t *testing.T) {
	h := newHarness(t)
	h.rec.On("xdotool", "key").Fail(1, "(symbol) No such key name 'Bogus'.\n")

	assert.Equal(t, errs.ExitFailure, h.run("key", "Bogus"))
	stderr := h.stderr.String()
	assert.Contains(t, stderr, "key:")
	assert.Contains(t, stderr, "No such key name 'Bogus'")
	assert.Empty(t, h.stdout.String())
}

func TestWhere(t *testing.T) {
	h := newHarness(t)
	h.rec.On("xdotool", "getmouselocation").Return("X=812\nY=433\nSCREEN=0\nWINDOW=65011713\n")

	require.Equal(t, errs.ExitOK, h.run("where"))
	assert.Equal(t, [][]string{{"xdotool", "getmouselocation", "--shell"}}, h.rec.Argvs())
	assert.Equal(t, "812 433\n", h.stdout.String())
}

func TestWhere_JSON(t *testing.T) {
	h := newHarness(t)
	h.rec.On("xdotool", "getmouselocation").Return("X=812\nY=433\nSCREEN=0\nWINDOW=65011713\n")

	require.Equal(t, errs.ExitOK, h.run("--format", "json", "where"))
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &got))
	assert.Equal(t, true, got["ok"])
	assert.Equal(t, "where", got["action"])
	assert.Equal(t, float64(812), got["x"])
	assert.Equal(t, float64(433), got["y"])
	assert.Equal(t, "65011713", got["window"])
}

func TestWindows(t *testing.T) {
	h := newHarness(t)
	h.rec.On("xdotool", "search").Return("100\n101\n")
	h.rec.On("xdotool", "getwindowname", "100").Return("Chromium\n")
	h.rec.On("xdotool", "getwindowname", "101").Return("Terminal\n")

	require.Equal(t, errs.ExitOK, h.run("windows"))
	assert.Equal(t, "100\tChromium\n101\tTerminal\n", h.stdout.String())
	assert.Equal(t, []string{"xdotool", "search", "--onlyvisible", "--name", ".*"}, h.rec.Argvs()[0])
}

func TestWindows_NoneVisible(t *testing.T) {
	h := newHarness(t)
	h.rec.On("xdotool", "search").Fail(1, "")

	require.Equal(t, errs.ExitOK, h.run("windows"))
	assert.Empty(t, h.stdout.String())
}

func TestActivate(t *testing.T) {
	h := newHarness(t)
	h.rec.On("xdotool", "search").Return("100\n101\n")
	h.rec.On("xdotool", "getwindowname", "100").Return("Terminal\n")
	h.rec.On("xdotool", "getwindowname", "101").Return("Chromium - New Tab\n")

	require.Equal(t, errs.ExitOK, h.run("activate", "Chrom"))
	argvs := h.rec.Argvs()
	assert.Equal(t, []string{"xdotool", "windowactivate", "101"}, argvs[len(argvs)-1])
	assert.Equal(t, "Chromium - New Tab\n", h.stdout.String())
}

func TestActivate_NotFound(t *testing.T) {
	h := newHarness(t)
	h.rec.On("xdotool", "search").Return("100\n")
	h.rec.On("xdotool", "getwindowname", "100").Return("Terminal\n")

	assert.Equal(t, errs.ExitNotFound, h.run("activate", "chrom"))
	assert.Contains(t, h.stderr.String(), `no window matching "chrom"`)
	for _, argv := range h.rec.Argvs() {
		assert.NotEqual(t, "windowactivate", argv[1])
	}
}

func TestOpen(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("open", "https://example.com/?q=a b"))
	assert.Equal(t, [][]string{{"xdg-open", "https://example.com/?q=a b"}}, h.rec.Argvs())
	assert.Equal(t, "opened https://example.com/?q=a b\n", h.stdout.String())
}

func TestOpen_FallsBackWhenOpenerMissing(t *testing.T) {
	h := newHarness(t)
	h.rec.On("xdg-open").Missing()

	require.Equal(t, errs.ExitOK, h.run("--format", "yaml", "open", "https://example.com"))
	assert.Equal(t, [][]string{
		{"xdg-open", "https://example.com"},
		{"gio", "open", "https://example.com"},
	}, h.rec.Argvs())
	assert.Contains(t, h.stdout.String(), "opener: gio")
}

func TestOpen_NoOpenerIsLaunchFailure(t *testing.T) {
	h := newHarness(t)
	h.rec.On("xdg-open").Missing()
	h.rec.On("gio").Missing()
	h.rec.On("chromium-browser").Missing()

	assert.Equal(t, errs.ExitLaunchFailed, h.run("open", "https://example.com"))
	assert.Contains(t, h.stderr.String(), "xdg-open, gio, chromium-browser")
}

func TestScreenshot_DefaultPath(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("screenshot"))

	want, err := filepath.Abs(filepath.Join("tmp", "desktop-20260102-030405.678.png"))
	require.NoError(t, err)
	assert.Equal(t, want+"\n", h.stdout.String())
	assert.Equal(t, [][]string{{"scrot", want}}, h.rec.Argvs())
	assert.DirExists(t, filepath.Dir(want))
}

func TestScreenshot_Out(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("screenshot", "--out", "shots/a.png"))

	want, err := filepath.Abs(filepath.Join("shots", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, want+"\n", h.stdout.String())
	assert.Equal(t, [][]string{{"scrot", want}}, h.rec.Argvs())
}

func TestScreenshot_OutDirFromConfig(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	h.writeConfig("screenshot_dir: " + dir + "\n")

	require.Equal(t, errs.ExitOK, h.run("screenshot"))
	assert.Equal(t, filepath.Join(dir, "desktop-20260102-030405.678.png")+"\n", h.stdout.String())
}

func TestScreenshot_MissingScrot(t *testing.T) {
	h := newHarness(t)
	h.rec.On("scrot").Missing()

	assert.Equal(t, errs.ExitLaunchFailed, h.run("screenshot"))
	stderr := h.stderr.String()
	assert.Contains(t, stderr, "cannot launch scrot")
	assert.Contains(t, stderr, "apt-get install -y scrot")
	assert.Empty(t, h.stdout.String())
}

func TestScreenshot_NoFileWrittenByRecorder(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, errs.ExitOK, h.run("screenshot", "--out", "x.png"))
	_, err := os.Stat("x.png")
	assert.True(t, os.IsNotExist(err))
}
