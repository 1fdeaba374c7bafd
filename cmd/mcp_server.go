package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"github.com/mj1618/desktopctl/internal/action"
	"github.com/mj1618/desktopctl/internal/config"
	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/mj1618/desktopctl/internal/metrics"
	"github.com/mj1618/desktopctl/internal/platform"
	"github.com/mj1618/desktopctl/internal/version"
	"gopkg.in/yaml.v3"
)

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// Validate checks the transport settings.
func (c MCPConfig) Validate() error {
	switch c.Transport {
	case "stdio", "streamable-http":
	default:
		return errs.Usagef("unsupported transport: %s (use stdio or streamable-http)", c.Transport)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errs.Usagef("invalid --port %d", c.Port)
	}
	return nil
}

// mcpServer exposes the action runner as MCP tools.
type mcpServer struct {
	runner  *action.Runner
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Collector
	// The desktop is one shared resource; tool calls run one at a time.
	mu  sync.Mutex
	mcp *mcpserver.MCPServer
}

func newMCPServer(runner *action.Runner, cfg config.Config, logger *slog.Logger) *mcpServer {
	s := &mcpServer{
		runner:  runner,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(),
	}
	s.mcp = mcpserver.NewMCPServer("desktopctl", version.Version)
	s.registerTools()
	return s
}

// serve runs until the transport stops or the process is interrupted.
func (s *mcpServer) serve(ctx context.Context, cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		s.logger.Info("serving MCP on stdio")
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		return s.serveHTTP(ctx, fmt.Sprintf(":%d", cfg.Port))
	default:
		return errs.Usagef("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/mcp", mcpserver.NewStreamableHTTPServer(s.mcp))
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

func (s *mcpServer) serveHTTP(ctx context.Context, addr string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{Addr: addr, Handler: s.router()}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving MCP over streamable-http", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down MCP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool(action.NameScreenshot,
			mcp.WithDescription("Capture the whole screen to a PNG file and return its absolute path"),
			mcp.WithString("out", mcp.Description("Output file path (default: timestamped file in out_dir)")),
			mcp.WithString("out_dir", mcp.Description("Directory for auto-named screenshots")),
		),
		s.handle(action.NameScreenshot, s.screenshot),
	)
	s.mcp.AddTool(
		mcp.NewTool(action.NameClick,
			mcp.WithDescription("Move the pointer to x,y and click a button"),
			mcp.WithNumber("x", mcp.Description("X screen coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Y screen coordinate"), mcp.Required()),
			mcp.WithNumber("button", mcp.Description("Mouse button: 1 (left), 2 (middle), 3 (right); default 1")),
		),
		s.handle(action.NameClick, s.click),
	)
	s.mcp.AddTool(
		mcp.NewTool(action.NameType,
			mcp.WithDescription("Type literal text into the focused window"),
			mcp.WithString("text", mcp.Description("Text to type, passed through unmodified"), mcp.Required()),
			mcp.WithNumber("delay", mcp.Description("Delay between keystrokes in ms")),
		),
		s.handle(action.NameType, s.typeText),
	)
	s.mcp.AddTool(
		mcp.NewTool(action.NameKey,
			mcp.WithDescription("Send a key or chord, e.g. 'ctrl+l' or 'Return'"),
			mcp.WithString("keys", mcp.Description("Key specification"), mcp.Required()),
		),
		s.handle(action.NameKey, s.key),
	)
	s.mcp.AddTool(
		mcp.NewTool(action.NameWhere,
			mcp.WithDescription("Return the current pointer position"),
		),
		s.handle(action.NameWhere, s.where),
	)
	s.mcp.AddTool(
		mcp.NewTool(action.NameWindows,
			mcp.WithDescription("List visible windows with their ids and titles"),
		),
		s.handle(action.NameWindows, s.windows),
	)
	s.mcp.AddTool(
		mcp.NewTool(action.NameActivate,
			mcp.WithDescription("Focus the first window whose title contains a substring (case-sensitive)"),
			mcp.WithString("title", mcp.Description("Title substring"), mcp.Required()),
		),
		s.handle(action.NameActivate, s.activate),
	)
	s.mcp.AddTool(
		mcp.NewTool(action.NameOpen,
			mcp.WithDescription("Open a URL with the session's default handler"),
			mcp.WithString("url", mcp.Description("URL to open"), mcp.Required()),
		),
		s.handle(action.NameOpen, s.open),
	)
}

type toolFunc func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// handle serializes calls, records metrics and renders the result as YAML.
func (s *mcpServer) handle(name string, fn toolFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		start := time.Now()
		res, err := fn(ctx, request.GetArguments())
		s.metrics.Observe(name, err, time.Since(start))
		if err != nil {
			s.logger.Debug("tool call failed", "tool", name, "kind", errs.Kind(err), "error", err)
			return mcp.NewToolResultError(errorToText(name, err)), nil
		}
		return mcp.NewToolResultText(resultToText(res)), nil
	}
}

// toolError is the YAML body of a failed tool call.
type toolError struct {
	OK       bool   `yaml:"ok"`
	Action   string `yaml:"action"`
	Kind     string `yaml:"kind"`
	ExitCode int    `yaml:"exit_code"`
	Error    string `yaml:"error"`
}

func errorToText(action string, err error) string {
	return resultToText(toolError{
		OK:       false,
		Action:   action,
		Kind:     errs.Kind(err),
		ExitCode: errs.ExitCode(err),
		Error:    err.Error(),
	})
}

func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("ok: false\nerror: %v\n", err)
	}
	return string(b)
}

// decodeParams validates that required keys are present and decodes params
// into out, which should already hold defaults.
func decodeParams(params map[string]interface{}, out interface{}, required ...string) error {
	for _, key := range required {
		if _, ok := params[key]; !ok {
			return errs.Usagef("missing required argument %s", key)
		}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return errs.Usagef("invalid arguments: %v", err)
	}
	return nil
}

func (s *mcpServer) screenshot(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var req action.ScreenshotRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return s.runner.Screenshot(ctx, req)
}

func (s *mcpServer) click(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	req := action.ClickRequest{Button: platform.MouseLeft}
	if err := decodeParams(params, &req, "x", "y"); err != nil {
		return nil, err
	}
	return s.runner.Click(ctx, req)
}

func (s *mcpServer) typeText(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	req := action.TypeRequest{DelayMs: s.cfg.TypeDelayMs}
	if err := decodeParams(params, &req, "text"); err != nil {
		return nil, err
	}
	return s.runner.Type(ctx, req)
}

func (s *mcpServer) key(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var req action.KeyRequest
	if err := decodeParams(params, &req, "keys"); err != nil {
		return nil, err
	}
	return s.runner.Key(ctx, req)
}

func (s *mcpServer) where(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	return s.runner.Where(ctx)
}

func (s *mcpServer) windows(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	return s.runner.Windows(ctx)
}

func (s *mcpServer) activate(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var req action.ActivateRequest
	if err := decodeParams(params, &req, "title"); err != nil {
		return nil, err
	}
	return s.runner.Activate(ctx, req)
}

func (s *mcpServer) open(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var req action.OpenRequest
	if err := decodeParams(params, &req, "url"); err != nil {
		return nil, err
	}
	return s.runner.Open(ctx, req)
}
