package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/campusguide"
	"github.com/fwojciec/campusguide/fs"
	"github.com/fwojciec/campusguide/gemini"
	cghttp "github.com/fwojciec/campusguide/http"
	"github.com/fwojciec/campusguide/prometheus"
	"github.com/fwojciec/campusguide/s3"
	cgslog "github.com/fwojciec/campusguide/slog"
	"github.com/fwojciec/campusguide/sqlite"
	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	LocationService campusguide.LocationService
	Catalog         *campusguide.Catalog
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("campusguide"),
		kong.Description("Campus location guide: search, list, and serve campus locations."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'campusguide --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Selected().Name

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CAMPUSGUIDE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.LocationService = cgslog.NewLoggingLocationService(sqlite.NewLocationService(m.DB), deps.Logger)
	deps.DB = m.DB
	deps.Locations = m.LocationService

	deps.Seeded, err = m.LocationService.SeedIfEmpty(ctx, campusguide.DefaultLocations())
	if err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}

	locations, err := m.LocationService.FindLocations(ctx, campusguide.LocationFilter{})
	if err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}
	if m.Catalog, err = campusguide.NewCatalog(locations); err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}
	deps.Catalog = m.Catalog

	if cmd == "ask" || (cmd == "serve" && cli.GeminiAPIKey != "") {
		guide, err := newGuide(ctx, cli.GeminiAPIKey, m.Catalog, stderr)
		if err != nil {
			return err
		}
		deps.Guide = cgslog.NewLoggingGuide(guide, deps.Logger)
	}

	if cmd == "serve" {
		server, err := newServer(ctx, &cli.Serve, deps)
		if err != nil {
			return err
		}
		deps.Server = server
	}

	return kongCtx.Run(deps)
}

func newGuide(ctx context.Context, apiKey string, catalog *campusguide.Catalog, stderr io.Writer) (*gemini.Guide, error) {
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewGuide(client, catalog, gemini.DefaultModel), nil
}

func newServer(ctx context.Context, c *ServeCmd, deps *Dependencies) (*cghttp.Server, error) {
	gin.SetMode(gin.ReleaseMode)

	router := &campusguide.AssetRouter{
		Local:  fs.NewAssetStore(c.StaticDir),
		Remote: cghttp.NewAssetFetcher(),
	}
	if c.S3Bucket != "" {
		objects, err := s3.NewAssetStore(ctx, s3.Config{
			Bucket:    c.S3Bucket,
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			PathStyle: c.S3Endpoint != "",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to configure S3: %w", err)
		}
		router.Objects = objects
	}

	metrics := prometheus.NewMetrics()

	server := cghttp.NewServer()
	server.Addr = c.Addr
	server.WebRoot = c.WebRoot
	server.Catalog = deps.Catalog
	server.Images = cgslog.NewLoggingAssetStore(fs.NewAssetStore(c.StaticDir), deps.Logger)
	server.Assets = cgslog.NewLoggingAssetStore(router, deps.Logger)
	server.Guide = deps.Guide
	server.Observer = metrics
	server.MetricsHandler = metrics.Handler()
	if c.Rate > 0 {
		server.Limiter = cghttp.NewClientLimiter(c.Rate, c.Burst)
	}
	server.TrustedProxies = c.TrustedProxies
	server.Logger = deps.Logger
	return server, nil
}

func defaultDBPath() string {
	if path := os.Getenv("CAMPUSGUIDE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "campusguide.db"
	}
	dir := filepath.Join(home, ".campusguide")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "campusguide.db")
}
