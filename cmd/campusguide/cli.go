package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/campusguide"
	cghttp "github.com/fwojciec/campusguide/http"
	"github.com/fwojciec/campusguide/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Locations campusguide.LocationService
	Catalog   *campusguide.Catalog
	Seeded    int
	Server    *cghttp.Server
	Guide     campusguide.Guide
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose      bool   `short:"v" help:"Enable debug logging"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key for ask"`

	Serve  ServeCmd  `cmd:"" help:"Run the HTTP server"`
	Search SearchCmd `cmd:"" help:"Find a location by name or keyword"`
	List   ListCmd   `cmd:"" help:"List all campus locations"`
	Seed   SeedCmd   `cmd:"" help:"Report how many locations were seeded"`
	Ask    AskCmd    `cmd:"" help:"Ask the guide a question about the campus"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr           string   `default:":5000" env:"CAMPUSGUIDE_ADDR" help:"Listen address"`
	WebRoot        string   `default:"." env:"CAMPUSGUIDE_WEB_ROOT" help:"Directory containing index.html"`
	StaticDir      string   `default:"static/images" env:"CAMPUSGUIDE_STATIC_DIR" help:"Directory served under /static/images"`
	Rate           float64  `default:"5" env:"CAMPUSGUIDE_RATE" help:"API requests per second per client (0 disables)"`
	Burst          int      `default:"10" help:"API burst size per client"`
	TrustedProxies []string `name:"trusted-proxies" env:"CAMPUSGUIDE_TRUSTED_PROXIES" help:"Proxy IPs or CIDRs allowed to set X-Forwarded-For"`
	S3Bucket       string   `name:"s3-bucket" env:"CAMPUSGUIDE_S3_BUCKET" help:"Bucket for s3:// image paths"`
	S3Region       string   `name:"s3-region" env:"CAMPUSGUIDE_S3_REGION" help:"S3 region"`
	S3Endpoint     string   `name:"s3-endpoint" env:"CAMPUSGUIDE_S3_ENDPOINT" help:"Custom S3 endpoint, e.g. MinIO"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Location name or keyword"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// SeedCmd is the "seed" subcommand.
type SeedCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the campus"`
}
