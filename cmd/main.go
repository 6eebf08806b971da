package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/kiriyms/dice-roller-mcp/dice"
	"github.com/kiriyms/dice-roller-mcp/prompts"
	"github.com/kiriyms/dice-roller-mcp/resources"
	"github.com/kiriyms/dice-roller-mcp/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Config holds process configuration, read from the environment and
// overridable by flags.
type Config struct {
	Transport string `env:"DICE_ROLLER_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"DICE_ROLLER_HTTP_ADDR" envDefault:"localhost:8080"`
	LogFile   string `env:"DICE_ROLLER_LOG_FILE"`
	Debug     bool   `env:"DICE_ROLLER_DEBUG"`
}

// parseConfig parses environment variables and flags into a Config.
func parseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file path (logs to stderr when empty)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	logger := initLogger(cfg.Debug, cfg.LogFile)

	// One process-scoped roller, seeded once at startup. Tool handlers share
	// it; tests inject their own fixed-seed roller instead.
	seed, err := dice.NewSeed()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed roller")
	}
	roller := dice.NewRoller(seed)

	// Create the MCP server with implementation metadata
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "dice-roller-mcp",
			Version: "1.0.0",
		},
		nil, // Use default server options
	)

	tools.SetLogger(logger)
	tools.RegisterRollTools(server, roller)
	prompts.RegisterRollPrompts(server)
	resources.RegisterRollResources(server)
	logger.Info().Msg("registered tools: dice rolls, coin flips, ability scores, advantage rolls, percentile checks, initiative, random choice, loot")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("transport", cfg.Transport).Msg("Dice Roller MCP server starting")
	if err := run(ctx, server, cfg); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

// run serves the MCP server over the configured transport and blocks until
// the context is cancelled or the transport fails.
func run(ctx context.Context, server *mcp.Server, cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		// Run the server over stdin/stdout for local MCP clients
		return server.Run(ctx, &mcp.StdioTransport{})
	case "http":
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil)
		httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: handler}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpServer.Shutdown(shutdownCtx)
		}()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

func initLogger(debug bool, logFilePath string) zerolog.Logger {
	// Set log level
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// stdout carries the MCP protocol, so logs go to stderr or a file
	var output io.Writer = os.Stderr
	if logFilePath != "" {
		file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		output = file
	}

	// Create logger with timestamp
	return zerolog.New(output).With().Timestamp().Logger()
}
