// Command lvlgen generates rooms-and-mazes dungeons.
//
// Subcommands:
//  1. generate – write one dungeon to stdout or a file, as ASCII or JSON
//  2. serve    – run the HTTP/WebSocket API
//  3. mcp      – run the MCP stdio server exposing generate_dungeon
//
// Every flag falls back to an LVLGEN_* environment variable; a .env file in the
// working directory is loaded first. --config points at a YAML file whose values
// sit below explicit flags.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/katalvlaran/lvlgen/dungeon"
	"github.com/katalvlaran/lvlgen/mcptool"
	"github.com/katalvlaran/lvlgen/server"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "0.1.0"
	AppName = "lvlgen"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "rooms-and-mazes dungeon generator",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging", Sources: cli.EnvVars("LVLGEN_DEBUG")},
			&cli.StringFlag{Name: "config", Usage: "YAML configuration file", Sources: cli.EnvVars("LVLGEN_CONFIG")},
			&cli.Int64Flag{Name: "seed", Usage: "RNG seed (0 selects the default seed)", Sources: cli.EnvVars("LVLGEN_SEED")},
			&cli.BoolFlag{Name: "random-seed", Usage: "seed from the current time", Sources: cli.EnvVars("LVLGEN_RANDOM_SEED")},
			&cli.IntFlag{Name: "width", Value: dungeon.DefaultWidth, Usage: "grid width (odd)", Sources: cli.EnvVars("LVLGEN_WIDTH")},
			&cli.IntFlag{Name: "height", Value: dungeon.DefaultHeight, Usage: "grid height (odd)", Sources: cli.EnvVars("LVLGEN_HEIGHT")},
			&cli.IntFlag{Name: "room-attempts", Value: dungeon.DefaultRoomAttempts, Usage: "room placement attempts", Sources: cli.EnvVars("LVLGEN_ROOM_ATTEMPTS")},
			&cli.IntFlag{Name: "size-modifier", Value: dungeon.DefaultSizeModifier, Usage: "room size modifier", Sources: cli.EnvVars("LVLGEN_SIZE_MODIFIER")},
			&cli.IntFlag{Name: "direction-chance", Value: dungeon.DefaultDirectionChance, Usage: "corridor turn percentage", Sources: cli.EnvVars("LVLGEN_DIRECTION_CHANCE")},
			&cli.IntFlag{Name: "connection-chance", Value: dungeon.DefaultConnectionChance, Usage: "extra door percentage", Sources: cli.EnvVars("LVLGEN_CONNECTION_CHANCE")},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate one dungeon",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "ascii", Usage: "ascii or json", Sources: cli.EnvVars("LVLGEN_FORMAT")},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
				},
				Action: runGenerate,
			},
			{
				Name:  "serve",
				Usage: "run the HTTP and WebSocket API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: "localhost:8080", Usage: "listen address", Sources: cli.EnvVars("LVLGEN_ADDR")},
					&cli.IntFlag{Name: "max-cells", Value: server.DefaultMaxCells, Usage: "largest grid per request", Sources: cli.EnvVars("LVLGEN_MAX_CELLS")},
					&cli.IntFlag{Name: "max-attempts", Value: server.DefaultMaxAttempts, Usage: "largest room attempt budget per request", Sources: cli.EnvVars("LVLGEN_MAX_ATTEMPTS")},
				},
				Action: runServe,
			},
			{
				Name:   "mcp",
				Usage:  "run the MCP stdio server",
				Action: runMCP,
			},
		},
	}
}

// loadConfig layers defaults, the --config file and explicitly set flags.
func loadConfig(cmd *cli.Command) (dungeon.Config, error) {
	cfg := dungeon.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = dungeon.LoadConfig(path); err != nil {
			return dungeon.Config{}, err
		}
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"room-attempts", &cfg.RoomAttempts},
		{"size-modifier", &cfg.SizeModifier},
		{"direction-chance", &cfg.DirectionChance},
		{"connection-chance", &cfg.ConnectionChance},
	} {
		if cmd.IsSet(f.name) {
			*f.dst = cmd.Int(f.name)
		}
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Int64("seed")
	}
	if cmd.Bool("random-seed") {
		cfg.Seed = time.Now().UnixNano()
	}

	return cfg, nil
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, err := dungeon.New(cfg.Options()...)
	if err != nil {
		return err
	}
	start := time.Now()
	d, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	log.Printf("Generated %dx%d dungeon (seed %d, %d rooms) in %v",
		d.Grid.Width(), d.Grid.Height(), d.Seed, len(d.Rooms), time.Since(start))

	format := cmd.String("format")
	path := cmd.String("output")
	if path == "" {
		return writeDungeon(os.Stdout, format, d)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	return writeAndClose(f, func(w io.Writer) error {
		return writeDungeon(w, format, d)
	})
}

// writeDungeon renders d to w as ascii or json.
func writeDungeon(w io.Writer, format string, d *dungeon.Dungeon) error {
	switch format {
	case "ascii":
		_, err := io.WriteString(w, d.Grid.String())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(server.NewResponse(uuid.NewString(), d))
	default:
		return fmt.Errorf("unknown format %q (want ascii or json)", format)
	}
}

// writeAndClose runs write against wc and closes it; a Close failure is
// reported when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return write(wc)
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	addr := cmd.String("addr")
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.New(cfg, server.WithMaxCells(cmd.Int("max-cells")), server.WithMaxAttempts(cmd.Int("max-attempts"))),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api/dungeons", addr)
		log.Printf("WebSocket: ws://%s/ws", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Println("Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	return nil
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// stdout carries the protocol.
	log.SetOutput(os.Stderr)
	log.Println("MCP stdio server ready")

	return mcptool.New(server.New(cfg), Version).ServeStdio()
}
