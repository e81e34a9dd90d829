package main

import (
	"compress/gzip"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/xraph/dispatch/config"
	"github.com/xraph/dispatch/middleware"
	"github.com/xraph/dispatch/server"
	"github.com/xraph/dispatch/service"
)

// CLI is the command line interface of the example binary.
type CLI struct {
	Serve   Serve            `kong:"cmd,default='1',help='Start the HTTP server.'"`
	Config  ConfigCmd        `kong:"cmd,help='Print the effective configuration.'"`
	Version kong.VersionFlag `kong:"help='Output version and exit.'"`

	ConfigFile string `kong:"name='config',short='c',type='path',help='Path to a YAML configuration file.'"`
	Addr       string `kong:"help='Override server.addr.'"`
	Backend    string `kong:"enum=',std,chi,httprouter,bunrouter',default='',help='Override server.backend.'"`
}

func (c *CLI) load() (config.Config, error) {
	cfg := config.Default()
	if c.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(c.ConfigFile); err != nil {
			return config.Config{}, err
		}
	}
	if c.Addr != "" {
		cfg.Server.Addr = c.Addr
	}
	if c.Backend != "" {
		cfg.Server.Backend = c.Backend
	}
	return cfg, cfg.Validate()
}

// Serve starts the server and stops it on SIGINT or SIGTERM.
type Serve struct {
	CreatesPerSecond float64 `kong:"default='5',help='Note creations allowed per client per second.'"`
	NoCompress       bool    `kong:"help='Disable gzip response compression.'"`
}

func (s *Serve) Run(cli *CLI) error {
	cfg, err := cli.load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	layers := []service.Layer{middleware.CORS(middleware.DefaultCORSConfig())}
	if !s.NoCompress {
		layers = append(layers, middleware.Compress(gzip.DefaultCompression))
	}

	srv, err := server.New(ctx, cfg, server.WithLayers(layers...), server.WithBanner(os.Stdout))
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(rate.Limit(s.CreatesPerSecond), int(s.CreatesPerSecond)+1, 10*time.Minute)
	mountNotes(srv, newNoteStore(), limiter)

	return srv.Run(ctx)
}

// ConfigCmd prints the configuration after defaults, file and flags.
type ConfigCmd struct{}

func (c *ConfigCmd) Run(cli *CLI) error {
	cfg, err := cli.load()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
