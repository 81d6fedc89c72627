package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokereval/internal/config"
	"github.com/lox/pokereval/internal/tablecache"
	"github.com/lox/pokereval/poker"
)

// Globals are flags shared by every command.
type Globals struct {
	Config string `short:"c" default:"pokereval.hcl" type:"path" help:"Path to HCL config file"`
	Debug  bool   `help:"Enable debug logging"`
	Cache  string `type:"path" help:"Lookup table cache directory, overrides table_cache"`

	stdout io.Writer
	stderr io.Writer
	clock  quartz.Clock
}

type env struct {
	cfg       *config.Config
	logger    *log.Logger
	cache     *tablecache.Cache
	evaluator *poker.Evaluator
	out       io.Writer
}

// setup loads configuration and the lookup table.
func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Cache != "" {
		cfg.TableCache = g.Cache
	}

	logger := g.logger(cfg)
	logger.Debug("Loaded config", "path", g.Config, "workers", cfg.Workers, "table_cache", cfg.TableCache)

	cache := tablecache.New(cfg.TableCache, logger, g.clock)
	table, err := cache.Load()
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:       cfg,
		logger:    logger,
		cache:     cache,
		evaluator: poker.NewEvaluatorWithTable(table),
		out:       g.output(),
	}, nil
}

func (g *Globals) logger(cfg *config.Config) *log.Logger {
	w := g.stderr
	if w == nil {
		w = os.Stderr
	}
	logger := log.New(w)
	logger.SetLevel(cfg.Level())
	if g.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func (g *Globals) output() io.Writer {
	if g.stdout == nil {
		return os.Stdout
	}
	return g.stdout
}
