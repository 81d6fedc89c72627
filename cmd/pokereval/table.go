package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/pokereval/internal/config"
	"github.com/lox/pokereval/internal/tablecache"
	"github.com/lox/pokereval/poker"
)

// TableCmd groups lookup table maintenance commands.
type TableCmd struct {
	Write  TableWriteCmd  `cmd:"" help:"Build the lookup tables and write them to disk"`
	Verify TableVerifyCmd `cmd:"" help:"Check cached lookup tables against a fresh build"`
}

// TableWriteCmd writes flush.csv and unsuited.csv into a directory.
type TableWriteCmd struct {
	Dir string `arg:"" optional:"" type:"path" help:"Output directory (defaults to table_cache)"`
}

func (c *TableWriteCmd) Run(g *Globals) error {
	dir, logger, err := tableDir(g, c.Dir)
	if err != nil {
		return err
	}

	table, err := poker.NewLookupTable()
	if err != nil {
		return err
	}
	if err := tablecache.New(dir, logger, g.clock).Write(table); err != nil {
		return err
	}
	fmt.Fprintf(g.output(), "Wrote %d flush and %d unsuited entries to %s\n",
		table.FlushLen(), table.UnsuitedLen(), dir)
	return nil
}

// TableVerifyCmd reads cached tables and compares them to a fresh build.
type TableVerifyCmd struct {
	Dir string `arg:"" optional:"" type:"path" help:"Table directory (defaults to table_cache)"`
}

func (c *TableVerifyCmd) Run(g *Globals) error {
	dir, logger, err := tableDir(g, c.Dir)
	if err != nil {
		return err
	}

	cached, err := tablecache.New(dir, logger, g.clock).Read()
	if err != nil {
		return err
	}
	fresh, err := poker.NewLookupTable()
	if err != nil {
		return err
	}
	if !cached.Equal(fresh) {
		return fmt.Errorf("%w: tables in %s differ from a fresh build", poker.ErrCorruptTable, dir)
	}
	fmt.Fprintf(g.output(), "%s %s\n", winStyle.Render("OK"), dir)
	return nil
}

// tableDir resolves the table directory from the argument, the --cache
// flag or the config file, in that order.
func tableDir(g *Globals, dir string) (string, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return "", nil, err
	}
	logger := g.logger(cfg)

	switch {
	case dir != "":
	case g.Cache != "":
		dir = g.Cache
	case cfg.TableCache != "":
		dir = cfg.TableCache
	default:
		return "", nil, errors.New("no table directory given and table_cache is not configured")
	}
	return dir, logger, nil
}
