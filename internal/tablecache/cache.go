// Package tablecache persists evaluator lookup tables on disk so later runs
// can skip enumerating every hand.
package tablecache

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokereval/internal/fileutil"
	"github.com/lox/pokereval/poker"
)

const (
	FlushFile    = "flush.csv"
	UnsuitedFile = "unsuited.csv"
)

// Cache reads and writes a lookup table under a directory. An empty
// directory disables persistence and every Load builds a fresh table.
type Cache struct {
	dir    string
	logger *log.Logger
	clock  quartz.Clock
}

// New returns a cache rooted at dir. A nil logger discards output and a
// nil clock uses the real clock.
func New(dir string, logger *log.Logger, clock quartz.Clock) *Cache {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Cache{
		dir:    dir,
		logger: logger.WithPrefix("tablecache"),
		clock:  clock,
	}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Load returns the cached table when it is present and valid, otherwise
// builds one and tries to store it. Failing to store is logged but not
// returned.
func (c *Cache) Load() (*poker.LookupTable, error) {
	if c.dir != "" {
		table, err := c.Read()
		switch {
		case err == nil:
			c.logger.Debug("Loaded lookup table", "dir", c.dir)
			return table, nil
		case errors.Is(err, fs.ErrNotExist):
			c.logger.Debug("No cached lookup table", "dir", c.dir)
		default:
			c.logger.Warn("Discarding unreadable lookup table", "dir", c.dir, "error", err)
		}
	}

	start := c.clock.Now()
	table, err := poker.NewLookupTable()
	if err != nil {
		return nil, err
	}
	c.logger.Info("Built lookup table",
		"flush", table.FlushLen(),
		"unsuited", table.UnsuitedLen(),
		"elapsed", c.clock.Since(start))

	if c.dir != "" {
		if err := c.Write(table); err != nil {
			c.logger.Warn("Failed to cache lookup table", "dir", c.dir, "error", err)
		}
	}
	return table, nil
}

// Read loads and validates the table files.
func (c *Cache) Read() (*poker.LookupTable, error) {
	flushPath, unsuitedPath := c.paths()

	flush, err := os.Open(flushPath)
	if err != nil {
		return nil, err
	}
	defer flush.Close()

	unsuited, err := os.Open(unsuitedPath)
	if err != nil {
		return nil, err
	}
	defer unsuited.Close()

	return poker.ReadLookupTable(flush, unsuited)
}

// Write stores table, replacing any previous files atomically.
func (c *Cache) Write(table *poker.LookupTable) error {
	if c.dir == "" {
		return errors.New("no cache directory configured")
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	flushPath, unsuitedPath := c.paths()
	if err := fileutil.WriteFileAtomic(flushPath, 0o644, table.WriteFlush); err != nil {
		return fmt.Errorf("write %s: %w", FlushFile, err)
	}
	if err := fileutil.WriteFileAtomic(unsuitedPath, 0o644, table.WriteUnsuited); err != nil {
		return fmt.Errorf("write %s: %w", UnsuitedFile, err)
	}
	c.logger.Debug("Wrote lookup table", "dir", c.dir)
	return nil
}

func (c *Cache) paths() (flush, unsuited string) {
	return filepath.Join(c.dir, FlushFile), filepath.Join(c.dir, UnsuitedFile)
}
