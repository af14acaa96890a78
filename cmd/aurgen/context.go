package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"aurgen/internal/config"
	"aurgen/internal/history"
	"aurgen/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg)
}

// openHistory opens the ledger when enabled. A degraded open is reported on
// stderr and returns a nil store; generation proceeds without the ledger.
func (c *commandContext) openHistory() *history.Store {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil || !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: generation history unavailable: %v\n", err)
		return nil
	}
	return store
}
