package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"corhoh/internal/config"
	"corhoh/internal/logging"
)

// pathFlags hold command-line overrides for the configured paths.
type pathFlags struct {
	metadata string
	textsDir string
	output   string
	index    string
}

type commandContext struct {
	configFlag *string
	paths      *pathFlags
	verbosity  *int

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag *string, paths *pathFlags, verbosity *int) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		paths:      paths,
		verbosity:  verbosity,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.configPath, c.configExists = resolved, exists
		if err := c.applyPathFlags(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyPathFlags(cfg *config.Config) error {
	if c.paths == nil {
		return nil
	}
	overrides := []struct {
		flag   string
		value  string
		target *string
	}{
		{"metadata", c.paths.metadata, &cfg.Paths.Metadata},
		{"texts-dir", c.paths.textsDir, &cfg.Paths.TextsDir},
		{"output", c.paths.output, &cfg.Paths.Output},
		{"index", c.paths.index, &cfg.Paths.Index},
	}
	for _, o := range overrides {
		value := strings.TrimSpace(o.value)
		if value == "" {
			continue
		}
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return fmt.Errorf("--%s: %w", o.flag, err)
		}
		*o.target = expanded
	}
	return nil
}

// logger builds the run logger. Every build gets its own run_id.
func (c *commandContext) logger(cfg *config.Config) (*slog.Logger, string, error) {
	count := 0
	if c.verbosity != nil {
		count = *c.verbosity
	}
	logger, err := logging.NewFromConfig(cfg, logging.VerbosityLevel(count))
	if err != nil {
		return nil, "", fmt.Errorf("init logger: %w", err)
	}
	runID := uuid.NewString()
	return logger.With(logging.String(logging.FieldRunID, runID)), runID, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
