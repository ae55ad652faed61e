package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.Metadata == "" {
		return errors.New("paths.metadata must be set")
	}
	if c.Paths.TextsDir == "" {
		return errors.New("paths.texts_dir must be set")
	}
	if c.Paths.Output == "" {
		return errors.New("paths.output must be set")
	}
	if filepath.Clean(c.Paths.Output) == filepath.Clean(c.Paths.Metadata) {
		return errors.New("paths.output must differ from paths.metadata")
	}
	if c.Paths.Index != "" && filepath.Clean(c.Paths.Index) == filepath.Clean(c.Paths.Output) {
		return errors.New("paths.index must differ from paths.output")
	}
	return nil
}

func (c *Config) validateCorpus() error {
	if c.Corpus.ProgressInterval < 0 {
		return errors.New("corpus.progress_interval must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
