package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnvOverrides()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnvOverrides() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"CORHOH_METADATA", &c.Paths.Metadata},
		{"CORHOH_TEXTS_DIR", &c.Paths.TextsDir},
		{"CORHOH_OUTPUT", &c.Paths.Output},
	}
	for _, o := range overrides {
		if value, ok := os.LookupEnv(o.env); ok && strings.TrimSpace(value) != "" {
			*o.target = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Metadata) == "" {
		c.Paths.Metadata = defaultMetadataPath
	}
	if c.Paths.Metadata, err = expandPath(strings.TrimSpace(c.Paths.Metadata)); err != nil {
		return fmt.Errorf("paths.metadata: %w", err)
	}
	if strings.TrimSpace(c.Paths.TextsDir) == "" {
		c.Paths.TextsDir = defaultTextsDir
	}
	if c.Paths.TextsDir, err = expandPath(strings.TrimSpace(c.Paths.TextsDir)); err != nil {
		return fmt.Errorf("paths.texts_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		c.Paths.Output = defaultOutputPath
	}
	if c.Paths.Output, err = expandPath(strings.TrimSpace(c.Paths.Output)); err != nil {
		return fmt.Errorf("paths.output: %w", err)
	}
	if c.Paths.Index, err = expandPath(strings.TrimSpace(c.Paths.Index)); err != nil {
		return fmt.Errorf("paths.index: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
}
