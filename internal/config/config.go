package config

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/homonym-flow/internal/catalog"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Correction  CorrectionConfig  `yaml:"correction"`
	Export      ExportConfig      `yaml:"export"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Ledger      LedgerConfig      `yaml:"ledger"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// CorrectionConfig controls the homonym engine. Rules are appended after the
// built-in groups.
type CorrectionConfig struct {
	Normalize bool                 `yaml:"normalize"`
	Rules     []catalog.Definition `yaml:"rules"`
}

type ExportConfig struct {
	Formats []string `yaml:"formats"`
	Title   string   `yaml:"title"`
}

type WhisperConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

// LedgerConfig selects where processed transcript fingerprints live. An empty
// RedisAddr keeps them in memory.
type LedgerConfig struct {
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	Key           string `yaml:"key"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

var supportedFormats = map[string]bool{"txt": true, "md": true, "docx": true, "xlsx": true}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Whisper.Enabled {
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required when whisper is enabled")
		}
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required when whisper is enabled")
		}
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative, got %d", c.Performance.MaxConcurrent)
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must not be negative, got %d", c.Whisper.Threads)
	}
	for i, f := range c.Export.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !supportedFormats[f] {
			return fmt.Errorf("export.formats[%d]: unsupported format %q", i, f)
		}
		c.Export.Formats[i] = f
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if len(c.Export.Formats) == 0 {
		c.Export.Formats = []string{"md"}
	}
	if c.Export.Title == "" {
		c.Export.Title = "Transcription"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Ledger.Key == "" {
		c.Ledger.Key = "homonym-flow:processed"
	}

	return nil
}
