package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	OutputDir          string        `json:"output_dir" yaml:"output_dir"`
	Filename           string        `json:"filename" yaml:"filename"`
	NoticeDuration     time.Duration `json:"notice_duration" yaml:"notice_duration"`
	LogLevel           string        `json:"log_level" yaml:"log_level"`
	LogFile            string        `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	DefaultMessageType MessageType   `json:"default_message_type" yaml:"default_message_type"`
	ClipboardTTY       string        `json:"clipboard_tty,omitempty" yaml:"clipboard_tty,omitempty"`
}

// MaxFilenameBytes leaves room for the staging prefix and suffix within
// the usual 255-byte file name limit.
const MaxFilenameBytes = 200

var DefaultConfig = Config{
	OutputDir:          ".",
	Filename:           "swift-message.txt",
	NoticeDuration:     2 * time.Second,
	LogLevel:           "info",
	DefaultMessageType: MT940,
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputDir == "" {
		c.OutputDir = DefaultConfig.OutputDir
	}

	if c.Filename == "" {
		c.Filename = DefaultConfig.Filename
	}
	if strings.ContainsAny(c.Filename, `/\`) || c.Filename == "." || c.Filename == ".." {
		return &ConfigError{Field: "filename", Message: "must be a bare file name, not a path"}
	}
	if len(c.Filename) > MaxFilenameBytes {
		return &ConfigError{Field: "filename", Message: fmt.Sprintf("must be at most %d bytes", MaxFilenameBytes)}
	}

	if c.NoticeDuration <= 0 {
		c.NoticeDuration = DefaultConfig.NoticeDuration
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig.LogLevel
	}
	if _, err := c.SlogLevel(); err != nil {
		return &ConfigError{Field: "log_level", Message: err.Error()}
	}

	if c.DefaultMessageType == "" {
		c.DefaultMessageType = DefaultConfig.DefaultMessageType
	}
	c.DefaultMessageType = MessageType(strings.ToUpper(string(c.DefaultMessageType)))
	if !IsComposable(c.DefaultMessageType) {
		return &ConfigError{Field: "default_message_type", Message: fmt.Sprintf("unsupported message type %q", c.DefaultMessageType)}
	}

	return nil
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
