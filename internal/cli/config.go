package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/jfdoradotr/navstack/pkg/errors"
)

// Storage backend names accepted in configuration.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendNull   = "null"
)

// Config selects and configures the storage backend.
// Loaded from ~/.config/navstack/config.toml; every field has a working
// default so the file is optional.
type Config struct {
	Backend string      `toml:"backend"`
	File    FileConfig  `toml:"file"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// FileConfig configures the file backend.
type FileConfig struct {
	// Path of the persisted path file.
	// Empty means ~/.local/share/navstack/path.json.
	Path string `toml:"path"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{Backend: BackendFile}
}

// configPath resolves the configuration file location.
// The NAVSTACK_CONFIG environment variable overrides the XDG default.
func configPath() (string, error) {
	if p := os.Getenv("NAVSTACK_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the configuration file, falling back to defaults when the
// file is absent. A malformed file is an error; silently ignoring it would
// send writes to an unexpected backend.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidBackend, err, "parse config %s", path)
	}

	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validateConfig checks the backend selection.
func validateConfig(cfg Config) error {
	switch cfg.Backend {
	case BackendFile, BackendMemory, BackendRedis, BackendMongo, BackendNull:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidBackend, "unknown backend %q (expected file, memory, redis, mongo, or null)", cfg.Backend)
}

// =============================================================================
// Config Command
// =============================================================================

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configPathCommand())

	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			printKeyValue("backend", cfg.Backend)
			switch cfg.Backend {
			case BackendFile:
				path := cfg.File.Path
				if path == "" {
					path = "(default: ~/.local/share/navstack/path.json)"
				}
				printKeyValue("file", path)
			case BackendRedis:
				printKeyValue("addr", cfg.Redis.Addr)
				printKeyValue("key", cfg.Redis.Key)
			case BackendMongo:
				printKeyValue("uri", cfg.Mongo.URI)
				printKeyValue("database", cfg.Mongo.Database)
				printKeyValue("collection", cfg.Mongo.Collection)
			}
			return nil
		},
	}
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}
