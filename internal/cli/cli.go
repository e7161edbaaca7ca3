package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jfdoradotr/navstack/pkg/buildinfo"
	"github.com/jfdoradotr/navstack/pkg/errors"
	"github.com/jfdoradotr/navstack/pkg/navstore"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "navstack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "navstack",
		Short:        "Navstack demonstrates persisted stack navigation",
		Long:         `Navstack is a tutorial CLI around a persisted navigation-path store: an ordered stack of screen identifiers that survives relaunches. It ships interactive demos for each navigation pattern plus commands to inspect and mutate the persisted path.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Storage Factory
// =============================================================================

// newStorage builds the storage backend selected by the configuration.
func newStorage(ctx context.Context, cfg Config) (navstore.Storage, error) {
	switch cfg.Backend {
	case BackendFile:
		return navstore.NewFileStorage(cfg.File.Path)
	case BackendMemory:
		return navstore.NewMemoryStorage(), nil
	case BackendNull:
		return navstore.NewNullStorage(), nil
	case BackendRedis:
		return navstore.NewRedisStorage(ctx, navstore.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
		})
	case BackendMongo:
		return navstore.NewMongoStorage(ctx, navstore.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	}
	return nil, errors.New(errors.ErrCodeInvalidBackend, "unknown backend %q", cfg.Backend)
}

// newStore builds a PathStore over the configured backend.
// The initial load happens here; a missing or corrupt persisted path
// silently yields the empty path.
func (c *CLI) newStore(ctx context.Context, cfg Config) (*navstore.PathStore, error) {
	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return navstore.New(ctx, storage, navstore.WithLogger(c.Logger)), nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/navstack/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
