// Package cli implements blogctl, the operator commands that run against
// the blog store outside the web server.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/polidog/web/internal/config"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/repository"
)

// Global setting keys. Each can come from a flag, the environment or a
// config file, in that order of precedence.
const (
	configFileKey   = "config"
	envKey          = "env"
	databaseURLKey  = "database-url"
	databasePathKey = "database-path"
	timezoneKey     = "timezone"
	logLevelKey     = "log-level"
)

var envNames = map[string]string{
	envKey:          "APP_ENV",
	databaseURLKey:  "DATABASE_URL",
	databasePathKey: "DATABASE_PATH",
	timezoneKey:     "BLOG_TIMEZONE",
	logLevelKey:     "LOG_LEVEL",
}

type app struct {
	v *viper.Viper
}

// NewRootCommand builds blogctl with all of its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "blogctl",
		Short: "Manage the blog store from the command line",
		Long: `blogctl runs maintenance tasks against the same store the server uses.

The store is chosen like the server does: production runs with DATABASE_URL
use PostgreSQL, everything else uses the SQLite file at DATABASE_PATH.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.readConfigFile,
	}

	flags := root.PersistentFlags()
	flags.String(configFileKey, "", "Config file (toml, yaml or json) with the global settings")
	flags.String(envKey, config.EnvDevelopment, "Application environment (development, production, test)")
	flags.String(databaseURLKey, "", "PostgreSQL URL, used in production")
	flags.String(databasePathKey, "./blog.db", "SQLite database file")
	flags.String(timezoneKey, "Asia/Tokyo", "Time zone for front matter dates without an offset")
	flags.String(logLevelKey, "info", "Log level (debug, info, warn, error)")

	if err := bindSettings(a.v, flags); err != nil {
		panic(err)
	}

	root.AddCommand(a.newCreateUserCommand())
	root.AddCommand(a.newImportCommand())
	root.AddCommand(a.newMigrateCommand())
	return root
}

// bindSettings ties every global setting to its flag and environment
// variable.
func bindSettings(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, env := range envNames {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	if err := v.BindPFlag(configFileKey, flags.Lookup(configFileKey)); err != nil {
		return fmt.Errorf("bind flag %s: %w", configFileKey, err)
	}
	return nil
}

// readConfigFile merges the --config file, then installs the logger so a
// log level from the file applies.
func (a *app) readConfigFile(cmd *cobra.Command, _ []string) error {
	path := a.v.GetString(configFileKey)
	if path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			logger.SetLogger(logger.New(cmd.ErrOrStderr(), a.v.GetString(logLevelKey), "text"))
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	logger.SetLogger(logger.New(cmd.ErrOrStderr(), a.v.GetString(logLevelKey), "text"))
	if path != "" {
		logger.Debug("Loaded config file", "path", a.v.ConfigFileUsed())
	}
	return nil
}

// config resolves the global settings on top of the environment.
func (a *app) config() (*config.Config, error) {
	cfg := config.FromEnv()
	cfg.Env = strings.ToLower(a.v.GetString(envKey))
	cfg.DatabaseURL = a.v.GetString(databaseURLKey)
	cfg.DatabasePath = a.v.GetString(databasePathKey)
	cfg.Timezone = a.v.GetString(timezoneKey)
	if err := cfg.ValidateStore(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the configured store, migrating it when migrate is set.
func (a *app) openStore(ctx context.Context, migrate bool) (repository.Store, *config.Config, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, nil, err
	}
	store, err := repository.Open(ctx, cfg, migrate)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}
