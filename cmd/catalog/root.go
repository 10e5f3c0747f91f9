package main

import (
	"fmt"
	"log/slog"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/logging"
	"bookcatalog/internal/seed"

	"github.com/spf13/cobra"
)

type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg, logger: logging.Discard()}

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Browse a validated in-memory book catalog",
		Long:          `catalog builds an in-memory catalog of plain, digital and printed works and runs searches and filters against it.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.logger, err = logging.New(cmd.ErrOrStderr(), level, a.cfg.LogFormat)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&a.cfg.CatalogName, "name", "n", cfg.CatalogName,
		"catalog name (env CATALOG_NAME)")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel,
		"log level: debug, info, warn or error (env LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.cfg.LogFormat, "log-format", cfg.LogFormat,
		"log format: text or json (env LOG_FORMAT)")

	root.AddCommand(
		a.newListCmd(),
		a.newSearchCmd(),
		a.newByAuthorCmd(),
		a.newCheckISBNCmd(),
		a.newDemoCmd(),
	)
	return root
}

// seededCatalog returns a catalog named after the configuration and
// holding the sample classics.
func (a *app) seededCatalog() (*catalog.Catalog, error) {
	c, err := catalog.New(a.cfg.CatalogName, catalog.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("create catalog: %w", err)
	}
	if err := seed.Load(c, catalog.NewBuilder(a.logger), seed.Classics); err != nil {
		return nil, err
	}
	return c, nil
}
