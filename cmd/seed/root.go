package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"bookshelf-api/internal/config"
	"bookshelf-api/pkg/container"
	"bookshelf-api/pkg/logger"
)

type seedFlags struct {
	driver      string
	mongoURL    string
	databaseURL string
	wipeBooks   bool
}

func newRootCommand() *cobra.Command {
	var flags seedFlags

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the catalog to the sample authors and books",
		Long: `Seed deletes the stored authors (and, unless --wipe-books=false, the stored books)
and inserts the sample catalog: two authors and three books owned by the second one.

Connection settings come from the environment (STORE_DRIVER, MONGO_URL, DATABASE_URL);
flags override them.`,
		Example: `  seed
  seed --driver postgres --database-url postgres://localhost:5432/books
  seed --wipe-books=false`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, &flags)
		},
	}

	cmd.Flags().StringVar(&flags.driver, "driver", "", "store driver: mongo, postgres, memory (default from STORE_DRIVER)")
	cmd.Flags().StringVar(&flags.mongoURL, "mongo-url", "", "MongoDB connection string (default from MONGO_URL)")
	cmd.Flags().StringVar(&flags.databaseURL, "database-url", "", "PostgreSQL connection string (default from DATABASE_URL)")
	cmd.Flags().BoolVar(&flags.wipeBooks, "wipe-books", true, "delete existing books as well as authors")

	return cmd
}

// applyFlags overrides cfg with the flags that were set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *seedFlags) error {
	if cmd.Flags().Changed("driver") {
		cfg.Store.Driver = flags.driver
	}
	if cmd.Flags().Changed("mongo-url") {
		cfg.Store.MongoURL = flags.mongoURL
	}
	if cmd.Flags().Changed("database-url") {
		cfg.Store.PostgresURL = flags.databaseURL
	}
	if cmd.Flags().Changed("wipe-books") {
		cfg.Seed.WipeBooks = flags.wipeBooks
	}
	return cfg.Validate()
}

func runSeed(cmd *cobra.Command, flags *seedFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.App.Environment, cfg.Log.Level)

	if err := applyFlags(cmd, cfg, flags); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	c, err := container.NewContainer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	res, err := c.Seeder.Seed(cmd.Context())
	if err != nil {
		return err
	}

	for _, a := range res.Authors {
		log.Info().Str("id", a.ID.Hex()).Str("name", a.Name).Msg("Author created")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d authors and %d books\n", len(res.Authors), len(res.Books))
	return nil
}
