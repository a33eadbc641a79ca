package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	cfg := loadConfig()
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&cfg).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("❌ pav failed")
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "pav",
		Short:         "AFL player ratings (PAV) dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "ratings CSV export")
	flags.IntVar(&cfg.Season, "season", cfg.Season, "season year, selects the PlayerRatings<season> table")
	flags.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "database driver: sqlite or postgres")
	flags.StringVar(&cfg.DBDSN, "dsn", cfg.DBDSN, "database file or connection string")

	root.AddCommand(newServeCmd(cfg), newLoadCmd(cfg))
	return root
}

func newServeCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			table, err := loadTable(ctx, *cfg)
			if err != nil {
				return err
			}

			d, err := newDashboard(table, cfg.Season)
			if err != nil {
				return err
			}
			if cfg.Source == sourceDB {
				s, err := openStore(*cfg)
				if err != nil {
					return err
				}
				defer s.Close()
				d.db = s
			}
			return serve(ctx, cfg.addr(), d.routes(cfg.CORSOrigins))
		},
	}

	cmd.Flags().StringVar(&cfg.Source, "source", cfg.Source, "where to read ratings from: csv or db")
	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "listen port")
	return cmd
}

func newLoadCmd(cfg *Config) *cobra.Command {
	var appendRows bool

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the ratings CSV into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runLoad(cmd.Context(), *cfg, appendRows)
			return err
		},
	}

	cmd.Flags().BoolVar(&appendRows, "append", false, "append rows instead of replacing the table")
	return cmd
}
