package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/compiler/gen"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/config"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql/schema"
)

// app holds the persistent flags and the resources shared by commands.
type app struct {
	root        string
	config      string
	debug       bool
	catalogOnly bool
	workers     int

	log *zap.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate Laravel CRUD artifacts from a table schema",
		Long: `scaffold reads the columns and foreign keys of a model's table and
generates the API resource, form requests, repository, service, policy,
controller, exports and feature test of the model. It also patches the
model class and registers the API routes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(a.debug)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.root, "root", ".", "Laravel project root")
	cmd.PersistentFlags().StringVar(&a.config, "config", "", "settings file (default <root>/"+config.DefaultFile+")")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "development logging to stderr")
	cmd.PersistentFlags().BoolVar(&a.catalogOnly, "catalog-only", false, "introspect through catalog queries only")
	cmd.PersistentFlags().IntVar(&a.workers, "workers", 0, "stubs rendered in parallel (default GOMAXPROCS)")

	cmd.AddCommand(
		generateCmd(a),
		triggerCmd(a),
		initCmd(a),
		watchCmd(a),
		serveCmd(a),
	)
	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if debug {
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stderr"}
		log, err = z.Build()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

func (a *app) settings() (*config.Settings, error) {
	return config.Load(a.root, a.config)
}

// scaffolder opens the project database and returns a Scaffolder over it.
// The returned func closes the database.
func (a *app) scaffolder(extra ...gen.Option) (*gen.Scaffolder, *config.Settings, func(), error) {
	s, err := a.settings()
	if err != nil {
		return nil, nil, nil, err
	}
	d, dsn, err := s.DSN()
	if err != nil {
		return nil, nil, nil, err
	}
	drv, err := sql.Open(d, dsn)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open %s database: %w", d, err)
	}
	closeDB := func() { _ = drv.Close() }

	iopts := []schema.InspectOption{schema.WithLogger(a.log)}
	if a.catalogOnly || s.File.CatalogOnly {
		iopts = append(iopts, schema.WithCatalogOnly())
	}
	insp, err := schema.NewInspector(drv, iopts...)
	if err != nil {
		closeDB()
		return nil, nil, nil, err
	}
	opts := append(s.Options(), gen.WithLogger(a.log))
	sc, err := gen.NewScaffolder(insp, append(opts, extra...)...)
	if err != nil {
		closeDB()
		return nil, nil, nil, err
	}
	workers := a.workers
	if workers <= 0 {
		workers = s.File.Workers
	}
	sc.WithWorkers(workers)
	return sc, s, closeDB, nil
}
