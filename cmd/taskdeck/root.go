package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taskdeck/internal/config"
	"taskdeck/internal/logging"
	"taskdeck/internal/query"
	"taskdeck/internal/storage"
	"taskdeck/internal/store"
	"taskdeck/internal/task"
	"taskdeck/internal/ui"
	"taskdeck/internal/view"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "A terminal to-do list",
	Long:  "taskdeck manages a local task list. Run without arguments for the interactive UI, or use subcommands for scripting.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()
		return ui.Run(ui.Deps{
			Tasks:    a.tasks,
			Criteria: a.criteria,
			Settings: a.settings,
			Queries:  a.queries,
			Derived:  a.derived,
			Cfg:      a.cfg,
		})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
}

type app struct {
	cfg      config.Config
	db       *storage.Store
	log      *zap.Logger
	tasks    *store.TaskStore
	criteria *store.CriteriaStore
	settings *store.SettingsStore
	queries  *query.Queries
	derived  *view.Derived
}

// openApp wires config, durable storage, logger, stores, and the derived
// view, in the same order the TUI and every subcommand need them.
func openApp() (*app, error) {
	path := configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogPath)
	tasks := store.NewTaskStore(db, log)
	criteria := store.NewCriteriaStore()
	criteria.SetSort(task.Sort{
		Field: task.SortField(cfg.DefaultSort),
		Order: task.SortOrder(cfg.DefaultOrder),
	})
	settings := store.NewSettingsStore(db, log)

	return &app{
		cfg:      cfg,
		db:       db,
		log:      log,
		tasks:    tasks,
		criteria: criteria,
		settings: settings,
		queries:  query.New(tasks),
		derived:  view.NewDerived(tasks, criteria),
	}, nil
}

func (a *app) close() {
	a.log.Sync()
	a.db.Close()
}
