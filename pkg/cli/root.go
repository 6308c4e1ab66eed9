// Package cli wires configuration, logging, metrics and the item tree into
// the vfstug command line: the interactive explorer plus scriptable subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"strings"

	"github.com/datatug/vfstug/pkg/commands"
	"github.com/datatug/vfstug/pkg/explorer"
	"github.com/datatug/vfstug/pkg/items"
	"github.com/datatug/vfstug/pkg/logging"
	"github.com/datatug/vfstug/pkg/metrics"
	"github.com/datatug/vfstug/pkg/profiling"
	"github.com/datatug/vfstug/pkg/session"
	"github.com/datatug/vfstug/pkg/vfsconfig"
	"github.com/datatug/vfstug/pkg/vfsstate"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type App struct {
	ConfigFile string
	CPUProfile string
	MemProfile string
	PprofAddr  string

	v *viper.Viper
}

var httpListenAndServe = http.ListenAndServe

var runExplorer = func(ex *explorer.Explorer) error {
	return ex.Run()
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "vfstug",
		Short:        "In-memory file explorer",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the demo tree
  vfstug

  # Browse a tree described in YAML
  vfstug --seed ~/trees/work.yaml

  # Apply a command script and print the resulting tree
  vfstug run reorganize.yaml --print-tree
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		app.v = vfsconfig.New(app.ConfigFile)
		for key, flag := range map[string]string{
			"seed_file":    "seed",
			"metrics_addr": "metrics",
		} {
			if err := app.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
				return err
			}
		}
		return nil
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.ConfigFile, "config", "", "config file (default ~/.vfstug/config.yaml)")
	flags.String("seed", "", "YAML or JSON file describing the initial tree (default: demo tree)")
	flags.String("metrics", "", "serve Prometheus metrics on `address` (e.g. localhost:9090)")
	cmd.Flags().StringVar(&app.CPUProfile, "cpuprofile", "", "write cpu profile to `file`")
	cmd.Flags().StringVar(&app.MemProfile, "memprofile", "", "write memory profile to `file`")
	cmd.Flags().StringVar(&app.PprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")

	cmd.AddCommand(newTreeCmd(app))
	cmd.AddCommand(newRunCmd(app))

	return cmd
}

// env is everything a command needs once the config has been read.
type env struct {
	cfg        vfsconfig.Config
	logger     *zap.Logger
	metrics    *metrics.Collector
	dispatcher *commands.Dispatcher
	// seedName keys the saved explorer state.
	seedName string
}

func (app *App) load() (*env, error) {
	cfg, err := vfsconfig.Load(app.v)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	collector := metrics.New(cfg.MetricsAddr != "")

	seed, seedName, err := vfsconfig.LoadSeed(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	store, err := items.Load(seed,
		items.WithLogger(logger),
		items.WithObserver(collector.SetItems),
		items.WithTouchOnMutation(cfg.TouchOnMutation),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree from %s: %w", seedName, err)
	}
	collector.SetItems(store.Len())
	logger.Debug("tree loaded", zap.String("seed", seedName), zap.Int("items", store.Len()))

	s := session.New(store,
		session.WithClearSelectionOnNavigate(cfg.ClearSelectionOnNavigate),
		session.WithLogger(logger),
	)
	d := commands.NewDispatcher(s,
		commands.WithLogger(logger),
		commands.WithRecorder(collector),
	)
	return &env{cfg: cfg, logger: logger, metrics: collector, dispatcher: d, seedName: seedName}, nil
}

func (e *env) close() {
	_ = e.logger.Sync()
}

// serveMetrics exposes the collector on the configured address until the process exits.
func (e *env) serveMetrics() {
	if e.cfg.MetricsAddr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.metrics.Handler())
	go func() {
		if err := httpListenAndServe(e.cfg.MetricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.logger.Error("metrics server failed", zap.String("addr", e.cfg.MetricsAddr), zap.Error(err))
		}
	}()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runTUI(cmd *cobra.Command, app *App) error {
	e, err := app.load()
	if err != nil {
		return err
	}
	defer e.close()

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	if app.PprofAddr != "" {
		go func() {
			if err := httpListenAndServe(app.PprofAddr, nil); err != nil {
				e.logger.Error("pprof server failed", zap.String("addr", app.PprofAddr), zap.Error(err))
			}
		}()
	}
	if app.CPUProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(app.CPUProfile, e.logger)
		defer stopCPUProfiling()
	}
	if app.MemProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(ctx, app.MemProfile, e.logger)
		defer stopMemProfiling()
	}
	e.serveMetrics()

	vfsstate.SetDir(e.cfg.StateDir)
	vfsstate.SetLogger(e.logger)
	state, err := vfsstate.GetState(e.seedName)
	if err != nil {
		e.logger.Warn("failed to read saved state", zap.Error(err))
	}
	if id := state.CurrentFolderID; id != "" {
		if err := e.dispatcher.Session().SetCurrentFolder(id); err != nil {
			e.logger.Debug("saved folder is gone", zap.String("id", id), zap.Error(err))
		}
	}

	opts := []explorer.Option{
		explorer.WithLogger(e.logger),
		explorer.WithTreeCursor(state.SelectedFolderID),
		explorer.OnFolderChanged(func(folderID string) {
			vfsstate.SaveCurrentFolder(e.seedName, folderID)
		}),
		explorer.OnTreeCursorChanged(func(folderID string) {
			vfsstate.SaveSelectedFolder(e.seedName, folderID)
		}),
	}
	if e.cfg.SortByName {
		opts = append(opts, explorer.WithSortByName(e.cfg.LanguageTag()))
	}
	return runExplorer(explorer.New(tview.NewApplication(), e.dispatcher, opts...))
}
