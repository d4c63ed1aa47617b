package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/buildinfo"
	"github.com/spendlog-dev/spendlog/internal/categories"
	"github.com/spendlog-dev/spendlog/internal/config"
	"github.com/spendlog-dev/spendlog/internal/ledger"
	"github.com/spendlog-dev/spendlog/internal/logging"
	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/session"
)

const emptyStoreMsg = "No transactions found. Add some transactions first!"

// app is the state shared by every subcommand, resolved once from the
// persistent flags and the config file before the command runs.
type app struct {
	configPath string
	storePath  string
	verbose    bool

	cfg     *config.Config
	store   *ledger.Store
	catalog *categories.Catalog
	log     zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it starts the interactive menu.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "spendlog",
		Short:   "Personal expense tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMenu(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultFile, "config file")
	flags.StringVar(&a.storePath, "store", "", "transactions CSV file (overrides config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(
		newInitCommand(a),
		newAddCommand(a),
		newListCommand(a),
		newSummaryCommand(a),
		newChartCommand(a),
		newAdviseCommand(a),
		newExportCommand(a),
		newImportCommand(a),
		newMenuCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.log = logging.New(cmd.ErrOrStderr(), a.verbose)

	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("store") {
		cfg.Store.Path = a.storePath
	}
	a.cfg = cfg
	a.store = ledger.NewStore(cfg.Store.Path)
	a.catalog = categories.NewCatalog(cfg.Categories)

	a.log.Debug().Str("config", a.configPath).Str("store", cfg.Store.Path).Msg("configuration loaded")
	return nil
}

// load makes sure the store exists and reads every transaction from it.
func (a *app) load() ([]model.Transaction, error) {
	if _, err := a.store.Initialize(); err != nil {
		return nil, err
	}
	txs, err := a.store.ReadAll()
	if err != nil {
		a.log.Error().Err(err).Str("path", a.store.Path()).Msg("reading store")
		return nil, err
	}
	a.log.Debug().Int("rows", len(txs)).Str("path", a.store.Path()).Msg("store read")
	return txs, nil
}

func (a *app) runMenu(cmd *cobra.Command) error {
	s := session.New(session.Options{
		Store:     a.store,
		Catalog:   a.catalog,
		ChartPath: a.cfg.Chart.Path,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Log:       a.log,
		NoColor:   color.NoColor,
	})
	return s.Run()
}

func newMenuCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMenu(cmd)
		},
	}
}
