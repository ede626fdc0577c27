// Command seller is a terminal console for triaging sales leads and
// tracking the opportunities converted from them. All data lives in a
// local SQLite file; the "backend" is simulated latency and failures.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sellerconsole/cmd/seller/app"
	"sellerconsole/cmd/seller/config"
	"sellerconsole/cmd/seller/ui"
	"sellerconsole/internal/console"
	"sellerconsole/internal/logging"
	"sellerconsole/internal/seed"
	"sellerconsole/internal/storage"
	"sellerconsole/internal/types"
)

var version = "0.3.0"

var (
	flagSeedFile  string
	flagEphemeral bool
	flagTheme     string
	flagDebug     bool
	flagYes       bool
)

func main() {
	root := &cobra.Command{
		Use:   "seller",
		Short: "Lead triage and opportunity console",
		Long: `seller is an interactive console for working a queue of sales leads:
search and sort them, edit contact details, and convert qualified leads
into opportunities. Edits apply immediately and roll back if the
simulated backend rejects them.`,
		RunE: runConsole,
	}
	root.Flags().StringVar(&flagSeedFile, "seed", "", "seed leads from a JSON or YAML file instead of the built-in set")
	root.Flags().BoolVar(&flagEphemeral, "ephemeral", false, "keep all data in memory, nothing is persisted")
	root.PersistentFlags().StringVar(&flagTheme, "theme", "", "color theme: light or dark (default: auto-detect)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all saved data and return to the seed",
		RunE:  runReset,
	}
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip the confirmation prompt")
	root.AddCommand(resetCmd)

	root.AddCommand(&cobra.Command{
		Use:   "seed [file]",
		Short: "Validate a seed file without starting the console",
		Args:  cobra.ExactArgs(1),
		RunE:  runSeedCheck,
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("seller %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagDebug {
		cfg.DebugLogging = true
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}
	if err := logging.Init(dir, cfg.DebugLogging); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer logging.Sync()

	log := logging.Get(logging.CategoryBoot)
	log.Infow("starting seller console", "version", version, "data_dir", dir)

	kv, err := openBackend(dir)
	if err != nil {
		return err
	}
	defer kv.Close()

	seedLeads, err := loadSeed()
	if err != nil {
		return err
	}

	c := console.New(kv, console.Options{
		Seed:     seedLeads,
		LoadOpts: cfg.LoadOptions(),
		Calls:    cfg.CallConfig(),
	})

	theme := ui.DetectTheme()
	if cfg.Theme != "" {
		theme = ui.ThemeByName(cfg.Theme)
	}
	model := app.New(c, ui.NewStyles(theme))

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Errorw("console exited with error", "error", err)
		return err
	}
	log.Infow("console exited")
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	if !flagYes {
		fmt.Print("Discard all saved leads and opportunities? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}
	if err := logging.Init(dir, flagDebug); err == nil {
		defer logging.Sync()
	}
	kv, err := openBackend(dir)
	if err != nil {
		return err
	}
	defer kv.Close()

	// Dropping the canonical lists is enough: the next start re-imports
	// the seed. View preferences survive a reset.
	storage.Remove(kv, storage.KeyLeads)
	storage.Remove(kv, storage.KeyOpps)
	fmt.Println("Data cleared. The console will reload the seed on next start.")
	return nil
}

func runSeedCheck(cmd *cobra.Command, args []string) error {
	seedLeads, err := seed.FromFile(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("OK: %d leads\n", len(seedLeads))
	return nil
}

func openBackend(dir string) (storage.KV, error) {
	if flagEphemeral {
		return storage.NewMemoryKV(), nil
	}
	kv, err := storage.OpenSQLite(filepath.Join(dir, "seller.db"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return kv, nil
}

func loadSeed() ([]types.Lead, error) {
	if flagSeedFile != "" {
		return seed.FromFile(flagSeedFile)
	}
	return seed.Leads()
}
