package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mbs/inventory/internal/config"
	"mbs/inventory/internal/container"

	log "github.com/sirupsen/logrus"
)

type app struct {
	configFile string
	session    string
	password   string

	*container.Container
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "mbs-inventory",
		Short:         "Browse, price and edit the MBS roofing supply catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.Container != nil {
				return a.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default ./config.yaml)")
	root.PersistentFlags().StringVarP(&a.session, "session", "s", "default", "browsing session to resume")
	root.PersistentFlags().StringVar(&a.password, "password", "", "admin password for edit commands")

	root.AddCommand(
		a.seedCommand(),
		a.browseCommand(),
		a.addCommand(),
		a.quoteCommand(),
		a.stockCommand(),
		a.editCommand(),
		a.historyCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warnf("⚠️ Unknown log level %q, using info", cfg.Log.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.Debug("Configuration loaded successfully")

	c, err := container.New(ctx, cfg)
	if err != nil {
		return err
	}
	a.Container = c
	return nil
}

// unlock opens the edit gate with the --password flag.
func (a *app) unlock() {
	if a.password != "" && !a.Editor.Gate().Unlock(a.password) {
		log.Warn("🔒 Wrong admin password, edit mode stays locked")
	}
}
