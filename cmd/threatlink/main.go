package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/b1s/threatlink-client/internal/client"
	"github.com/b1s/threatlink-client/internal/config"
	"github.com/b1s/threatlink-client/internal/logging"
	"github.com/b1s/threatlink-client/internal/report"
	"github.com/b1s/threatlink-client/internal/sensor"
	"github.com/b1s/threatlink-client/internal/storage"
	"github.com/b1s/threatlink-client/internal/ui"
)

var version = "dev"

// services bundles everything the commands share
type services struct {
	cfg     *config.Config
	log     *zap.Logger
	cache   *storage.Cache
	backend *client.Backend
	deps    ui.Deps
}

// buildServices wires the client together from configuration
func buildServices() (*services, error) {
	cfg := config.Load()

	log, err := logging.New(cfg.LogPath)
	if err != nil {
		// Keep going with the no-op logger rather than refusing to start
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	cache, err := storage.Open(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local cache: %w", err)
	}

	backend := client.NewBackend(cfg.BackendURL, log)
	persist := client.NewPersist(cfg.PersistenceURL, cfg.PersistenceKey, log)
	drafts := report.NewDraftStore(storage.NewDraftStore(cache))

	svc := &services{
		cfg:     cfg,
		log:     log,
		cache:   cache,
		backend: backend,
		deps: ui.Deps{
			Cfg:         cfg,
			Log:         log,
			Backend:     backend,
			Submit:      report.NewService(persist, drafts),
			Drafts:      drafts,
			Locations:   storage.NewLocationStore(cache),
			LocProvider: sensor.NewExecLocationProvider(cfg.LocationCmd, cfg.FixTimeout),
			Orientation: sensor.NewExecOrientationProvider(cfg.OrientationCmd),
		},
	}
	return svc, nil
}

func (s *services) close() {
	if err := s.cache.Close(); err != nil {
		s.log.Warn("failed to close cache", zap.Error(err))
	}
	_ = s.log.Sync()
}

func main() {
	root := &cobra.Command{
		Use:   "threatlink",
		Short: "Terminal client for the ThreatLink threat-reporting network",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildServices()
			if err != nil {
				return err
			}
			defer svc.close()

			program := tea.NewProgram(ui.NewApp(svc.deps), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	root.AddCommand(newHeatmapCmd(), newCaptureCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
