//go:build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/appengine-ltd/seilespill/internal/gui"
	"github.com/appengine-ltd/seilespill/internal/logging"
	"github.com/appengine-ltd/seilespill/internal/settings"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		assetRoot   string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "settings file (default $"+settings.EnvPath+" or "+settings.DefaultPath+")")
	flag.StringVar(&assetRoot, "assets", "", "asset directory, overrides assets.root")
	flag.Parse()

	if showVersion {
		fmt.Printf("Seilespill %s (%s) %s\n", version, commit, date)
		return
	}

	path := settings.ResolvePath(configPath)
	cfg, err := settings.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if assetRoot != "" {
		cfg.Assets.Root = assetRoot
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("starting",
		zap.String("version", version),
		zap.String("settings", path),
		zap.String("assets", cfg.Assets.Root))

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Settings:  cfg,
		Log:       log,
	})
	if err := app.Run(); err != nil {
		log.Error("exit", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}
