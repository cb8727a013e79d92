package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/bloodnighttw/yap/internal/config"
	"github.com/bloodnighttw/yap/internal/logging"
	"github.com/bloodnighttw/yap/internal/proxy"
	"github.com/bloodnighttw/yap/internal/runtime"
	"github.com/bloodnighttw/yap/internal/term"
	"github.com/bloodnighttw/yap/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "yap:", err)
		os.Exit(1)
	}
}

func run() error {
	listen := flag.String("listen", "", "override the proxy listen address")
	noProxy := flag.Bool("no-proxy", false, "run without the demo proxy")
	flag.Parse()

	cfg, err := config.LoadUserConfig()
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Proxy.Listen = *listen
	}
	if *noProxy {
		cfg.Proxy.Enabled = false
	}

	closeLog, err := logging.Init(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := proxy.NewStore()
	app := ui.NewApp(store)

	terminal := term.New()
	if err := terminal.Start(); err != nil {
		return err
	}
	defer terminal.Stop()

	rt := runtime.New(app, cfg, terminal, terminal)

	if cfg.Proxy.Enabled {
		server := proxy.NewServer(cfg.Proxy.Listen, store, rt.Updater())
		go func() {
			if err := server.Run(ctx); err != nil {
				log.WithError(err).Error("proxy stopped")
			}
		}()
	}

	err = rt.Run(ctx)
	if err != nil {
		log.WithError(err).Error("runtime exited")
	}
	return err
}
