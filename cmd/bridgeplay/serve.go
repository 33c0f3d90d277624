// ABOUTME: serve subcommand: builds the web server from config and runs it until SIGINT/SIGTERM.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/2389-research/bridgeplay/config"
	"github.com/2389-research/bridgeplay/web"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the sample web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.buildServer()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Printf("bridgeplay listening addr=%s", srv.Addr())
			if err := srv.ListenAndServe(ctx); err != nil {
				return err
			}
			log.Printf("bridgeplay stopped")
			return nil
		},
	}

	f := cmd.Flags()
	f.String("addr", config.DefaultAddr, "listen address")
	f.String("static-dir", "", "serve /static from this directory instead of the embedded assets")
	f.String("title", config.DefaultTitle, "page title")
	bindFlag(a.v, config.KeyAddr, f.Lookup("addr"))
	bindFlag(a.v, config.KeyStaticDir, f.Lookup("static-dir"))
	bindFlag(a.v, config.KeyTitle, f.Lookup("title"))

	return cmd
}

// buildServer resolves config and the catalog into a ready web.Server.
func (a *app) buildServer() (*web.Server, error) {
	cfg, err := a.load()
	if err != nil {
		return nil, err
	}
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return web.NewServer(web.ServerConfig{
		Addr:       cfg.Addr,
		Title:      cfg.Title,
		Catalog:    cat,
		SamplesDir: cfg.SamplesDir,
		StaticDir:  cfg.StaticDir,
	})
}
