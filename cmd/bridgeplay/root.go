// ABOUTME: Root cobra command and the flag/viper plumbing shared by every subcommand.
package main

import (
	"fmt"

	"github.com/2389-research/bridgeplay/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the viper instance and config path for one command tree.
type app struct {
	v          *viper.Viper
	configFile string
}

func newApp() *app {
	return &app{v: config.New()}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bridgeplay",
		Short:         "Serve the WebMSX JS Bridge sample pages",
		Long:          "bridgeplay lists a fixed catalog of WebMSX JS Bridge demos and serves each one inside a player page or as a raw HTML file.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (yaml, toml, or json; default: $XDG_CONFIG_HOME/bridgeplay/config.yaml)")
	pf.String("samples-dir", config.DefaultSamplesDir, "directory holding the sample HTML files")
	pf.String("catalog", "", "catalog YAML file (default: built-in catalog)")
	bindFlag(a.v, config.KeySamplesDir, pf.Lookup("samples-dir"))
	bindFlag(a.v, config.KeyCatalog, pf.Lookup("catalog"))

	root.AddCommand(
		newServeCmd(a),
		newListCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return root
}

// bindFlag ties a viper key to a flag so an explicitly set flag wins over
// env and config file values.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// load resolves the config. Without --config, a config.yaml in the user
// config directory is picked up when present.
func (a *app) load() (config.Config, error) {
	file := a.configFile
	if file == "" {
		file = config.DiscoverFile()
	}
	return config.Load(a.v, file)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bridgeplay version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bridgeplay %s\n", version)
		},
	}
}
