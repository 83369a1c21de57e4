/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mkarlsen/cvsym/pkg/api"
	"github.com/mkarlsen/cvsym/pkg/config"
	"github.com/mkarlsen/cvsym/pkg/namedex"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the cvsym REST API server over a symbol stream.

The served stream and listen address come from the configuration file;
a missing configuration is bootstrapped with a generated API key.
Name lookups require a previously built index (see 'cvsym index').

Examples:
  cvsym serve --stream=module.symbols
  cvsym serve --config=./cvsym.yaml --port=9200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		stream, _ := cmd.Flags().GetString("stream")
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		var cfg *config.Config
		var err error
		if config.ConfigExists(configPath) {
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg, err = config.BootstrapConfig(configPath, "")
			if err != nil {
				return err
			}
			cmd.Printf("Bootstrapped configuration at %s\n", configPath)
		}

		// Flags override the file
		if stream != "" {
			cfg.StreamPath = stream
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if bind != "" {
			cfg.Bind = bind
		}
		if apiKey != "" {
			cfg.Security.APIKey = apiKey
		}

		if cfg.StreamPath == "" {
			return errors.New("no symbol stream configured (set stream_path or pass --stream)")
		}

		table, err := loadTable(cmd, cfg.StreamPath)
		if err != nil {
			return err
		}

		// The lookup endpoint is served only when an index has been built.
		var names api.NameIndex
		if cfg.IndexDir != "" {
			idx, err := namedex.Open(cfg.IndexDir)
			if err != nil {
				return errors.Wrap(err, "opening name index")
			}
			defer idx.Close()

			if _, built, err := idx.LastBuild(); err != nil {
				return err
			} else if built {
				names = idx
			} else {
				cmd.Printf("Name index at %s has never been built; lookup disabled\n", cfg.IndexDir)
			}
		}

		return api.StartServer(table, names, api.ServerConfig{
			Bind:   cfg.Bind,
			Port:   cfg.Port,
			APIKey: cfg.Security.APIKey,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Configuration file path")
	serveCmd.Flags().String("stream", "", "Symbol stream file to serve")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key protecting the REST API")
}
