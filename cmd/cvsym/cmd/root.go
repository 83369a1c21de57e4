/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mkarlsen/cvsym/pkg/cvsym"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cvsym",
	Short: "cvsym - CodeView symbol stream tooling",
	Long: `cvsym inspects CodeView symbol sub-streams as found in PDB debug
containers: dump records, print scope trees, build a persistent name
index, or serve the stream over a REST API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Streams extracted from a module info stream start with a 4-byte
	// signature that is not part of the record sequence.
	rootCmd.PersistentFlags().Uint32("skip", 0, "Bytes of stream header to skip before the first record")
}

// loadTable reads a symbol stream file, honoring the --skip prefix.
func loadTable(cmd *cobra.Command, path string) (*cvsym.SymbolTable, error) {
	skip, _ := cmd.Flags().GetUint32("skip")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading stream %s", path)
	}
	if int(skip) > len(data) {
		return nil, errors.Errorf("stream %s is shorter than the %d byte header", path, skip)
	}
	return cvsym.NewSymbolTable(data[skip:]), nil
}
