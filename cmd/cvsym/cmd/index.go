package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/cvsym/pkg/namedex"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index <stream.bin>",
	Short: "Build a persistent name index for a symbol stream",
	Long: `Walk a symbol stream and record every named symbol in a lookup index,
so that names can be resolved without rescanning the stream.

Example:
  cvsym index --index-dir=./index module.symbols`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		indexDir, _ := cmd.Flags().GetString("index-dir")

		table, err := loadTable(cmd, args[0])
		if err != nil {
			return err
		}

		idx, err := namedex.Open(indexDir)
		if err != nil {
			return err
		}
		defer idx.Close()

		stats, err := idx.Build(table)
		if err != nil {
			return err
		}

		fmt.Printf("Indexed %s into %s\n", args[0], indexDir)
		fmt.Printf("  build:   %s\n", stats.BuildID)
		fmt.Printf("  symbols: %d\n", stats.Symbols)
		fmt.Printf("  named:   %d\n", stats.Named)
		fmt.Printf("  skipped: %d\n", stats.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().String("index-dir", "./index", "Directory for the name index database")
}
