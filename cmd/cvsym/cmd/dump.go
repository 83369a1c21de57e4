package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <stream.bin>",
	Short: "Print every record in a symbol stream",
	Long: `Print every record in a symbol stream, one per line, with its stream
index, kind and name.

Example:
  cvsym dump --skip=4 module.symbols`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		table, err := loadTable(cmd, args[0])
		if err != nil {
			return err
		}

		count := 0
		iter := table.Iter()
		for iter.Next() {
			sym := iter.Symbol()
			count++

			name, _ := sym.Name()
			fmt.Printf("0x%08x  %-24s  %s\n", uint32(sym.Index()), sym.RawKind(), name)

			if verbose {
				if parsed, err := sym.Parse(); err == nil {
					fmt.Printf("            %+v\n", parsed)
				} else {
					fmt.Printf("            undecoded: %v\n", err)
				}
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}

		fmt.Printf("%d records, %d bytes\n", count, table.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolP("verbose", "v", false, "Print decoded record fields")
}
