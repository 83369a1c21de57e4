package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/cvsym/pkg/cvsym"
)

// scopesCmd represents the scopes command
var scopesCmd = &cobra.Command{
	Use:   "scopes <stream.bin>",
	Short: "Print the scope tree of a symbol stream",
	Long: `Print the nesting of procedures, blocks and inline sites in a symbol
stream as an indented tree.

Example:
  cvsym scopes --skip=4 module.symbols`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd, args[0])
		if err != nil {
			return err
		}

		roots, err := cvsym.BuildScopeTree(table.Iter())
		if err != nil {
			return err
		}

		printScopes(roots, 0)
		return nil
	},
}

func printScopes(nodes []*cvsym.ScopeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range nodes {
		name, _ := node.Symbol.Name()
		fmt.Printf("%s0x%08x  %s  %s\n", indent, uint32(node.Symbol.Index()), node.Symbol.RawKind(), name)
		printScopes(node.Children, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(scopesCmd)
}
