// Command mcx4 compiles and runs mcx4 assembly, standalone or as a
// multi-controller board described in YAML.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mcx4",
		Short: "A cycle-accurate simulator for small programmable microcontrollers",
	}
	root.AddCommand(newCompileCmd(), newRunCmd(), newBoardCmd())
	return root
}
