package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yuffster/mcx4/cpu"
	"github.com/Yuffster/mcx4/mc"
	"github.com/Yuffster/mcx4/port"
)

func newRunCmd() *cobra.Command {
	var gpio, xbus, dats int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a program on a single standalone microcontroller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			reg := port.NewRegistry()
			m := mc.New(reg, "mc0", gpio, xbus, dats)
			if verbose {
				m.SetTracer(cpu.NewVerboseTracer(cmd.ErrOrStderr()))
			}
			if err := m.Execute(string(code)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "acc: %d\n", m.Acc())
			return nil
		},
	}
	cmd.Flags().IntVar(&gpio, "gpio", 2, "number of addressable GPIO ports")
	cmd.Flags().IntVar(&xbus, "xbus", 4, "number of addressable XBUS ports")
	cmd.Flags().IntVar(&dats, "dats", 1, "number of dat registers")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every executed instruction")
	return cmd
}
