package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Yuffster/mcx4/config"
)

func newBoardCmd() *cobra.Command {
	var atus int

	cmd := &cobra.Command{
		Use:   "board <file>",
		Short: "Run a multi-controller board from a YAML descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			b, controllers, err := config.LoadBoard(data)
			if err != nil {
				return err
			}
			for i := 0; i < atus; i++ {
				if err := b.Advance(); err != nil {
					return err
				}
			}

			result := map[string]int{}
			for name, m := range controllers {
				result[name] = m.Acc()
			}
			out, err := yaml.Marshal(map[string]any{"acc": result})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().IntVar(&atus, "atus", 1, "number of arbitrary time units to advance")
	return cmd
}
