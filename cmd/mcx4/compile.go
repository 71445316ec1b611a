package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/Yuffster/mcx4/compiler"
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a program and print its instruction stream and label table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			program := compiler.Compile(string(code))
			fmt.Fprintln(cmd.OutOrStdout(), "labels:")
			spew.Fdump(cmd.OutOrStdout(), program.Labels)
			fmt.Fprintln(cmd.OutOrStdout(), "instructions:")
			spew.Fdump(cmd.OutOrStdout(), program.Instructions)
			return nil
		},
	}
	return cmd
}
