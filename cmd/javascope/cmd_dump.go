package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javascope/treesitter"
)

func newDumpCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Parse a file and dump its syntax tree with line spans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			var provider treesitter.Provider
			if language != "" {
				provider, err = treesitter.New(language)
			} else {
				provider, err = treesitter.ForFile(filename)
			}
			if err != nil {
				return err
			}

			tree, err := provider.Parse(cmd.Context(), data)
			if err != nil {
				return err
			}

			fmt.Print(tree.Dump())
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "grammar to use instead of detecting it from the file extension")

	return cmd
}
