package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/nibble/extract"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Apply extraction rules to a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesFile, err := os.Open(rulesPath)
			if err != nil {
				return fmt.Errorf("open rules: %w", err)
			}
			defer rulesFile.Close()

			set, err := extract.Load(rulesFile)
			if err != nil {
				return fmt.Errorf("load rules: %w", err)
			}

			data, err := readInput(args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			for _, m := range set.Scan(string(data)) {
				fmt.Printf("%d\t%s\t%s\n", m.Offset, m.Rule, m.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "rules.yaml", "YAML file with extraction rules")

	return cmd
}
