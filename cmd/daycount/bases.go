package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warp/daycount/factory"
)

func basesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "bases",
		Short: "Work with basis seed files",
	}
	c.AddCommand(basesValidateCmd())
	c.AddCommand(basesPresetsCmd())
	return c
}

func basesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a YAML seed file (no server)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			bases, err := factory.NewBasisFactory().ParseYAML(data)
			if err != nil {
				return err
			}
			for _, b := range bases {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.ID, b.Code)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK (%d bases)\n", len(bases))
			return nil
		},
	}
}

func basesPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Print the built-in bases as a seed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := factory.NewBasisFactory()
			bases, err := f.PresetBases()
			if err != nil {
				return err
			}
			out, err := f.ToYAML(bases)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
