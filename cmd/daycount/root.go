package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/warp/daycount/daycount"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "daycount",
		Short:        "Day count fractions for accrual periods",
		SilenceUsage: true,
	}

	cmd.AddCommand(conventionsCmd())
	cmd.AddCommand(fractionCmd())
	cmd.AddCommand(scheduleCmd())
	cmd.AddCommand(basesCmd())
	return cmd
}

func conventionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conventions",
		Short: "List supported conventions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tTERMINATION")
			for _, code := range daycount.Codes() {
				conv, err := daycount.Lookup(string(code), daycount.WithTerminationDate(daycount.Date{}))
				if err != nil {
					return err
				}
				needs := ""
				if daycount.RequiresTerminationDate(code) {
					needs = "required"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", code, conv, needs)
			}
			return tw.Flush()
		},
	}
}

// lookup resolves a convention code, attaching the termination date when
// one was given.
func lookup(code, termination string) (daycount.Convention, error) {
	if code == "" {
		return nil, fmt.Errorf("--convention is required")
	}
	var opts []daycount.Option
	if termination != "" {
		td, err := daycount.ParseDate(termination)
		if err != nil {
			return nil, fmt.Errorf("--termination: %w", err)
		}
		opts = append(opts, daycount.WithTerminationDate(td))
	}
	return daycount.Lookup(code, opts...)
}

// format renders d with precision decimal places; a negative precision
// prints the shortest exact form.
func format(d decimal.Decimal, precision int32) string {
	if precision < 0 {
		return d.String()
	}
	return d.StringFixed(precision)
}
