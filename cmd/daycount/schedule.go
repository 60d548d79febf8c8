package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/warp/daycount/daycount"
)

func scheduleCmd() *cobra.Command {
	var convention, termination string
	var precision int32

	c := &cobra.Command{
		Use:   "schedule DATE DATE...",
		Short: "Compute the fractions of consecutive periods",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := lookup(convention, termination)
			if err != nil {
				return err
			}

			dates := make([]daycount.Date, len(args))
			for i, a := range args {
				if dates[i], err = daycount.ParseDate(a); err != nil {
					return err
				}
			}
			periods, err := daycount.PeriodsFromDates(dates)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "START\tEND\tDAYS\tFRACTION")
			for i, f := range daycount.YearFractions(conv, periods) {
				p := periods[i]
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.Start, p.End, p.Days(), format(decimal.NewFromFloat(f), precision))
			}
			fmt.Fprintf(tw, "TOTAL\t\t\t%s\n", format(daycount.Total(conv, periods), precision))
			return tw.Flush()
		},
	}

	c.Flags().StringVarP(&convention, "convention", "c", "", "Convention code, alias or name (required)")
	c.Flags().StringVarP(&termination, "termination", "t", "", "Termination date for 30E/360 (ISDA)")
	c.Flags().Int32VarP(&precision, "precision", "p", -1, "Decimal places (default: exact)")

	_ = c.MarkFlagRequired("convention")
	return c
}
