package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/warp/daycount/daycount"
)

func fractionCmd() *cobra.Command {
	var convention, start, end, termination string
	var precision int32

	c := &cobra.Command{
		Use:   "fraction",
		Short: "Compute the fraction of a year between two dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conv, err := lookup(convention, termination)
			if err != nil {
				return err
			}
			s, err := daycount.ParseDate(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			e, err := daycount.ParseDate(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			value := decimal.NewFromFloat(conv.YearFraction(s, e))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s -> %s\t%d days\t%s\n",
				conv, s, e, e.Sub(s), format(value, precision))
			return nil
		},
	}

	c.Flags().StringVarP(&convention, "convention", "c", "", "Convention code, alias or name (required)")
	c.Flags().StringVarP(&start, "start", "s", "", "Start date, YYYY-MM-DD (required)")
	c.Flags().StringVarP(&end, "end", "e", "", "End date, YYYY-MM-DD (required)")
	c.Flags().StringVarP(&termination, "termination", "t", "", "Termination date for 30E/360 (ISDA)")
	c.Flags().Int32VarP(&precision, "precision", "p", -1, "Decimal places (default: exact)")

	_ = c.MarkFlagRequired("convention")
	_ = c.MarkFlagRequired("start")
	_ = c.MarkFlagRequired("end")
	return c
}
