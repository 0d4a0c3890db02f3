package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/mmynk/camptrack/internal/models"
)

func (cli *commandLine) setRate(amount string) error {
	rate, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("rate %q is not a number", amount)
	}
	if rate.IsNegative() {
		return fmt.Errorf("rate %q is negative", amount)
	}

	if err := cli.store.SetSetting(context.Background(), models.SettingDailyPayRate, rate.String()); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "daily pay rate set to %s\n", rate.StringFixed(2))
	return nil
}

func (cli *commandLine) payReport() error {
	ctx := context.Background()
	rate, err := cli.engine.LoadPayRate(ctx)
	if err != nil {
		return err
	}
	summaries, err := cli.engine.ComputeAllLeaderPay(ctx, rate)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "daily rate\t%s\n\n", rate.StringFixed(2))
	fmt.Fprintln(w, "LEADER\tCAMP\tDAYS\tPAY")
	for _, s := range summaries {
		for _, line := range s.PerCamp {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.LeaderName, line.CampName, line.Days, line.Pay.StringFixed(2))
		}
		fmt.Fprintf(w, "%s\tTOTAL\t\t%s\n", s.LeaderName, s.TotalPay.StringFixed(2))
		if s.Skipped > 0 {
			fmt.Fprintf(w, "%s\t(%d assignments with invalid dates skipped)\t\t\n", s.LeaderName, s.Skipped)
		}
	}
	return w.Flush()
}

func (cli *commandLine) shortages() error {
	alerts, err := cli.engine.ListShortageAlerts(context.Background())
	if err != nil {
		return err
	}
	if len(alerts) == 0 {
		fmt.Fprintln(cli.out, "no shortages")
		return nil
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CAMP\tDATE\tREQUIRED\tPLANNED\tGAP")
	for _, a := range alerts {
		for _, d := range a.Shortages {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", a.CampName, d.Date, d.Required, d.Planned, d.Gap)
		}
	}
	return w.Flush()
}
