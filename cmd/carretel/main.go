package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/carretel-crm/internal/app"
	"github.com/xavierca1/carretel-crm/internal/config"
	"github.com/xavierca1/carretel-crm/internal/infra/logger"
	"github.com/xavierca1/carretel-crm/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "carretel",
		Short:        "Consulta o pipeline do Carretel CRM pelo terminal",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "mostra logs")

	withApp := func(run func(ctx context.Context, crm *app.App, out io.Writer, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			zlog := zap.NewNop()
			if verbose {
				if zlog, err = logger.New(cfg.LogLevel, true); err != nil {
					return err
				}
			}
			crm, err := app.New(cmd.Context(), cfg, zlog)
			if err != nil {
				return err
			}
			defer crm.Close()
			return run(cmd.Context(), crm, cmd.OutOrStdout(), args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "contacts",
			Short: "Lista os contatos",
			RunE: withApp(func(_ context.Context, crm *app.App, out io.Writer, _ []string) error {
				for _, c := range crm.Repo.Contacts() {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s/%s\n", c.ID, c.Name, c.Email, c.City, c.UF)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Resumo do funil",
			RunE: withApp(func(_ context.Context, crm *app.App, out io.Writer, _ []string) error {
				snap := crm.Repo.Snapshot()
				printDashboard(out, usecase.BuildDashboard(snap.Contacts, snap.Opportunities))
				return nil
			}),
		},
		newCalendarCmd(withApp),
		newUpcomingCmd(withApp),
		&cobra.Command{
			Use:   "insights",
			Short: "Gera o relatório estratégico com IA",
			RunE: withApp(func(ctx context.Context, crm *app.App, out io.Writer, _ []string) error {
				fmt.Fprintln(out, "Analisando dados...")
				fmt.Fprintln(out, <-crm.Insights.Request(ctx, crm.Repo.Opportunities()))
				return nil
			}),
		},
	)
	return root
}

type appRunner func(run func(ctx context.Context, crm *app.App, out io.Writer, args []string) error) func(*cobra.Command, []string) error

func newCalendarCmd(withApp appRunner) *cobra.Command {
	now := time.Now()
	var year, month int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Agenda do mês",
		RunE: withApp(func(_ context.Context, crm *app.App, out io.Writer, _ []string) error {
			if month < 1 || month > 12 {
				return fmt.Errorf("--month deve ser 1-12")
			}
			cal := usecase.BuildCalendarMonth(crm.Repo.Opportunities(), year, time.Month(month))
			for day := 1; day <= cal.DaysInMonth; day++ {
				for _, o := range cal.Days[day] {
					fmt.Fprintf(out, "%04d-%02d-%02d\t%s\t%s\t%s\n", year, month, day, o.Responsible, o.City, o.Phase)
				}
			}
			return nil
		}),
	}
	cmd.Flags().IntVar(&year, "year", now.Year(), "ano")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "mês (1-12)")
	return cmd
}

func newUpcomingCmd(withApp appRunner) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Próximas visitas",
		RunE: withApp(func(_ context.Context, crm *app.App, out io.Writer, _ []string) error {
			snap := crm.Repo.Snapshot()
			upcoming := usecase.Upcoming(snap.Opportunities, time.Now())
			if limit > 0 && len(upcoming) > limit {
				upcoming = upcoming[:limit]
			}
			if len(upcoming) == 0 {
				fmt.Fprintln(out, "Nenhuma visita agendada.")
				return nil
			}
			for _, o := range upcoming {
				fmt.Fprintf(out, "%s\t%s\t%s\n", o.VisitDate, usecase.ContactName(snap.Contacts, o.ContactID), o.Responsible)
			}
			return nil
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", 3, "máximo de itens (0 = todos)")
	return cmd
}

func printDashboard(out io.Writer, d usecase.Dashboard) {
	fmt.Fprintf(out, "Total Oportunidades: %d\n", d.Stats.TotalOpportunities)
	fmt.Fprintf(out, "Valor em Pipeline:   %s\n", d.PipelineValueLabel)
	fmt.Fprintf(out, "Taxa de Conversão:   %s\n", d.ConversionRateLabel)
	fmt.Fprintf(out, "Contatos Base:       %d\n", d.ContactCount)
	fmt.Fprintln(out)
	for _, s := range d.Stages {
		fmt.Fprintf(out, "%-12s %3d  %s\n", s.Phase, s.Count, usecase.FormatPipelineValue(s.Value))
	}
}
