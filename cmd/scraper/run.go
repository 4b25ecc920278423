package main

import (
	"errors"
	"fmt"

	"github.com/namongk/fast-linkedin-scraper/internal/io"
	"github.com/namongk/fast-linkedin-scraper/internal/scraper"
	"github.com/namongk/fast-linkedin-scraper/internal/worker"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		input         string
		personFields  string
		companyFields string
		maxPages      int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Visit every target in a file with a headless browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return errors.New("--input is required")
			}

			sc := a.cfg.Scraper
			if personFields != "" {
				f, err := models.ParsePersonFields(personFields)
				if err != nil {
					return err
				}
				sc.PersonFields = f
			}
			if companyFields != "" {
				f, err := models.ParseCompanyFields(companyFields)
				if err != nil {
					return err
				}
				sc.CompanyFields = f
			}
			if cmd.Flags().Changed("max-pages") {
				sc.MaxPages = maxPages
			}

			targets, err := io.NewTargetReader().ReadFromFile(input)
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				return fmt.Errorf("no targets in %s", input)
			}

			planner := scraper.NewPlanner(a.cfg)
			plans := make([]scraper.Plan, 0, len(targets))
			for _, t := range targets {
				plan, err := planner.PlanFor(t, sc)
				if err != nil {
					return fmt.Errorf("%s: %w", t.URL, err)
				}
				plans = append(plans, plan)
			}

			ctx := cmd.Context()
			session, err := scraper.NewBrowserSession(ctx, a.cfg.Browser, a.logger)
			if err != nil {
				return err
			}
			defer session.Close()

			a.logger.Info("starting run",
				zap.Int("targets", len(plans)),
				zap.Int("workers", sc.Workers),
				zap.Stringer("person_fields", sc.PersonFields),
				zap.Stringer("company_fields", sc.CompanyFields))

			var (
				all      []models.Result
				failures int
			)
			for o := range worker.NewPool(sc, session, a.logger).Run(ctx, plans) {
				all = append(all, o.Results...)
				if o.Err != nil {
					failures++
				}
			}

			if err := io.NewResultWriter(cmd.OutOrStdout(), a.format).Write(all); err != nil {
				return err
			}
			a.logger.Info("run finished", zap.Int("targets", len(plans)), zap.Int("failed", failures))
			if err := ctx.Err(); err != nil {
				return err
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d targets failed", failures, len(plans))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "file containing target URLs (one per line)")
	cmd.Flags().StringVar(&personFields, "person-fields", "", "override scraper.person_fields")
	cmd.Flags().StringVar(&companyFields, "company-fields", "", "override scraper.company_fields")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "override scraper.max_pages")
	return cmd
}
