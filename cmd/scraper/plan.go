package main

import (
	"github.com/namongk/fast-linkedin-scraper/internal/io"
	"github.com/namongk/fast-linkedin-scraper/internal/scraper"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the navigations a scrape would perform",
	}

	var personFields string
	person := &cobra.Command{
		Use:   "person <profile-url>",
		Short: "Plan a person profile scrape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := a.cfg.Scraper.PersonFields
			if personFields != "" {
				var err error
				if fields, err = models.ParsePersonFields(personFields); err != nil {
					return err
				}
			}
			plan, err := scraper.NewPlanner(a.cfg).PersonPlan(args[0], fields)
			if err != nil {
				return err
			}
			return io.NewPlanWriter(cmd.OutOrStdout(), a.format).Write(plan)
		},
	}
	person.Flags().StringVar(&personFields, "fields", "", "person fields or preset (minimal, career, all)")

	var companyFields string
	var maxPages int
	company := &cobra.Command{
		Use:   "company <company-url>",
		Short: "Plan a company scrape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := a.cfg.Scraper.CompanyFields
			if companyFields != "" {
				var err error
				if fields, err = models.ParseCompanyFields(companyFields); err != nil {
					return err
				}
			}
			pages := a.cfg.Scraper.MaxPages
			if cmd.Flags().Changed("max-pages") {
				pages = maxPages
			}
			plan, err := scraper.NewPlanner(a.cfg).CompanyPlan(args[0], fields, pages)
			if err != nil {
				return err
			}
			return io.NewPlanWriter(cmd.OutOrStdout(), a.format).Write(plan)
		},
	}
	company.Flags().StringVar(&companyFields, "fields", "", "company fields or preset (minimal, all)")
	company.Flags().IntVar(&maxPages, "max-pages", 0, "employee list pages to load")

	cmd.AddCommand(person, company)
	return cmd
}
