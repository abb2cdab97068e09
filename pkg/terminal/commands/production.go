package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/services/config"
	"github.com/fournil-tools/fournil/pkg/services/production"
	"github.com/fournil-tools/fournil/pkg/store/postgres"
	"github.com/fournil-tools/fournil/pkg/terminal/export"
)

type ProductionReportCmd struct {
	profilePath string
	profile     string
	from        string
	to          string
	site        int64
	pageSize    int
	reporter    *export.Reporter
}

func NewProductionReportCmd(reporter *export.Reporter) *cobra.Command {
	pc := &ProductionReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "production",
		Short: "Print a production report for a period",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilePath, "profile-path", config.DefaultProfilePath(), "Path to the connection profile registry")
	cmd.Flags().StringVar(&pc.profile, "profile", "dev", "Connection profile to use")
	cmd.Flags().StringVar(&pc.from, "from", "", "Start date (YYYY-MM-DD), defaults to 30 days ago")
	cmd.Flags().StringVar(&pc.to, "to", "", "End date (YYYY-MM-DD), defaults to today")
	cmd.Flags().Int64Var(&pc.site, "site", 0, "Restrict to one site id")
	cmd.Flags().IntVar(&pc.pageSize, "page-size", 15, "Page size used while walking the result set")

	return cmd
}

func (pc *ProductionReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	period, err := parsePeriod(pc.from, pc.to, 30)
	if err != nil {
		return err
	}

	db, err := openDB(ctx, pc.profilePath, pc.profile)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := postgres.NewProductionStore(db)
	if err != nil {
		return err
	}

	filter := domain.ProductionFilter{From: &period.Start, To: &period.End}
	if pc.site > 0 {
		filter.SiteID = &pc.site
	}

	browser := production.NewBrowser(store, pc.pageSize)
	if err := browser.Load(ctx, filter); err != nil {
		return fmt.Errorf("failed to load production batches: %w", err)
	}

	var all []domain.ProductionBatch
	for {
		snap := browser.Snapshot()
		all = append(all, snap.Batches...)
		if !snap.Page.HasNext {
			break
		}
		browser.GoToNextPage()
	}

	return pc.reporter.Handle(production.BuildReport(all, period))
}
