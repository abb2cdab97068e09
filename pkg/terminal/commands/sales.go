package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/services/config"
	"github.com/fournil-tools/fournil/pkg/services/sales"
	"github.com/fournil-tools/fournil/pkg/store/postgres"
	"github.com/fournil-tools/fournil/pkg/terminal/export"
)

type SalesReportCmd struct {
	profilePath string
	profile     string
	from        string
	to          string
	site        int64
	saleType    string
	pageSize    int
	reporter    *export.Reporter
}

func NewSalesReportCmd(reporter *export.Reporter) *cobra.Command {
	sc := &SalesReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Print a sales report for a period",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profilePath, "profile-path", config.DefaultProfilePath(), "Path to the connection profile registry")
	cmd.Flags().StringVar(&sc.profile, "profile", "dev", "Connection profile to use")
	cmd.Flags().StringVar(&sc.from, "from", "", "Start date (YYYY-MM-DD), defaults to 30 days ago")
	cmd.Flags().StringVar(&sc.to, "to", "", "End date (YYYY-MM-DD), defaults to today")
	cmd.Flags().Int64Var(&sc.site, "site", 0, "Restrict to one site id")
	cmd.Flags().StringVar(&sc.saleType, "type", "", "Restrict to one sale type")
	cmd.Flags().IntVar(&sc.pageSize, "page-size", 10, "Page size used while walking the result set")

	return cmd
}

func (sc *SalesReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	period, err := parsePeriod(sc.from, sc.to, 30)
	if err != nil {
		return err
	}

	db, err := openDB(ctx, sc.profilePath, sc.profile)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := postgres.NewSalesStore(db)
	if err != nil {
		return err
	}

	filter := domain.SaleFilter{From: &period.Start, To: &period.End}
	if sc.site > 0 {
		filter.SiteID = &sc.site
	}
	if sc.saleType != "" {
		filter.Type = &sc.saleType
	}

	browser := sales.NewBrowser(store, sc.pageSize)
	if err := browser.Load(ctx, filter); err != nil {
		return fmt.Errorf("failed to load sales: %w", err)
	}

	var all []domain.Sale
	for {
		snap := browser.Snapshot()
		all = append(all, snap.Sales...)
		if !snap.Page.HasNext {
			break
		}
		browser.GoToNextPage()
	}

	return sc.reporter.Handle(sales.BuildReport(all, period))
}
