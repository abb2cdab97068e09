package production

import (
	"fmt"

	"github.com/fournil-tools/fournil/pkg/models/domain"
)

// BuildReport shapes grouped cuisson batches into the printable report
// consumed by the CLI reporter.
func BuildReport(batches []domain.ProductionBatch, period domain.TimePeriod) *domain.Report {
	section := domain.ReportSection{
		Title:   "Cuissons",
		Summary: map[string]any{},
	}

	var produced, unsold float64
	for _, b := range batches {
		produced += b.TotalProduced
		unsold += b.TotalUnsold

		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("Cuisson #%d", b.ID),
			Value:       fmt.Sprintf("%.0f", b.TotalProduced),
			Unit:        "pcs",
			Description: fmt.Sprintf("%s, %s, %d lignes", b.Date.Format("2006-01-02"), b.Site, len(b.Details)),
		})
	}

	section.Summary["Nombre de cuissons"] = len(batches)
	section.Summary["Quantite produite"] = fmt.Sprintf("%.0f", produced)
	section.Summary["Invendus"] = fmt.Sprintf("%.0f", unsold)

	return &domain.Report{
		Title:    "Rapport de production",
		Period:   period,
		Sections: []domain.ReportSection{section},
	}
}
