package sales

import (
	"fmt"

	"github.com/fournil-tools/fournil/pkg/models/domain"
)

const currency = "XOF"

// BuildReport shapes grouped sales into the printable report consumed by
// the CLI reporter.
func BuildReport(sales []domain.Sale, period domain.TimePeriod) *domain.Report {
	section := domain.ReportSection{
		Title:   "Ventes",
		Summary: map[string]any{},
	}

	var quantity, amount, collected float64
	for _, s := range sales {
		quantity += s.TotalQuantity
		amount += s.TotalAmount
		collected += s.TotalCollected

		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("Vente #%d", s.ID),
			Value:       fmt.Sprintf("%.0f", s.TotalAmount),
			Unit:        currency,
			Description: fmt.Sprintf("%s, %s, %d lignes", s.Date.Format("2006-01-02"), s.Site, len(s.Details)),
		})
	}

	section.Summary["Nombre de ventes"] = len(sales)
	section.Summary["Quantite totale"] = fmt.Sprintf("%.0f", quantity)
	section.Summary["Montant encaisse"] = fmt.Sprintf("%.0f %s", collected, currency)

	return &domain.Report{
		Title:       "Rapport des ventes",
		Period:      period,
		Sections:    []domain.ReportSection{section},
		TotalAmount: amount,
		Currency:    currency,
	}
}
