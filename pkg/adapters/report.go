package adapters

import (
	"github.com/shopspring/decimal"

	"github.com/shop-tools/sales-atlas/pkg/models/api"
	"github.com/shop-tools/sales-atlas/pkg/models/domain"
)

const dayFormat = "2006-01-02"

// amounts cross into the API rounded to two decimals; everything before
// this boundary stays an exact decimal.
func amountToApi(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func MapSummaryReportDomainToApi(report domain.SummaryReport) api.SummaryReport {
	out := api.SummaryReport{
		From:             report.Window.Start.Format(dayFormat),
		To:               report.Window.End.Format(dayFormat),
		Currency:         report.Currency,
		TotalRevenue:     amountToApi(report.TotalRevenue),
		TransactionCount: report.TransactionCount,
		AvgTicket:        amountToApi(report.AvgTicket),
	}

	for _, g := range report.ByStaff {
		out.ByStaff = append(out.ByStaff, MapGroupTotalDomainToApi(g))
	}
	for _, g := range report.ByMethod {
		out.ByMethod = append(out.ByMethod, MapGroupTotalDomainToApi(g))
	}
	for _, d := range report.ByDay {
		out.ByDay = append(out.ByDay, api.DailyRevenue{
			Date:    d.Date.Format(dayFormat),
			Revenue: amountToApi(d.Revenue),
		})
	}

	return out
}

func MapGroupTotalDomainToApi(g domain.GroupTotal) api.GroupTotal {
	return api.GroupTotal{
		Label:        g.Label,
		Revenue:      amountToApi(g.Revenue),
		Transactions: g.Transactions,
	}
}

func MapReloadStatusDomainToApi(status domain.ReloadStatus) api.ReloadStatus {
	return api.ReloadStatus{
		Source:      status.Source,
		RowsLoaded:  status.RowsLoaded,
		RowsDropped: status.RowsDropped,
		FetchedAt:   status.FetchedAt,
	}
}

func MapSourceProfileDomainToApi(profile domain.SourceProfile) api.Source {
	return api.Source{
		Name:     profile.Name,
		Currency: profile.Currency,
	}
}
