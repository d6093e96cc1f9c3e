package sales

import (
	"context"

	"go.uber.org/zap"
)

// BuildReport aggregates persisted sales by customer and emits one row per
// customer with at least one sale: the customer's total and its share of the
// grand total as a percentage. With no sales the report is empty; the
// percentage division never runs with a zero grand total.
func (s *Service) BuildReport(ctx context.Context) ([]ReportRow, error) {
	totals, err := s.storage.TotalsByCustomer(ctx)
	if err != nil {
		s.logger.Error("failed to build sales report", zap.Error(err))
		return nil, err
	}

	var grandTotal float64
	for _, t := range totals {
		grandTotal += t.Total
	}
	if grandTotal <= 0 {
		return []ReportRow{}, nil
	}

	rows := make([]ReportRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, ReportRow{
			CustomerName: t.CustomerName,
			TotalSales:   t.Total,
			Percentage:   t.Total / grandTotal * 100,
		})
	}

	return rows, nil
}
