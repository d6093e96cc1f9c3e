package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JartigaRox/000171124-practica10-seccion1/internal/customers"
)

func TestBuildReport_ExcludesZeroSaleCustomers(t *testing.T) {
	svc, _ := newTestService(t,
		&customers.Customer{ID: 1, Code: "C1", Name: "Acme"},
		&customers.Customer{ID: 2, Code: "C2", Name: "Globex"},
	)

	for _, amount := range []float64{30, 70} {
		_, err := svc.CreateSale(context.Background(), CreateSaleInput{
			Amount:     floatPtr(amount),
			CustomerID: intPtr(1),
		})
		require.NoError(t, err)
	}

	report, err := svc.BuildReport(context.Background())
	require.NoError(t, err)

	require.Len(t, report, 1, "a customer with zero sales must not get a row")
	assert.Equal(t, "Acme", report[0].CustomerName)
	assert.Equal(t, 100.0, report[0].TotalSales)
	assert.Equal(t, 100.0, report[0].Percentage)
}

func TestBuildReport_Empty(t *testing.T) {
	svc, _ := newTestService(t, &customers.Customer{ID: 1, Code: "C1", Name: "Acme"})

	report, err := svc.BuildReport(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report, "no sales means no rows, not a division by zero")
}

func TestBuildReport_PercentagesSumToHundred(t *testing.T) {
	svc, _ := newTestService(t,
		&customers.Customer{ID: 1, Code: "C1", Name: "Acme"},
		&customers.Customer{ID: 2, Code: "C2", Name: "Globex"},
		&customers.Customer{ID: 3, Code: "C3", Name: "Initech"},
	)

	seed := map[int][]float64{
		1: {19.99, 35.01},
		2: {120.50},
		3: {7.25, 7.25, 10},
	}
	var grandTotal float64
	for customerID, amounts := range seed {
		for _, amount := range amounts {
			_, err := svc.CreateSale(context.Background(), CreateSaleInput{
				Amount:     floatPtr(amount),
				CustomerID: intPtr(customerID),
			})
			require.NoError(t, err)
			grandTotal += amount
		}
	}

	report, err := svc.BuildReport(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 3)

	var percentageSum, totalSum float64
	for _, row := range report {
		assert.Greater(t, row.TotalSales, 0.0)
		percentageSum += row.Percentage
		totalSum += row.TotalSales
	}

	assert.InDelta(t, 100.0, percentageSum, 1e-9, "percentages must sum to 100")
	assert.InDelta(t, grandTotal, totalSum, 1e-9, "totals must sum to the grand total")
}
