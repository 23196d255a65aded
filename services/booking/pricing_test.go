package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"exactly one day", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z", 1},
		{"sub-day window still bills one night", "2024-01-01T22:00:00Z", "2024-01-02T02:00:00Z", 1},
		{"three full days", "2024-03-01T00:00:00Z", "2024-03-04T00:00:00Z", 3},
		{"partial extra day rounds up", "2024-03-01T12:00:00Z", "2024-03-04T14:00:00Z", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkIn, err := time.Parse(time.RFC3339, tc.checkIn)
			assert.NoError(t, err)
			checkOut, err := time.Parse(time.RFC3339, tc.checkOut)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, CalculateNights(checkIn, checkOut))
		})
	}
}

func TestComputeTotals(t *testing.T) {
	t.Run("worked example", func(t *testing.T) {
		items := []ValidatedItem{
			{
				PricedLineItem: PricedLineItem{RoomName: "Deluxe", PricePerNight: 2000, Taxes: 200},
				Quantity:       2,
			},
		}

		totals := ComputeTotals(3, items, 0)
		assert.Equal(t, int64(12000), totals.Subtotal)
		assert.Equal(t, int64(1200), totals.Taxes)
		assert.Equal(t, int64(13200), totals.TotalAmount)
		assert.Equal(t, int64(13200), totals.Lines[0].Total)
	})

	t.Run("additivity across line items", func(t *testing.T) {
		items := []ValidatedItem{
			{PricedLineItem: PricedLineItem{RoomName: "A", PricePerNight: 1500, Taxes: 150}, Quantity: 1},
			{PricedLineItem: PricedLineItem{RoomName: "B", PricePerNight: 3200, Taxes: 0}, Quantity: 3},
			{PricedLineItem: PricedLineItem{RoomName: "C", PricePerNight: 0, Taxes: 90}, Quantity: 2},
		}
		nights := 2
		fees := int64(500)

		totals := ComputeTotals(nights, items, fees)

		var wantSubtotal, wantTaxes int64
		for _, item := range items {
			factor := int64(item.Quantity) * int64(nights)
			wantSubtotal += item.PricePerNight * factor
			wantTaxes += item.Taxes * factor
		}
		assert.Equal(t, wantSubtotal, totals.Subtotal)
		assert.Equal(t, wantTaxes, totals.Taxes)
		assert.Equal(t, fees, totals.Fees)
		assert.Equal(t, wantSubtotal+wantTaxes+fees, totals.TotalAmount)

		var lineSum int64
		for _, line := range totals.Lines {
			lineSum += line.Total
		}
		assert.Equal(t, totals.Subtotal+totals.Taxes, lineSum)
	})

	t.Run("no items yields fee-only total", func(t *testing.T) {
		totals := ComputeTotals(2, nil, 100)
		assert.Equal(t, int64(0), totals.Subtotal)
		assert.Equal(t, int64(100), totals.TotalAmount)
	})
}
