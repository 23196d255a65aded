package booking

import "tripnest/models"

// Totals is the aggregate pricing of a booking. All amounts are in minor
// currency units, which keeps multi-line accumulation exact.
type Totals struct {
	Subtotal    int64
	Taxes       int64
	Fees        int64
	TotalAmount int64
	Lines       []models.BookingRoom
}

// ComputeTotals prices the validated line items over the stay. Per line:
//
//	lineTotal = (pricePerNight + taxes) * quantity * nights
//
// The subtotal accumulates the price component, taxes accumulate the tax
// component, and the grand total adds the flat platform fee on top. Pricing
// always comes from the listing snapshot resolved during validation; the
// request cannot override it.
func ComputeTotals(nights int, items []ValidatedItem, fees int64) Totals {
	totals := Totals{
		Fees:  fees,
		Lines: make([]models.BookingRoom, 0, len(items)),
	}

	for _, item := range items {
		factor := int64(item.Quantity) * int64(nights)
		lineSubtotal := item.PricePerNight * factor
		lineTaxes := item.Taxes * factor

		totals.Subtotal += lineSubtotal
		totals.Taxes += lineTaxes
		totals.Lines = append(totals.Lines, models.BookingRoom{
			RoomID:        item.RoomID,
			RoomName:      item.RoomName,
			Quantity:      item.Quantity,
			PricePerNight: item.PricePerNight,
			Taxes:         item.Taxes,
			Nights:        nights,
			Total:         lineSubtotal + lineTaxes,
			Addons:        item.Addons,
		})
	}

	totals.TotalAmount = totals.Subtotal + totals.Taxes + totals.Fees
	return totals
}
