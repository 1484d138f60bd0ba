package services

// Fixed business pricing rules. Children travel at half the adult rate and
// seat selection costs a flat fee in GEL; neither is configurable.
const (
	ChildPriceMultiplier = 0.5
	SeatSelectionFee     = 50.0
)

// CalculateTotal computes the booking total for the given unit price and
// traveler counts. Pure and deterministic: the quote endpoint and the
// submission path both call it, so the displayed estimate always matches
// what gets persisted.
func CalculateTotal(unitPrice float64, adults, children int, seatSelected bool) float64 {
	total := unitPrice*float64(adults) + unitPrice*ChildPriceMultiplier*float64(children)
	if seatSelected {
		total += SeatSelectionFee
	}
	return total
}
