package services

import (
	"math"
	"time"
)

const (
	insurancePerDay = 300.0
	taxRate         = 0.18 // GST
)

type PriceQuote struct {
	Days           int     `json:"days"`
	RentalPrice    float64 `json:"rentalPrice"`
	InsurancePrice float64 `json:"insurancePrice"`
	Tax            float64 `json:"tax"`
	TotalPrice     float64 `json:"totalPrice"`
}

// CalculateBookingPrice quotes a rental from the exact pickup/return span.
// Partial days always round up. Tax is applied to the summed rental and
// insurance amounts and rounded to the nearest currency unit; the order
// (sum, rate, round) is load-bearing for the stored totals.
func CalculateBookingPrice(pickup, returnDate time.Time, dailyPrice float64) PriceQuote {
	days := int(math.Ceil(returnDate.Sub(pickup).Hours() / 24))

	rentalPrice := dailyPrice * float64(days)
	insurancePrice := insurancePerDay * float64(days)
	tax := math.Round(taxRate * (rentalPrice + insurancePrice))

	return PriceQuote{
		Days:           days,
		RentalPrice:    rentalPrice,
		InsurancePrice: insurancePrice,
		Tax:            tax,
		TotalPrice:     rentalPrice + insurancePrice + tax,
	}
}
