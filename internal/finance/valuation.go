package finance

import (
	"fmt"

	apperrors "truckledger/internal/errors"
	"truckledger/internal/models"
)

// Parking capacity per garage size class.
var garageCapacity = map[models.GarageSize]int{
	models.GarageSizeSmall:  1,
	models.GarageSizeMedium: 3,
	models.GarageSizeLarge:  5,
}

// Valuation aggregates the current ledger state into capitalization
// figures and fleet counts.
type Valuation struct {
	GarageValue  float64
	TruckValue   float64
	TrailerValue float64
	TotalDebt    float64
	Fleet        models.FleetStats
}

// Aggregate sums asset values and outstanding debt across the ledger
// collections. It is a pure read of the given state. A garage with an
// unknown size class is an input error, not a zero-capacity default.
func Aggregate(garages []models.Garage, trucks []models.Truck, trailers []models.Trailer, drivers []models.Driver, loans []models.Loan) (Valuation, error) {
	v := Valuation{
		Fleet: models.FleetStats{
			Garages:  len(garages),
			Trucks:   len(trucks),
			Trailers: len(trailers),
			Drivers:  len(drivers),
		},
	}

	for i := range garages {
		capacity, ok := garageCapacity[garages[i].Size]
		if !ok {
			return Valuation{}, apperrors.WithMessage(apperrors.ErrUnknownGarageSize,
				fmt.Sprintf("Unknown garage size %q", garages[i].Size))
		}
		v.GarageValue += garages[i].Value
		v.Fleet.ParkingLots += capacity
	}
	for i := range trucks {
		v.TruckValue += trucks[i].Value
	}
	for i := range trailers {
		v.TrailerValue += trailers[i].Value
	}
	for i := range loans {
		v.TotalDebt += loans[i].Remaining
	}

	return v, nil
}

// CashRatio returns cash over total capitalization clamped to [0, 1].
// A zero or negative capitalization yields 0 so division artifacts never
// reach the record.
func CashRatio(cash, totalCap float64) float64 {
	if totalCap <= 0 {
		return 0
	}
	ratio := cash / totalCap
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
