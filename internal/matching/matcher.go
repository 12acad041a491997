package matching

import (
	"math"

	model "premise-hub/internal/models"
)

const earthRadiusKm = 6371.0

// DefaultProximityKm is the radius within which an offer and a request
// are considered to be in the same neighbourhood.
const DefaultProximityKm = 10.0

// Matches reports whether a request is compatible with an offer: the two
// locations lie within proximityKm of each other and the offer's starting
// price falls inside the request's price range. Pure, no side effects.
func Matches(offer model.Offer, req model.Request, proximityKm float64) bool {
	if DistanceKm(offer.Location, req.Location) >= proximityKm {
		return false
	}
	return req.MinPrice <= offer.StartingPrice && offer.StartingPrice <= req.MaxPrice
}

// DistanceKm returns the approximate distance between two coordinates in
// kilometres. Uses the equirectangular approximation, which is accurate
// at neighbourhood scale and cheap enough to run on every submission.
func DistanceKm(a, b model.Location) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := latB - latA
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	x := dLon * math.Cos((latA+latB)/2)
	return earthRadiusKm * math.Sqrt(x*x+dLat*dLat)
}
