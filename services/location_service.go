package services

import "golang.org/x/exp/slices"

type Location struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Region       string `json:"region"`
	State        string `json:"state"`
	CarCount     int    `json:"carCount"`
	PickupPoints int    `json:"pickupPoints"`
}

// Static pickup-city table; loaded once, read-only afterwards.
var RentalLocations = []Location{
	{ID: 1, Name: "Delhi", Region: "north", State: "Delhi", CarCount: 150, PickupPoints: 5},
	{ID: 2, Name: "Mumbai", Region: "west", State: "Maharashtra", CarCount: 200, PickupPoints: 6},
	{ID: 3, Name: "Bangalore", Region: "south", State: "Karnataka", CarCount: 180, PickupPoints: 5},
	{ID: 4, Name: "Hyderabad", Region: "south", State: "Telangana", CarCount: 120, PickupPoints: 4},
	{ID: 5, Name: "Chennai", Region: "south", State: "Tamil Nadu", CarCount: 140, PickupPoints: 5},
	{ID: 6, Name: "Kolkata", Region: "east", State: "West Bengal", CarCount: 100, PickupPoints: 4},
	{ID: 7, Name: "Pune", Region: "west", State: "Maharashtra", CarCount: 90, PickupPoints: 3},
	{ID: 8, Name: "Ahmedabad", Region: "west", State: "Gujarat", CarCount: 85, PickupPoints: 3},
}

// FilterLocationsByRegion returns the locations in the given region.
// An empty region or "all" returns the whole table.
func FilterLocationsByRegion(region string) []Location {
	if region == "" || region == "all" {
		return RentalLocations
	}

	filtered := make([]Location, 0, len(RentalLocations))
	for _, loc := range RentalLocations {
		if loc.Region == region {
			filtered = append(filtered, loc)
		}
	}
	return filtered
}

func GetLocationByID(id int) (Location, bool) {
	idx := slices.IndexFunc(RentalLocations, func(loc Location) bool {
		return loc.ID == id
	})
	if idx < 0 {
		return Location{}, false
	}
	return RentalLocations[idx], true
}
