package routes

import (
	"car-rental-server/services"

	"github.com/kataras/iris/v12"
)

// ListLocations returns the pickup cities, optionally narrowed by region.
func ListLocations(ctx iris.Context) {
	region := ctx.URLParam("region")
	ctx.JSON(services.FilterLocationsByRegion(region))
}

func GetLocationByID(ctx iris.Context) {
	id := ctx.Params().GetIntDefault("id", 0)

	location, exists := services.GetLocationByID(id)
	if !exists {
		ctx.StatusCode(iris.StatusNotFound)
		ctx.JSON(iris.Map{"message": "Location not found"})
		return
	}

	ctx.JSON(location)
}
