package routes

import (
	"car-rental-server/models"
	"car-rental-server/storage"
	"car-rental-server/utils"
	"math"
	"net/http"
	"strconv"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// carFilterQuery builds the conjunctive catalog filter from the query
// string. Absent or "all" values are no-ops; availability is always on.
func carFilterQuery(ctx iris.Context) *gorm.DB {
	q := storage.DB.Model(&models.Car{}).Where("available = ?", true)

	if category := ctx.URLParam("category"); category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if location := ctx.URLParam("location"); location != "" {
		q = q.Where("location = ?", location)
	}
	if transmission := ctx.URLParam("transmission"); transmission != "" && transmission != "all" {
		q = q.Where("transmission = ?", transmission)
	}
	if fuel := ctx.URLParam("fuel"); fuel != "" && fuel != "all" {
		q = q.Where("fuel = ?", fuel)
	}
	if seats := ctx.URLParam("seats"); seats != "" && seats != "all" {
		if minSeats, err := strconv.Atoi(seats); err == nil {
			q = q.Where("seats >= ?", minSeats)
		}
	}
	if minPrice, err := ctx.URLParamInt("minPrice"); err == nil && minPrice > 0 {
		q = q.Where("price >= ?", minPrice)
	}
	if maxPrice, err := ctx.URLParamInt("maxPrice"); err == nil && maxPrice > 0 {
		q = q.Where("price <= ?", maxPrice)
	}

	return q
}

func carSortOrder(q *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "price-desc":
		return q.Order("price DESC")
	case "popularity":
		return q.Order("rating DESC").Order("review_count DESC")
	case "newest":
		return q.Order("created_at DESC")
	default: // price-asc
		return q.Order("price ASC")
	}
}

// ListCars returns a page of available cars matching the filters.
func ListCars(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	limit := ctx.URLParamIntDefault("limit", 12)
	if limit < 1 {
		limit = 12
	}

	var total int64
	if err := carFilterQuery(ctx).Count(&total).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error(), "Error fetching cars")
		return
	}

	cars := []models.Car{}
	q := carSortOrder(carFilterQuery(ctx), ctx.URLParamDefault("sort", "price-asc"))
	if err := q.Offset((page - 1) * limit).Limit(limit).Find(&cars).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error(), "Error fetching cars")
		return
	}

	ctx.JSON(iris.Map{
		"cars":       cars,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	})
}

// GetFeaturedCars returns up to 8 featured cars, best rated first.
func GetFeaturedCars(ctx iris.Context) {
	cars := []models.Car{}
	if err := storage.DB.
		Where("available = ? AND is_featured = ?", true, true).
		Order("rating DESC").
		Limit(8).
		Find(&cars).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error(), "Error fetching featured cars")
		return
	}

	ctx.JSON(cars)
}

func GetCarByID(ctx iris.Context) {
	id := ctx.Params().GetUintDefault("id", 0)

	var car models.Car
	if err := storage.DB.First(&car, id).Error; err != nil {
		ctx.StatusCode(iris.StatusNotFound)
		ctx.JSON(iris.Map{"message": "Car not found"})
		return
	}

	ctx.JSON(car)
}

// GetCarsByCategory lists every available car of a category, cheapest
// first, without pagination.
func GetCarsByCategory(ctx iris.Context) {
	category := ctx.Params().Get("category")

	cars := []models.Car{}
	if err := storage.DB.
		Where("category = ? AND available = ?", category, true).
		Order("price ASC").
		Find(&cars).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error(), "Error fetching cars by category")
		return
	}

	ctx.JSON(cars)
}
