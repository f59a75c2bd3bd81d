package routes

import (
	"car-rental-server/models"
	"car-rental-server/services"
	"car-rental-server/storage"
	"car-rental-server/utils"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

type CreateBookingRequest struct {
	CarID       uint            `json:"carId" validate:"required"`
	PickupDate  string          `json:"pickupDate" validate:"required"`
	ReturnDate  string          `json:"returnDate" validate:"required"`
	Location    string          `json:"location"`
	ContactInfo json.RawMessage `json:"contactInfo"`
	Notes       string          `json:"notes"`
}

var bookingDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseBookingDate(value string) (time.Time, error) {
	var err error
	for _, layout := range bookingDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// CreateBooking books an available car for the authenticated user. The
// total price is quoted once here and stored with the record.
func CreateBooking(ctx iris.Context) {
	userID, ok := utils.GetUserID(ctx)
	if !ok {
		utils.JSONError(ctx, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	var request CreateBookingRequest
	if err := ctx.ReadJSON(&request); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	pickupDate, err := parseBookingDate(request.PickupDate)
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, err.Error(), "Invalid pickup date")
		return
	}
	returnDate, err := parseBookingDate(request.ReturnDate)
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, err.Error(), "Invalid return date")
		return
	}
	if !returnDate.After(pickupDate) {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_dates", "Return date must be after pickup date")
		return
	}

	var car models.Car
	if err := storage.DB.First(&car, request.CarID).Error; err != nil || !car.Available {
		utils.JSONError(ctx, http.StatusBadRequest, "car_unavailable", "Car not available")
		return
	}

	quote := services.CalculateBookingPrice(pickupDate, returnDate, car.Price)

	booking := models.Booking{
		UserID:        userID,
		CarID:         request.CarID,
		PickupDate:    pickupDate,
		ReturnDate:    returnDate,
		Location:      request.Location,
		TotalPrice:    quote.TotalPrice,
		ContactInfo:   datatypes.JSON(request.ContactInfo),
		Notes:         request.Notes,
		Status:        models.BookingStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
	}

	if err := storage.DB.Create(&booking).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error(), "Error creating booking")
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"bookingId": booking.ID,
		"message":   "Booking created successfully",
	})
}

// GetUserBookings lists the authenticated user's bookings, newest first.
// The status query narrows the list: "upcoming" and "active" are derived
// from the current time, anything else matches the stored status.
func GetUserBookings(ctx iris.Context) {
	userID, ok := utils.GetUserID(ctx)
	if !ok {
		utils.JSONError(ctx, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	q := storage.DB.Where("user_id = ?", userID)

	now := time.Now()
	switch status := ctx.URLParam("status"); status {
	case "", "all":
	case "upcoming":
		q = q.Where("status = ?", models.BookingStatusConfirmed).
			Where("pickup_date > ?", now)
	case "active":
		q = q.Where("status = ?", models.BookingStatusConfirmed).
			Where("pickup_date <= ? AND return_date >= ?", now, now)
	default:
		q = q.Where("status = ?", status)
	}

	bookings := []models.Booking{}
	if err := q.Preload("Car").Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error(), "Error fetching bookings")
		return
	}

	ctx.JSON(bookings)
}

// GetBookingByID returns one of the user's bookings. Another user's
// booking is indistinguishable from a missing one.
func GetBookingByID(ctx iris.Context) {
	userID, ok := utils.GetUserID(ctx)
	if !ok {
		utils.JSONError(ctx, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	id := ctx.Params().GetUintDefault("id", 0)

	var booking models.Booking
	if err := storage.DB.Preload("Car").
		Where("id = ? AND user_id = ?", id, userID).
		First(&booking).Error; err != nil {
		ctx.StatusCode(iris.StatusNotFound)
		ctx.JSON(iris.Map{"message": "Booking not found"})
		return
	}

	ctx.JSON(booking)
}

// CancelBooking moves a confirmed booking to cancelled/refunded. The
// transition is one-way; cancelling twice is an error and leaves the
// record untouched.
func CancelBooking(ctx iris.Context) {
	userID, ok := utils.GetUserID(ctx)
	if !ok {
		utils.JSONError(ctx, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	id := ctx.Params().GetUintDefault("id", 0)

	var booking models.Booking
	if err := storage.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&booking).Error; err != nil {
		ctx.StatusCode(iris.StatusNotFound)
		ctx.JSON(iris.Map{"message": "Booking not found"})
		return
	}

	if booking.Status == models.BookingStatusCancelled {
		utils.JSONError(ctx, http.StatusBadRequest, "already_cancelled", "Booking already cancelled")
		return
	}

	booking.Status = models.BookingStatusCancelled
	booking.PaymentStatus = models.PaymentStatusRefunded
	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error(), "Error cancelling booking")
		return
	}

	ctx.JSON(iris.Map{"message": "Booking cancelled successfully"})
}
