package routes

import (
	"car-rental-server/models"
	"car-rental-server/storage"
	"car-rental-server/utils"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/kataras/iris/v12"
)

type CreateReviewRequest struct {
	CarID     uint   `json:"carId" validate:"required"`
	BookingID uint   `json:"bookingId"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Content   string `json:"content" validate:"required,max=1000"`
	Location  string `json:"location"`
}

type TestimonialResponse struct {
	ID       uint   `json:"id"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Image    string `json:"image"`
}

const testimonialImageTemplate = "https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=600"

// ListTestimonials returns the public testimonial wall: up to 10 reviews
// that are both flagged for display and approved, newest first. The photo
// is cosmetic and drawn at random on every request.
func ListTestimonials(ctx iris.Context) {
	reviews := []models.Review{}
	if err := storage.DB.Preload("User").
		Where("is_testimonial = ? AND is_approved = ?", true, true).
		Order("created_at DESC").
		Limit(10).
		Find(&reviews).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error(), "Error fetching reviews")
		return
	}

	testimonials := make([]TestimonialResponse, 0, len(reviews))
	for _, review := range reviews {
		testimonials = append(testimonials, TestimonialResponse{
			ID:       review.ID,
			Content:  review.Content,
			Author:   review.User.Name,
			Location: review.Location,
			Rating:   review.Rating,
			Image:    fmt.Sprintf(testimonialImageTemplate, rand.Intn(1000000), rand.Intn(1000000)),
		})
	}

	ctx.JSON(testimonials)
}

// CreateReview stores a review for the authenticated user. Reviews always
// start unapproved; approval happens through an administrative channel.
func CreateReview(ctx iris.Context) {
	userID, ok := utils.GetUserID(ctx)
	if !ok {
		utils.JSONError(ctx, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	var request CreateReviewRequest
	if err := ctx.ReadJSON(&request); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	review := models.Review{
		UserID:     userID,
		CarID:      request.CarID,
		BookingID:  request.BookingID,
		Rating:     request.Rating,
		Content:    request.Content,
		Location:   request.Location,
		IsApproved: false,
	}

	if err := storage.DB.Create(&review).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error(), "Error creating review")
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":  "Review submitted successfully",
		"reviewId": review.ID,
	})
}
