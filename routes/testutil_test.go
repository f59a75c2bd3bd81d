package routes

import (
	"car-rental-server/models"
	"car-rental-server/storage"
	"car-rental-server/utils"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"
)

// newTestDB points storage.DB at a fresh in-memory sqlite database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Car{}, &models.Booking{}, &models.Review{}); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}

	storage.DB = db
	return db
}

// newTestApp builds an iris app with the same parties as main.go.
func newTestApp(t *testing.T) *iris.Application {
	t.Helper()

	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")

	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := utils.NewAccessTokenVerifier()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	app.Get("/api/health", Health)

	cars := app.Party("/api/cars")
	{
		cars.Get("/", ListCars)
		cars.Get("/featured", GetFeaturedCars)
		cars.Get("/category/{category}", GetCarsByCategory)
		cars.Get("/{id:uint}", GetCarByID)
	}

	bookings := app.Party("/api/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		bookings.Post("/", CreateBooking)
		bookings.Get("/user", GetUserBookings)
		bookings.Get("/{id:uint}", GetBookingByID)
		bookings.Post("/{id:uint}/cancel", CancelBooking)
	}

	locations := app.Party("/api/locations")
	{
		locations.Get("/", ListLocations)
		locations.Get("/{id:int}", GetLocationByID)
	}

	reviews := app.Party("/api/reviews")
	{
		reviews.Get("/", ListTestimonials)
		reviews.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, CreateReview)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("building test app: %v", err)
	}
	return app
}

// signTestToken returns a signed access token for the given user.
func signTestToken(userID uint) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), time.Hour)
	token, _ := signer.Sign(utils.AccessToken{ID: userID})
	return string(token)
}

func doRequest(app *iris.Application, method, target, token string, body *strings.Reader) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}
