package main

import (
	"car-rental-server/routes"
	"car-rental-server/storage"
	"car-rental-server/utils"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func main() {
	storage.InitializeDB()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the web front-end
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := utils.NewAccessTokenVerifier()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	app.Get("/api/health", routes.Health)

	cars := app.Party("/api/cars")
	{
		cars.Get("/", routes.ListCars)
		cars.Get("/featured", routes.GetFeaturedCars)
		cars.Get("/category/{category}", routes.GetCarsByCategory)
		cars.Get("/{id:uint}", routes.GetCarByID)
	}

	bookings := app.Party("/api/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		bookings.Post("/", routes.CreateBooking)
		bookings.Get("/user", routes.GetUserBookings)
		bookings.Get("/{id:uint}", routes.GetBookingByID)
		bookings.Post("/{id:uint}/cancel", routes.CancelBooking)
	}

	locations := app.Party("/api/locations")
	{
		locations.Get("/", routes.ListLocations)
		locations.Get("/{id:int}", routes.GetLocationByID)
	}

	reviews := app.Party("/api/reviews")
	{
		reviews.Get("/", routes.ListTestimonials)
		reviews.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateReview)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}
