package main

import (
	"car-rental-server/models"
	"car-rental-server/storage"
	"fmt"
	"log"
)

var seedCars = []models.Car{
	{Name: "Maruti Swift", Category: "hatchback", Location: "Delhi", Transmission: "manual", Fuel: "petrol", Seats: 5, Price: 1200, Available: true, Rating: 4.2, ReviewCount: 54},
	{Name: "Hyundai i20", Category: "hatchback", Location: "Mumbai", Transmission: "automatic", Fuel: "petrol", Seats: 5, Price: 1500, Available: true, IsFeatured: true, Rating: 4.4, ReviewCount: 38},
	{Name: "Honda City", Category: "sedan", Location: "Bangalore", Transmission: "automatic", Fuel: "petrol", Seats: 5, Price: 2000, Available: true, IsFeatured: true, Rating: 4.5, ReviewCount: 71},
	{Name: "Hyundai Verna", Category: "sedan", Location: "Delhi", Transmission: "manual", Fuel: "diesel", Seats: 5, Price: 1800, Available: true, Rating: 4.1, ReviewCount: 29},
	{Name: "Mahindra XUV700", Category: "suv", Location: "Mumbai", Transmission: "automatic", Fuel: "diesel", Seats: 7, Price: 3200, Available: true, IsFeatured: true, Rating: 4.6, ReviewCount: 63},
	{Name: "Tata Nexon", Category: "suv", Location: "Chennai", Transmission: "manual", Fuel: "petrol", Seats: 5, Price: 2400, Available: true, Rating: 4.3, ReviewCount: 47},
	{Name: "Toyota Fortuner", Category: "suv", Location: "Hyderabad", Transmission: "automatic", Fuel: "diesel", Seats: 7, Price: 4500, Available: true, IsFeatured: true, Rating: 4.7, ReviewCount: 88},
	{Name: "Tata Nexon EV", Category: "suv", Location: "Pune", Transmission: "automatic", Fuel: "electric", Seats: 5, Price: 2800, Available: true, Rating: 4.4, ReviewCount: 33},
	{Name: "Mercedes-Benz C-Class", Category: "luxury", Location: "Delhi", Transmission: "automatic", Fuel: "petrol", Seats: 5, Price: 8000, Available: true, IsFeatured: true, Rating: 4.8, ReviewCount: 25},
	{Name: "BMW 3 Series", Category: "luxury", Location: "Mumbai", Transmission: "automatic", Fuel: "petrol", Seats: 5, Price: 8500, Available: true, Rating: 4.7, ReviewCount: 19},
	{Name: "Kia Seltos", Category: "suv", Location: "Kolkata", Transmission: "manual", Fuel: "petrol", Seats: 5, Price: 2200, Available: true, Rating: 4.2, ReviewCount: 41},
	{Name: "Maruti Ertiga", Category: "muv", Location: "Ahmedabad", Transmission: "manual", Fuel: "petrol", Seats: 7, Price: 2000, Available: true, Rating: 4.0, ReviewCount: 22},
}

func main() {
	db := storage.InitializeDB()

	var count int64
	if err := db.Model(&models.Car{}).Count(&count).Error; err != nil {
		log.Fatalf("Error counting cars: %v", err)
	}
	if count > 0 {
		fmt.Printf("Catalog already has %d cars, nothing to do\n", count)
		return
	}

	if err := db.Create(&seedCars).Error; err != nil {
		log.Fatalf("Error seeding cars: %v", err)
	}

	fmt.Printf("Seeded %d cars\n", len(seedCars))
}
