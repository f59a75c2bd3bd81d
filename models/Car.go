package models

import "gorm.io/gorm"

type Car struct {
	gorm.Model
	Name         string  `json:"name"`
	Category     string  `json:"category" gorm:"index"` // suv, sedan, hatchback, luxury
	Location     string  `json:"location" gorm:"index"`
	Transmission string  `json:"transmission"` // manual, automatic
	Fuel         string  `json:"fuel"`         // petrol, diesel, electric
	Seats        int     `json:"seats"`
	Price        float64 `json:"price"` // daily rate
	Image        string  `json:"image"`
	Available    bool    `json:"available" gorm:"default:true;index"`
	IsFeatured   bool    `json:"isFeatured" gorm:"default:false"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
}
