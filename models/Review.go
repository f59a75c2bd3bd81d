package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID        uint   `json:"userID" gorm:"not null;index"`
	User          User   `json:"user" gorm:"foreignKey:UserID"`
	CarID         uint   `json:"carID" gorm:"not null;index"`
	Car           Car    `json:"car" gorm:"foreignKey:CarID"`
	BookingID     uint   `json:"bookingID" gorm:"index"`
	Rating        int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Content       string `json:"content" gorm:"type:text"`
	Location      string `json:"location"`
	IsApproved    bool   `json:"isApproved" gorm:"default:false;index"`
	IsTestimonial bool   `json:"isTestimonial" gorm:"default:false;index"`
}
