package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

type Booking struct {
	gorm.Model
	UserID        uint           `json:"userID" gorm:"not null;index"`
	CarID         uint           `json:"carID" gorm:"not null;index"`
	Car           Car            `json:"car" gorm:"foreignKey:CarID"`
	PickupDate    time.Time      `json:"pickupDate"`
	ReturnDate    time.Time      `json:"returnDate"`
	Location      string         `json:"location"`
	TotalPrice    float64        `json:"totalPrice"` // fixed at creation, never recomputed
	ContactInfo   datatypes.JSON `json:"contactInfo" gorm:"type:jsonb"`
	Notes         string         `json:"notes" gorm:"type:text"`
	Status        string         `json:"status" gorm:"type:varchar(20);default:'confirmed';index"`
	PaymentStatus string         `json:"paymentStatus" gorm:"type:varchar(20);default:'paid'"`
}
