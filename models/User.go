package models

import "gorm.io/gorm"

// User carries only what review population needs; account management
// lives in a separate service.
type User struct {
	gorm.Model
	Name  string `json:"name"`
	Email string `json:"email" gorm:"uniqueIndex"`
}
