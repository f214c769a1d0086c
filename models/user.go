package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
)

type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"` // bcrypt hash
	FullName  string
	BirthDate *time.Time
	Gender    string  `gorm:"size:16"`
	HeightCm  float64 // e.g. 162
	WeightKg  float64 // e.g. 58.5

	DailyCalorieTarget float64 // e.g. 2000 kcal

	// Filter profile for the eligibility rules.
	Allergens    []string `gorm:"serializer:json"`
	Diet         string   `gorm:"size:16;default:none"` // none | vegetarian | vegan
	RequireHalal bool
	Province     string `gorm:"size:64"`
	City         string `gorm:"size:64"`

	Language string `gorm:"size:8;default:id"` // preferred message language

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Constraints projects the profile into the shape the rules run against.
func (u *User) Constraints() nutrition.Constraints {
	return nutrition.Constraints{
		Allergens:    u.Allergens,
		Diet:         nutrition.DietType(u.Diet),
		RequireHalal: u.RequireHalal,
		Province:     u.Province,
		City:         u.City,
	}
}
