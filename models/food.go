package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
)

// FoodItem is one catalog entry. Nutrients live in typed columns (nutr_*)
// so queries can sort on them; the list-shaped fields are JSON columns.
type FoodItem struct {
	ID       string   `gorm:"primaryKey;size:64"` // seed slugs or uuids
	Name     string   `gorm:"not null;index"`
	AltNames []string `gorm:"serializer:json"`
	Category string   `gorm:"size:24;index"`

	Per100g nutrition.Nutrients `gorm:"embedded;embeddedPrefix:nutr_"`

	Portions  []nutrition.Portion `gorm:"serializer:json;not null"`
	Allergens []string            `gorm:"serializer:json"`

	Vegetarian     bool
	Vegan          bool
	HalalCertified bool

	Nationwide bool
	Regions    []nutrition.Region `gorm:"serializer:json"`

	Popularity int `gorm:"default:5"` // 1..10

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// ToDomain converts the row into the value the rules operate on.
func (f *FoodItem) ToDomain() nutrition.FoodItem {
	return nutrition.FoodItem{
		ID:       f.ID,
		Name:     f.Name,
		AltNames: f.AltNames,
		Category: nutrition.Category(f.Category),
		Per100g:  f.Per100g,
		Portions: f.Portions,
		Allergens: f.Allergens,
		Diet: nutrition.DietFlags{
			Vegetarian:     f.Vegetarian,
			Vegan:          f.Vegan,
			HalalCertified: f.HalalCertified,
		},
		Nationwide: f.Nationwide,
		Regions:    f.Regions,
		Popularity: f.Popularity,
	}
}

// FoodItemFromDomain builds a row from a validated catalog value.
func FoodItemFromDomain(d nutrition.FoodItem) FoodItem {
	return FoodItem{
		ID:             d.ID,
		Name:           d.Name,
		AltNames:       d.AltNames,
		Category:       string(d.Category),
		Per100g:        d.Per100g,
		Portions:       d.Portions,
		Allergens:      d.Allergens,
		Vegetarian:     d.Diet.Vegetarian,
		Vegan:          d.Diet.Vegan,
		HalalCertified: d.Diet.HalalCertified,
		Nationwide:     d.Nationwide,
		Regions:        d.Regions,
		Popularity:     d.Popularity,
	}
}
