package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
)

// RecommendationService turns a day's alerts into food suggestions. The
// selection is deterministic: classify the day, take the first actionable
// alert, and pull eligible foods from the catalog in the order that
// counteracts it.
type RecommendationService struct {
	db      *gorm.DB
	catalog *CatalogService
	summary *SummaryService
}

func NewRecommendationService(db *gorm.DB, catalog *CatalogService, summary *SummaryService) *RecommendationService {
	return &RecommendationService{db: db, catalog: catalog, summary: summary}
}

type Recommendation struct {
	Alert nutrition.AlertCode  `json:"alert,omitempty"`
	Foods []nutrition.FoodItem `json:"foods"`
}

// ForUser recommends foods against today's (or the given day's) alerts,
// filtered by the user's own constraints.
func (r *RecommendationService) ForUser(userID string, day time.Time, limit int) (*Recommendation, error) {
	const op = "recommendation.ForUser"

	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Errorf(apperrors.KindNotFound, op, "no user %s", userID)
		}
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}

	view, err := r.summary.Daily(userID, day)
	if err != nil {
		return nil, err
	}

	foods, err := nutrition.Recommend(view.Alerts, r.catalog, user.Constraints(), limit)
	if err != nil {
		return nil, err
	}

	rec := &Recommendation{Foods: foods}
	for _, a := range view.Alerts {
		switch a {
		case nutrition.AlertFiberLow, nutrition.AlertCalorieLow, nutrition.AlertCalorieHigh:
			rec.Alert = a
		}
		if rec.Alert != "" {
			break
		}
	}
	return rec, nil
}
