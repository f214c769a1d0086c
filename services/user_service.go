package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/logger"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
	"github.com/neimasilk/healthycoaching-id-sub000/utils"
)

type UserService struct {
	db      *gorm.DB
	summary *SummaryService
}

func NewUserService(db *gorm.DB, summary *SummaryService) *UserService {
	return &UserService{db: db, summary: summary}
}

type ProfileInput struct {
	FullName     string   `json:"full_name"`
	BirthDate    string   `json:"birth_date"` // YYYY-MM-DD
	Gender       string   `json:"gender"`
	HeightCm     float64  `json:"height_cm"`
	WeightKg     float64  `json:"weight_kg"`
	Allergens    []string `json:"allergens"`
	Diet         string   `json:"diet"`
	RequireHalal *bool    `json:"require_halal"`
	Province     string   `json:"province"`
	City         string   `json:"city"`
	Language     string   `json:"language"`
}

func (s *UserService) find(userID string) (*models.User, error) {
	const op = "user.find"
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Errorf(apperrors.KindNotFound, op, "no user %s", userID)
		}
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	return &user, nil
}

// GetProfile returns the profile map the mobile client renders, including
// the derived age, BMI and BMI category.
func (s *UserService) GetProfile(userID string) (map[string]interface{}, error) {
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}
	return profilePayload(user), nil
}

// ConstraintsFor loads just the filter profile for the eligibility rules.
func (s *UserService) ConstraintsFor(userID string) (nutrition.Constraints, error) {
	user, err := s.find(userID)
	if err != nil {
		return nutrition.Constraints{}, err
	}
	return user.Constraints(), nil
}

func profilePayload(user *models.User) map[string]interface{} {
	out := map[string]interface{}{
		"id":                   user.ID,
		"email":                user.Email,
		"full_name":            user.FullName,
		"gender":               user.Gender,
		"height_cm":            user.HeightCm,
		"weight_kg":            user.WeightKg,
		"daily_calorie_target": user.DailyCalorieTarget,
		"allergens":            user.Allergens,
		"diet":                 user.Diet,
		"require_halal":        user.RequireHalal,
		"province":             user.Province,
		"city":                 user.City,
		"language":             user.Language,
	}
	if user.BirthDate != nil {
		out["birth_date"] = user.BirthDate.Format("2006-01-02")
		out["age"] = utils.CalculateAge(*user.BirthDate)
	}
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	return out
}

// UpdateProfile applies the provided fields only, so the client can PATCH
// one setting without resending the whole profile.
func (s *UserService) UpdateProfile(userID string, input ProfileInput) (map[string]interface{}, error) {
	const op = "user.UpdateProfile"
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.BirthDate != "" {
		birth, perr := time.Parse("2006-01-02", input.BirthDate)
		if perr != nil {
			return nil, apperrors.Errorf(apperrors.KindValidation, op, "birth_date %q is not YYYY-MM-DD", input.BirthDate)
		}
		user.BirthDate = &birth
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.Allergens != nil {
		user.Allergens = input.Allergens
	}
	if input.Diet != "" {
		if !nutrition.DietType(input.Diet).Valid() {
			return nil, apperrors.Errorf(apperrors.KindValidation, op, "unknown diet %q", input.Diet)
		}
		user.Diet = input.Diet
	}
	if input.RequireHalal != nil {
		user.RequireHalal = *input.RequireHalal
	}
	if input.Province != "" {
		user.Province = input.Province
	}
	if input.City != "" {
		user.City = input.City
	}
	if input.Language == "en" || input.Language == "id" {
		user.Language = input.Language
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return apperrors.E(apperrors.KindStorage, op, err)
		}
		return recordChange(tx, user.ID, "user", user.ID, models.ChangeUpdate, profilePayload(user))
	})
	if err != nil {
		return nil, err
	}
	return profilePayload(user), nil
}

// UpdateTarget sets the daily calorie target and recomputes today's
// summary, since the status bands move with the target.
func (s *UserService) UpdateTarget(userID string, target float64) error {
	const op = "user.UpdateTarget"
	if target <= 0 {
		return apperrors.Errorf(apperrors.KindInvalidTarget, op, "calorie target %.2f must be positive", target)
	}
	user, err := s.find(userID)
	if err != nil {
		return err
	}
	user.DailyCalorieTarget = target
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return apperrors.E(apperrors.KindStorage, op, err)
		}
		return recordChange(tx, user.ID, "user", user.ID, models.ChangeUpdate, profilePayload(user))
	})
	if err != nil {
		return err
	}
	// The target is saved either way; a failed recompute only delays the
	// snapshot until the next log write.
	if err := s.summary.Recompute(userID, time.Now()); err != nil {
		logger.L().Warn("user: summary recompute failed",
			zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}

// SuggestTarget estimates a maintenance target from the stored
// measurements. It does not change the profile; the client confirms first.
func (s *UserService) SuggestTarget(userID string, activityFactor float64) (float64, error) {
	const op = "user.SuggestTarget"
	user, err := s.find(userID)
	if err != nil {
		return 0, err
	}
	if user.BirthDate == nil {
		return 0, apperrors.Errorf(apperrors.KindValidation, op, "birth date not set")
	}
	age := utils.CalculateAge(*user.BirthDate)
	suggestion, err := utils.EstimateDailyCalories(user.HeightCm, user.WeightKg, age, user.Gender, activityFactor)
	if err != nil {
		return 0, apperrors.Errorf(apperrors.KindValidation, op, "%v", err)
	}
	return suggestion, nil
}
