package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
	"github.com/neimasilk/healthycoaching-id-sub000/utils"
)

const defaultCalorieTarget = 2000

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

type RegisterRequest struct {
	Email              string  `json:"email" binding:"required,email"`
	Password           string  `json:"password" binding:"required"`
	FullName           string  `json:"full_name"`
	DailyCalorieTarget float64 `json:"daily_calorie_target"`
	Language           string  `json:"language"`
}

func (s *AuthService) Register(req RegisterRequest) (*models.User, error) {
	const op = "auth.Register"

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, apperrors.Errorf(apperrors.KindValidation, op, "email is required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Errorf(apperrors.KindValidation, op, "password must be at least 8 characters")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	if count > 0 {
		return nil, apperrors.Errorf(apperrors.KindConflict, op, "email %s already registered", email)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.E(apperrors.KindInternal, op, err)
	}

	target := req.DailyCalorieTarget
	if target <= 0 {
		target = defaultCalorieTarget
	}
	lang := req.Language
	if lang != "en" {
		lang = "id"
	}

	user := models.User{
		Email:              email,
		Password:           hashed,
		FullName:           req.FullName,
		DailyCalorieTarget: target,
		Diet:               string(nutrition.DietNone),
		Language:           lang,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return apperrors.E(apperrors.KindStorage, op, err)
		}
		return recordChange(tx, user.ID, "user", user.ID, models.ChangeCreate, profilePayload(&user))
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and returns a signed token. A missing user
// and a wrong password produce the same error so the endpoint cannot be
// used to probe registered emails.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	const op = "auth.Login"

	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.Errorf(apperrors.KindUnauthorized, op, "invalid credentials")
		}
		return "", nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	if !utils.CheckPassword(user.Password, password) {
		return "", nil, apperrors.Errorf(apperrors.KindUnauthorized, op, "invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", nil, apperrors.E(apperrors.KindInternal, op, err)
	}
	return token, &user, nil
}
