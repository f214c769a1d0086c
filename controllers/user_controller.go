package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (u *UserController) GetProfile(c *gin.Context) {
	profile, err := u.Users.GetProfile(c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (u *UserController) UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.UpdateProfile", "%v", err))
		return
	}
	profile, err := u.Users.UpdateProfile(c.GetString("userID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type targetInput struct {
	DailyCalorieTarget float64 `json:"daily_calorie_target" binding:"required"`
}

func (u *UserController) UpdateTarget(c *gin.Context) {
	var input targetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.UpdateTarget", "%v", err))
		return
	}
	if err := u.Users.UpdateTarget(c.GetString("userID"), input.DailyCalorieTarget); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_calorie_target": input.DailyCalorieTarget})
}

// SuggestTarget estimates a target from the stored measurements without
// changing the profile. ?activity_factor=1.2..2.0, default sedentary.
func (u *UserController) SuggestTarget(c *gin.Context) {
	factor := 1.2
	if raw := c.Query("activity_factor"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.SuggestTarget",
				"activity_factor %q is not a number", raw))
			return
		}
		factor = parsed
	}
	suggestion, err := u.Users.SuggestTarget(c.GetString("userID"), factor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggested_daily_calorie_target": suggestion})
}
