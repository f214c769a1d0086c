package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (a *AuthController) Register(c *gin.Context) {
	var input services.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.Register", "%v", err))
		return
	}

	user, err := a.Auth.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.Login", "%v", err))
		return
	}

	token, user, err := a.Auth.Login(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}
