package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/nutrition"
	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

type FoodController struct {
	Catalog *services.CatalogService
	Users   *services.UserService
	Recs    *services.RecommendationService
}

func NewFoodController(catalog *services.CatalogService, users *services.UserService, recs *services.RecommendationService) *FoodController {
	return &FoodController{Catalog: catalog, Users: users, Recs: recs}
}

// GET /foods?q=soto&category=side-dish&eligible=true&limit=20&offset=0
func (f *FoodController) List(c *gin.Context) {
	q := services.ListFoodsQuery{
		Category: c.Query("category"),
		Search:   c.Query("q"),
		Limit:    intQuery(c, "limit", 0),
		Offset:   intQuery(c, "offset", 0),
	}

	if c.Query("eligible") == "true" {
		constraints, err := f.Users.ConstraintsFor(c.GetString("userID"))
		if err != nil {
			respondError(c, err)
			return
		}
		q.EligibleFor = &constraints
	}

	foods, err := f.Catalog.List(q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods, "count": len(foods)})
}

func (f *FoodController) Get(c *gin.Context) {
	food, err := f.Catalog.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (f *FoodController) Create(c *gin.Context) {
	var item nutrition.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.CreateFood", "%v", err))
		return
	}
	created, err := f.Catalog.Create(item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (f *FoodController) Update(c *gin.Context) {
	var item nutrition.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.UpdateFood", "%v", err))
		return
	}
	updated, err := f.Catalog.Update(c.Param("id"), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (f *FoodController) Delete(c *gin.Context) {
	if err := f.Catalog.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// GET /foods/recommendations?date=2026-08-22&limit=10
func (f *FoodController) Recommendations(c *gin.Context) {
	day, ok := parseDateParam(c, "date")
	if !ok {
		return
	}
	rec, err := f.Recs.ForUser(c.GetString("userID"), day, intQuery(c, "limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
