package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

type LogController struct {
	Logs *services.LogService
}

func NewLogController(logs *services.LogService) *LogController {
	return &LogController{Logs: logs}
}

func (l *LogController) Add(c *gin.Context) {
	var input services.LogEntryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.AddLog", "%v", err))
		return
	}
	entry, err := l.Logs.Add(c.GetString("userID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /logs?date=2026-08-22 (defaults to today)
func (l *LogController) ListByDate(c *gin.Context) {
	day, ok := parseDateParam(c, "date")
	if !ok {
		return
	}
	entries, err := l.Logs.ListByDate(c.GetString("userID"), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func (l *LogController) Update(c *gin.Context) {
	var input services.LogEntryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.UpdateLog", "%v", err))
		return
	}
	entry, err := l.Logs.Update(c.GetString("userID"), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (l *LogController) Delete(c *gin.Context) {
	if err := l.Logs.Delete(c.GetString("userID"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
