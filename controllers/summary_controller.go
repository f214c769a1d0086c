package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

type SummaryController struct {
	Summaries *services.SummaryService
	History   *services.HistoryService
}

func NewSummaryController(summaries *services.SummaryService, history *services.HistoryService) *SummaryController {
	return &SummaryController{Summaries: summaries, History: history}
}

// GET /summary/daily?date=2026-08-22 (defaults to today)
func (s *SummaryController) Daily(c *gin.Context) {
	day, ok := parseDateParam(c, "date")
	if !ok {
		return
	}
	view, err := s.Summaries.Daily(c.GetString("userID"), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /summary/history?from=2026-08-01&to=2026-08-22
func (s *SummaryController) HistoryRange(c *gin.Context) {
	from, ok := parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}
	if to.Before(from) {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.History", "'to' date is before 'from' date"))
		return
	}
	hist, err := s.History.Range(c.Request.Context(), c.GetString("userID"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hist)
}

// GET /alerts?limit=50
func (s *SummaryController) Alerts(c *gin.Context) {
	limit := intQuery(c, "limit", 0)
	alerts, err := s.History.Alerts(c.Request.Context(), c.GetString("userID"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "count": len(alerts)})
}
