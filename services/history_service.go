package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/models"
)

// HistoryService reads the persisted daily snapshots back out for trend
// views: the day-by-day rows plus range averages and alert tallies.
type HistoryService struct{ db *gorm.DB }

func NewHistoryService(db *gorm.DB) *HistoryService { return &HistoryService{db: db} }

type HistoryDay struct {
	Date            string   `json:"date"`
	Calories        float64  `json:"calories"`
	Protein         float64  `json:"protein"`
	Carbs           float64  `json:"carbs"`
	Fat             float64  `json:"fat"`
	Fiber           float64  `json:"fiber"`
	SodiumMg        float64  `json:"sodium_mg"`
	SugarG          float64  `json:"sugar_g"`
	TargetCalories  float64  `json:"target_calories"`
	PercentOfTarget float64  `json:"percent_of_target"`
	Status          string   `json:"status"`
	Alerts          []string `json:"alerts"`
}

type HistorySummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Days []HistoryDay `json:"days"`

	Averages struct {
		Calories        float64 `json:"calories"`
		Protein         float64 `json:"protein"`
		Carbs           float64 `json:"carbs"`
		Fat             float64 `json:"fat"`
		Fiber           float64 `json:"fiber"`
		SodiumMg        float64 `json:"sodium_mg"`
		SugarG          float64 `json:"sugar_g"`
		PercentOfTarget float64 `json:"percent_of_target"`
	} `json:"averages"`

	StatusCounts map[string]int `json:"status_counts"`
	AlertCounts  map[string]int `json:"alert_counts"`
	DaysCounted  int            `json:"days_counted"`
}

// Range summarizes the stored snapshots between from and to inclusive.
// Days without a snapshot simply do not appear; averages run over the days
// that do.
func (s *HistoryService) Range(ctx context.Context, userID string, from, to time.Time) (*HistorySummary, error) {
	const op = "history.Range"

	var rows []models.DailySummary
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, models.DateOf(from), models.DateOf(to)).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}

	out := &HistorySummary{
		StatusCounts: map[string]int{},
		AlertCounts:  map[string]int{},
	}
	out.Range.From = from.Local().Format("2006-01-02")
	out.Range.To = to.Local().Format("2006-01-02")
	out.Days = make([]HistoryDay, 0, len(rows))

	for _, r := range rows {
		day := HistoryDay{
			Date:            time.Time(r.Date).Format("2006-01-02"),
			Calories:        r.Totals.Calories,
			Protein:         r.Totals.Protein,
			Carbs:           r.Totals.Carbs,
			Fat:             r.Totals.Fat,
			Fiber:           r.Totals.Fiber,
			SodiumMg:        r.Totals.SodiumMg,
			SugarG:          r.Totals.SugarG,
			TargetCalories:  r.TargetCalories,
			PercentOfTarget: r.PercentOfTarget,
			Status:          r.Status,
			Alerts:          r.Alerts,
		}
		out.Days = append(out.Days, day)

		out.Averages.Calories += r.Totals.Calories
		out.Averages.Protein += r.Totals.Protein
		out.Averages.Carbs += r.Totals.Carbs
		out.Averages.Fat += r.Totals.Fat
		out.Averages.Fiber += r.Totals.Fiber
		out.Averages.SodiumMg += r.Totals.SodiumMg
		out.Averages.SugarG += r.Totals.SugarG
		out.Averages.PercentOfTarget += r.PercentOfTarget

		out.StatusCounts[r.Status]++
		for _, code := range r.Alerts {
			out.AlertCounts[code]++
		}
	}

	out.DaysCounted = len(rows)
	if n := float64(len(rows)); n > 0 {
		out.Averages.Calories /= n
		out.Averages.Protein /= n
		out.Averages.Carbs /= n
		out.Averages.Fat /= n
		out.Averages.Fiber /= n
		out.Averages.SodiumMg /= n
		out.Averages.SugarG /= n
		out.Averages.PercentOfTarget /= n
	}
	return out, nil
}

// Alerts lists a user's persisted alerts, newest first.
func (s *HistoryService) Alerts(ctx context.Context, userID string, limit int) ([]models.Alert, error) {
	const op = "history.Alerts"
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var alerts []models.Alert
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, apperrors.E(apperrors.KindStorage, op, err)
	}
	return alerts, nil
}
