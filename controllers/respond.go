package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
	"github.com/neimasilk/healthycoaching-id-sub000/i18n"
	"github.com/neimasilk/healthycoaching-id-sub000/logger"
)

// respondError renders any service error: status from the error kind, the
// user-facing message localized from the Accept-Language header, and the
// request's correlation id so a support ticket can be matched to the log
// line.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	corrID := c.GetString("correlation_id")
	err = apperrors.WithCorrelation(err, corrID)

	lang := i18n.FromAcceptLanguage(c.GetHeader("Accept-Language"))
	status := apperrors.HTTPStatus(kind)

	logger.L().Warn("request failed",
		zap.String("correlation_id", corrID),
		zap.String("kind", string(kind)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)

	c.AbortWithStatusJSON(status, gin.H{
		"error":          i18n.T(lang, string(kind)),
		"code":           kind,
		"detail":         err.Error(),
		"correlation_id": corrID,
	})
}

// parseDateParam reads a YYYY-MM-DD query param, defaulting to today.
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now(), true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		respondError(c, apperrors.Errorf(apperrors.KindValidation, "api.parseDate",
			"%s %q is not YYYY-MM-DD", name, raw))
		return time.Time{}, false
	}
	return day, true
}
