package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

type SyncController struct {
	Sync *services.SyncService
}

func NewSyncController(sync *services.SyncService) *SyncController {
	return &SyncController{Sync: sync}
}

// POST /sync/run pushes pending local changes and pulls remote ones.
func (s *SyncController) Run(c *gin.Context) {
	report, err := s.Sync.Run(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *SyncController) Status(c *gin.Context) {
	status, err := s.Sync.Status(c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// POST /sync/snapshot uploads a full JSON export of the user's data to S3.
func (s *SyncController) ExportSnapshot(c *gin.Context) {
	key, err := s.Sync.ExportSnapshot(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot_key": key})
}
