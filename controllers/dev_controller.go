// controllers/dev_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

type DevController struct {
	Catalog *services.CatalogService
}

func NewDevController(catalog *services.CatalogService) *DevController {
	return &DevController{Catalog: catalog}
}

// SeedCatalog loads the bundled Indonesian food dataset. Idempotent:
// foods that already exist are skipped, so it is safe to call on every
// fresh install or after a catalog wipe.
func (d *DevController) SeedCatalog(c *gin.Context) {
	created, skipped, err := d.Catalog.ImportSeed(services.SeedFoods())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created, "skipped": skipped})
}
