package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/neimasilk/healthycoaching-id-sub000/config"
	"github.com/neimasilk/healthycoaching-id-sub000/controllers"
	"github.com/neimasilk/healthycoaching-id-sub000/logger"
	"github.com/neimasilk/healthycoaching-id-sub000/middlewares"
	"github.com/neimasilk/healthycoaching-id-sub000/services"
)

// SetupRouter constructs the service graph and wires every route. The sync
// service is returned alongside the engine so main can hand it to the cron
// scheduler.
func SetupRouter(db *gorm.DB) (*gin.Engine, *services.SyncService) {
	hub := services.NewRealtimeHub()

	catalog := services.NewCatalogService(db,
		config.GetenvInt("CATALOG_CACHE_SIZE", 0),
		config.GetenvDuration("CATALOG_CACHE_TTL", 0))
	summary := services.NewSummaryService(db, catalog)
	services.InitAlertDeps(db, hub)

	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db, summary)
	logSvc := services.NewLogService(db, catalog, summary)
	recSvc := services.NewRecommendationService(db, catalog, summary)
	histSvc := services.NewHistoryService(db)
	syncSvc := services.NewSyncService(db, catalog, summary, hub)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	foodCtl := controllers.NewFoodController(catalog, userSvc, recSvc)
	logCtl := controllers.NewLogController(logSvc)
	sumCtl := controllers.NewSummaryController(summary, histSvc)
	syncCtl := controllers.NewSyncController(syncSvc)
	rtCtl := controllers.NewRealtimeController(hub)
	devCtl := controllers.NewDevController(catalog)

	r := gin.Default()
	r.Use(middlewares.CorrelationMiddleware(logger.L()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
		user.PUT("/target", userCtl.UpdateTarget)
		user.GET("/target/suggest", userCtl.SuggestTarget)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("", foodCtl.List)
		foods.POST("", foodCtl.Create)
		foods.GET("/recommendations", foodCtl.Recommendations)
		foods.GET("/:id", foodCtl.Get)
		foods.PUT("/:id", foodCtl.Update)
		foods.DELETE("/:id", foodCtl.Delete)
	}

	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.POST("", logCtl.Add)
		logs.GET("", logCtl.ListByDate)
		logs.PUT("/:id", logCtl.Update)
		logs.DELETE("/:id", logCtl.Delete)
	}

	summaryGroup := r.Group("/summary")
	summaryGroup.Use(middlewares.AuthMiddleware())
	{
		summaryGroup.GET("/daily", sumCtl.Daily)
		summaryGroup.GET("/history", sumCtl.HistoryRange)
	}

	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", sumCtl.Alerts)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", rtCtl.AlertsWS)
	}

	sync := r.Group("/sync")
	sync.Use(middlewares.AuthMiddleware())
	{
		sync.POST("/run", syncCtl.Run)
		sync.GET("/status", syncCtl.Status)
		sync.POST("/snapshot", syncCtl.ExportSnapshot)
	}

	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	{
		dev.POST("/seed", devCtl.SeedCatalog)
	}

	return r, syncSvc
}
