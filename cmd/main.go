package main

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/neimasilk/healthycoaching-id-sub000/config"
	"github.com/neimasilk/healthycoaching-id-sub000/logger"
	"github.com/neimasilk/healthycoaching-id-sub000/routes"
	"github.com/neimasilk/healthycoaching-id-sub000/utils"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.L()

	config.Load()
	if err := config.InitDB(); err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	if config.Getenv("S3_BUCKET", "") == "" {
		log.Info("S3_BUCKET not set, snapshot export disabled")
	} else if err := utils.InitS3(); err != nil {
		log.Warn("S3 disabled, snapshot export unavailable", zap.Error(err))
	}

	r, syncSvc := routes.SetupRouter(config.DB)

	c := cron.New()
	c.AddFunc(config.Getenv("SYNC_CRON", "@every 15m"), func() {
		syncSvc.RunAll(context.Background())
	})
	c.AddFunc(config.Getenv("SNAPSHOT_CRON", "0 2 * * *"), func() {
		syncSvc.SnapshotAll(context.Background())
	})
	c.Start()

	if err := r.Run(":" + config.Getenv("PORT", "8080")); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
