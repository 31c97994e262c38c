// @title NeuroStudy 后端 API
// @version 1.0
// @description 自适应学习计划服务：认知画像、精力评估与排课引擎。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"neuro_study_backend/internal/app"
	"neuro_study_backend/internal/config"
	"neuro_study_backend/pkg/database"
	"neuro_study_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	if cfg.MigrateOnly {
		logger.InitLogger(cfg)
		if _, err := database.InitDB(&cfg.Database, false); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application := app.NewApp(cfg)
	application.Run()
}
