// @title Quiz Catalog API
// @version 1.0
// @description 测验题库目录服务：主题与题目的管理及批量导入。

// @host localhost:8080
// @BasePath /api

package main

import (
	"log"

	"quiz_catalog_backend/internal/app"
	"quiz_catalog_backend/internal/config"
	"quiz_catalog_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
