// cmd/server/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mentorme/MentorMe/internal/app"
	"github.com/mentorme/MentorMe/internal/di"
)

func main() {
	log.Println("🚀 启动 MentorMe 服务器...")

	// 1. 初始化应用：配置、日志、服务、路由
	if err := app.Initialize(); err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	log.Println("✅ 应用初始化完成")

	cfg := app.GetApp().GetConfig()

	// 2. 创建数据子目录
	createDirectories(cfg.DataDir)
	log.Println("✅ 目录结构创建完成")

	// 3. 服务健康检查
	if err := performHealthCheck(); err != nil {
		log.Printf("⚠️ 服务健康检查警告: %v", err)
	}

	// 4. 启动服务器
	log.Printf("🌐 服务器启动在端口 %s", cfg.Port)
	log.Printf("🔗 访问地址: http://localhost:%s", cfg.Port)
	log.Printf("🔗 健康检查: http://localhost:%s/api/health", cfg.Port)

	if err := app.Run(); err != nil {
		log.Fatalf("❌ 服务器运行失败: %v", err)
	}

	log.Println("✅ 服务器已退出")
}

// createDirectories 创建各存储目录
func createDirectories(dataDir string) {
	dirs := []string{
		"profiles",
		"mentors",
		"swipes",
		"requests",
		"goals",
		"notifications",
		"chat",
	}

	for _, dir := range dirs {
		path := filepath.Join(dataDir, dir)
		if err := os.MkdirAll(path, 0755); err != nil {
			log.Printf("⚠️ 创建目录失败 %s: %v", path, err)
		}
	}
}

// 健康检查函数
func performHealthCheck() error {
	container := di.GetContainer()

	// 检查关键服务是否已注册
	criticalServices := []string{"storage", "engine", "profile", "mentor", "request", "chat"}

	for _, serviceName := range criticalServices {
		if service := container.Get(serviceName); service == nil {
			return fmt.Errorf("关键服务未注册: %s", serviceName)
		}
	}

	log.Printf("✅ 服务健康检查通过，服务数量: %d", len(container.GetNames()))
	return nil
}
