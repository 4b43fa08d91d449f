// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/mentorme/MentorMe/internal/api"
	"github.com/mentorme/MentorMe/internal/config"
	"github.com/mentorme/MentorMe/internal/di"
	"github.com/mentorme/MentorMe/internal/replyengine"
	"github.com/mentorme/MentorMe/internal/services"
	"github.com/mentorme/MentorMe/internal/storage"
	"github.com/mentorme/MentorMe/internal/utils"
)

// Server 抽象HTTP服务器，便于测试时替换
type Server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// App 应用实例
type App struct {
	config   *config.Config
	router   http.Handler
	server   Server
	stopChan chan os.Signal
}

var (
	instance *App
	mu       sync.Mutex
)

// GetApp 获取应用单例
func GetApp() *App {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		instance = &App{
			stopChan: make(chan os.Signal, 1),
		}
	}
	return instance
}

// Initialize 初始化应用：配置、日志、服务、路由
func Initialize() error {
	app := GetApp()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	app.config = cfg

	if err := initLogger(cfg.LogDir); err != nil {
		return fmt.Errorf("初始化日志系统失败: %w", err)
	}

	if err := InitServices(cfg); err != nil {
		return fmt.Errorf("初始化服务失败: %w", err)
	}

	router, err := api.SetupRouter(cfg)
	if err != nil {
		return fmt.Errorf("设置路由失败: %w", err)
	}
	app.router = router

	return nil
}

// initLogger 初始化日志系统，日志文件按天命名
func initLogger(logDir string) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logFile := filepath.Join(logDir, "mentorme_"+time.Now().Format("2006-01-02")+".log")
	return utils.InitLogger(logFile)
}

// InitServices 按依赖顺序创建并注册所有服务
func InitServices(cfg *config.Config) error {
	container := di.GetContainer()

	store, err := storage.NewFileStorage(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("初始化存储失败: %w", err)
	}
	container.Register("storage", store)

	engine := replyengine.New(
		rand.New(rand.NewSource(time.Now().UnixNano())),
		replyengine.DefaultOptions(),
	)
	container.Register("engine", engine)

	// 基础服务
	profileService := services.NewProfileService(store)
	container.Register("profile", profileService)

	mentorService := services.NewMentorService(store)
	container.Register("mentor", mentorService)

	swipeService := services.NewSwipeService(store)
	container.Register("swipe", swipeService)

	goalService := services.NewGoalService(store)
	container.Register("goal", goalService)

	notificationService := services.NewNotificationService(store)
	container.Register("notification", notificationService)

	// 依赖服务
	requestService := services.NewRequestService(store, notificationService)
	container.Register("request", requestService)

	chatService := services.NewChatService(
		store,
		engine,
		profileService,
		mentorService,
		requestService,
		time.Duration(cfg.ReplyDelayMS)*time.Millisecond,
	)
	container.Register("chat", chatService)

	return nil
}

// Run 启动HTTP服务器并等待停止信号
func Run() error {
	app := GetApp()

	if app.server == nil {
		if app.config == nil || app.router == nil {
			return fmt.Errorf("应用未初始化")
		}
		app.server = &http.Server{
			Addr:    ":" + app.config.Port,
			Handler: app.router,
		}
	}

	errChan := make(chan error, 1)
	go func() {
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	signal.Notify(app.stopChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("启动服务器失败: %w", err)
	case <-app.stopChan:
	}

	utils.GetLogger().Infof("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("关闭服务器失败: %w", err)
	}

	app.cleanup()
	return nil
}

// cleanup 释放资源
func (a *App) cleanup() {
	container := di.GetContainer()

	// 存储层没有需要显式关闭的句柄，清空容器即可
	container.Clear()

	utils.GetLogger().Infof("资源清理完成")
}

// GetConfig 返回应用配置
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetDIContainer 返回全局依赖注入容器
func GetDIContainer() *di.Container {
	return di.GetContainer()
}

// IsDebugMode 检查是否处于调试模式
func IsDebugMode() bool {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil || instance.config == nil {
		return false
	}
	return instance.config.DebugMode
}
