// internal/api/router.go
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorme/MentorMe/internal/config"
	"github.com/mentorme/MentorMe/internal/di"
	"github.com/mentorme/MentorMe/internal/services"
)

// SetupRouter 配置HTTP路由
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	// 获取依赖注入容器
	container := di.GetContainer()

	// 只从容器获取服务，不再创建新实例
	profileService, ok := container.Get("profile").(*services.ProfileService)
	if !ok {
		return nil, fmt.Errorf("档案服务未正确初始化")
	}

	mentorService, ok := container.Get("mentor").(*services.MentorService)
	if !ok {
		return nil, fmt.Errorf("导师服务未正确初始化")
	}

	swipeService, ok := container.Get("swipe").(*services.SwipeService)
	if !ok {
		return nil, fmt.Errorf("滑动服务未正确初始化")
	}

	requestService, ok := container.Get("request").(*services.RequestService)
	if !ok {
		return nil, fmt.Errorf("请求服务未正确初始化")
	}

	goalService, ok := container.Get("goal").(*services.GoalService)
	if !ok {
		return nil, fmt.Errorf("目标服务未正确初始化")
	}

	notificationService, ok := container.Get("notification").(*services.NotificationService)
	if !ok {
		return nil, fmt.Errorf("通知服务未正确初始化")
	}

	chatService, ok := container.Get("chat").(*services.ChatService)
	if !ok {
		return nil, fmt.Errorf("聊天服务未正确初始化")
	}

	// 创建API处理器 - 只传递从容器获取的服务
	handler := NewHandler(
		profileService,
		mentorService,
		swipeService,
		requestService,
		goalService,
		notificationService,
		chatService,
	)

	// 模拟回复落盘后推送给该线程的订阅者
	chatService.SetBroadcast(BroadcastThreadMessage)

	// 创建路由
	r := gin.Default()

	// 启用CORS
	r.Use(corsMiddleware())

	// HTTPS重定向（生产环境）
	if !cfg.DebugMode {
		r.Use(func(c *gin.Context) {
			if c.Request.Header.Get("X-Forwarded-Proto") != "https" {
				c.Redirect(http.StatusPermanentRedirect,
					"https://"+c.Request.Host+c.Request.URL.Path)
				return
			}
			c.Next()
		})
	}

	// 静态文件服务
	r.Static("/static", cfg.StaticDir)

	// WebSocket 支持
	r.GET("/ws/threads/:id", handler.ThreadWebSocket)

	// ===============================
	// API路由组
	// ===============================
	api := r.Group("/api")
	api.Use(DefaultRateLimit())
	{
		api.GET("/health", handler.HealthCheck)

		// ===============================
		// 入驻与档案
		// ===============================
		onboardingGroup := api.Group("/onboarding")
		{
			onboardingGroup.POST("/mentee", handler.SaveMenteeOnboarding)
			onboardingGroup.POST("/mentor", handler.SaveMentorOnboarding)
		}
		api.GET("/profile", handler.GetProfile)

		// ===============================
		// 导师名册
		// ===============================
		mentorsGroup := api.Group("/mentors")
		{
			mentorsGroup.GET("", handler.GetMentors)
			mentorsGroup.GET("/:id", handler.GetMentor)
		}

		// ===============================
		// 匹配页滑动
		// ===============================
		swipesGroup := api.Group("/swipes")
		swipesGroup.Use(SwipeRateLimit())
		{
			swipesGroup.POST("", handler.RecordSwipe)
			swipesGroup.GET("", handler.GetSwipes)
			swipesGroup.GET("/liked", handler.GetLikedMentors)
		}

		// ===============================
		// 连接请求
		// ===============================
		requestsGroup := api.Group("/requests")
		{
			requestsGroup.POST("", handler.CreateRequest)
			requestsGroup.GET("", handler.GetRequests)
			requestsGroup.PUT("/:id", handler.UpdateRequestStatus)
		}

		// ===============================
		// 目标追踪
		// ===============================
		goalsGroup := api.Group("/goals")
		{
			goalsGroup.GET("", handler.GetGoals)
			goalsGroup.POST("", handler.AddGoal)
			goalsGroup.PUT("/:id/toggle", handler.ToggleGoal)
			goalsGroup.DELETE("/:id", handler.DeleteGoal)
		}

		// ===============================
		// 通知
		// ===============================
		notificationsGroup := api.Group("/notifications")
		{
			notificationsGroup.GET("", handler.GetNotifications)
			notificationsGroup.PUT("/:id/read", handler.MarkNotificationRead)
			notificationsGroup.POST("/demo", handler.CreateDemoNotification)
		}

		// ===============================
		// 会话线程
		// ===============================
		threadsGroup := api.Group("/threads")
		{
			threadsGroup.GET("", handler.GetThreads)
			threadsGroup.GET("/:id/messages", handler.GetThreadMessages)
			threadsGroup.POST("/:id/messages", ChatRateLimit(), handler.PostThreadMessage)
		}

		// WebSocket 管理路由
		wsGroup := api.Group("/ws")
		{
			wsGroup.GET("/status", handler.GetWebSocketStatus)
			wsGroup.POST("/cleanup", handler.CleanupWebSocketConnections)
		}
	}

	return r, nil
}

// corsMiddleware 实现跨域资源共享
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
