// internal/api/handlers.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mentorme/MentorMe/internal/errors"
	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/services"
)

// Handler 处理API请求
type Handler struct {
	// 核心服务
	ProfileService      *services.ProfileService      // 档案服务
	MentorService       *services.MentorService       // 导师服务
	SwipeService        *services.SwipeService        // 滑动服务
	RequestService      *services.RequestService      // 请求服务
	GoalService         *services.GoalService         // 目标服务
	NotificationService *services.NotificationService // 通知服务
	ChatService         *services.ChatService         // 聊天服务
	WebSocketHandler    *WebSocketHandler             // WebSocket 处理器
	Response            *ResponseHelper               // 响应助手
}

// NewHandler 创建API处理器
func NewHandler(
	profileService *services.ProfileService,
	mentorService *services.MentorService,
	swipeService *services.SwipeService,
	requestService *services.RequestService,
	goalService *services.GoalService,
	notificationService *services.NotificationService,
	chatService *services.ChatService) *Handler {

	return &Handler{
		ProfileService:      profileService,
		MentorService:       mentorService,
		SwipeService:        swipeService,
		RequestService:      requestService,
		GoalService:         goalService,
		NotificationService: notificationService,
		ChatService:         chatService,
		WebSocketHandler:    NewWebSocketHandler(),
		Response:            NewResponseHelper(),
	}
}

// APIResponse 标准API响应格式
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"` // 用于调试和追踪
}

// APIError 标准错误格式
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SwipeRequest 记录滑动决定的请求结构
type SwipeRequest struct {
	MentorID string `json:"mentor_id"` // 被滑动的导师ID
	Decision string `json:"decision"`  // left/right/pass/request
}

// CreateConnectionRequest 发起连接请求的请求结构
type CreateConnectionRequest struct {
	MentorID   string `json:"mentor_id"`   // 目标导师ID
	MentorName string `json:"mentor_name"` // 兼容旧前端：只传导师名
}

// UpdateRequestStatusRequest 更新请求状态的请求结构
type UpdateRequestStatusRequest struct {
	Status string `json:"status"` // accepted / declined
}

// GoalRequest 新增目标的请求结构
type GoalRequest struct {
	Text string `json:"text"`
}

// PostMessageRequest 发帖的请求结构
type PostMessageRequest struct {
	Text string `json:"text"`
}

// handleServiceError 将服务层的类型化错误映射为HTTP响应
// 错误代码由 AppError 自带（如 MENTOR_NOT_FOUND），这里只决定状态码
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		h.Response.InternalError(c, "处理请求失败", err.Error())
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeValidation:
		h.Response.Error(c, http.StatusBadRequest, appErr.Code, appErr.Message)
	case apperrors.ErrorTypeNotFound:
		h.Response.Error(c, http.StatusNotFound, appErr.Code, appErr.Message)
	case apperrors.ErrorTypeConflict:
		h.Response.Error(c, http.StatusConflict, appErr.Code, appErr.Message)
	default:
		h.Response.InternalError(c, appErr.Message, appErr.Error())
	}
}

// ------------------------------------------------
// 入驻与档案
// ------------------------------------------------

// SaveMenteeOnboarding 保存学员入驻信息
func (h *Handler) SaveMenteeOnboarding(c *gin.Context) {
	var profile models.MenteeProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.Response.BadRequest(c, "无效的请求数据", err.Error())
		return
	}

	if err := h.ProfileService.SaveMenteeOnboarding(profile); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Created(c, h.ProfileService.GetMenteeProfile(), "学员入驻成功")
}

// SaveMentorOnboarding 保存导师入驻信息并加入名册
func (h *Handler) SaveMentorOnboarding(c *gin.Context) {
	var profile models.MentorProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.Response.BadRequest(c, "无效的请求数据", err.Error())
		return
	}

	card, err := h.MentorService.RegisterMentor(profile)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	profile.ID = card.ID
	if err := h.ProfileService.SaveMentorOnboarding(profile); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Created(c, gin.H{
		"profile": h.ProfileService.GetMentorProfile(),
		"card":    card,
	}, "导师入驻成功")
}

// GetProfile 获取当前用户及其档案
func (h *Handler) GetProfile(c *gin.Context) {
	h.Response.Success(c, gin.H{
		"user":   h.ProfileService.CurrentUser(),
		"mentee": h.ProfileService.GetMenteeProfile(),
		"mentor": h.ProfileService.GetMentorProfile(),
	})
}

// ------------------------------------------------
// 导师名册
// ------------------------------------------------

// GetMentors 获取完整导师名册
func (h *Handler) GetMentors(c *gin.Context) {
	h.Response.Success(c, h.MentorService.ListMentors())
}

// GetMentor 按ID获取导师
func (h *Handler) GetMentor(c *gin.Context) {
	mentorID := c.Param("id")
	if mentorID == "" {
		h.Response.BadRequest(c, "导师ID不能为空")
		return
	}

	card, err := h.MentorService.GetMentor(mentorID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Success(c, card)
}

// ------------------------------------------------
// 匹配页滑动
// ------------------------------------------------

// RecordSwipe 记录一次滑动决定
func (h *Handler) RecordSwipe(c *gin.Context) {
	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "无效的请求数据", err.Error())
		return
	}

	swipe, err := h.SwipeService.RecordSwipe(req.MentorID, models.SwipeDecision(req.Decision))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Created(c, swipe, "滑动已记录")
}

// GetSwipes 获取全部滑动记录
func (h *Handler) GetSwipes(c *gin.Context) {
	h.Response.Success(c, h.SwipeService.ListSwipes())
}

// GetLikedMentors 获取右滑过的导师卡片
func (h *Handler) GetLikedMentors(c *gin.Context) {
	liked := h.SwipeService.ListLikedMentors(h.MentorService.ListMentors())
	h.Response.Success(c, liked)
}

// ------------------------------------------------
// 连接请求
// ------------------------------------------------

// CreateRequest 学员向导师发起连接请求
func (h *Handler) CreateRequest(c *gin.Context) {
	var req CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "无效的请求数据", err.Error())
		return
	}

	mentorName := strings.TrimSpace(req.MentorName)
	if req.MentorID != "" {
		card, err := h.MentorService.GetMentor(req.MentorID)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		mentorName = card.Name
	}

	request, err := h.RequestService.CreateRequest(req.MentorID, mentorName, h.ProfileService.GetMenteeProfile())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Created(c, request, "请求已发送")
}

// GetRequests 获取请求列表
// 导师视角只返回发给自己的请求
func (h *Handler) GetRequests(c *gin.Context) {
	user := h.ProfileService.CurrentUser()
	if user.Role == models.UserTypeMentor {
		profile := h.ProfileService.GetMentorProfile()
		h.Response.Success(c, h.RequestService.ListForMentor(profile.ID, user.Name))
		return
	}
	h.Response.Success(c, h.RequestService.ListRequests())
}

// UpdateRequestStatus 导师接受或拒绝请求
func (h *Handler) UpdateRequestStatus(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		h.Response.BadRequest(c, "请求ID不能为空")
		return
	}

	var req UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "无效的请求数据", err.Error())
		return
	}

	updated, err := h.RequestService.UpdateStatus(
		requestID,
		models.RequestStatus(req.Status),
		h.ProfileService.GetMentorProfile(),
	)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Success(c, updated, "请求状态已更新")
}

// ------------------------------------------------
// 目标追踪
// ------------------------------------------------

// GetGoals 获取当前用户的目标清单及完成度
func (h *Handler) GetGoals(c *gin.Context) {
	owner := h.ProfileService.CurrentUser().Name
	goals, progress := h.GoalService.ListGoals(owner)
	h.Response.Success(c, gin.H{
		"goals":    goals,
		"progress": progress,
	})
}

// AddGoal 新增一条目标
func (h *Handler) AddGoal(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "无效的请求数据", err.Error())
		return
	}

	owner := h.ProfileService.CurrentUser().Name
	goal, err := h.GoalService.AddGoal(owner, req.Text)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Created(c, goal, "目标已添加")
}

// ToggleGoal 切换目标完成状态
func (h *Handler) ToggleGoal(c *gin.Context) {
	owner := h.ProfileService.CurrentUser().Name
	goal, err := h.GoalService.ToggleGoal(owner, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Success(c, goal)
}

// DeleteGoal 删除一条目标
func (h *Handler) DeleteGoal(c *gin.Context) {
	owner := h.ProfileService.CurrentUser().Name
	if err := h.GoalService.DeleteGoal(owner, c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Success(c, nil, "目标已删除")
}

// ------------------------------------------------
// 通知
// ------------------------------------------------

// GetNotifications 获取通知列表，最新在前
func (h *Handler) GetNotifications(c *gin.Context) {
	h.Response.Success(c, h.NotificationService.List())
}

// MarkNotificationRead 标记通知为已读
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	if err := h.NotificationService.MarkRead(c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Success(c, nil, "通知已读")
}

// CreateDemoNotification 生成一条演示通知
// 导师名按名册轮换取下一个
func (h *Handler) CreateDemoNotification(c *gin.Context) {
	mentorName := h.NotificationService.NextMentorName(h.MentorService.ListMentors())

	notification := models.NewNotification(
		models.NotificationRequestAccepted,
		mentorName+" accepted your mentorship request",
	)
	notification.MentorName = mentorName

	if err := h.NotificationService.Add(notification); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Created(c, notification, "通知已生成")
}

// ------------------------------------------------
// 会话线程
// ------------------------------------------------

// GetThreads 获取当前用户可见的线程列表
func (h *Handler) GetThreads(c *gin.Context) {
	h.Response.Success(c, h.ChatService.Threads())
}

// GetThreadMessages 获取线程消息，首次打开时写入种子消息
func (h *Handler) GetThreadMessages(c *gin.Context) {
	messages, err := h.ChatService.Messages(c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Success(c, messages)
}

// PostThreadMessage 发帖并安排模拟回复
func (h *Handler) PostThreadMessage(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "无效的请求数据", err.Error())
		return
	}

	message, err := h.ChatService.PostMessage(c.Param("id"), req.Text)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Response.Created(c, message, "消息已发送")
}

// ------------------------------------------------
// WebSocket 与运维
// ------------------------------------------------

// ThreadWebSocket 处理线程 WebSocket 连接
func (h *Handler) ThreadWebSocket(c *gin.Context) {
	h.WebSocketHandler.ThreadWebSocket(c)
}

// GetWebSocketStatus 获取 WebSocket 连接状态（调试用）
func (h *Handler) GetWebSocketStatus(c *gin.Context) {
	status := wsManager.GetStatus()
	status["ping_timeout_seconds"] = int(wsManager.pingTimeout.Seconds())
	status["timestamp"] = time.Now().Format(time.RFC3339)

	c.JSON(http.StatusOK, status)
}

// CleanupWebSocketConnections 手动触发连接清理
func (h *Handler) CleanupWebSocketConnections(c *gin.Context) {
	wsManager.cleanupExpiredConnections()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "连接清理已执行",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// HealthCheck 健康检查
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
