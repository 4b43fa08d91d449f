// internal/api/websocket_handlers.go
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mentorme/MentorMe/internal/di"
	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/services"
)

// WebSocketHandler 处理 WebSocket 相关的 HTTP 请求
type WebSocketHandler struct {
	chatService *services.ChatService
}

// NewWebSocketHandler 创建 WebSocket 处理器
func NewWebSocketHandler() *WebSocketHandler {
	container := di.GetContainer()

	return &WebSocketHandler{
		chatService: container.Get("chat").(*services.ChatService),
	}
}

// BroadcastThreadMessage 将落盘后的消息推送给该线程的订阅者
// 由聊天服务的回调注入点调用
func BroadcastThreadMessage(threadID string, message models.Message) {
	wsManager.BroadcastToThread(threadID, map[string]interface{}{
		"type":      "message",
		"thread_id": threadID,
		"message":   message,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ThreadWebSocket 处理线程 WebSocket 连接
func (wh *WebSocketHandler) ThreadWebSocket(c *gin.Context) {
	threadID := c.Param("id")
	if threadID == "" {
		log.Printf("❌ WebSocket 连接失败：线程ID缺失")
		http.Error(c.Writer, "线程ID缺失", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ 线程 WebSocket 升级失败: %v", err)
		return
	}
	defer conn.Close()

	// 获取参数
	userName := c.DefaultQuery("user", "anonymous")

	// 创建客户端
	client := &WebSocketClient{
		conn:      conn,
		threadID:  threadID,
		userName:  userName,
		send:      make(chan []byte, 256),
		closed:    0,
		lastPing:  time.Now(),
		createdAt: time.Now(),
	}

	// 注册客户端
	select {
	case wsManager.register <- client:
	default:
		log.Printf("❌ 无法注册 WebSocket 客户端，注册通道已满")
		return
	}

	defer func() {
		// 带超时的注销，避免阻塞请求协程
		done := make(chan bool, 1)
		go func() {
			wsManager.unregister <- client
			done <- true
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			log.Printf("⚠️ WebSocket 客户端注销超时")
		}
	}()

	// 启动读写协程
	go wh.handleWebSocketWrites(client)
	go wh.handleWebSocketReads(client)

	// 发送连接确认消息
	wh.sendWelcomeMessage(client, threadID, userName)

	// 等待连接关闭
	<-c.Request.Context().Done()
	log.Printf("📱 线程 %s 的 WebSocket 连接已关闭 (用户: %s)", threadID, userName)
}

// handleWebSocketReads 处理 WebSocket 读取
func (wh *WebSocketHandler) handleWebSocketReads(client *WebSocketClient) {
	defer func() {
		if !client.IsClosed() {
			select {
			case wsManager.unregister <- client:
			case <-time.After(1 * time.Second):
				log.Printf("⚠️ 读取协程关闭时注销超时")
			}
		}
	}()

	// 设置读取超时和ping处理
	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.UpdatePing()
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if client.IsClosed() {
			break
		}

		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		_, messageBytes, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("❌ WebSocket 读取错误: %v", err)
			}
			break
		}

		// 解析JSON消息
		var message map[string]interface{}
		if err := json.Unmarshal(messageBytes, &message); err != nil {
			log.Printf("⚠️ JSON解析失败: %v", err)
			continue
		}

		client.UpdatePing()

		wh.handleMessage(client, message)
	}
}

// handleWebSocketWrites 处理 WebSocket 写入
func (wh *WebSocketHandler) handleWebSocketWrites(client *WebSocketClient) {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		if atomic.CompareAndSwapInt32(&client.closed, 0, 1) {
			func() {
				defer func() {
					if recover() != nil {
						// 通道已关闭
					}
				}()
				close(client.send)
			}()
		}
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			if client.IsClosed() {
				return
			}

			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("❌ WebSocket 写入失败: %v", err)
				return
			}

		case <-ticker.C:
			if client.IsClosed() {
				return
			}

			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("❌ WebSocket ping 失败: %v", err)
				return
			}
			client.UpdatePing()
		}
	}
}

// handleMessage 处理收到的 WebSocket 消息
func (wh *WebSocketHandler) handleMessage(client *WebSocketClient, message map[string]interface{}) {
	msgType, ok := message["type"].(string)
	if !ok {
		log.Printf("⚠️ 收到无效的消息类型")
		return
	}

	switch msgType {
	case "message":
		wh.handleThreadMessage(client, message)
	case "ping":
		wh.handlePing(client)
	default:
		log.Printf("⚠️ 未知的消息类型: %s", msgType)
	}
}

// handleThreadMessage 处理通过 WebSocket 发帖
// 与 REST 发帖走同一条服务路径：先落盘用户消息，再安排模拟回复
func (wh *WebSocketHandler) handleThreadMessage(client *WebSocketClient, message map[string]interface{}) {
	text, ok := message["text"].(string)
	if !ok {
		wh.sendError(client, "缺少消息内容")
		return
	}

	if wh.chatService == nil {
		wh.sendError(client, "聊天服务不可用")
		return
	}

	posted, err := wh.chatService.PostMessage(client.threadID, text)
	if err != nil {
		wh.sendError(client, "发送消息失败: "+err.Error())
		return
	}

	BroadcastThreadMessage(client.threadID, posted)
}

// handlePing 处理ping消息
func (wh *WebSocketHandler) handlePing(client *WebSocketClient) {
	client.SendMessage(map[string]interface{}{
		"type":      "pong",
		"timestamp": time.Now().Unix(),
	})
}

// sendWelcomeMessage 发送连接确认消息
func (wh *WebSocketHandler) sendWelcomeMessage(client *WebSocketClient, threadID, userName string) {
	client.SendMessage(map[string]interface{}{
		"type":      "connected",
		"thread_id": threadID,
		"user":      userName,
		"timestamp": time.Now().Format(time.RFC3339),
		"message":   "WebSocket 连接已建立",
	})
}

// sendError 发送错误消息
func (wh *WebSocketHandler) sendError(client *WebSocketClient, errorMsg string) {
	client.SendMessage(map[string]interface{}{
		"type":      "error",
		"error":     errorMsg,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
