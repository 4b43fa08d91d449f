// internal/api/websocket.go
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket 升级器配置
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 在生产环境中应该进行更严格的检查
		return true
	},
}

// WebSocketClient 表示一个订阅了某线程的客户端连接
type WebSocketClient struct {
	conn      *websocket.Conn
	threadID  string
	userName  string
	send      chan []byte
	closed    int32     // 原子操作标志，0=开启，1=关闭
	lastPing  time.Time // 最后一次ping时间
	createdAt time.Time // 创建时间
}

// WebSocketManager 管理所有 WebSocket 连接，按线程分组
type WebSocketManager struct {
	connections   map[string]map[*websocket.Conn]*WebSocketClient // threadID -> connections
	register      chan *WebSocketClient
	unregister    chan *WebSocketClient
	cleanup       chan bool
	mutex         sync.RWMutex
	pingTimeout   time.Duration
	cleanupTicker *time.Ticker
}

// 全局 WebSocket 管理器
var wsManager = &WebSocketManager{
	connections: make(map[string]map[*websocket.Conn]*WebSocketClient),
	register:    make(chan *WebSocketClient, 256),
	unregister:  make(chan *WebSocketClient, 256),
	cleanup:     make(chan bool, 1),
	pingTimeout: 60 * time.Second,
}

func init() {
	go wsManager.run()
}

// ========================================
// WebSocketClient 方法
// ========================================

// Close 安全关闭客户端连接
func (client *WebSocketClient) Close() {
	if atomic.CompareAndSwapInt32(&client.closed, 0, 1) {
		// 只设置关闭标志，发送通道由写协程的 defer 负责关闭
		if client.conn != nil {
			client.conn.Close()
		}
	}
}

// SendMessage 将JSON消息放入客户端发送队列，队列满时丢弃
func (client *WebSocketClient) SendMessage(message map[string]interface{}) {
	if client.IsClosed() {
		return
	}
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return
	}
	select {
	case client.send <- msgBytes:
	default:
		log.Printf("⚠️ 客户端发送队列已满，消息被丢弃 (线程: %s)", client.threadID)
	}
}

// IsClosed 检查连接是否已关闭
func (client *WebSocketClient) IsClosed() bool {
	return atomic.LoadInt32(&client.closed) == 1
}

// UpdatePing 更新最后ping时间
func (client *WebSocketClient) UpdatePing() {
	client.lastPing = time.Now()
}

// IsExpired 检查连接是否超时
func (client *WebSocketClient) IsExpired(timeout time.Duration) bool {
	if timeout <= 0 {
		return true
	}
	return time.Since(client.lastPing) > timeout
}

// ========================================
// WebSocketManager 方法
// ========================================

// run 运行 WebSocket 管理器主循环
func (manager *WebSocketManager) run() {
	manager.cleanupTicker = time.NewTicker(30 * time.Second)
	defer manager.cleanupTicker.Stop()

	for {
		select {
		case client := <-manager.register:
			manager.registerClient(client)

		case client := <-manager.unregister:
			manager.unregisterClient(client)

		case <-manager.cleanupTicker.C:
			manager.cleanupExpiredConnections()

		case <-manager.cleanup:
			manager.shutdown()
			return
		}
	}
}

// registerClient 注册新客户端
func (manager *WebSocketManager) registerClient(client *WebSocketClient) {
	if client == nil {
		return
	}

	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if manager.connections[client.threadID] == nil {
		manager.connections[client.threadID] = make(map[*websocket.Conn]*WebSocketClient)
	}

	manager.connections[client.threadID][client.conn] = client
	client.UpdatePing()

	log.Printf("WebSocket 客户端已订阅线程 %s (用户: %s)", client.threadID, client.userName)
}

// unregisterClient 安全注销客户端
func (manager *WebSocketManager) unregisterClient(client *WebSocketClient) {
	if client == nil {
		return
	}

	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if connections, exists := manager.connections[client.threadID]; exists {
		delete(connections, client.conn)
		if len(connections) == 0 {
			delete(manager.connections, client.threadID)
		}
	}

	if !client.IsClosed() {
		client.Close()
	}

	log.Printf("WebSocket 客户端已断开 (线程: %s, 用户: %s)", client.threadID, client.userName)
}

// cleanupExpiredConnections 清理过期和死连接
func (manager *WebSocketManager) cleanupExpiredConnections() {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	for threadID, connections := range manager.connections {
		for conn, client := range connections {
			if client.IsClosed() || client.IsExpired(manager.pingTimeout) {
				delete(connections, conn)
				if !client.IsClosed() {
					client.Close()
				}
			}
		}
		if len(connections) == 0 {
			delete(manager.connections, threadID)
		}
	}
}

// processBatch 处理批量消息发送
func (manager *WebSocketManager) processBatch(clients []*WebSocketClient, message []byte) {
	failedCount := 0
	for _, client := range clients {
		if client.IsClosed() {
			continue
		}

		select {
		case client.send <- message:
		default:
			// 队列满，限制失败处理数量
			failedCount++
			if failedCount <= 5 {
				go func(c *WebSocketClient) {
					c.Close()
					select {
					case manager.unregister <- c:
					case <-time.After(50 * time.Millisecond):
					}
				}(client)
			} else {
				client.Close()
			}
		}
	}
}

// shutdown 优雅关闭管理器
func (manager *WebSocketManager) shutdown() {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	for _, connections := range manager.connections {
		for _, client := range connections {
			client.Close()
		}
	}
	manager.connections = make(map[string]map[*websocket.Conn]*WebSocketClient)

	log.Println("WebSocket 管理器已关闭")
}

// GetStatus 获取管理器状态
func (manager *WebSocketManager) GetStatus() map[string]interface{} {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	threads := make(map[string]interface{})
	totalConnections := 0

	for threadID, connections := range manager.connections {
		activeConnections := 0
		users := make([]interface{}, 0)

		for _, client := range connections {
			if client != nil && !client.IsClosed() {
				activeConnections++
				users = append(users, map[string]interface{}{
					"user":         client.userName,
					"thread_id":    client.threadID,
					"connected_at": client.createdAt.Format(time.RFC3339),
					"last_ping":    client.lastPing.Format(time.RFC3339),
				})
			}
		}

		threads[threadID] = map[string]interface{}{
			"client_count": activeConnections,
			"users":        users,
		}
		totalConnections += activeConnections
	}

	return map[string]interface{}{
		"total_threads":     len(manager.connections),
		"total_connections": totalConnections,
		"threads":           threads,
	}
}

// BroadcastToThread 向指定线程的订阅者广播消息
// 其他线程的订阅者收不到：落盘是无条件的，推送只面向当前线程
func (manager *WebSocketManager) BroadcastToThread(threadID string, message map[string]interface{}) {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		log.Printf("序列化广播消息失败: %v", err)
		return
	}

	manager.mutex.RLock()
	connections, exists := manager.connections[threadID]
	if !exists {
		manager.mutex.RUnlock()
		return
	}

	clients := make([]*WebSocketClient, 0, len(connections))
	for _, client := range connections {
		if !client.IsClosed() {
			clients = append(clients, client)
		}
	}
	manager.mutex.RUnlock()

	if len(clients) > 0 {
		manager.processBatch(clients, msgBytes)
	}
}
