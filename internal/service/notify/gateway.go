// Package notify 实现日记创建事件的通知推送
// gateway.go
// 核心职责：WebSocket 连接生命周期管理
// 1. 建立 WebSocket 连接 (Upgrade)
// 2. 封装 Client 对象，管理读写协程 (Read/Write Loop)
// 3. 向在线成员推送通知
package notify

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pet_diary_server/pkg/constants"
)

// UserConn 表示一个 WebSocket 客户端连接
type UserConn struct {
	Conn     *websocket.Conn
	Username string
	SendBack chan []byte // 给前端的推送通道
}

// 允许任何来源的连接，跨域由前端部署环境决定
var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Gateway WebSocket 网关
// 维护在线用户连接，供 Broker 分发事件时查找目标连接
type Gateway struct {
	// clients 在线客户端映射表，Key 为用户名，Value 为 *UserConn
	// 使用 sync.Map 实现并发安全，无需手动加锁
	clients sync.Map
}

// NewGateway 创建 Gateway 实例
func NewGateway() *Gateway {
	return &Gateway{}
}

// Register 升级 HTTP 连接为 WebSocket 并注册客户端
// 同一用户重复连接时新连接覆盖旧连接
func (g *Gateway) Register(c *gin.Context, username string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("ws upgrade 失败", zap.Error(err))
		return
	}
	client := &UserConn{
		Conn:     conn,
		Username: username,
		SendBack: make(chan []byte, constants.CHANNEL_SIZE),
	}
	if old, loaded := g.clients.Swap(username, client); loaded {
		g.closeClient(old.(*UserConn))
	}
	go g.readLoop(client)
	go g.writeLoop(client)
	zap.L().Info("ws 通知连接建立", zap.String("username", username))
}

// readLoop 读取协程
// 通知通道是单向推送，读取仅用于感知连接断开
func (g *Gateway) readLoop(client *UserConn) {
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			g.Unregister(client)
			return
		}
	}
}

// writeLoop 从 SendBack 通道读取消息并发送给 WebSocket
func (g *Gateway) writeLoop(client *UserConn) {
	for message := range client.SendBack {
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			zap.L().Error("ws 推送失败", zap.String("username", client.Username), zap.Error(err))
			return
		}
	}
}

// Unregister 注销并关闭客户端连接
// 仅当映射表中仍是该连接时才删除，避免被覆盖的旧连接注销新连接
func (g *Gateway) Unregister(client *UserConn) {
	if g.clients.CompareAndDelete(client.Username, client) {
		g.closeClient(client)
	}
}

// closeClient 关闭连接并释放通道
func (g *Gateway) closeClient(client *UserConn) {
	if err := client.Conn.Close(); err != nil {
		zap.L().Debug("关闭 ws 连接", zap.Error(err))
	}
	close(client.SendBack)
}

// Push 将消息推送给指定用户，不在线则跳过
// 推送为尽力而为，失败不影响业务主流程
func (g *Gateway) Push(usernames []string, payload []byte) {
	for _, username := range usernames {
		value, ok := g.clients.Load(username)
		if !ok {
			continue
		}
		client := value.(*UserConn)
		select {
		case client.SendBack <- payload:
		default:
			zap.L().Warn("ws 推送通道已满，丢弃通知", zap.String("username", username))
		}
	}
}
