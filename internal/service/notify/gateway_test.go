package notify

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGateway 启动一个只挂通知网关的测试服务
func newTestGateway(t *testing.T) (*Gateway, *httptest.Server) {
	gin.SetMode(gin.TestMode)
	g := NewGateway()
	engine := gin.New()
	engine.GET("/ws/notify", func(c *gin.Context) {
		g.Register(c, c.Query("username"))
	})
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return g, srv
}

// dialNotify 以指定用户名建立 WebSocket 连接
func dialNotify(t *testing.T, srv *httptest.Server, username string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notify?username=" + username
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// loadClient 轮询等待用户上线并返回其连接对象
// 握手完成先于服务端注册，直接 Load 可能扑空
func loadClient(t *testing.T, g *Gateway, username string) *UserConn {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if value, ok := g.clients.Load(username); ok {
			return value.(*UserConn)
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("用户 %s 未在期限内上线", username)
	return nil
}

func TestGatewayPush(t *testing.T) {
	g, srv := newTestGateway(t)
	conn := dialNotify(t, srv, "alice")
	loadClient(t, g, "alice")

	// 不在线的用户被跳过，不影响在线用户的推送
	g.Push([]string{"alice", "offline"}, []byte(`{"record_title":"散步"}`))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"record_title":"散步"}`, string(payload))
}

func TestGatewayRegisterReplacesOldConn(t *testing.T) {
	g, srv := newTestGateway(t)

	first := dialNotify(t, srv, "alice")
	oldClient := loadClient(t, g, "alice")

	second := dialNotify(t, srv, "alice")
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if loadClient(t, g, "alice") != oldClient {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	newClient := loadClient(t, g, "alice")
	require.NotSame(t, oldClient, newClient)

	// 旧连接被服务端关闭
	require.NoError(t, first.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err := first.ReadMessage()
	assert.Error(t, err)

	// 旧连接的读协程退出不会把新连接注销掉
	time.Sleep(50 * time.Millisecond)
	assert.Same(t, newClient, loadClient(t, g, "alice"))

	g.Push([]string{"alice"}, []byte(`{"record_title":"体检"}`))
	require.NoError(t, second.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, payload, err := second.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"record_title":"体检"}`, string(payload))
}
