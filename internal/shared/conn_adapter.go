package shared

import (
	"fmt"
	"io"
	"net"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketConnAdapter exposes a WebSocket connection as a net.Conn
// carrying a raw byte stream. Binary frames are staged in a buffer so
// that Read can hand out fewer bytes than one frame holds.
type WebSocketConnAdapter struct {
	*websocket.Conn
	readBuffer *ThreadSafeBuffer
}

// NewWebSocketConnAdapter wraps an established WebSocket connection.
func NewWebSocketConnAdapter(ws *websocket.Conn) net.Conn {
	return &WebSocketConnAdapter{
		Conn:       ws,
		readBuffer: NewThreadSafeBuffer(),
	}
}

// Read implements io.Reader. A normal close handshake from the peer is
// reported as io.EOF so callers see the same end-of-stream signal a
// plain TCP close produces.
func (wsc *WebSocketConnAdapter) Read(b []byte) (int, error) {
	if wsc.readBuffer.Len() == 0 {
		msgType, msg, err := wsc.Conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return 0, io.EOF
			}
			return 0, err
		}
		if msgType != websocket.BinaryMessage {
			return 0, fmt.Errorf("received non-binary message")
		}
		if _, err := wsc.readBuffer.Write(msg); err != nil {
			return 0, err
		}
	}
	return wsc.readBuffer.Read(b)
}

// Write implements io.Writer. Each call becomes one binary frame.
func (wsc *WebSocketConnAdapter) Write(b []byte) (int, error) {
	dataCopy := make([]byte, len(b))
	copy(dataCopy, b)
	if err := wsc.Conn.WriteMessage(websocket.BinaryMessage, dataCopy); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (wsc *WebSocketConnAdapter) Close() error         { return wsc.Conn.Close() }
func (wsc *WebSocketConnAdapter) LocalAddr() net.Addr  { return wsc.Conn.LocalAddr() }
func (wsc *WebSocketConnAdapter) RemoteAddr() net.Addr { return wsc.Conn.RemoteAddr() }
func (wsc *WebSocketConnAdapter) SetDeadline(t time.Time) error {
	_ = wsc.Conn.SetReadDeadline(t)
	return wsc.Conn.SetWriteDeadline(t)
}
func (wsc *WebSocketConnAdapter) SetReadDeadline(t time.Time) error {
	return wsc.Conn.SetReadDeadline(t)
}
func (wsc *WebSocketConnAdapter) SetWriteDeadline(t time.Time) error {
	return wsc.Conn.SetWriteDeadline(t)
}
