package receiver

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"gbtap/internal/shared"
	"gbtap/internal/shared/types"
)

// Transport names accepted in the [common] section.
const (
	TransportTCP = "tcp"
	TransportWS  = "ws"
)

// dial establishes the configured transport. Refused, unreachable and
// timed-out connects all surface as one "connection failed" error.
func dial(cfg *types.Config) (net.Conn, error) {
	switch cfg.Transport {
	case "", TransportTCP:
		return dialTCP(cfg)
	case TransportWS:
		return dialWS(cfg)
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}

func dialTCP(cfg *types.Config) (net.Conn, error) {
	addr := net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port))
	d := net.Dialer{Timeout: time.Duration(cfg.TimeoutConf.Connect) * time.Second}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connection failed: %w", err)
	}
	return conn, nil
}

func dialWS(cfg *types.Config) (net.Conn, error) {
	u := url.URL{
		Scheme: cfg.Scheme,
		Host:   net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port)),
		Path:   cfg.Path,
	}

	header := http.Header{}
	if cfg.WSConf.Host != "" {
		header.Set("Host", cfg.WSConf.Host)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: time.Duration(cfg.TimeoutConf.Connect) * time.Second,
	}

	wsConn, _, err := dialer.Dial(u.String(), header)
	if err != nil {
		return nil, fmt.Errorf("connection failed: %w", err)
	}
	return shared.NewWebSocketConnAdapter(wsConn), nil
}
