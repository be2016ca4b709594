package types

// CommonConf holds the endpoint and read parameters for the debug stream.
type CommonConf struct {
	Address    string `ini:"address"`
	Port       int    `ini:"port"`
	BufferSize int    `ini:"bufferSize"`
	Transport  string `ini:"transport"` // "tcp" (default) or "ws"
}

// WSConf holds the parameters of the WebSocket transport.
type WSConf struct {
	Scheme string `ini:"scheme"` // "ws" or "wss"
	Path   string `ini:"path"`
	Host   string `ini:"host"` // optional Host header override
}

// TimeoutConf holds optional timeouts in seconds. Zero disables the
// timeout and the corresponding call blocks indefinitely.
type TimeoutConf struct {
	Connect int `ini:"connect"`
	Read    int `ini:"read"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config is the unified configuration for the receiver.
type Config struct {
	CommonConf  `ini:"common"`
	WSConf      `ini:"ws"`
	TimeoutConf `ini:"timeout"`
	LogConf     `ini:"log"`
}

// NewDefault returns the built-in configuration: the loopback emulator
// endpoint with 256-byte bounded reads and no timeouts.
func NewDefault() *Config {
	return &Config{
		CommonConf: CommonConf{
			Address:    "127.0.0.1",
			Port:       12345,
			BufferSize: 256,
			Transport:  "tcp",
		},
		WSConf: WSConf{
			Scheme: "ws",
			Path:   "/debug",
		},
		LogConf: LogConf{
			Level: "info",
		},
	}
}
