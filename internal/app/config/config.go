package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	minGRPCKeepaliveTime    = 10 * time.Second
	minGRPCKeepaliveTimeout = 1 * time.Second

	defaultHTTPAddr  = ":5555"
	defaultDebugAddr = ":9200"

	defaultClientTimeout        = 30 * time.Second
	defaultClientMaxRecvMsgSize = 4 * 1024 * 1024

	defaultInmemCacheNumCounters = 10000000
	defaultInmemCacheMaxCost     = 64 << 20
	defaultInmemCacheBufferItems = 64

	defaultCacheTTL = 10 * time.Minute
)

type Config struct {
	Client  *Client  `yaml:"client"`
	Server  *Server  `yaml:"server"`
	Tracing *Tracing `yaml:"tracing"`
}

type GRPCKeepaliveParams struct {
	// After a duration of this time if the client doesn't see any activity it
	// pings the server to see if the transport is still alive.
	// If set below 10s, a minimum value of 10s will be used instead.
	Time time.Duration `yaml:"time"`
	// After having pinged for keepalive check, the client waits for a duration
	// of Timeout and if no activity is seen even after that the connection is
	// closed. If set below 1s, a minimum value of 1s will be used instead.
	Timeout time.Duration `yaml:"timeout"`
	// If true, client sends keepalive pings even with no active RPCs.
	PermitWithoutStream bool `yaml:"permit_without_stream"`
}

// Client configures the connection to the ImmVis service.
// Target has priority over Host and Port.
type Client struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Target string `yaml:"target"`
	// Timeout of one operation, defaultClientTimeout when absent, 0 disables it.
	Timeout             *time.Duration       `yaml:"timeout"`
	MaxRetries          int                  `yaml:"max_retries"`
	InitialRetryBackoff time.Duration        `yaml:"initial_retry_backoff"`
	MaxRetryBackoff     time.Duration        `yaml:"max_retry_backoff"`
	MaxRecvMsgSize      int                  `yaml:"max_recv_msg_size"`
	GRPCKeepaliveParams *GRPCKeepaliveParams `yaml:"grpc_keepalive_params"`
}

type CORS struct {
	AllowedOrigins     []string `yaml:"allowed_origins"`
	AllowedMethods     []string `yaml:"allowed_methods"`
	AllowedHeaders     []string `yaml:"allowed_headers"`
	ExposedHeaders     []string `yaml:"exposed_headers"`
	AllowCredentials   bool     `yaml:"allow_credentials"`
	MaxAge             int      `yaml:"max_age"`
	OptionsPassthrough bool     `yaml:"options_passthrough"`
}

type (
	RateLimiter struct {
		RatePerSec   int  `yaml:"rate_per_sec"`
		MaxBurst     int  `yaml:"max_burst"`
		StoreMaxKeys int  `yaml:"store_max_keys"`
		PerHandler   bool `yaml:"per_handler"`
	}

	UserToRateLimiter map[string]RateLimiter

	ApiRateLimiters struct {
		Default      RateLimiter       `yaml:"default"`
		SpecialUsers UserToRateLimiter `yaml:"spec_users"`
	}

	ApiToRateLimiters map[string]ApiRateLimiters
)

type InmemoryCache struct {
	NumCounters int64 `yaml:"num_counters"`
	MaxCost     int64 `yaml:"max_cost"`
	BufferItems int64 `yaml:"buffer_items"`
}

type Redis struct {
	Addr            string        `yaml:"addr"`
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	DB              int           `yaml:"db"`
	Timeout         time.Duration `yaml:"timeout"`
	MaxRetries      int           `yaml:"max_retries"`
	MinRetryBackoff time.Duration `yaml:"min_retry_backoff"`
	MaxRetryBackoff time.Duration `yaml:"max_retry_backoff"`
}

type Cache struct {
	Inmemory InmemoryCache `yaml:"inmemory"`
	Redis    *Redis        `yaml:"redis"`
	TTL      time.Duration `yaml:"ttl"`
}

type Server struct {
	HTTPAddr              string            `yaml:"http_addr"`
	DebugAddr             string            `yaml:"debug_addr"`
	HTTPReadHeaderTimeout time.Duration     `yaml:"http_read_header_timeout"`
	HTTPReadTimeout       time.Duration     `yaml:"http_read_timeout"`
	HTTPWriteTimeout      time.Duration     `yaml:"http_write_timeout"`
	CORS                  *CORS             `yaml:"cors"`
	RateLimiters          ApiToRateLimiters `yaml:"rate_limiters"`
	Cache                 Cache             `yaml:"cache"`
	// MaxParallelRequestsPerUser bounds uncached ImmVis calls a user may have in flight, 0 means no limit.
	MaxParallelRequestsPerUser int `yaml:"max_parallel_requests_per_user"`
}

type TracingJaeger struct {
	AgentHost string `yaml:"agent_host"`
	AgentPort string `yaml:"agent_port"`
}

type TracingSampler struct {
	Param float64 `yaml:"param"`
}

// Tracing is optional, tracing is disabled when the section is absent.
type Tracing struct {
	ServiceName string         `yaml:"service_name"`
	Jaeger      TracingJaeger  `yaml:"jaeger"`
	Sampler     TracingSampler `yaml:"sampler"`
}

// FromFile parse config from config path.
func FromFile(cfgPath string) (Config, error) {
	cfgBytes, err := os.ReadFile(cfgPath) //nolint:gosec
	if err != nil {
		return Config{}, fmt.Errorf("error reading file: %s", err)
	}

	cfg, err := parse(cfgBytes)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing file: %s", err)
	}

	if err := applyDefaults(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) error {
	if cfg.Client == nil {
		cfg.Client = &Client{}
	}
	if cfg.Server == nil {
		cfg.Server = &Server{}
	}

	if cfg.Client.Port < 0 {
		return fmt.Errorf("invalid value for client.port: %d", cfg.Client.Port)
	}
	if cfg.Client.Timeout == nil {
		timeout := defaultClientTimeout
		cfg.Client.Timeout = &timeout
	} else if *cfg.Client.Timeout < 0 {
		return fmt.Errorf("invalid value for client.timeout: %s", *cfg.Client.Timeout)
	}
	if cfg.Client.MaxRecvMsgSize <= 0 {
		cfg.Client.MaxRecvMsgSize = defaultClientMaxRecvMsgSize
	}
	if cfg.Client.GRPCKeepaliveParams != nil {
		if cfg.Client.GRPCKeepaliveParams.Time < minGRPCKeepaliveTime {
			cfg.Client.GRPCKeepaliveParams.Time = minGRPCKeepaliveTime
		}
		if cfg.Client.GRPCKeepaliveParams.Timeout < minGRPCKeepaliveTimeout {
			cfg.Client.GRPCKeepaliveParams.Timeout = minGRPCKeepaliveTimeout
		}
	}

	if cfg.Server.MaxParallelRequestsPerUser < 0 {
		return fmt.Errorf("invalid value for server.max_parallel_requests_per_user: %d", cfg.Server.MaxParallelRequestsPerUser)
	}
	if cfg.Server.HTTPAddr == "" {
		cfg.Server.HTTPAddr = defaultHTTPAddr
	}
	if cfg.Server.DebugAddr == "" {
		cfg.Server.DebugAddr = defaultDebugAddr
	}
	if cfg.Server.Cache.Inmemory.NumCounters <= 0 {
		cfg.Server.Cache.Inmemory.NumCounters = defaultInmemCacheNumCounters
	}
	if cfg.Server.Cache.Inmemory.MaxCost <= 0 {
		cfg.Server.Cache.Inmemory.MaxCost = defaultInmemCacheMaxCost
	}
	if cfg.Server.Cache.Inmemory.BufferItems <= 0 {
		cfg.Server.Cache.Inmemory.BufferItems = defaultInmemCacheBufferItems
	}
	if cfg.Server.Cache.TTL <= 0 {
		cfg.Server.Cache.TTL = defaultCacheTTL
	}

	return nil
}

func parse(cfg []byte) (Config, error) {
	result := Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(cfg))
	decoder.KnownFields(true)
	if err := decoder.Decode(&result); err != nil {
		return result, fmt.Errorf("error parsing config: %w", err)
	}

	return result, nil
}
