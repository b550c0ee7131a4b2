package config

// Config 配置主体
type Config struct {
	Server                  ServerConfig            `mapstructure:"server"`
	DB                      DBConfig                `mapstructure:"database"`
	Redis                   RedisConfig             `mapstructure:"redis"`
	Logstash                LogstashConfig          `mapstructure:"logstash"`
	Platforms               PlatformsConfig         `mapstructure:"platforms"`
	Sync                    SyncConfig              `mapstructure:"sync"`
	Kafka                   KafkaConfig             `mapstructure:"kafka"`
	KafkaImpressionConsumer KafkaImpressionConsumer `mapstructure:"kafka_impression_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port      int    `mapstructure:"port"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 日志远程上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// PlatformsConfig 各平台开放接口配置
type PlatformsConfig struct {
	TikTok   PlatformAPIConfig `mapstructure:"tiktok"`
	LinkedIn PlatformAPIConfig `mapstructure:"linkedin"`
	YouTube  PlatformAPIConfig `mapstructure:"youtube"`
}

type PlatformAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// SyncConfig 指标同步配置
type SyncConfig struct {
	Cron                string `mapstructure:"cron"`
	Concurrency         int    `mapstructure:"concurrency"`
	LookbackHours       int    `mapstructure:"lookback_hours"`
	ImpressionFlushCron string `mapstructure:"impression_flush_cron"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaImpressionConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
