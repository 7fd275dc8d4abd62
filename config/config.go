package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the planning service
type Config struct {
	General    GeneralConfig    `mapstructure:"general"`
	Server     ServerConfig     `mapstructure:"server"`
	Oracle     OracleConfig     `mapstructure:"oracle"`
	Planner    PlannerConfig    `mapstructure:"planner"`
	Capability CapabilityConfig `mapstructure:"capability"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Memory     MemoryConfig     `mapstructure:"memory"`
	Knowledge  KnowledgeConfig  `mapstructure:"knowledge"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug          bool          `mapstructure:"debug"`
	LogLevel       string        `mapstructure:"log_level"`
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
}

// ServerConfig contains HTTP server and auth settings
type ServerConfig struct {
	Address       string `mapstructure:"address"`
	JWTSecret     string `mapstructure:"jwt_secret"`
	StreamEnabled bool   `mapstructure:"stream_enabled"`
}

// OracleConfig configures the reasoning oracle gateway: backend endpoint,
// model cascade, and the retry/backoff schedule.
type OracleConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Models      []string      `mapstructure:"models"`
	MaxRetries  int           `mapstructure:"max_retries"`
	RetryDelays []int         `mapstructure:"retry_delays"` // seconds
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func (o OracleConfig) Validate() error {
	if len(o.Models) == 0 {
		return fmt.Errorf("oracle.models must list at least one model")
	}
	if o.MaxRetries <= 0 {
		return fmt.Errorf("oracle.max_retries must be > 0")
	}
	return nil
}

// PlannerConfig bounds the planning loop and critic cycle.
type PlannerConfig struct {
	MaxSteps             int `mapstructure:"max_steps"`
	MaxReplanAttempts    int `mapstructure:"max_replan_attempts"`
	ToolResultCharBudget int `mapstructure:"tool_result_char_budget"`
}

func (p PlannerConfig) Validate() error {
	if p.MaxSteps <= 0 {
		return fmt.Errorf("planner.max_steps must be > 0")
	}
	if p.MaxReplanAttempts < 0 {
		return fmt.Errorf("planner.max_replan_attempts cannot be negative")
	}
	return nil
}

// CapabilityConfig controls the ToolCard registry behaviour.
type CapabilityConfig struct {
	SigningSecret string   `mapstructure:"signing_secret"`
	RequiredTools []string `mapstructure:"required_tools"`
}

// StorageConfig contains storage and persistence settings
type StorageConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func (r RedisConfig) Validate() error {
	if strings.TrimSpace(r.Host) == "" {
		return fmt.Errorf("storage.redis.host required")
	}
	if strings.TrimSpace(r.Port) == "" {
		return fmt.Errorf("storage.redis.port required")
	}
	return nil
}

// MemoryConfig caps session history growth.
type MemoryConfig struct {
	PlanHistoryCap int `mapstructure:"plan_history_cap"`
	ArtifactCap    int `mapstructure:"artifact_cap"`
	ArtifactKeep   int `mapstructure:"artifact_keep"`
	RecentGoals    int `mapstructure:"recent_goals"`
}

// KnowledgeConfig controls the retrieval index.
type KnowledgeConfig struct {
	TopK int `mapstructure:"top_k"`
}

// TelemetryConfig contains telemetry and monitoring settings
type TelemetryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	MetricsPort  int    `mapstructure:"metrics_port"`
	LogFile      string `mapstructure:"log_file"`
	PeriodicLogs bool   `mapstructure:"periodic_logs"`
}

func (t TelemetryConfig) Validate() error {
	if t.Enabled && t.MetricsPort <= 0 {
		return fmt.Errorf("telemetry.metrics_port must be > 0 when telemetry is enabled")
	}
	return nil
}

// LoadConfig loads config from file
func LoadConfig(path string) *Config {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("json")
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.default_timeout", "120s")
	viper.SetDefault("server.address", ":9700")
	viper.SetDefault("server.stream_enabled", true)
	viper.SetDefault("oracle.base_url", "https://api.openai.com/v1")
	viper.SetDefault("oracle.models", []string{"gpt-4o-mini"})
	viper.SetDefault("oracle.max_retries", 3)
	viper.SetDefault("oracle.retry_delays", []int{4, 15, 30})
	viper.SetDefault("oracle.temperature", 0.4)
	viper.SetDefault("oracle.timeout", "90s")
	viper.SetDefault("planner.max_steps", 8)
	viper.SetDefault("planner.max_replan_attempts", 2)
	viper.SetDefault("planner.tool_result_char_budget", 800)
	viper.SetDefault("memory.plan_history_cap", 10)
	viper.SetDefault("memory.artifact_cap", 20)
	viper.SetDefault("memory.artifact_keep", 15)
	viper.SetDefault("memory.recent_goals", 3)
	viper.SetDefault("knowledge.top_k", 5)
	viper.SetDefault("telemetry.enabled", true)
	viper.SetDefault("telemetry.metrics_port", 9090)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)
		viper.AddConfigPath(filepath.Join(exeDir, ".."))
		viper.AddConfigPath(filepath.Join(exeDir, "..", "config"))
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("ORACLE")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv() // read in environment variables that match (ORACLE_*)

	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	var config Config

	if err = viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	if err := config.Oracle.Validate(); err != nil {
		panic(err)
	}
	if err := config.Planner.Validate(); err != nil {
		panic(err)
	}
	if err := config.Storage.Redis.Validate(); err != nil {
		panic(err)
	}
	if err := config.Telemetry.Validate(); err != nil {
		panic(err)
	}
	return &config
}
