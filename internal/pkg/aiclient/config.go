package aiclient

import (
	"os"
	"time"
)

// 网关默认值与环境变量
const (
	// DefaultGatewayURL 默认网关地址
	DefaultGatewayURL = "https://ai-llm-gateway.amap.com/open_api/v1/chat"

	// DefaultAuthToken 默认认证令牌。
	// 这是网关公开的占位令牌（非机密），用于在未配置任何凭证时保证开箱可用。
	// 凭证解析链的兜底值，不能删除。
	DefaultAuthToken = "1Zx8EvYhC8FsyQXLqwKgXVRD"

	// FixedModel 网关侧固定使用的模型标识
	FixedModel = "qwen3-max-preview"

	// EnvAPIURL 网关地址环境变量（优先于配置文件）
	EnvAPIURL = "LLM_API_URL"

	// EnvAuthToken 认证令牌环境变量（最高优先级）
	EnvAuthToken = "AUTH_TOKEN"

	// EnvAPIKey 备用认证令牌环境变量
	EnvAPIKey = "AI_API_KEY"
)

// 默认配置
const (
	DefaultTemperature = 1.0
	DefaultMaxTokens   = 5000
	DefaultTimeout     = 120 * time.Second
	DefaultNumRetries  = 2

	// DefaultTopP top_p 固定值，不可按调用覆盖
	DefaultTopP = 0.85

	// connectTimeout 连接超时，必须短于整体请求超时
	connectTimeout = 10 * time.Second

	// hardTimeoutSlack 单次尝试的硬超时 = Timeout + hardTimeoutSlack，
	// 与传给服务端的请求超时区分开
	hardTimeoutSlack = 10 * time.Second
)

// Config AI 网关客户端配置
type Config struct {
	// Model 模型标识（请求体中实际使用 FixedModel）
	Model string `mapstructure:"model" yaml:"model"`

	// APIKey API 密钥（凭证解析链的最后一级来源）
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// APIBaseURL API 基础地址（可被 LLM_API_URL 环境变量覆盖）
	APIBaseURL string `mapstructure:"api_base_url" yaml:"api_base_url"`

	// Temperature 采样温度
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`

	// MaxTokens 最大生成 token 数
	MaxTokens int `mapstructure:"max_tokens" yaml:"max_tokens"`

	// Timeout 请求超时时间
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// NumRetries 重试次数（首次请求之外的额外尝试次数）
	NumRetries int `mapstructure:"num_retries" yaml:"num_retries"`
}

// Validate 验证配置并填充默认值
func (c *Config) Validate() error {
	if c.Model == "" {
		c.Model = FixedModel
	}

	if c.Temperature <= 0 {
		c.Temperature = DefaultTemperature
	}

	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	if c.NumRetries <= 0 {
		c.NumRetries = DefaultNumRetries
	}

	return nil
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Model:       FixedModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Timeout:     DefaultTimeout,
		NumRetries:  DefaultNumRetries,
	}
}

// resolveEndpoint 解析网关地址，优先级：LLM_API_URL > 配置文件 > 默认网关
func resolveEndpoint(cfg *Config) string {
	if url := os.Getenv(EnvAPIURL); url != "" {
		return url
	}
	if cfg.APIBaseURL != "" {
		return cfg.APIBaseURL
	}
	return DefaultGatewayURL
}

// resolveAuthToken 解析认证令牌。
// 优先级：AUTH_TOKEN > AI_API_KEY > 配置文件 api_key > DefaultAuthToken。
// 只在构造客户端时解析一次，调用期间不再读取环境变量。
func resolveAuthToken(cfg *Config) string {
	if token := os.Getenv(EnvAuthToken); token != "" {
		return token
	}
	if token := os.Getenv(EnvAPIKey); token != "" {
		return token
	}
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	return DefaultAuthToken
}
