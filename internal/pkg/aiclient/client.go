package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/lk2023060901/ai-gateway-client/internal/pkg/logger"
)

// 退避参数：首次等待 2s，每次翻倍，封顶 16s
const (
	defaultBackoffBase = 2 * time.Second
	defaultBackoffMax  = 16 * time.Second
)

// Client AI 网关聊天客户端。
// 无内部共享可变状态，可被多个调用方并发使用同一实例。
type Client struct {
	config     *Config
	endpoint   string
	authToken  string
	httpClient *http.Client
	logger     *logger.Logger

	backoffBase time.Duration
	backoffMax  time.Duration

	// sleep 重试间隔等待，可在测试中替换
	sleep func(ctx context.Context, d time.Duration) error
}

// New 创建 AI 网关客户端。
// 网关地址与认证令牌在此处解析一次（环境变量优先），之后不再读取环境。
func New(cfg *Config, log *logger.Logger) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config:    cfg,
		endpoint:  resolveEndpoint(cfg),
		authToken: resolveAuthToken(cfg),
		httpClient: &http.Client{
			// 声明的请求超时，区别于单次尝试的硬超时
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
			},
		},
		logger:      log,
		backoffBase: defaultBackoffBase,
		backoffMax:  defaultBackoffMax,
		sleep:       sleepContext,
	}, nil
}

// Endpoint 返回解析后的网关地址
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Chat 调用 AI 模型进行对话，返回助手回复的文本。
// 瞬时故障（网络错误、超时、非 JSON 响应、网关 error 字段）按指数退避重试，
// 结构合法但内容为空的响应不重试，首次出现即失败。
func (c *Client) Chat(ctx context.Context, messages []Message, opts ...ChatOption) (string, error) {
	if len(messages) == 0 {
		return "", ErrNoMessages
	}

	o := applyOptions(opts)

	temperature := c.config.Temperature
	if o.temperature != nil {
		temperature = *o.temperature
	}

	maxTokens := c.config.MaxTokens
	if o.maxTokens != nil {
		maxTokens = *o.maxTokens
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	retries := c.config.NumRetries
	if o.numRetries != nil && *o.numRetries >= 0 {
		retries = *o.numRetries
	}
	maxAttempts := retries + 1

	payload := ChatRequest{
		Model:       FixedModel,
		Messages:    messages,
		Temperature: temperature,
		TopP:        DefaultTopP,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	requestID := uuid.NewString()
	delay := c.backoffBase
	var lastErr *ChatError

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		content, cerr := c.doAttempt(ctx, body, attempt, maxAttempts, requestID)
		if cerr == nil {
			return content, nil
		}

		if !cerr.IsRetryable() {
			c.logger.Error("chat request failed",
				zap.String("request_id", requestID),
				zap.String("kind", string(cerr.Kind)),
				zap.Error(cerr),
			)
			return "", cerr
		}

		lastErr = cerr
		if attempt == maxAttempts {
			break
		}

		c.logger.Warn("chat request failed, retrying",
			zap.String("request_id", requestID),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.Duration("backoff", delay),
			zap.Error(cerr),
		)

		if err := c.sleep(ctx, delay); err != nil {
			return "", err
		}
		delay *= 2
		if delay > c.backoffMax {
			delay = c.backoffMax
		}
	}

	exhausted := newChatError(
		KindRetriesExhausted,
		maxAttempts,
		maxAttempts,
		fmt.Sprintf("all %d attempts failed", maxAttempts),
		lastErr,
	)
	c.logger.Error("chat request failed after all retries",
		zap.String("request_id", requestID),
		zap.Int("max_attempts", maxAttempts),
		zap.Error(exhausted),
	)
	return "", exhausted
}

// doAttempt 执行单次 HTTP 请求并对结果分类
func (c *Client) doAttempt(ctx context.Context, body []byte, attempt, maxAttempts int, requestID string) (string, *ChatError) {
	// 单次尝试的硬超时上界，独立于声明给服务端的请求超时
	actx, cancel := context.WithTimeout(ctx, c.config.Timeout+hardTimeoutSlack)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", newChatError(KindTransport, attempt, maxAttempts, "create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.authToken)

	c.logger.Debug("ai gateway request",
		zap.String("request_id", requestID),
		zap.String("url", c.endpoint),
		zap.Int("attempt", attempt),
		zap.Int("body_size", len(body)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", newChatError(classifyRequestError(err), attempt, maxAttempts, "send request", err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newChatError(classifyRequestError(err), attempt, maxAttempts, "read response", err)
	}

	c.logger.Debug("ai gateway response",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_size", len(respData)),
	)

	// 网关在业务错误时也可能返回非 200，这里只看响应体：
	// 非 JSON 归为 malformed，带 error 字段归为 upstream
	if !gjson.ValidBytes(respData) {
		return "", newChatError(KindMalformedResponse, attempt, maxAttempts,
			fmt.Sprintf("invalid JSON response: %s", truncateBody(respData)), nil)
	}

	if errField := gjson.GetBytes(respData, "error"); errField.Exists() {
		msg := gjson.GetBytes(respData, "error.message").String()
		if msg == "" {
			msg = "upstream returned an unspecified error"
		}
		return "", newChatError(KindUpstream, attempt, maxAttempts, msg, nil)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(respData, &chatResp); err != nil {
		return "", newChatError(KindMalformedResponse, attempt, maxAttempts,
			fmt.Sprintf("unmarshal response: %s", truncateBody(respData)), err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", newChatError(KindEmptyResponse, attempt, maxAttempts,
			fmt.Sprintf("empty or invalid response from LLM (status %d)", resp.StatusCode), nil)
	}

	return chatResp.Choices[0].Message.Content, nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// classifyRequestError 区分超时与其他网络层失败
func classifyRequestError(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return KindTimeout
	}
	return KindTransport
}

// sleepContext 等待退避间隔，上下文取消时提前返回
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// truncateBody 截断诊断信息中的响应体
func truncateBody(body []byte) string {
	const limit = 512
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
