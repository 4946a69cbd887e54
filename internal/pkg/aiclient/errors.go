package aiclient

import (
	"errors"
	"fmt"
)

// ErrorKind 请求失败类别
type ErrorKind string

const (
	// KindTransport 网络层失败，可重试
	KindTransport ErrorKind = "transport_error"

	// KindTimeout 请求超时，可重试
	KindTimeout ErrorKind = "timeout_error"

	// KindMalformedResponse 响应体不是合法 JSON，可重试
	KindMalformedResponse ErrorKind = "malformed_response"

	// KindUpstream 响应体携带显式 error 字段，可重试
	KindUpstream ErrorKind = "upstream_error"

	// KindEmptyResponse 响应结构合法但缺少可用内容。
	// 不重试：这是响应格式问题而非瞬时故障（模型本身没有返回内容，
	// 重试大概率得到相同结果），首次出现即向调用方抛出。
	KindEmptyResponse ErrorKind = "empty_response"

	// KindRetriesExhausted 所有可重试尝试均失败
	KindRetriesExhausted ErrorKind = "retries_exhausted"
)

// ChatError 聊天请求失败
type ChatError struct {
	Kind     ErrorKind // 失败类别
	Attempt  int       // 失败发生在第几次尝试（从 1 开始）
	Attempts int       // 总尝试次数
	Message  string    // 诊断信息
	Err      error     // 原始错误
}

func (e *ChatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aiclient [%s] attempt %d/%d: %s: %v",
			e.Kind, e.Attempt, e.Attempts, e.Message, e.Err)
	}
	return fmt.Sprintf("aiclient [%s] attempt %d/%d: %s",
		e.Kind, e.Attempt, e.Attempts, e.Message)
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

// IsRetryable 判断该失败是否可重试
func (e *ChatError) IsRetryable() bool {
	switch e.Kind {
	case KindTransport, KindTimeout, KindMalformedResponse, KindUpstream:
		return true
	default:
		return false
	}
}

// newChatError 创建聊天错误
func newChatError(kind ErrorKind, attempt, attempts int, message string, err error) *ChatError {
	return &ChatError{
		Kind:     kind,
		Attempt:  attempt,
		Attempts: attempts,
		Message:  message,
		Err:      err,
	}
}

// 预定义错误
var (
	ErrNoMessages    = errors.New("aiclient: messages must not be empty")
	ErrInvalidConfig = errors.New("aiclient: invalid configuration")
)
