package aiclient

// Role 消息角色
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message 对话中的单条消息，顺序即对话轮次顺序
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage 构造 system 消息
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage 构造 user 消息
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage 构造 assistant 消息
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ChatRequest 网关聊天请求体
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
	MaxTokens   int       `json:"max_tokens"`
}

// ChatResponse 网关聊天响应体
type ChatResponse struct {
	Error   *APIError `json:"error,omitempty"`
	Choices []Choice  `json:"choices"`
}

// APIError 网关返回的错误信息
type APIError struct {
	Message string `json:"message"`
}

// Choice 响应中的候选项
type Choice struct {
	Message ChoiceMessage `json:"message"`
}

// ChoiceMessage 候选项中的消息体
type ChoiceMessage struct {
	Content string `json:"content"`
}
