package aiclient

// ChatOption 单次调用的覆盖项，仅对当前调用生效，不写回客户端配置
type ChatOption func(*chatOptions)

type chatOptions struct {
	temperature *float64
	maxTokens   *int
	numRetries  *int
}

// WithTemperature 覆盖本次调用的采样温度
func WithTemperature(t float64) ChatOption {
	return func(o *chatOptions) {
		o.temperature = &t
	}
}

// WithMaxTokens 覆盖本次调用的最大生成 token 数（<=0 时使用默认值）
func WithMaxTokens(n int) ChatOption {
	return func(o *chatOptions) {
		o.maxTokens = &n
	}
}

// WithNumRetries 覆盖本次调用的重试次数（额外尝试次数，0 表示只请求一次）
func WithNumRetries(n int) ChatOption {
	return func(o *chatOptions) {
		o.numRetries = &n
	}
}

func applyOptions(opts []ChatOption) *chatOptions {
	o := &chatOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
