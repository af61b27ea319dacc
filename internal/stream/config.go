package stream

const (
	DefaultPromptStream     = "relay-prompts"
	DefaultCompletionStream = "relay-completions"
	DefaultGroup            = "relay-group"
)

type StreamConfig struct {
	RedisAddr        string
	RedisPassword    string
	PromptStream     string
	CompletionStream string
	Group            string
	ConsumerName     string
}

func NewStreamConfig(redisAddr string, redisPassword string, consumerName string) *StreamConfig {
	return &StreamConfig{
		RedisAddr:        redisAddr,
		RedisPassword:    redisPassword,
		PromptStream:     DefaultPromptStream,
		CompletionStream: DefaultCompletionStream,
		Group:            DefaultGroup,
		ConsumerName:     consumerName,
	}
}
