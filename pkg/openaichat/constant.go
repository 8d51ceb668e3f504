package openaichat

import "time"

// Presets for the hosted OpenAI-compatible providers.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	DeepSeekModel   = "deepseek-chat"

	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	QwenModel   = "qwen-plus"
)

// DefaultTimeout is the HTTP client timeout when none is configured.
const DefaultTimeout = 30 * time.Second

const responseFormatJSON = "json_object"
