package llm

import (
	"net/http"
	"time"
)

type GroqProvider struct {
	*OpenAIProvider
}

func NewGroqProvider(apiKey, model string) *GroqProvider {
	if model == "" {
		model = "llama-3.1-70b-versatile"
	}
	return &GroqProvider{
		OpenAIProvider: &OpenAIProvider{
			name:    "groq",
			apiKey:  apiKey,
			model:   model,
			baseURL: "https://api.groq.com/openai/v1",
			httpClient: &http.Client{
				Timeout: 5 * time.Minute,
			},
		},
	}
}
