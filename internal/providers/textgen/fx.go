package textgen

import (
	"github.com/raqamly/console/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("textgen",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config) Provider {
	return NewOpenAIClient(OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})
}
