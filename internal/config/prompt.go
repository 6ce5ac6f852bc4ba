package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PromptConfig controls the campaign prompt template.
type PromptConfig struct {
	Persona   string `mapstructure:"persona"`
	Directive string `mapstructure:"directive"`
}

func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		Persona:   "You are now a Marketing Manager with over 10 years experience in Marketing B2C products.",
		Directive: "Write me a social media caption for my product that is perfect for %s.",
	}
}

// PromptConfigHolder serves the current prompt template and hot-reloads it
// from disk when the config file changes.
type PromptConfigHolder struct {
	current atomic.Value // holds PromptConfig
}

func NewPromptConfigHolder() (*PromptConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("prompts")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/raqamly")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RAQAMLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPromptConfig()
	v.SetDefault("campaign.persona", defaults.Persona)
	v.SetDefault("campaign.directive", defaults.Directive)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg PromptConfig
	if err := v.UnmarshalKey("campaign", &cfg); err != nil {
		return nil, err
	}
	if err := validatePromptConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PromptConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PromptConfig
		if err := v.UnmarshalKey("campaign", &updated); err != nil {
			log.Printf("[prompt-config] reload failed: %v", err)
			return
		}
		if err := validatePromptConfig(updated); err != nil {
			log.Printf("[prompt-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[prompt-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *PromptConfigHolder) Get() PromptConfig {
	return h.current.Load().(PromptConfig)
}

func validatePromptConfig(cfg PromptConfig) error {
	if strings.TrimSpace(cfg.Persona) == "" {
		return errors.New("campaign.persona cannot be empty")
	}
	if !strings.Contains(cfg.Directive, "%s") {
		return errors.New("campaign.directive must reference the platform")
	}
	return nil
}
