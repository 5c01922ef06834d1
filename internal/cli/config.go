package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"codeberg.org/snonux/spellbee/internal/audio"
	"codeberg.org/snonux/spellbee/internal/classifier"
	"codeberg.org/snonux/spellbee/internal/vocabulary"
)

// Config holds the resolved application configuration
type Config struct {
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Practice   PracticeConfig   `mapstructure:"practice"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Log        LogConfig        `mapstructure:"log"`
}

// VocabularyConfig names the word list
type VocabularyConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

// PracticeConfig holds round settings
type PracticeConfig struct {
	Subset string `mapstructure:"subset" validate:"required,subset"`
	Seed   int64  `mapstructure:"seed"`
	Text   bool   `mapstructure:"text"`
}

// AudioConfig holds speech settings
type AudioConfig struct {
	Provider    string  `mapstructure:"provider" validate:"required,oneof=espeak openai gemini none"`
	Voice       string  `mapstructure:"voice" validate:"required"`
	Speed       int     `mapstructure:"speed" validate:"gte=80,lte=450"`
	CacheDir    string  `mapstructure:"cache_dir"`
	OpenAIKey   string  `mapstructure:"openai_key" validate:"required_if=Provider openai"`
	OpenAIModel string  `mapstructure:"openai_model" validate:"required_if=Provider openai"`
	OpenAIVoice string  `mapstructure:"openai_voice" validate:"required_if=Provider openai"`
	OpenAISpeed float64 `mapstructure:"openai_speed" validate:"gte=0.25,lte=4"`
	GeminiKey   string  `mapstructure:"gemini_key" validate:"required_if=Provider gemini"`
	GeminiModel string  `mapstructure:"gemini_model" validate:"required_if=Provider gemini"`
	GeminiVoice string  `mapstructure:"gemini_voice" validate:"required_if=Provider gemini"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	flags := NewFlags()
	return &Config{
		Vocabulary: VocabularyConfig{File: vocabulary.DefaultFile},
		Practice:   PracticeConfig{Subset: flags.Subset},
		Audio: AudioConfig{
			Provider:    flags.AudioProvider,
			Voice:       flags.Voice,
			Speed:       flags.Speed,
			OpenAIModel: flags.OpenAIModel,
			OpenAIVoice: flags.OpenAIVoice,
			OpenAISpeed: flags.OpenAISpeed,
			GeminiModel: flags.GeminiModel,
			GeminiVoice: flags.GeminiVoice,
		},
		Log: LogConfig{Level: flags.LogLevel},
	}
}

// LoadConfig reads the configuration from the global viper instance
func LoadConfig() (*Config, error) {
	return Load(viper.GetViper())
}

// Load unmarshals and validates the configuration held by v. API keys
// from the environment take precedence over the config file.
func Load(v *viper.Viper) (*Config, error) {
	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	config.Audio.OpenAIKey = firstNonEmpty(GetOpenAIKey(), config.Audio.OpenAIKey)
	config.Audio.GeminiKey = firstNonEmpty(GetGeminiKey(), config.Audio.GeminiKey)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("subset", func(fl validator.FieldLevel) bool {
		_, err := classifier.ParseSubset(fl.Field().String())
		return err == nil
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %v)", field, fe.Param(), fe.Value())
	case "subset":
		return fmt.Sprintf("%s must be one of: %s (got %v)", field,
			strings.Join(classifier.SubsetNames(), " "), fe.Value())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range (%s %s, got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// InitialSubset returns the parsed practice subset
func (c *Config) InitialSubset() classifier.Subset {
	subset, err := classifier.ParseSubset(c.Practice.Subset)
	if err != nil {
		return classifier.NeverTried
	}
	return subset
}

// SpeakerConfig converts the audio settings into a speaker configuration
func (c *Config) SpeakerConfig() *audio.Config {
	config := audio.DefaultConfig()
	config.Provider = c.Audio.Provider
	config.Voice = c.Audio.Voice
	config.Speed = c.Audio.Speed
	config.OpenAIKey = c.Audio.OpenAIKey
	config.OpenAIModel = c.Audio.OpenAIModel
	config.OpenAIVoice = c.Audio.OpenAIVoice
	config.OpenAISpeed = c.Audio.OpenAISpeed
	config.GeminiKey = c.Audio.GeminiKey
	config.GeminiModel = c.Audio.GeminiModel
	config.GeminiVoice = c.Audio.GeminiVoice
	config.Timeout = 60 * time.Second
	if c.Audio.CacheDir != "" {
		config.CacheDir = c.Audio.CacheDir
	}
	return config
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
