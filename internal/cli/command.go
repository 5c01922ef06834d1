package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/spellbee/internal"
	"codeberg.org/snonux/spellbee/internal/classifier"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spellbee",
		Short: "Spelling practice with spoken words",
		Long: `spellbee pronounces words from your spelling list and checks
what you type. Words are sorted into lists of correct, incorrect and
never tried guesses so you can practise the ones you got wrong.

Examples:
  spellbee                              # Launch the GUI with MySpellingWords.txt
  spellbee --words week3.txt            # Practise another word list
  spellbee --text                       # Practise in the terminal
  spellbee --audio-provider openai      # Use OpenAI voices (needs OPENAI_API_KEY)`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.spellbee.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.WordsFile, "words", "w", flags.WordsFile, "Word list file (one word per line)")
	cmd.Flags().StringVarP(&flags.Subset, "subset", "s", flags.Subset,
		"Initial word list: "+strings.Join(classifier.SubsetNames(), ", "))
	cmd.Flags().BoolVar(&flags.TextMode, "text", false, "Practise in the terminal instead of the GUI")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Random seed for word selection (0 picks one)")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flags.ListVoices, "list-voices", false, "List available voices and TTS models")

	// Audio flags
	cmd.Flags().StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "Speech engine: espeak, openai, gemini, none")
	cmd.Flags().StringVar(&flags.Voice, "voice", flags.Voice, "espeak-ng voice variant (e.g. en-us, en-us+f3)")
	cmd.Flags().IntVar(&flags.Speed, "speed", flags.Speed, "espeak-ng speed in words per minute (80 to 450)")
	cmd.Flags().StringVar(&flags.CacheDir, "cache-dir", "", "Directory for synthesized audio (default: user cache dir)")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")

	// Gemini flags
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini TTS model")
	cmd.Flags().StringVar(&flags.GeminiVoice, "gemini-voice", flags.GeminiVoice, "Gemini prebuilt voice (e.g. Kore, Puck, Charon)")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("vocabulary.file", cmd.Flags().Lookup("words"))
	viper.BindPFlag("practice.subset", cmd.Flags().Lookup("subset"))
	viper.BindPFlag("practice.seed", cmd.Flags().Lookup("seed"))
	viper.BindPFlag("practice.text", cmd.Flags().Lookup("text"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("audio-provider"))
	viper.BindPFlag("audio.voice", cmd.Flags().Lookup("voice"))
	viper.BindPFlag("audio.speed", cmd.Flags().Lookup("speed"))
	viper.BindPFlag("audio.cache_dir", cmd.Flags().Lookup("cache-dir"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("audio.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("audio.gemini_voice", cmd.Flags().Lookup("gemini-voice"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".spellbee" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spellbee")
	}

	// Environment variables, e.g. SPELLBEE_AUDIO_PROVIDER
	viper.SetEnvPrefix("SPELLBEE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("audio.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("audio.gemini_key")
}
