package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spigell/smart-recruit/internal/ai/gemini"
	"github.com/spigell/smart-recruit/internal/api"
	"github.com/spigell/smart-recruit/internal/console"
	"github.com/spigell/smart-recruit/internal/logger"
	"github.com/spigell/smart-recruit/internal/notify"
	"github.com/spigell/smart-recruit/internal/secrets"
	"github.com/spigell/smart-recruit/internal/state"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app       = "smart-recruit"
	envPrefix = "SMART_RECRUIT"
	tokenEnv  = envPrefix + "_TOKEN"
)

type Config struct {
	APIURL          string          `mapstructure:"api-url"`
	TokenFile       string          `mapstructure:"token-file"`
	UserAgent       string          `mapstructure:"user-agent"`
	RequestTimeout  time.Duration   `mapstructure:"request-timeout"`
	Listen          string          `mapstructure:"listen"`
	HealthInterval  time.Duration   `mapstructure:"health-interval"`
	NotificationTTL time.Duration   `mapstructure:"notification-ttl"`
	Analysis        *AnalysisConfig `mapstructure:"analysis"`
	Gemini          *GeminiConfig   `mapstructure:"gemini"`
}

type AnalysisConfig struct {
	RefreshOptions bool `mapstructure:"refresh-options"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "smart-recruit is a console for candidates, offers and AI match analysis",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for key, env := range map[string]string{
		"token-file":          envPrefix + "_TOKEN_FILE",
		"user-agent":          envPrefix + "_USER_AGENT",
		"gemini.api-key-file": "GEMINI_API_KEY_FILE",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is smart-recruit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("api-url", api.DefaultAPIURL, "base url of the recruiting API")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))

	viper.SetDefault("request-timeout", 10*time.Second)
	viper.SetDefault("listen", ":8080")
	viper.SetDefault("health-interval", console.DefaultHealthInterval)
	viper.SetDefault("notification-ttl", notify.DefaultTTL)
	viper.SetDefault("analysis.refresh-options", false)
	viper.SetDefault("gemini.model", gemini.DefaultModel)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional, but a broken one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Analysis == nil {
		config.Analysis = &AnalysisConfig{}
	}
	if config.Gemini == nil {
		config.Gemini = &GeminiConfig{}
	}

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"),
		logger.WithComponent(app),
		logger.WithVersion(version),
	)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func newAPIClient(config *Config, logger *zap.Logger) (*api.Client, error) {
	token, err := secrets.Optional(secrets.Source{
		Name: "api token",
		File: config.TokenFile,
		Env:  tokenEnv,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (check token-file or %s)", err, tokenEnv)
	}

	client := api.New(logger, config.APIURL, token)
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}
	if config.RequestTimeout > 0 {
		client.HTTPClient.Timeout = config.RequestTimeout
	}

	return client, nil
}

// newConsole wires the console state for the API configured in config.
func newConsole(config *Config, logger *zap.Logger) (*console.App, error) {
	client, err := newAPIClient(config, logger)
	if err != nil {
		return nil, err
	}

	notes := notify.NewSlot(config.NotificationTTL, logger.Named("notify"))

	return console.New(client, state.New(), notes, logger, console.Config{
		RefreshOptions: config.Analysis.RefreshOptions,
		HealthInterval: config.HealthInterval,
	}), nil
}
