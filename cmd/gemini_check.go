package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spigell/smart-recruit/internal/ai/gemini"
	"github.com/spigell/smart-recruit/internal/secrets"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const geminiKeyEnv = "GEMINI_API_KEY"

var geminiCheckCmd = &cobra.Command{
	Use:   "gemini-check",
	Short: "Check that the Gemini key and model answer an analysis prompt",
	RunE: func(_ *cobra.Command, _ []string) error {
		return geminiCheck(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(geminiCheckCmd)

	geminiCheckCmd.Flags().StringP("model", "m", "", "gemini model to probe")
	viper.BindPFlag("gemini.model", geminiCheckCmd.Flags().Lookup("model"))
}

func geminiCheck(ctx context.Context) error {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
		Env:  geminiKeyEnv,
	})
	if err != nil {
		return fmt.Errorf("%w (set gemini.api-key-file or %s)", err, geminiKeyEnv)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model)
	if err != nil {
		return err
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	result, err := gemini.NewProber(generator, genLogger, config.Gemini.MaxLogLength).Probe(ctx)
	if err != nil {
		var probeErr *gemini.ProbeError
		if errors.As(err, &probeErr) {
			pterm.Error.Printfln("%s: %s", generator.Model(), probeErr.Hint())
		}
		return err
	}

	pterm.Success.Printfln("%s répond", result.Model)
	fmt.Println("Score:", colorizeScore(result.Score))
	if result.Justification != "" {
		fmt.Println(result.Justification)
	}

	return nil
}
