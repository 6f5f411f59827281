package cmd

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check once whether the recruiting API is reachable",
	RunE: func(_ *cobra.Command, _ []string) error {
		return status(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func status(ctx context.Context) error {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	c, err := newConsole(config, logger)
	if err != nil {
		return err
	}

	online := c.CheckStatus(ctx)
	label := "● " + c.Status().Label()

	if !online {
		fmt.Println(pterm.Red(label), config.APIURL)
		return fmt.Errorf("api %s is offline", config.APIURL)
	}

	fmt.Println(pterm.Green(label), config.APIURL)
	return nil
}
