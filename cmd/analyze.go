package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spigell/smart-recruit/internal/api"
	"github.com/spigell/smart-recruit/internal/console"
	"github.com/spigell/smart-recruit/internal/render"

	"github.com/manifoldco/promptui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptYes = "Oui"
	PromptNo  = "Non"
)

var errNothingToAnalyze = errors.New("no offers or candidates to analyze")

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Pick an offer and a candidate and run the AI match analysis",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return analyze(context.Background(), cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("apply", "a", false, "submit the candidate without asking once the analysis is shown")
}

func analyze(ctx context.Context, cmd *cobra.Command) error {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	c, err := newConsole(config, logger)
	if err != nil {
		return err
	}

	c.LoadAnalysisOptions(ctx)
	offers, candidates := c.Options()
	if len(offers) == 0 || len(candidates) == 0 {
		return fmt.Errorf("%w: %d offers, %d candidates", errNothingToAnalyze, len(offers), len(candidates))
	}

	offerPrompt := promptui.Select{
		Label: "Offre",
		Items: offerLabels(offers),
		Size:  10,
	}
	offerIdx, _, err := offerPrompt.Run()
	if err != nil {
		return err
	}

	candidatePrompt := promptui.Select{
		Label: "Candidat",
		Items: candidateLabels(candidates),
		Size:  10,
	}
	candidateIdx, _, err := candidatePrompt.Run()
	if err != nil {
		return err
	}

	offerID := strconv.Itoa(offers[offerIdx].ID)
	candidateID := strconv.Itoa(candidates[candidateIdx].ID)

	if err := c.AnalyzeMatch(ctx, offerID, candidateID); err != nil {
		pterm.Error.Println(c.Match().Error)
		return err
	}

	printMatch(c.Match())

	apply, _ := cmd.Flags().GetBool("apply")
	if !apply {
		confirm := promptui.Select{
			Label: "Postuler ?",
			Items: []string{PromptYes, PromptNo},
		}
		_, answer, err := confirm.Run()
		if err != nil {
			return err
		}
		apply = answer == PromptYes
	}

	if !apply {
		return nil
	}

	return submit(ctx, c, offerID, candidateID)
}

func submit(ctx context.Context, c *console.App, offerID, candidateID string) error {
	err := c.Apply(ctx, offerID, candidateID)

	if msg, ok := c.Notifications().Current(); ok {
		if err != nil {
			pterm.Error.Println(msg.Text)
		} else {
			pterm.Success.Println(msg.Text)
		}
	}

	return err
}

func printMatch(m render.MatchView) {
	pterm.DefaultSection.Println(fmt.Sprintf("%s / %s", m.CandidateName, m.OfferTitle))
	fmt.Println("Score:", colorizeScore(m.Score))
	if m.Justification != "" {
		fmt.Println(m.Justification)
	}
}

func colorizeScore(score float64) string {
	text := render.FormatScore(score) + "%"

	switch render.TierFor(score) {
	case render.TierFavorable:
		return pterm.Green(text)
	case render.TierNeutral:
		return pterm.Yellow(text)
	default:
		return pterm.Red(text)
	}
}

func offerLabels(offers []api.Offer) []string {
	labels := make([]string, 0, len(offers))
	for _, o := range offers {
		labels = append(labels, fmt.Sprintf("#%d %s (%s)", o.ID, o.Title, render.FormatSalary(o.Salary)))
	}
	return labels
}

func candidateLabels(candidates []api.Candidate) []string {
	labels := make([]string, 0, len(candidates))
	for _, c := range candidates {
		labels = append(labels, fmt.Sprintf("#%d %s <%s>", c.ID, c.Name, c.Email))
	}
	return labels
}
