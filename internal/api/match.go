package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed match_schema.json
var matchSchemaJSON string

var matchSchema = gojsonschema.NewStringLoader(matchSchemaJSON)

type MatchInput struct {
	CandidateID int `json:"candidat_id"`
}

// MatchAnalysis is the server computed compatibility between one candidate
// and one offer. It is never stored by the client.
type MatchAnalysis struct {
	Score         float64
	Justification string
	CandidateID   int
	OfferID       int
	CandidateName string
	OfferTitle    string
}

type matchEnvelope struct {
	Analysis struct {
		Score         float64 `json:"score"`
		Justification string  `json:"justification"`
	} `json:"analyse"`
	Candidate struct {
		Name string `json:"nom"`
	} `json:"candidat"`
	Offer struct {
		Title string `json:"titre"`
	} `json:"offre"`
}

func (c *Client) AnalyzeMatch(ctx context.Context, offerID, candidateID int) (*MatchAnalysis, error) {
	const op = "analyze match"

	envelope, err := c.do(ctx, op, http.MethodPost, fmt.Sprintf("%s/%d/analyze-match", offersPath, offerID), MatchInput{
		CandidateID: candidateID,
	})
	if err != nil {
		return nil, err
	}

	if err := validateMatch(envelope); err != nil {
		return nil, &BusinessError{Op: op, Status: http.StatusOK, Err: "Réponse d'analyse invalide", Message: err.Error()}
	}

	var parsed matchEnvelope
	if err := decode(op, map[string]any{"match": envelope}, "match", &parsed); err != nil {
		return nil, err
	}

	return &MatchAnalysis{
		Score:         parsed.Analysis.Score,
		Justification: parsed.Analysis.Justification,
		CandidateID:   candidateID,
		OfferID:       offerID,
		CandidateName: parsed.Candidate.Name,
		OfferTitle:    parsed.Offer.Title,
	}, nil
}

func validateMatch(envelope map[string]any) error {
	result, err := gojsonschema.Validate(matchSchema, gojsonschema.NewGoLoader(envelope))
	if err != nil {
		return fmt.Errorf("validate analysis: %w", err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}

	return fmt.Errorf("%s", strings.Join(problems, "; "))
}
