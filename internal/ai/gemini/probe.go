package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spigell/smart-recruit/internal/utils"

	"go.uber.org/zap"
)

const (
	probePrompt         = `Réponds au format JSON: {"score": 75, "justification": "Test réussi"}`
	defaultMaxLogLength = 200
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// ProbeResult is the parsed answer to the probe prompt.
type ProbeResult struct {
	Model         string
	Score         float64
	Justification string
	Raw           string
}

// Prober checks that the configured key and model produce a usable analysis
// shaped answer.
type Prober struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewProber(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Prober {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Prober{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (p *Prober) Probe(ctx context.Context) (*ProbeResult, error) {
	p.logger.Debug("gemini probe request",
		zap.String("model", p.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(probePrompt)),
	)

	raw, err := p.generator.GenerateContent(ctx, probePrompt)
	if err != nil {
		return nil, &ProbeError{Model: p.generator.Model(), Code: apiErrorCode(err), Err: err}
	}

	p.logger.Debug("gemini probe response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, p.maxLogLen)),
	)

	result, err := parseResponse(raw)
	if err != nil {
		return nil, &ProbeError{Model: p.generator.Model(), Err: err}
	}

	result.Model = p.generator.Model()
	result.Raw = raw
	return result, nil
}

// ProbeError is a failed probe. Code is the HTTP code of the Gemini API error
// when there was one.
type ProbeError struct {
	Model string
	Code  int
	Err   error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v", e.Model, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Hint explains the failure to the operator.
func (e *ProbeError) Hint() string {
	switch e.Code {
	case http.StatusTooManyRequests:
		return "Quota dépassé pour cette clé"
	case http.StatusForbidden, http.StatusUnauthorized:
		return "Clé API invalide ou restrictions d'accès"
	case http.StatusNotFound:
		return "Le modèle n'est pas accessible avec cette clé"
	case 0:
		return "Réponse inutilisable"
	default:
		return fmt.Sprintf("Erreur %d", e.Code)
	}
}

func parseResponse(raw string) (*ProbeResult, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	score := coerceFloat(data["score"])
	if math.IsNaN(score) {
		return nil, errors.New("gemini response has no numeric score")
	}

	return &ProbeResult{
		Score:         score,
		Justification: coerceString(data["justification"]),
	}, nil
}

// extractJSON strips code fences and any prose around the first JSON object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		raw = raw[start : end+1]
	}

	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSuffix(strings.TrimSpace(val), "%")
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
