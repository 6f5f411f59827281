package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

type fakeModels struct {
	model  string
	prompt string
	resp   *genai.GenerateContentResponse
	err    error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestGeneratorJoinsTextParts(t *testing.T) {
	models := &fakeModels{resp: textResponse(" first ", "", "second")}
	g := &Generator{models: models, modelName: "gemini-2.0-flash"}

	output, err := g.GenerateContent(context.Background(), "  hello ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "first\nsecond" {
		t.Fatalf("unexpected output: %q", output)
	}
	if models.model != "gemini-2.0-flash" || models.prompt != "hello" {
		t.Fatalf("unexpected request: model %q prompt %q", models.model, models.prompt)
	}
}

func TestGeneratorEmptyResponse(t *testing.T) {
	g := &Generator{models: &fakeModels{resp: textResponse("  ")}, modelName: "m"}

	if _, err := g.GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatal("expected an error for an empty response")
	}
}

func TestGeneratorRejectsEmptyPrompt(t *testing.T) {
	models := &fakeModels{resp: textResponse("ok")}
	g := &Generator{models: models, modelName: "m"}

	if _, err := g.GenerateContent(context.Background(), "   "); err == nil {
		t.Fatal("expected an error for an empty prompt")
	}
	if models.model != "" {
		t.Fatalf("no request expected")
	}
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	if _, err := NewGenerator(context.Background(), " ", ""); err == nil {
		t.Fatal("expected an error without api key")
	}
}

func TestAPIErrorCode(t *testing.T) {
	quota := genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}

	g := &Generator{models: &fakeModels{err: quota}, modelName: "m"}
	_, err := g.GenerateContent(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected an error")
	}

	if got := apiErrorCode(err); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", got)
	}
	if got := apiErrorCode(errors.New("plain")); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
