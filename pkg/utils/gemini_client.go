package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiPlannerClient implements PlannerClientInterface using Google's Gemini models
type GeminiPlannerClient struct {
	client *genai.Client
	model  string
}

// NewGeminiPlannerClient creates a new Gemini client
func NewGeminiPlannerClient(apiKey, model string) (PlannerClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiPlannerClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so brace-matching stays a fallback, not the norm
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(8000)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = CleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini returned invalid JSON")
	}
	return content, nil
}

// Close closes the Gemini client
func (c *GeminiPlannerClient) Close() error {
	return c.client.Close()
}
