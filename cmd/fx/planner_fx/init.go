// cmd/fx/planner_fx/init.go
package planner_fx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"tripcheck/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvidePlannerClient)

// PlannerConfig holds configuration for planner model clients
type PlannerConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvidePlannerClient creates a planner client based on environment variables
func ProvidePlannerClient(lc fx.Lifecycle) (utils.PlannerClientInterface, error) {
	config := getPlannerConfig()

	log.Printf("Initializing %s planner client with model: %s", config.Provider, config.Model)

	client, err := utils.NewPlannerClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create planner client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

// getPlannerConfig reads configuration from environment variables
func getPlannerConfig() PlannerConfig {
	provider := getEnvWithDefault("PLANNER_PROVIDER", "gemini") // Default to free Gemini

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return PlannerConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
