package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/KevinWehrle/budgetmacro-78bf3b04/config"
	"github.com/KevinWehrle/budgetmacro-78bf3b04/utils"

	"github.com/shopspring/decimal"
)

// AnalyzeService turns a free-text meal description into a nutrition/cost
// estimate. The primary path asks an OpenAI-compatible gateway; any failure
// there (transport, non-200, unparseable reply) degrades silently to the
// local keyword estimator so the caller always gets a usable estimate.
type AnalyzeService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

func NewAnalyzeService() *AnalyzeService {
	apiURL := os.Getenv("AI_GATEWAY_URL")
	if apiURL == "" {
		apiURL = "https://ai.gateway.lovable.dev/v1/chat/completions"
	}
	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "google/gemini-2.5-flash"
	}
	return &AnalyzeService{
		apiKey: os.Getenv("AI_GATEWAY_KEY"),
		apiURL: apiURL,
		model:  model,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

const analyzeSystemPrompt = `You are a nutrition and food cost expert. Analyze the food description provided and return accurate nutritional information and estimated cost.

Your response must be a valid JSON object with exactly these fields:
- calories: number (total calories)
- protein: number (grams of protein)
- cost: number (estimated cost in USD based on typical grocery/restaurant prices)

Consider:
- If it sounds like restaurant/fast food, use restaurant prices
- If it sounds like home cooking, use grocery store prices
- Be realistic about portion sizes
- Use average US prices as of 2024

Only respond with the JSON object, no other text.`

const analyzeCacheTTL = 24 * time.Hour

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze returns an estimate plus the source that produced it ("ai",
// "cache" or "local"). It never returns an error: the local estimator has
// no failure mode.
func (s *AnalyzeService) Analyze(description string) (utils.Estimate, string) {
	trimmed := strings.TrimSpace(description)

	cacheKey := "analyze:" + strings.ToLower(trimmed)
	var cached utils.Estimate
	if hit, err := config.GetRedisObject(cacheKey, &cached); err == nil && hit {
		cached.Description = trimmed
		return cached, "cache"
	}

	est, err := s.callGateway(trimmed)
	if err != nil {
		config.GetLogger().WithField("module", "analyze").
			Warnf("AI estimation failed, using local estimator: %v", err)
		return utils.EstimateNutrition(trimmed), "local"
	}

	if err := config.SetRedisObject(cacheKey, est, analyzeCacheTTL); err != nil {
		config.LogError(config.GetLogger(), "analyze", "Analyze", "cache write", cacheKey, err)
	}
	return est, "ai"
}

func (s *AnalyzeService) callGateway(description string) (utils.Estimate, error) {
	if s.apiKey == "" {
		return utils.Estimate{}, fmt.Errorf("AI_GATEWAY_KEY not configured")
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: analyzeSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Analyze this food: %q", description)},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return utils.Estimate{}, fmt.Errorf("failed to marshal analyze payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewReader(b))
	if err != nil {
		return utils.Estimate{}, fmt.Errorf("failed to create analyze request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return utils.Estimate{}, fmt.Errorf("failed to call AI gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return utils.Estimate{}, fmt.Errorf("failed to read AI gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return utils.Estimate{}, fmt.Errorf("AI gateway error %d: %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return utils.Estimate{}, fmt.Errorf("failed to parse AI gateway JSON: %w", err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return utils.Estimate{}, fmt.Errorf("no analysis returned")
	}

	return parseModelContent(description, cr.Choices[0].Message.Content)
}

// parseModelContent extracts the nutrition JSON from a model reply, which
// may be wrapped in markdown code fences, and coerces it into a sane
// estimate. Missing or non-numeric fields fall back to the typical-meal
// defaults rather than zeros.
func parseModelContent(description, content string) (utils.Estimate, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var raw struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Cost     float64 `json:"cost"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return utils.Estimate{}, fmt.Errorf("failed to parse nutrition data: %w", err)
	}

	calories := int(math.Round(raw.Calories))
	if calories <= 0 {
		calories = utils.DefaultCalories
	}
	protein := int(math.Round(raw.Protein))
	if protein <= 0 {
		protein = utils.DefaultProtein
	}
	cost := raw.Cost
	if cost <= 0 {
		cost = 3.00
	}

	return utils.Estimate{
		Description: description,
		Calories:    calories,
		Protein:     protein,
		Cost:        decimal.NewFromFloat(cost).Round(2),
	}, nil
}
