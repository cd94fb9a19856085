package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/sashabaranov/go-openai"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")
var ErrOracleNotConfigured = errors.New("pricing oracle not configured")

const defaultPricingModel = openai.GPT4oMini

// OpenAIPricingOracle maps a feature set to a recommended price range through
// a single chat-completion call with a JSON response format.
//
// Mock mode (PRICING_ORACLE_MOCK) prices deterministically from hourly-rate
// tables so the service runs end-to-end without an API key.
type OpenAIPricingOracle struct {
	client   *openai.Client
	model    string
	mockMode bool
}

var _ interfaces.IPricingOracle = (*OpenAIPricingOracle)(nil)

func NewOpenAIPricingOracle(apiKey string) (*OpenAIPricingOracle, error) {
	if isPricingOracleMockEnabled() {
		log.Printf("[pricing][oracle] mock mode enabled")
		return &OpenAIPricingOracle{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[pricing][oracle] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIAPIKey
	}

	model := strings.TrimSpace(os.Getenv("PRICING_MODEL"))
	if model == "" {
		model = defaultPricingModel
	}
	log.Printf("[pricing][oracle] OpenAI client initialized model=%s", model)

	return &OpenAIPricingOracle{client: openai.NewClient(apiKey), model: model}, nil
}

type recommendationPayload struct {
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

func (o *OpenAIPricingOracle) RequestPricing(ctx context.Context, features entities.FeatureSet) (entities.PricingRecommendation, error) {
	if o != nil && o.mockMode {
		rec := mockRecommendation(features)
		log.Printf("[pricing][oracle] mock recommendation min=%.2f max=%.2f confidence=%.2f",
			rec.MinPrice, rec.MaxPrice, rec.Confidence)
		return rec, nil
	}

	if o == nil || o.client == nil {
		log.Printf("[pricing][oracle] oracle not configured")
		return entities.PricingRecommendation{}, ErrOracleNotConfigured
	}
	log.Printf("[pricing][oracle] request start industry=%s location=%s level=%s complexity=%s hours=%.1f",
		features.Industry, features.Location, features.ExperienceLevel, features.Complexity, features.DurationHours)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(features)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		apiErr := &openai.APIError{}
		if errors.As(err, &apiErr) {
			switch apiErr.HTTPStatusCode {
			case 401:
				return entities.PricingRecommendation{}, fmt.Errorf("unauthorized: invalid OpenAI API key")
			case 429:
				return entities.PricingRecommendation{}, fmt.Errorf("rate limited by OpenAI API")
			case 500, 502, 503:
				return entities.PricingRecommendation{}, fmt.Errorf("OpenAI server error")
			}
		}
		log.Printf("[pricing][oracle] request failed err=%v", err)
		return entities.PricingRecommendation{}, err
	}
	if len(resp.Choices) == 0 {
		return entities.PricingRecommendation{}, fmt.Errorf("no choices returned from OpenAI")
	}

	var payload recommendationPayload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		log.Printf("[pricing][oracle] response unmarshal failed err=%v", err)
		return entities.PricingRecommendation{}, fmt.Errorf("malformed oracle response: %w", err)
	}

	rec := entities.PricingRecommendation{
		MinPrice:   payload.MinPrice,
		MaxPrice:   payload.MaxPrice,
		Confidence: payload.Confidence,
		Rationale:  strings.TrimSpace(payload.Rationale),
	}
	if rec.MinPrice < 0 || rec.MaxPrice < rec.MinPrice {
		return entities.PricingRecommendation{}, fmt.Errorf("oracle returned an invalid price range: min=%.2f max=%.2f", rec.MinPrice, rec.MaxPrice)
	}
	if rec.Confidence < 0 {
		rec.Confidence = 0
	}
	if rec.Confidence > 1 {
		rec.Confidence = 1
	}
	log.Printf("[pricing][oracle] request success min=%.2f max=%.2f confidence=%.2f",
		rec.MinPrice, rec.MaxPrice, rec.Confidence)
	return rec, nil
}

const systemPrompt = `You are a pricing assistant for freelance and agency quotes in South Africa. ` +
	`Given job features, respond with a JSON object: ` +
	`{"min_price": number, "max_price": number, "confidence": number between 0 and 1, "rationale": string}. ` +
	`Prices are in ZAR for the whole job. min_price must not exceed max_price.`

func buildPrompt(f entities.FeatureSet) string {
	return fmt.Sprintf(
		"Job title: %s\nIndustry: %s\nLocation: %s\nExperience level: %s\nComplexity: %s\nEstimated duration: %.1f hours",
		f.JobTitle, f.Industry, f.Location, f.ExperienceLevel, f.Complexity, f.DurationHours,
	)
}

// Hourly base rates in ZAR used by mock mode.
var mockHourlyRates = map[entities.ExperienceLevel]float64{
	entities.ExperienceJunior: 300,
	entities.ExperienceMid:    500,
	entities.ExperienceSenior: 850,
}

var mockComplexityMultipliers = map[entities.Complexity]float64{
	entities.ComplexitySimple:   0.8,
	entities.ComplexityStandard: 1.0,
	entities.ComplexityComplex:  1.35,
	entities.ComplexityExpert:   1.7,
}

func mockRecommendation(f entities.FeatureSet) entities.PricingRecommendation {
	rate, ok := mockHourlyRates[f.ExperienceLevel]
	if !ok {
		rate = 500
	}
	mult, ok := mockComplexityMultipliers[f.Complexity]
	if !ok {
		mult = 1.0
	}
	base := f.DurationHours * rate * mult
	return entities.PricingRecommendation{
		MinPrice:   base * 0.85,
		MaxPrice:   base * 1.2,
		Confidence: 0.7,
		Rationale: fmt.Sprintf("Heuristic estimate for a %s %s job of %.1f hours at a %s experience level.",
			f.Complexity, f.Industry, f.DurationHours, f.ExperienceLevel),
	}
}

func isPricingOracleMockEnabled() bool {
	for _, key := range []string{"PRICING_ORACLE_MOCK", "OPENAI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
