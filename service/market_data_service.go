package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"mortgage-engine/domain"
	"mortgage-engine/repository"
)

// DefaultMarketDataTTL bounds how long a cached rate/tax snapshot is
// served before the provider is asked again.
const DefaultMarketDataTTL = 6 * time.Hour

// MarketDataService resolves current interest rates and property-tax
// data for a location. Lookups go through a read-through cache; on a
// miss it asks an LLM provider for current figures and falls back to
// static national averages when the provider is unavailable or
// returns something unusable.
type MarketDataService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
	cache      repository.CacheRepository
	ttl        time.Duration
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewMarketDataService(cache repository.CacheRepository) *MarketDataService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	enabled := apiKey != ""

	ttl := DefaultMarketDataTTL
	if v := os.Getenv("MARKET_DATA_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			ttl = parsed
		} else {
			log.Printf("Warning: invalid MARKET_DATA_TTL %q, using default", v)
		}
	}

	return &MarketDataService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cache,
		ttl:   ttl,
	}
}

// GetMarketData returns the rate/tax snapshot for a state. Never
// fails: cache, then provider, then static fallback.
func (s *MarketDataService) GetMarketData(state string) domain.MarketData {
	state = strings.ToUpper(strings.TrimSpace(state))
	cacheKey := "market:" + state

	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			var data domain.MarketData
			if err := json.Unmarshal([]byte(cached), &data); err == nil && validMarketData(data) {
				return data
			}
			log.Printf("Warning: discarding unusable cached market data for %s", state)
		}
	}

	data := s.fetchMarketData(state)

	if s.cache != nil {
		encoded, err := json.Marshal(data)
		if err == nil {
			if err := s.cache.Set(cacheKey, string(encoded), s.ttl); err != nil {
				log.Printf("Warning: failed to cache market data for %s: %v", state, err)
			}
		}
	}

	return data
}

func (s *MarketDataService) fetchMarketData(state string) domain.MarketData {
	if !s.enabled {
		return fallbackMarketData(state)
	}

	prompt := fmt.Sprintf(`Provide current US mortgage market data for the state of %s.

Respond with ONLY a JSON object, no prose, with these exact keys:
{
  "conventionalInterestRate": <current average 30-year conventional rate, percent>,
  "fhaInterestRate": <current average 30-year FHA rate, percent>,
  "propertyTaxRate": <average effective annual property tax rate for %s, percent of home value>,
  "propertyInsuranceAnnual": <typical annual homeowners insurance premium for %s, dollars>
}`, state, state, state)

	raw, err := s.callLLM(prompt)
	if err != nil {
		log.Printf("Error calling market data provider for %s: %v", state, err)
		return fallbackMarketData(state)
	}

	data, err := parseMarketDataResponse(raw)
	if err != nil {
		log.Printf("Error parsing market data response for %s: %v", state, err)
		return fallbackMarketData(state)
	}

	return data
}

func (s *MarketDataService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: "gpt-4o-mini",
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are a mortgage market data source. You answer with machine-readable JSON only, using realistic current figures for US mortgage rates, property taxes, and homeowners insurance.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 200,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from provider")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

// parseMarketDataResponse extracts the JSON object from a provider
// reply, tolerating surrounding prose or code fences.
func parseMarketDataResponse(raw string) (domain.MarketData, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return domain.MarketData{}, fmt.Errorf("no JSON object in response")
	}

	var payload struct {
		ConventionalInterestRate float64 `json:"conventionalInterestRate"`
		FHAInterestRate          float64 `json:"fhaInterestRate"`
		PropertyTaxRate          float64 `json:"propertyTaxRate"`
		PropertyInsuranceAnnual  float64 `json:"propertyInsuranceAnnual"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return domain.MarketData{}, err
	}

	data := domain.MarketData{
		ConventionalInterestRate: payload.ConventionalInterestRate,
		FHAInterestRate:          payload.FHAInterestRate,
		PropertyTaxRate:          payload.PropertyTaxRate,
		PropertyInsuranceAnnual:  payload.PropertyInsuranceAnnual,
	}
	if !validMarketData(data) {
		return domain.MarketData{}, fmt.Errorf("implausible market data: %+v", payload)
	}
	return data, nil
}

// Sanity bounds so a hallucinated reply never reaches the engine.
func validMarketData(data domain.MarketData) bool {
	return data.ConventionalInterestRate > 0 && data.ConventionalInterestRate < 20 &&
		data.FHAInterestRate > 0 && data.FHAInterestRate < 20 &&
		data.PropertyTaxRate > 0 && data.PropertyTaxRate < 5 &&
		data.PropertyInsuranceAnnual > 0 && data.PropertyInsuranceAnnual < 20000
}

// statePropertyTaxRates covers the states with tax rates far enough
// from the national average to matter; everything else uses the
// fallback average.
var statePropertyTaxRates = map[string]float64{
	"NJ": 2.23,
	"IL": 2.08,
	"NH": 1.93,
	"CT": 1.79,
	"TX": 1.68,
	"NY": 1.40,
	"FL": 0.86,
	"CA": 0.75,
	"CO": 0.55,
	"HI": 0.32,
}

func fallbackMarketData(state string) domain.MarketData {
	taxRate, ok := statePropertyTaxRates[state]
	if !ok {
		taxRate = 1.10
	}
	return domain.MarketData{
		ConventionalInterestRate: 6.75,
		FHAInterestRate:          6.25,
		PropertyTaxRate:          taxRate,
		PropertyInsuranceAnnual:  1800,
	}
}
