package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mortgage-engine/domain"
	"mortgage-engine/repository"
	"mortgage-engine/service"
)

func newTestHandler() *AffordabilityHandler {
	repo := repository.NewSnapshotRepositoryMemory()
	svc := service.NewAffordabilityService(repo, nil)
	return NewAffordabilityHandler(svc)
}

func validBody() []byte {
	return []byte(`{
		"profile": {
			"annualIncome": 100000,
			"monthlyDebts": 500,
			"ficoScore": 720,
			"selectedFactors": {"cashReserves": "3-5 months"}
		},
		"loan": {
			"loanType": "conventional",
			"ltv": 80
		},
		"location": {"state": "CA"},
		"market": {
			"conventionalInterestRate": 6.75,
			"fhaInterestRate": 6.25,
			"propertyTaxRate": 1.25,
			"propertyInsuranceAnnual": 1200
		}
	}`)
}

func TestCalculateHandler_OK(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/affordability/calculate",
		bytes.NewBuffer(validBody()),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, w.Body.String())
	}

	var result domain.EngineResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.MaxHomePrice <= 0 {
		t.Errorf("expected positive max home price, got %.0f", result.MaxHomePrice)
	}
	if len(result.Scenarios) == 0 {
		t.Errorf("expected scenarios in the response")
	}
}

func TestCalculateHandler_LegacyFactorList(t *testing.T) {

	handler := newTestHandler()

	body := []byte(`{
		"profile": {
			"annualIncome": 100000,
			"monthlyDebts": 500,
			"ficoScore": 720,
			"selectedFactors": ["cash reserves"]
		},
		"loan": {"loanType": "conventional", "ltv": 80},
		"location": {"state": "CA"},
		"market": {
			"conventionalInterestRate": 6.75,
			"fhaInterestRate": 6.25,
			"propertyTaxRate": 1.25,
			"propertyInsuranceAnnual": 1200
		}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/affordability/calculate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for legacy factor shape, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCalculateHandler_ValidationError(t *testing.T) {

	handler := newTestHandler()

	body := []byte(`{
		"profile": {"annualIncome": 100000, "monthlyDebts": 500, "ficoScore": 720},
		"loan": {"loanType": "conventional", "ltv": 80},
		"market": {
			"conventionalInterestRate": 6.75,
			"fhaInterestRate": 6.25,
			"propertyTaxRate": 1.25,
			"propertyInsuranceAnnual": 1200
		}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/affordability/calculate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var payload map[string]string
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode error payload: %v", err)
	}
	if payload["field"] != "location" {
		t.Errorf("expected location failure, got %q", payload["field"])
	}
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/affordability/calculate", nil)
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateHandler_BadRequest(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/affordability/calculate",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateHandler_UnsupportedMediaType(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/affordability/calculate", bytes.NewBuffer(validBody()))
	req.Header.Set("Content-Type", "text/plain")

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestMarketDataHandler_RequiresState(t *testing.T) {

	t.Setenv("OPENAI_API_KEY", "")
	handler := NewMarketDataHandler(service.NewMarketDataService(repository.NewMockCache()))

	req := httptest.NewRequest(http.MethodGet, "/market-data", nil)
	w := httptest.NewRecorder()

	handler.GetMarketData(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestMarketDataHandler_OK(t *testing.T) {

	t.Setenv("OPENAI_API_KEY", "")
	handler := NewMarketDataHandler(service.NewMarketDataService(repository.NewMockCache()))

	req := httptest.NewRequest(http.MethodGet, "/market-data?state=TX", nil)
	w := httptest.NewRecorder()

	handler.GetMarketData(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var data domain.MarketData
	if err := json.NewDecoder(w.Body).Decode(&data); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if data.ConventionalInterestRate <= 0 || data.PropertyTaxRate <= 0 {
		t.Errorf("expected populated market data, got %+v", data)
	}
}
