package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"mortgage-engine/service"
)

type MarketDataHandler struct {
	service *service.MarketDataService
}

func NewMarketDataHandler(service *service.MarketDataService) *MarketDataHandler {
	return &MarketDataHandler{service: service}
}

func (h *MarketDataHandler) GetMarketData(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		http.Error(w, "state query parameter is required", http.StatusBadRequest)
		return
	}

	data := h.service.GetMarketData(state)

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
