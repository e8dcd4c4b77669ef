package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"mortgage-engine/domain"
	"mortgage-engine/service"
)

type AffordabilityHandler struct {
	service *service.AffordabilityService
}

func NewAffordabilityHandler(service *service.AffordabilityService) *AffordabilityHandler {
	return &AffordabilityHandler{service: service}
}

func (h *AffordabilityHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req domain.AffordabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Evaluate(req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeValidationError(w, vErr)
			return
		}
		log.Printf("Error evaluating affordability: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeValidationError(w http.ResponseWriter, vErr *domain.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"field": vErr.Field,
		"error": vErr.Message,
	}); err != nil {
		log.Printf("Error writing validation response: %v", err)
	}
}
