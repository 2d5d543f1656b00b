package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tucita_server/models"
	"tucita_server/services"
)

// RecommendationController handles HTTP requests for the recommendation feed
type RecommendationController struct {
	RecommendationService *services.RecommendationService
}

// NewRecommendationController creates a new RecommendationController instance
func NewRecommendationController(recommendationService *services.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GetRecommendations handles fetching ranked recommendations for a user.
// Only the enumerated filter keys are read; anything else in the query
// string is ignored.
func (rc *RecommendationController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	userID := queryParams.Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	limit := 10
	if raw := queryParams.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	filters := &models.CandidateFilters{}
	if raw := queryParams.Get("minAge"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filters.MinAge = parsed
		}
	}
	if raw := queryParams.Get("maxAge"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filters.MaxAge = parsed
		}
	}
	filters.VerificationLevel = queryParams.Get("verificationLevel")
	if raw := queryParams.Get("maxDistanceKm"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxDistanceKm = parsed
		}
	}

	recommendations := rc.RecommendationService.GetRecommendations(r.Context(), userID, limit, filters)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}
