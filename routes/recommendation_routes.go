package routes

import (
	"tucita_server/controllers"
	"tucita_server/services"

	"github.com/gorilla/mux"
)

// RegisterRecommendationRoutes sets up routes for the recommendation feed under /api/recommendations
func RegisterRecommendationRoutes(r *mux.Router, recommendationService *services.RecommendationService) {
	controller := controllers.NewRecommendationController(recommendationService)

	recommendationRouter := r.PathPrefix("/api/recommendations").Subrouter()
	recommendationRouter.HandleFunc("", controller.GetRecommendations).Methods("GET")
}
