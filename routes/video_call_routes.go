package routes

import (
	"tucita_server/controllers"
	"tucita_server/services"

	"github.com/gorilla/mux"
)

// RegisterVideoCallRoutes sets up routes for call lifecycle operations under /api
func RegisterVideoCallRoutes(r *mux.Router, callService *services.VideoCallService) {
	controller := controllers.NewVideoCallController(callService)

	callRouter := r.PathPrefix("/api/calls").Subrouter()
	callRouter.HandleFunc("", controller.CreateCall).Methods("POST")
	callRouter.HandleFunc("/statistics", controller.GetStatistics).Methods("GET")
	callRouter.HandleFunc("/{callId}", controller.GetCallInfo).Methods("GET")
	callRouter.HandleFunc("/{callId}/invitations", controller.InviteToCall).Methods("POST")
	callRouter.HandleFunc("/{callId}/participants/{userId}", controller.UpdateParticipantStatus).Methods("PATCH")
	callRouter.HandleFunc("/{callId}/recording/start", controller.StartRecording).Methods("POST")
	callRouter.HandleFunc("/{callId}/recording/stop", controller.StopRecording).Methods("POST")
	callRouter.HandleFunc("/{callId}/end", controller.EndCall).Methods("POST")
	callRouter.HandleFunc("/{callId}/leave", controller.LeaveCall).Methods("POST")
	callRouter.HandleFunc("/{callId}/quality", controller.UpdateQuality).Methods("POST")
	callRouter.HandleFunc("/{callId}/moderate", controller.ModerateContent).Methods("POST")

	invitationRouter := r.PathPrefix("/api/invitations").Subrouter()
	invitationRouter.HandleFunc("/{invitationId}/accept", controller.AcceptInvitation).Methods("POST")
	invitationRouter.HandleFunc("/{invitationId}/reject", controller.RejectInvitation).Methods("POST")

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("/{userId}/calls", controller.GetUserActiveCalls).Methods("GET")
}
