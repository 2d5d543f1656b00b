package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tucita_server/services"

	"github.com/gorilla/mux"
)

// VideoCallController handles HTTP requests for call lifecycle operations
type VideoCallController struct {
	CallService *services.VideoCallService
}

// NewVideoCallController creates a new VideoCallController instance
func NewVideoCallController(callService *services.VideoCallService) *VideoCallController {
	return &VideoCallController{CallService: callService}
}

// callErrorStatus maps typed command failures onto HTTP status codes.
func callErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrCallNotFound), errors.Is(err, services.ErrInvitationNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, services.ErrCallFull),
		errors.Is(err, services.ErrCallEnded),
		errors.Is(err, services.ErrDuplicateInvitation),
		errors.Is(err, services.ErrInvitationExpired),
		errors.Is(err, services.ErrInvitationResolved),
		errors.Is(err, services.ErrAlreadyRecording),
		errors.Is(err, services.ErrNotRecording),
		errors.Is(err, services.ErrNotParticipant):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// CreateCall handles creating a new call room
func (vc *VideoCallController) CreateCall(w http.ResponseWriter, r *http.Request) {
	var request struct {
		HostID          string `json:"hostId"`
		DisplayName     string `json:"displayName"`
		MaxParticipants int    `json:"maxParticipants"`
		IsPrivate       *bool  `json:"isPrivate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if request.HostID == "" || request.DisplayName == "" {
		http.Error(w, "hostId and displayName are required", http.StatusBadRequest)
		return
	}

	isPrivate := true
	if request.IsPrivate != nil {
		isPrivate = *request.IsPrivate
	}
	maxParticipants := request.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = 2
	}

	room, err := vc.CallService.CreateCall(request.HostID, request.DisplayName, maxParticipants, isPrivate)
	if err != nil {
		http.Error(w, err.Error(), callErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

// InviteToCall handles inviting a user into an existing call
func (vc *VideoCallController) InviteToCall(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	var request struct {
		CallerID          string `json:"callerId"`
		CalleeID          string `json:"calleeId"`
		CalleeDisplayName string `json:"calleeDisplayName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if request.CallerID == "" || request.CalleeID == "" {
		http.Error(w, "callerId and calleeId are required", http.StatusBadRequest)
		return
	}

	invitation, err := vc.CallService.InviteToCall(callID, request.CallerID, request.CalleeID, request.CalleeDisplayName)
	if err != nil {
		http.Error(w, err.Error(), callErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusCreated, invitation)
}

// AcceptInvitation handles a callee accepting an invitation
func (vc *VideoCallController) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	invitationID := mux.Vars(r)["invitationId"]

	var request struct {
		UserID      string `json:"userId"`
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	joinInfo, err := vc.CallService.AcceptInvitation(invitationID, request.UserID, request.DisplayName)
	if err != nil {
		http.Error(w, err.Error(), callErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, joinInfo)
}

// RejectInvitation handles a callee rejecting an invitation
func (vc *VideoCallController) RejectInvitation(w http.ResponseWriter, r *http.Request) {
	invitationID := mux.Vars(r)["invitationId"]

	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rejected := vc.CallService.RejectInvitation(invitationID, request.UserID)
	writeJSON(w, http.StatusOK, map[string]interface{}{"rejected": rejected})
}

// UpdateParticipantStatus handles partial audio/video toggle updates
func (vc *VideoCallController) UpdateParticipantStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	callID := vars["callId"]
	userID := vars["userId"]

	var request struct {
		AudioEnabled *bool `json:"audioEnabled"`
		VideoEnabled *bool `json:"videoEnabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated := vc.CallService.UpdateParticipantStatus(callID, userID, request.AudioEnabled, request.VideoEnabled)
	writeJSON(w, http.StatusOK, map[string]interface{}{"updated": updated})
}

// StartRecording handles the host starting a recording
func (vc *VideoCallController) StartRecording(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	info, err := vc.CallService.StartRecording(callID, request.UserID)
	if err != nil {
		http.Error(w, err.Error(), callErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// StopRecording handles the host stopping a recording
func (vc *VideoCallController) StopRecording(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	info, err := vc.CallService.StopRecording(r.Context(), callID, request.UserID)
	if err != nil {
		http.Error(w, err.Error(), callErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// EndCall handles the host terminating a call
func (vc *VideoCallController) EndCall(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	info, err := vc.CallService.EndCall(callID, request.UserID)
	if err != nil {
		http.Error(w, err.Error(), callErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// LeaveCall handles a participant leaving a call
func (vc *VideoCallController) LeaveCall(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	info, err := vc.CallService.LeaveCall(callID, request.UserID)
	if err != nil {
		http.Error(w, err.Error(), callErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// UpdateQuality handles per-user quality metric reports
func (vc *VideoCallController) UpdateQuality(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	var request struct {
		UserID  string                 `json:"userId"`
		Metrics map[string]interface{} `json:"metrics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated := vc.CallService.UpdateQuality(callID, request.UserID, request.Metrics)
	writeJSON(w, http.StatusOK, map[string]interface{}{"updated": updated})
}

// ModerateContent handles moderation checks on call content
func (vc *VideoCallController) ModerateContent(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	var request struct {
		UserID      string                 `json:"userId"`
		ContentType string                 `json:"contentType"`
		ContentData map[string]interface{} `json:"contentData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := vc.CallService.ModerateContent(callID, request.UserID, request.ContentType, request.ContentData)
	writeJSON(w, http.StatusOK, result)
}

// GetCallInfo handles fetching a call snapshot
func (vc *VideoCallController) GetCallInfo(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	snapshot := vc.CallService.GetCallInfo(callID)
	if snapshot == nil {
		http.Error(w, "call not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// GetUserActiveCalls handles listing a user's active calls
func (vc *VideoCallController) GetUserActiveCalls(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	calls := vc.CallService.GetUserActiveCalls(userID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"calls": calls,
		"count": len(calls),
	})
}

// GetStatistics handles the system statistics projection
func (vc *VideoCallController) GetStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, vc.CallService.GetSystemStatistics())
}
