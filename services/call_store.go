package services

import (
	"tucita_server/models"
)

// callMetrics are the running counters behind the statistics projection.
type callMetrics struct {
	TotalCallsCreated     int
	TotalCallDuration     float64
	SuccessfulConnections int
	FailedConnections     int
}

// CallStore is the in-process registry of calls, invitations, recordings and
// the per-user session index. It is not safe for concurrent use on its own:
// the VideoCallService is its single owner and serializes all access. A
// process restart loses everything, matching the ephemeral session model.
type CallStore struct {
	calls        map[string]*models.VideoCall
	invitations  map[string]*models.CallInvitation
	recordings   map[string]*models.CallRecording
	userSessions map[string]map[string]struct{}
	roomCodes    map[string]string
	metrics      callMetrics
}

// NewCallStore creates an empty call registry.
func NewCallStore() *CallStore {
	return &CallStore{
		calls:        make(map[string]*models.VideoCall),
		invitations:  make(map[string]*models.CallInvitation),
		recordings:   make(map[string]*models.CallRecording),
		userSessions: make(map[string]map[string]struct{}),
		roomCodes:    make(map[string]string),
	}
}

// Call returns the call with the given id, or nil.
func (s *CallStore) Call(callID string) *models.VideoCall {
	return s.calls[callID]
}

// PutCall registers a call and claims its room code.
func (s *CallStore) PutCall(call *models.VideoCall) {
	s.calls[call.CallID] = call
	s.roomCodes[call.RoomCode] = call.CallID
}

// RoomCodeInUse reports whether a room code is already claimed.
func (s *CallStore) RoomCodeInUse(roomCode string) bool {
	_, ok := s.roomCodes[roomCode]
	return ok
}

// Invitation returns the invitation with the given id, or nil.
func (s *CallStore) Invitation(invitationID string) *models.CallInvitation {
	return s.invitations[invitationID]
}

// PutInvitation registers an invitation. Invitations are kept for audit and
// never removed, whatever their final status.
func (s *CallStore) PutInvitation(invitation *models.CallInvitation) {
	s.invitations[invitation.InvitationID] = invitation
}

// HasPendingInvitation reports whether the (call, callee) pair already has a
// pending invitation.
func (s *CallStore) HasPendingInvitation(callID, calleeID string) bool {
	for _, invitation := range s.invitations {
		if invitation.CallID == callID && invitation.CalleeID == calleeID && invitation.Status == models.InvitationStatusPending {
			return true
		}
	}
	return false
}

// PendingInvitations returns all invitations still in the pending state.
func (s *CallStore) PendingInvitations() []*models.CallInvitation {
	var pending []*models.CallInvitation
	for _, invitation := range s.invitations {
		if invitation.Status == models.InvitationStatusPending {
			pending = append(pending, invitation)
		}
	}
	return pending
}

// PutRecording registers a recording.
func (s *CallStore) PutRecording(recording *models.CallRecording) {
	s.recordings[recording.RecordingID] = recording
}

// ActiveRecording returns the in-progress recording of a call, or nil.
func (s *CallStore) ActiveRecording(callID string) *models.CallRecording {
	for _, recording := range s.recordings {
		if recording.CallID == callID && recording.Status == models.RecordingStatusRecording {
			return recording
		}
	}
	return nil
}

// CompletedRecordings counts recordings that ran to completion.
func (s *CallStore) CompletedRecordings() int {
	count := 0
	for _, recording := range s.recordings {
		if recording.Status == models.RecordingStatusCompleted {
			count++
		}
	}
	return count
}

// AddUserSession links a user to a call in the session index.
func (s *CallStore) AddUserSession(userID, callID string) {
	if _, ok := s.userSessions[userID]; !ok {
		s.userSessions[userID] = make(map[string]struct{})
	}
	s.userSessions[userID][callID] = struct{}{}
}

// RemoveUserSession unlinks a user from a call in the session index.
func (s *CallStore) RemoveUserSession(userID, callID string) {
	if sessions, ok := s.userSessions[userID]; ok {
		delete(sessions, callID)
	}
}

// UserCallIDs returns the ids of calls a user is currently linked to.
func (s *CallStore) UserCallIDs(userID string) []string {
	sessions, ok := s.userSessions[userID]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(sessions))
	for callID := range sessions {
		ids = append(ids, callID)
	}
	return ids
}

// Calls returns every registered call, active or ended.
func (s *CallStore) Calls() []*models.VideoCall {
	calls := make([]*models.VideoCall, 0, len(s.calls))
	for _, call := range s.calls {
		calls = append(calls, call)
	}
	return calls
}
