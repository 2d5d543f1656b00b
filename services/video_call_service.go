package services

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"tucita_server/models"

	"github.com/google/uuid"
)

// DefaultInvitationTimeout bounds how long a call invitation stays pending.
const DefaultInvitationTimeout = 60 * time.Second

// roomCodeAlphabet and roomCodeLength shape the human-shareable room codes.
const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 8
)

// maxCallParticipants is fixed: this is a strict one-to-one calling system.
const maxCallParticipants = 2

// RecordingStorage resolves a playback URL for a finished recording.
// Implementations may hit remote object storage; failures are non-fatal.
type RecordingStorage interface {
	PlaybackURL(ctx context.Context, callID, recordingID string) (string, error)
}

// CallEvents receives lifecycle notifications for realtime fan-out to room
// subscribers. Implementations must not block.
type CallEvents interface {
	Publish(roomCode, event string, payload interface{})
}

// VideoCallConfig carries the injectable dependencies of the call manager.
// Zero values fall back to production defaults.
type VideoCallConfig struct {
	InvitationTimeout time.Duration
	Clock             func() time.Time
	NewID             func() string
	RecordingStorage  RecordingStorage
	Events            CallEvents
}

// VideoCallService owns the call session store and applies every state
// transition on it. A single mutex serializes mutations: invite/accept/leave
// transitions touch the call, the invitation map and the session index
// together, so per-call locking could not keep them atomic.
type VideoCallService struct {
	mu    sync.RWMutex
	store *CallStore

	invitationTimeout time.Duration
	now               func() time.Time
	newID             func() string
	recordings        RecordingStorage
	events            CallEvents
	iceServers        []models.ICEServer
}

// NewVideoCallService creates a call manager around an empty store.
func NewVideoCallService(cfg VideoCallConfig) *VideoCallService {
	if cfg.InvitationTimeout <= 0 {
		cfg.InvitationTimeout = DefaultInvitationTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}

	return &VideoCallService{
		store:             NewCallStore(),
		invitationTimeout: cfg.InvitationTimeout,
		now:               cfg.Clock,
		newID:             cfg.NewID,
		recordings:        cfg.RecordingStorage,
		events:            cfg.Events,
		iceServers:        defaultICEServers(),
	}
}

// defaultICEServers is the static STUN list handed to the media layer. The
// core never contacts these.
func defaultICEServers() []models.ICEServer {
	return []models.ICEServer{
		{URLs: []string{"stun:stun.l.google.com:19302"}},
		{URLs: []string{"stun:stun1.l.google.com:19302"}},
	}
}

func (vs *VideoCallService) rtcConfiguration() models.RTCConfiguration {
	return models.RTCConfiguration{
		ICEServers:           vs.iceServers,
		BundlePolicy:         "max-bundle",
		RTCPMuxPolicy:        "require",
		ICECandidatePoolSize: 10,
	}
}

func hostControls() []string {
	return []string{
		"mute_participants",
		"remove_participants",
		"start_recording",
		"stop_recording",
		"end_call",
		"lock_room",
		"enable_waiting_room",
	}
}

func callControls(isHost bool) []string {
	controls := []string{
		"toggle_audio",
		"toggle_video",
		"share_screen",
		"leave_call",
	}
	if isHost {
		controls = append(controls,
			"mute_participants",
			"remove_participants",
			"start_recording",
			"stop_recording",
			"end_call",
		)
	}
	return controls
}

// CreateCall opens a new call room with the creator registered as host.
// maxParticipants is accepted for interface compatibility but clamped to 2.
func (vs *VideoCallService) CreateCall(hostID, displayName string, maxParticipants int, isPrivate bool) (*models.CallRoomInfo, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	if maxParticipants != maxCallParticipants {
		maxParticipants = maxCallParticipants
	}

	callID := vs.newID()
	roomCode := vs.generateRoomCode()
	now := vs.now()

	call := &models.VideoCall{
		CallID:          callID,
		RoomCode:        roomCode,
		Participants:    make(map[string]*models.CallParticipant),
		Status:          models.CallStatusInitiated,
		StartedAt:       now,
		MaxParticipants: maxParticipants,
		IsPrivate:       isPrivate,
		RecordingStatus: models.RecordingStatusNotRecording,
		QualityMetrics:  make(map[string]map[string]interface{}),
		SecurityFlags:   []models.SecurityFlag{},
	}

	call.Participants[hostID] = &models.CallParticipant{
		UserID:            hostID,
		DisplayName:       displayName,
		JoinedAt:          now,
		IsHost:            true,
		AudioEnabled:      true,
		VideoEnabled:      true,
		ConnectionQuality: models.CallQualityGood,
	}

	vs.store.PutCall(call)
	vs.store.AddUserSession(hostID, callID)
	vs.store.metrics.TotalCallsCreated++

	log.Printf("Call room created: %s by user %s", callID, hostID)

	return &models.CallRoomInfo{
		CallID:       callID,
		RoomCode:     roomCode,
		ICEServers:   vs.iceServers,
		RTCConfig:    vs.rtcConfiguration(),
		JoinURL:      "/video-chat/join/" + roomCode,
		HostControls: hostControls(),
	}, nil
}

// generateRoomCode produces an unused 8-character uppercase-alphanumeric
// code, regenerating on the rare collision.
func (vs *VideoCallService) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))]
		}
		if !vs.store.RoomCodeInUse(string(code)) {
			return string(code)
		}
	}
}

// InviteToCall creates a pending, time-boxed invitation for calleeID.
func (vs *VideoCallService) InviteToCall(callID, callerID, calleeID, calleeDisplayName string) (*models.InvitationInfo, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	call := vs.store.Call(callID)
	if call == nil {
		return nil, ErrCallNotFound
	}
	if call.Status == models.CallStatusDisconnected {
		return nil, ErrCallEnded
	}

	caller, ok := call.Participants[callerID]
	if !ok {
		return nil, ErrPermissionDenied
	}

	if len(call.Participants) >= call.MaxParticipants {
		return nil, ErrCallFull
	}

	if vs.store.HasPendingInvitation(callID, calleeID) {
		return nil, ErrDuplicateInvitation
	}

	now := vs.now()
	invitation := &models.CallInvitation{
		InvitationID: vs.newID(),
		CallID:       callID,
		CallerID:     callerID,
		CalleeID:     calleeID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(vs.invitationTimeout),
		Status:       models.InvitationStatusPending,
	}
	vs.store.PutInvitation(invitation)

	log.Printf("Invitation %s created for user %s on call %s", invitation.InvitationID, calleeID, callID)

	info := &models.InvitationInfo{
		InvitationID: invitation.InvitationID,
		CallID:       callID,
		RoomCode:     call.RoomCode,
		ExpiresAt:    invitation.ExpiresAt,
		CallerInfo: models.CallerInfo{
			UserID:      callerID,
			DisplayName: caller.DisplayName,
		},
	}

	vs.publish(call.RoomCode, "callInvited", map[string]interface{}{
		"invitationId": invitation.InvitationID,
		"calleeId":     calleeID,
		"calleeName":   calleeDisplayName,
	})

	return info, nil
}

// AcceptInvitation admits the callee into the call if the invitation is
// still pending and unexpired and the call has room.
func (vs *VideoCallService) AcceptInvitation(invitationID, userID, displayName string) (*models.JoinInfo, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	invitation := vs.store.Invitation(invitationID)
	if invitation == nil {
		return nil, ErrInvitationNotFound
	}
	if invitation.CalleeID != userID {
		return nil, ErrPermissionDenied
	}
	if invitation.Status != models.InvitationStatusPending {
		return nil, ErrInvitationResolved
	}

	now := vs.now()
	if now.After(invitation.ExpiresAt) {
		invitation.Status = models.InvitationStatusExpired
		return nil, ErrInvitationExpired
	}

	call := vs.store.Call(invitation.CallID)
	if call == nil {
		return nil, ErrCallNotFound
	}
	if call.Status == models.CallStatusDisconnected {
		return nil, ErrCallEnded
	}
	if len(call.Participants) >= call.MaxParticipants {
		return nil, ErrCallFull
	}

	invitation.Status = models.InvitationStatusAccepted
	acceptedAt := now
	invitation.AcceptedAt = &acceptedAt

	call.Participants[userID] = &models.CallParticipant{
		UserID:            userID,
		DisplayName:       displayName,
		JoinedAt:          now,
		AudioEnabled:      true,
		VideoEnabled:      true,
		ConnectionQuality: models.CallQualityGood,
	}
	vs.store.AddUserSession(userID, call.CallID)
	vs.store.metrics.SuccessfulConnections++

	log.Printf("Invitation %s accepted by user %s", invitationID, userID)

	vs.publish(call.RoomCode, "participantJoined", map[string]interface{}{
		"userId":      userID,
		"displayName": displayName,
	})

	return &models.JoinInfo{
		CallID:       call.CallID,
		RoomCode:     call.RoomCode,
		ICEServers:   vs.iceServers,
		RTCConfig:    vs.rtcConfiguration(),
		Participants: participantsInfo(call),
		CallControls: callControls(false),
	}, nil
}

// RejectInvitation marks a pending invitation rejected. Unknown invitations
// and wrong recipients report false instead of an error.
func (vs *VideoCallService) RejectInvitation(invitationID, userID string) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	invitation := vs.store.Invitation(invitationID)
	if invitation == nil {
		return false
	}
	if invitation.CalleeID != userID {
		return false
	}

	invitation.Status = models.InvitationStatusRejected
	log.Printf("Invitation %s rejected by user %s", invitationID, userID)
	return true
}

// UpdateParticipantStatus applies a partial audio/video toggle update.
// Reports false when the call, the participant, or a live call is missing.
func (vs *VideoCallService) UpdateParticipantStatus(callID, userID string, audioEnabled, videoEnabled *bool) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	call := vs.store.Call(callID)
	if call == nil || call.Status == models.CallStatusDisconnected {
		return false
	}

	participant, ok := call.Participants[userID]
	if !ok {
		return false
	}

	if audioEnabled != nil {
		participant.AudioEnabled = *audioEnabled
	}
	if videoEnabled != nil {
		participant.VideoEnabled = *videoEnabled
	}

	return true
}

// StartRecording begins a recording; only the host may start one.
func (vs *VideoCallService) StartRecording(callID, userID string) (*models.RecordingStartInfo, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	call := vs.store.Call(callID)
	if call == nil {
		return nil, ErrCallNotFound
	}
	if call.Status == models.CallStatusDisconnected {
		return nil, ErrCallEnded
	}

	participant, ok := call.Participants[userID]
	if !ok || !participant.IsHost {
		return nil, ErrPermissionDenied
	}

	if call.RecordingStatus == models.RecordingStatusRecording {
		return nil, ErrAlreadyRecording
	}

	now := vs.now()
	recording := &models.CallRecording{
		RecordingID:  vs.newID(),
		CallID:       callID,
		StartedBy:    userID,
		StartedAt:    now,
		Status:       models.RecordingStatusRecording,
		Participants: participantIDs(call),
	}
	vs.store.PutRecording(recording)
	call.RecordingStatus = models.RecordingStatusRecording

	log.Printf("Recording %s started for call %s", recording.RecordingID, callID)

	return &models.RecordingStartInfo{
		RecordingID:  recording.RecordingID,
		CallID:       callID,
		StartedAt:    now,
		Participants: recording.Participants,
	}, nil
}

// StopRecording completes the in-progress recording and, when recording
// storage is configured, attaches a playback URL.
func (vs *VideoCallService) StopRecording(ctx context.Context, callID, userID string) (*models.RecordingStopInfo, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	call := vs.store.Call(callID)
	if call == nil {
		return nil, ErrCallNotFound
	}
	if call.Status == models.CallStatusDisconnected {
		return nil, ErrCallEnded
	}

	participant, ok := call.Participants[userID]
	if !ok || !participant.IsHost {
		return nil, ErrPermissionDenied
	}

	if call.RecordingStatus != models.RecordingStatusRecording {
		return nil, ErrNotRecording
	}

	now := vs.now()
	call.RecordingStatus = models.RecordingStatusCompleted

	recording := vs.store.ActiveRecording(callID)
	if recording != nil {
		endedAt := now
		recording.EndedAt = &endedAt
		recording.DurationSeconds = now.Sub(recording.StartedAt).Seconds()
		recording.Status = models.RecordingStatusCompleted

		if vs.recordings != nil {
			url, err := vs.recordings.PlaybackURL(ctx, callID, recording.RecordingID)
			if err != nil {
				log.Printf("Playback URL unavailable for recording %s: %v", recording.RecordingID, err)
			} else {
				recording.PlaybackURL = url
				call.RecordingURL = url
			}
		}
	}

	log.Printf("Recording stopped for call %s", callID)

	return &models.RecordingStopInfo{
		CallID:        callID,
		EndedAt:       now,
		RecordingInfo: recording,
	}, nil
}

// EndCall terminates the call. Only the host may end it. Ending an already
// ended call is harmless: left participants stay stamped and the status
// stays DISCONNECTED.
func (vs *VideoCallService) EndCall(callID, userID string) (*models.CallEndInfo, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.endCallLocked(callID, userID)
}

func (vs *VideoCallService) endCallLocked(callID, userID string) (*models.CallEndInfo, error) {
	call := vs.store.Call(callID)
	if call == nil {
		return nil, ErrCallNotFound
	}

	participant, ok := call.Participants[userID]
	if !ok || !participant.IsHost {
		return nil, ErrPermissionDenied
	}

	now := vs.now()
	if call.Status != models.CallStatusDisconnected {
		call.Status = models.CallStatusDisconnected
		endedAt := now
		call.EndedAt = &endedAt
		vs.store.metrics.TotalCallDuration += endedAt.Sub(call.StartedAt).Seconds()

		// A recording left running is finalized with the call, without a
		// playback URL; no recording survives a DISCONNECTED call.
		if call.RecordingStatus == models.RecordingStatusRecording {
			call.RecordingStatus = models.RecordingStatusCompleted
			if recording := vs.store.ActiveRecording(callID); recording != nil {
				recordingEndedAt := now
				recording.EndedAt = &recordingEndedAt
				recording.DurationSeconds = now.Sub(recording.StartedAt).Seconds()
				recording.Status = models.RecordingStatusCompleted
				log.Printf("Recording %s finalized with ending call %s", recording.RecordingID, callID)
			}
		}
	}

	for _, p := range call.Participants {
		if p.LeftAt == nil {
			leftAt := now
			p.LeftAt = &leftAt
		}
		vs.store.RemoveUserSession(p.UserID, callID)
	}

	duration := call.EndedAt.Sub(call.StartedAt).Seconds()

	log.Printf("Call %s ended by user %s", callID, userID)

	vs.publish(call.RoomCode, "callEnded", map[string]interface{}{
		"callId":  callID,
		"endedBy": userID,
	})

	return &models.CallEndInfo{
		CallID:            callID,
		EndedAt:           *call.EndedAt,
		DurationSeconds:   duration,
		FinalParticipants: len(call.Participants),
		QualityMetrics:    call.QualityMetrics,
	}, nil
}

// LeaveCall removes a participant from a live call. The host leaving ends
// the whole call; there is no host transfer.
func (vs *VideoCallService) LeaveCall(callID, userID string) (*models.CallLeaveInfo, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	call := vs.store.Call(callID)
	if call == nil {
		return nil, ErrCallNotFound
	}
	if call.Status == models.CallStatusDisconnected {
		return nil, ErrCallEnded
	}

	participant, ok := call.Participants[userID]
	if !ok {
		return nil, ErrNotParticipant
	}

	if participant.IsHost {
		endInfo, err := vs.endCallLocked(callID, userID)
		if err != nil {
			return nil, err
		}
		return &models.CallLeaveInfo{
			CallID:                callID,
			LeftAt:                endInfo.EndedAt,
			RemainingParticipants: 0,
			CallEnded:             true,
			EndInfo:               endInfo,
		}, nil
	}

	now := vs.now()
	if participant.LeftAt == nil {
		leftAt := now
		participant.LeftAt = &leftAt
	}
	vs.store.RemoveUserSession(userID, callID)

	log.Printf("User %s left call %s", userID, callID)

	vs.publish(call.RoomCode, "participantLeft", map[string]interface{}{
		"userId": userID,
	})

	return &models.CallLeaveInfo{
		CallID:                callID,
		LeftAt:                *participant.LeftAt,
		RemainingParticipants: liveParticipants(call),
	}, nil
}

// UpdateQuality stores a participant's reported quality metrics. Reports
// false when the call or participant is unknown or the call has ended.
func (vs *VideoCallService) UpdateQuality(callID, userID string, metrics map[string]interface{}) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	call := vs.store.Call(callID)
	if call == nil || call.Status == models.CallStatusDisconnected {
		return false
	}

	participant, ok := call.Participants[userID]
	if !ok {
		return false
	}

	if overall, ok := metrics["overallQuality"].(string); ok {
		switch overall {
		case models.CallQualityExcellent, models.CallQualityGood, models.CallQualityFair, models.CallQualityPoor:
			participant.ConnectionQuality = overall
		}
	}
	if stats, ok := metrics["networkStats"].(map[string]interface{}); ok {
		participant.NetworkStats = stats
	}

	call.QualityMetrics[userID] = metrics
	return true
}

// ModerateContent applies the rule set to a piece of call content. Unknown
// calls or participants block with a diagnostic reason instead of erroring.
// Any non-allow outcome on a known call is recorded as a security flag.
func (vs *VideoCallService) ModerateContent(callID, userID, contentType string, contentData map[string]interface{}) *models.ModerationResult {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	call := vs.store.Call(callID)
	if call == nil {
		return &models.ModerationResult{Action: models.ModerationActionBlock, Reason: "call_not_found"}
	}
	if _, ok := call.Participants[userID]; !ok {
		return &models.ModerationResult{Action: models.ModerationActionBlock, Reason: "user_not_in_call"}
	}

	result := &models.ModerationResult{
		Action:     models.ModerationActionAllow,
		Confidence: 0.95,
	}

	// Placeholder rule set; a real content-safety model slots in here.
	// The length limit counts characters, not bytes.
	if contentType == models.ContentTypeChatMessage {
		if text, ok := contentData["text"].(string); ok && utf8.RuneCountInString(text) > 500 {
			result.Action = models.ModerationActionWarn
			result.Reason = "message_too_long"
		}
	}

	if result.Action != models.ModerationActionAllow {
		call.SecurityFlags = append(call.SecurityFlags, models.SecurityFlag{
			Type:        "content_moderation",
			UserID:      userID,
			ContentType: contentType,
			Action:      result.Action,
			Reason:      result.Reason,
			Timestamp:   vs.now(),
		})
	}

	return result
}

// CleanupExpiredInvitations expires every overdue pending invitation and
// returns how many it transitioned. Meant to run on a periodic sweep.
func (vs *VideoCallService) CleanupExpiredInvitations() int {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	now := vs.now()
	expired := 0
	for _, invitation := range vs.store.PendingInvitations() {
		if now.After(invitation.ExpiresAt) {
			invitation.Status = models.InvitationStatusExpired
			expired++
		}
	}

	if expired > 0 {
		log.Printf("Expired %d stale invitations", expired)
	}
	return expired
}

// GetCallInfo returns a detailed snapshot of a call, or nil if absent.
func (vs *VideoCallService) GetCallInfo(callID string) *models.CallSnapshot {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	call := vs.store.Call(callID)
	if call == nil {
		return nil
	}

	snapshot := &models.CallSnapshot{
		CallID:              call.CallID,
		RoomCode:            call.RoomCode,
		Status:              call.Status,
		StartedAt:           call.StartedAt,
		EndedAt:             call.EndedAt,
		MaxParticipants:     call.MaxParticipants,
		CurrentParticipants: liveParticipants(call),
		TotalParticipants:   len(call.Participants),
		IsPrivate:           call.IsPrivate,
		RecordingStatus:     call.RecordingStatus,
		RecordingURL:        call.RecordingURL,
		Participants:        participantsInfo(call),
		QualityMetrics:      call.QualityMetrics,
		SecurityFlags:       call.SecurityFlags,
	}
	if call.EndedAt != nil {
		duration := call.EndedAt.Sub(call.StartedAt).Seconds()
		snapshot.DurationSeconds = &duration
	}

	return snapshot
}

// GetUserActiveCalls lists the calls a user currently participates in.
func (vs *VideoCallService) GetUserActiveCalls(userID string) []models.UserCallSummary {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	summaries := []models.UserCallSummary{}
	for _, callID := range vs.store.UserCallIDs(userID) {
		call := vs.store.Call(callID)
		if call == nil {
			continue
		}
		participant, ok := call.Participants[userID]
		if !ok {
			continue
		}
		summaries = append(summaries, models.UserCallSummary{
			CallID:              call.CallID,
			RoomCode:            call.RoomCode,
			Status:              call.Status,
			IsHost:              participant.IsHost,
			JoinedAt:            participant.JoinedAt,
			CurrentParticipants: liveParticipants(call),
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].CallID < summaries[j].CallID })
	return summaries
}

// GetSystemStatistics aggregates system-wide call metrics.
func (vs *VideoCallService) GetSystemStatistics() models.SystemStatistics {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	activeCalls := 0
	totalParticipants := 0
	for _, call := range vs.store.Calls() {
		if call.Status != models.CallStatusDisconnected {
			activeCalls++
		}
		totalParticipants += len(call.Participants)
	}

	metrics := vs.store.metrics
	successRate := 0.0
	if total := metrics.SuccessfulConnections + metrics.FailedConnections; total > 0 {
		successRate = float64(metrics.SuccessfulConnections) / float64(total) * 100
	}
	avgDuration := 0.0
	if metrics.TotalCallsCreated > 0 {
		avgDuration = metrics.TotalCallDuration / float64(metrics.TotalCallsCreated)
	}

	return models.SystemStatistics{
		ActiveCalls:              activeCalls,
		TotalParticipants:        totalParticipants,
		TotalCallsCreated:        metrics.TotalCallsCreated,
		SuccessfulConnections:    metrics.SuccessfulConnections,
		FailedConnections:        metrics.FailedConnections,
		ConnectionSuccessRate:    successRate,
		TotalCallDurationSeconds: metrics.TotalCallDuration,
		AverageCallDuration:      avgDuration,
		ActiveInvitations:        len(vs.store.PendingInvitations()),
		TotalRecordings:          vs.store.CompletedRecordings(),
	}
}

func (vs *VideoCallService) publish(roomCode, event string, payload interface{}) {
	if vs.events != nil {
		vs.events.Publish(roomCode, event, payload)
	}
}

func liveParticipants(call *models.VideoCall) int {
	count := 0
	for _, participant := range call.Participants {
		if participant.LeftAt == nil {
			count++
		}
	}
	return count
}

func participantIDs(call *models.VideoCall) []string {
	ids := make([]string, 0, len(call.Participants))
	for userID := range call.Participants {
		ids = append(ids, userID)
	}
	sort.Strings(ids)
	return ids
}

func participantsInfo(call *models.VideoCall) []models.ParticipantInfo {
	infos := make([]models.ParticipantInfo, 0, len(call.Participants))
	for _, userID := range participantIDs(call) {
		participant := call.Participants[userID]
		infos = append(infos, models.ParticipantInfo{
			UserID:            participant.UserID,
			DisplayName:       participant.DisplayName,
			IsHost:            participant.IsHost,
			AudioEnabled:      participant.AudioEnabled,
			VideoEnabled:      participant.VideoEnabled,
			ConnectionQuality: participant.ConnectionQuality,
			JoinedAt:          participant.JoinedAt,
		})
	}
	return infos
}
