package models

import "time"

// Call statuses. CONNECTED, RINGING, FAILED and TIMEOUT are part of the
// vocabulary for the external signaling layer; the call manager itself only
// ever moves a call from INITIATED to DISCONNECTED.
const (
	CallStatusInitiated    = "initiated"
	CallStatusRinging      = "ringing"
	CallStatusConnected    = "connected"
	CallStatusDisconnected = "disconnected"
	CallStatusFailed       = "failed"
	CallStatusTimeout      = "timeout"
)

// Connection quality levels
const (
	CallQualityExcellent = "excellent"
	CallQualityGood      = "good"
	CallQualityFair      = "fair"
	CallQualityPoor      = "poor"
)

// Recording statuses
const (
	RecordingStatusNotRecording = "not_recording"
	RecordingStatusRecording    = "recording"
	RecordingStatusPaused       = "paused"
	RecordingStatusCompleted    = "completed"
	RecordingStatusFailed       = "failed"
)

// Invitation statuses
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusRejected = "rejected"
	InvitationStatusExpired  = "expired"
)

// Moderation actions
const (
	ModerationActionAllow = "allow"
	ModerationActionWarn  = "warn"
	ModerationActionBlock = "block"
)

// Moderation content types
const (
	ContentTypeScreenShare       = "screen_share"
	ContentTypeChatMessage       = "chat_message"
	ContentTypeVirtualBackground = "virtual_background"
)

// CallParticipant is one user's membership inside a VideoCall.
type CallParticipant struct {
	UserID            string                 `json:"userId"`
	DisplayName       string                 `json:"displayName"`
	JoinedAt          time.Time              `json:"joinedAt"`
	LeftAt            *time.Time             `json:"leftAt,omitempty"`
	IsHost            bool                   `json:"isHost"`
	AudioEnabled      bool                   `json:"audioEnabled"`
	VideoEnabled      bool                   `json:"videoEnabled"`
	ConnectionQuality string                 `json:"connectionQuality"`
	NetworkStats      map[string]interface{} `json:"networkStats,omitempty"`
}

// VideoCall is one ephemeral two-party call session.
type VideoCall struct {
	CallID          string                            `json:"callId"`
	RoomCode        string                            `json:"roomCode"`
	Participants    map[string]*CallParticipant       `json:"participants"`
	Status          string                            `json:"status"`
	StartedAt       time.Time                         `json:"startedAt"`
	EndedAt         *time.Time                        `json:"endedAt,omitempty"`
	MaxParticipants int                               `json:"maxParticipants"`
	IsPrivate       bool                              `json:"isPrivate"`
	RecordingStatus string                            `json:"recordingStatus"`
	RecordingURL    string                            `json:"recordingUrl,omitempty"`
	QualityMetrics  map[string]map[string]interface{} `json:"qualityMetrics"`
	SecurityFlags   []SecurityFlag                    `json:"securityFlags"`
}

// SecurityFlag records a non-allow moderation outcome on a call.
type SecurityFlag struct {
	Type        string    `json:"type"`
	UserID      string    `json:"userId"`
	ContentType string    `json:"contentType"`
	Action      string    `json:"action"`
	Reason      string    `json:"reason"`
	Timestamp   time.Time `json:"timestamp"`
}

// CallInvitation is a time-boxed offer for a user to join a call.
// Resolved invitations are kept for audit, never deleted.
type CallInvitation struct {
	InvitationID string     `json:"invitationId"`
	CallID       string     `json:"callId"`
	CallerID     string     `json:"callerId"`
	CalleeID     string     `json:"calleeId"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExpiresAt    time.Time  `json:"expiresAt"`
	Status       string     `json:"status"`
	AcceptedAt   *time.Time `json:"acceptedAt,omitempty"`
}

// CallRecording tracks one recording of a call.
type CallRecording struct {
	RecordingID     string     `json:"recordingId"`
	CallID          string     `json:"callId"`
	StartedBy       string     `json:"startedBy"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	DurationSeconds float64    `json:"durationSeconds,omitempty"`
	Status          string     `json:"status"`
	Participants    []string   `json:"participants"`
	PlaybackURL     string     `json:"playbackUrl,omitempty"`
}

// ICEServer is one STUN/TURN entry handed to the media layer verbatim.
type ICEServer struct {
	URLs       []string `json:"urls"`
	Username   string   `json:"username"`
	Credential string   `json:"credential"`
}

// RTCConfiguration is the static WebRTC configuration for clients.
type RTCConfiguration struct {
	ICEServers           []ICEServer `json:"iceServers"`
	BundlePolicy         string      `json:"bundlePolicy"`
	RTCPMuxPolicy        string      `json:"rtcpMuxPolicy"`
	ICECandidatePoolSize int         `json:"iceCandidatePoolSize"`
}

// CallRoomInfo is the payload returned when a call room is created.
type CallRoomInfo struct {
	CallID       string           `json:"callId"`
	RoomCode     string           `json:"roomCode"`
	ICEServers   []ICEServer      `json:"iceServers"`
	RTCConfig    RTCConfiguration `json:"rtcConfig"`
	JoinURL      string           `json:"joinUrl"`
	HostControls []string         `json:"hostControls"`
}

// CallerInfo identifies the inviting participant on an invitation payload.
type CallerInfo struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// InvitationInfo is the payload returned when an invitation is created.
type InvitationInfo struct {
	InvitationID string     `json:"invitationId"`
	CallID       string     `json:"callId"`
	RoomCode     string     `json:"roomCode"`
	ExpiresAt    time.Time  `json:"expiresAt"`
	CallerInfo   CallerInfo `json:"callerInfo"`
}

// ParticipantInfo is the serialized view of a participant.
type ParticipantInfo struct {
	UserID            string    `json:"userId"`
	DisplayName       string    `json:"displayName"`
	IsHost            bool      `json:"isHost"`
	AudioEnabled      bool      `json:"audioEnabled"`
	VideoEnabled      bool      `json:"videoEnabled"`
	ConnectionQuality string    `json:"connectionQuality"`
	JoinedAt          time.Time `json:"joinedAt"`
}

// JoinInfo is the payload returned when an invitation is accepted.
type JoinInfo struct {
	CallID       string            `json:"callId"`
	RoomCode     string            `json:"roomCode"`
	ICEServers   []ICEServer       `json:"iceServers"`
	RTCConfig    RTCConfiguration  `json:"rtcConfig"`
	Participants []ParticipantInfo `json:"participants"`
	CallControls []string          `json:"callControls"`
}

// RecordingStartInfo is the payload returned when recording starts.
type RecordingStartInfo struct {
	RecordingID  string    `json:"recordingId"`
	CallID       string    `json:"callId"`
	StartedAt    time.Time `json:"startedAt"`
	Participants []string  `json:"participants"`
}

// RecordingStopInfo is the payload returned when recording stops.
type RecordingStopInfo struct {
	CallID        string         `json:"callId"`
	EndedAt       time.Time      `json:"endedAt"`
	RecordingInfo *CallRecording `json:"recordingInfo,omitempty"`
}

// CallEndInfo is the payload returned when a call ends.
type CallEndInfo struct {
	CallID            string                            `json:"callId"`
	EndedAt           time.Time                         `json:"endedAt"`
	DurationSeconds   float64                           `json:"durationSeconds"`
	FinalParticipants int                               `json:"finalParticipants"`
	QualityMetrics    map[string]map[string]interface{} `json:"qualityMetrics"`
}

// CallLeaveInfo is the payload returned when a non-host participant leaves.
type CallLeaveInfo struct {
	CallID                string       `json:"callId"`
	LeftAt                time.Time    `json:"leftAt"`
	RemainingParticipants int          `json:"remainingParticipants"`
	CallEnded             bool         `json:"callEnded"`
	EndInfo               *CallEndInfo `json:"endInfo,omitempty"`
}

// CallSnapshot is the detailed read-only view of a call.
type CallSnapshot struct {
	CallID              string                            `json:"callId"`
	RoomCode            string                            `json:"roomCode"`
	Status              string                            `json:"status"`
	StartedAt           time.Time                         `json:"startedAt"`
	EndedAt             *time.Time                        `json:"endedAt,omitempty"`
	DurationSeconds     *float64                          `json:"durationSeconds,omitempty"`
	MaxParticipants     int                               `json:"maxParticipants"`
	CurrentParticipants int                               `json:"currentParticipants"`
	TotalParticipants   int                               `json:"totalParticipants"`
	IsPrivate           bool                              `json:"isPrivate"`
	RecordingStatus     string                            `json:"recordingStatus"`
	RecordingURL        string                            `json:"recordingUrl,omitempty"`
	Participants        []ParticipantInfo                 `json:"participants"`
	QualityMetrics      map[string]map[string]interface{} `json:"qualityMetrics"`
	SecurityFlags       []SecurityFlag                    `json:"securityFlags"`
}

// UserCallSummary is one entry of a user's active-call listing.
type UserCallSummary struct {
	CallID              string    `json:"callId"`
	RoomCode            string    `json:"roomCode"`
	Status              string    `json:"status"`
	IsHost              bool      `json:"isHost"`
	JoinedAt            time.Time `json:"joinedAt"`
	CurrentParticipants int       `json:"currentParticipants"`
}

// SystemStatistics aggregates call-system metrics.
type SystemStatistics struct {
	ActiveCalls              int     `json:"activeCalls"`
	TotalParticipants        int     `json:"totalParticipants"`
	TotalCallsCreated        int     `json:"totalCallsCreated"`
	SuccessfulConnections    int     `json:"successfulConnections"`
	FailedConnections        int     `json:"failedConnections"`
	ConnectionSuccessRate    float64 `json:"connectionSuccessRate"`
	TotalCallDurationSeconds float64 `json:"totalCallDurationSeconds"`
	AverageCallDuration      float64 `json:"averageCallDurationSeconds"`
	ActiveInvitations        int     `json:"activeInvitations"`
	TotalRecordings          int     `json:"totalRecordings"`
}

// ModerationResult is the outcome of a content-moderation check.
type ModerationResult struct {
	Action          string  `json:"action"`
	Reason          string  `json:"reason"`
	Confidence      float64 `json:"confidence"`
	SuggestedAction string  `json:"suggestedAction,omitempty"`
}
