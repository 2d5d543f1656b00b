package services

import "errors"

// Typed failures for call lifecycle commands. Callers branch on these with
// errors.Is; read paths never return them and degrade to empty values instead.
var (
	ErrCallNotFound        = errors.New("call not found")
	ErrCallEnded           = errors.New("call already ended")
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrInvitationExpired   = errors.New("invitation expired")
	ErrInvitationResolved  = errors.New("invitation no longer pending")
	ErrDuplicateInvitation = errors.New("pending invitation already exists")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrCallFull            = errors.New("call is full")
	ErrNotParticipant      = errors.New("user is not a participant of the call")
	ErrAlreadyRecording    = errors.New("recording already in progress")
	ErrNotRecording        = errors.New("no recording in progress")
)
