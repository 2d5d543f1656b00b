package models

import "time"

// LikeRecord is a stored like, keyed by the sending user.
type LikeRecord struct {
	FromUserID string    `dynamodbav:"fromUserId" json:"fromUserId"`
	ToUserID   string    `dynamodbav:"toUserId" json:"toUserId"`
	Matched    bool      `dynamodbav:"matched" json:"matched"`
	Timestamp  time.Time `dynamodbav:"timestamp" json:"timestamp"`
}

// MessageRecord is a stored direct message, keyed by the sender.
type MessageRecord struct {
	SenderID   string    `dynamodbav:"senderId" json:"senderId"`
	ReceiverID string    `dynamodbav:"receiverId" json:"receiverId"`
	LedToDate  bool      `dynamodbav:"ledToDate" json:"ledToDate"`
	Timestamp  time.Time `dynamodbav:"timestamp" json:"timestamp"`
}
