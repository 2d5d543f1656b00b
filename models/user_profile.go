package models

import "time"

// UserProfile is the matching snapshot of a user. It is rebuilt from the
// profile store on every ranking request and never mutated afterwards.
type UserProfile struct {
	UserID            string             `dynamodbav:"userId" json:"userId"`
	Age               int                `dynamodbav:"age" json:"age"`
	Gender            string             `dynamodbav:"gender" json:"gender"`
	Latitude          float64            `dynamodbav:"latitude" json:"latitude"`
	Longitude         float64            `dynamodbav:"longitude" json:"longitude"`
	Interests         []string           `dynamodbav:"interests" json:"interests"`
	Profession        string             `dynamodbav:"profession" json:"profession"`
	EducationLevel    string             `dynamodbav:"educationLevel" json:"educationLevel"`
	RelationshipGoal  string             `dynamodbav:"relationshipGoal" json:"relationshipGoal"`
	PersonalityTraits map[string]float64 `dynamodbav:"personalityTraits" json:"personalityTraits"`
	Preferences       map[string]string  `dynamodbav:"preferences" json:"preferences"`
	ActivityScore     float64            `dynamodbav:"activityScore" json:"activityScore"`
	ReputationScore   float64            `dynamodbav:"reputationScore" json:"reputationScore"`
	VerificationLevel string             `dynamodbav:"verificationLevel" json:"verificationLevel"`
	PhotosCount       int                `dynamodbav:"photosCount" json:"photosCount"`
	BioLength         int                `dynamodbav:"bioLength" json:"bioLength"`
	Languages         []string           `dynamodbav:"languages" json:"languages"`
	Smoking           string             `dynamodbav:"smoking" json:"smoking"`
	Drinking          string             `dynamodbav:"drinking" json:"drinking"`
	Exercise          string             `dynamodbav:"exercise" json:"exercise"`
	Religion          string             `dynamodbav:"religion" json:"religion"`
	Politics          string             `dynamodbav:"politics" json:"politics"`
	IsActive          bool               `dynamodbav:"isActive" json:"isActive"`
}

// InteractionRecord is one historical interaction of a user with a target,
// consumed by the collaborative part of the scorer.
type InteractionRecord struct {
	UserID           string    `dynamodbav:"userId" json:"userId"`
	TargetUserID     string    `dynamodbav:"targetUserId" json:"targetUserId"`
	InteractionType  string    `dynamodbav:"interactionType" json:"interactionType"`
	Timestamp        time.Time `dynamodbav:"timestamp" json:"timestamp"`
	SuccessOutcome   bool      `dynamodbav:"successOutcome" json:"successOutcome"`
	InteractionScore float64   `dynamodbav:"interactionScore" json:"interactionScore"`
}

// Interaction Types
const (
	InteractionTypeLike    = "like"
	InteractionTypeMessage = "message"
	InteractionTypeBlock   = "block"
	InteractionTypeReport  = "report"
)

// LifestyleNoPreference is the wildcard value for lifestyle attributes.
const LifestyleNoPreference = "no_preference"

// Verification levels, weakest to strongest
const (
	VerificationNone     = "none"
	VerificationEmail    = "email"
	VerificationPhone    = "phone"
	VerificationIdentity = "identity"
	VerificationPremium  = "premium"
)

// VerificationRank maps a verification level onto its ordinal position.
// Unknown levels rank 0.
var VerificationRank = map[string]int{
	VerificationNone:     0,
	VerificationEmail:    1,
	VerificationPhone:    2,
	VerificationIdentity: 3,
	VerificationPremium:  4,
}

// EducationLevels is the ordered scale used for education proximity scoring.
var EducationLevels = []string{"none", "high_school", "bachelor", "master", "phd"}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"

// LikesTable is the DynamoDB table name for like interactions
const LikesTable = "Likes"

// MessagesTable is the DynamoDB table name for direct messages
const MessagesTable = "Messages"
