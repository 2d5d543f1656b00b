package services

import (
	"context"
	"fmt"
	"log"

	"tucita_server/models"
	"tucita_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DefaultMaxDistanceKm is the candidate-pool distance cutoff when no filter
// overrides it.
const DefaultMaxDistanceKm = 100.0

// ProfileStore is the external profile collaborator consumed by the scorer
// and the ranker. Implementations are treated as fallible remote calls.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	GetCandidates(ctx context.Context, userID string, requester *models.UserProfile, filters *models.CandidateFilters) ([]models.UserProfile, error)
	GetInteractionHistory(ctx context.Context, userID string) ([]models.InteractionRecord, error)
	FindSimilarUsers(ctx context.Context, profile *models.UserProfile) (map[string]struct{}, error)
}

// ProfileService is the DynamoDB-backed ProfileStore.
type ProfileService struct {
	Dynamo *DynamoService
}

// GetProfile retrieves a user profile by ID
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", userID, err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// GetCandidates returns the filtered candidate pool for a requester: active
// profiles of the paired gender within the distance cutoff, satisfying any
// age/verification filters, excluding the requester.
func (ps *ProfileService) GetCandidates(
	ctx context.Context,
	userID string,
	requester *models.UserProfile,
	filters *models.CandidateFilters,
) ([]models.UserProfile, error) {
	equalFields := map[string]types.AttributeValue{
		"isActive": &types.AttributeValueMemberBOOL{Value: true},
	}
	if paired := pairedGender(requester.Gender); paired != "" {
		equalFields["gender"] = &types.AttributeValueMemberS{Value: paired}
	}

	var scanned []models.UserProfile
	err := ps.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, nil, equalFields, &scanned)
	if err != nil {
		return nil, fmt.Errorf("failed to scan candidate profiles: %w", err)
	}

	maxDistance := DefaultMaxDistanceKm
	if filters != nil && filters.MaxDistanceKm > 0 {
		maxDistance = filters.MaxDistanceKm
	}

	var candidates []models.UserProfile
	for _, candidate := range scanned {
		if candidate.UserID == userID {
			continue
		}
		if filters != nil {
			if filters.MinAge > 0 && candidate.Age < filters.MinAge {
				continue
			}
			if filters.MaxAge > 0 && candidate.Age > filters.MaxAge {
				continue
			}
			if filters.VerificationLevel != "" && candidate.VerificationLevel != filters.VerificationLevel {
				continue
			}
		}

		distance := utils.CalculateDistance(requester.Latitude, requester.Longitude, candidate.Latitude, candidate.Longitude)
		if distance > maxDistance {
			continue
		}

		candidates = append(candidates, candidate)
	}

	log.Printf("Found %d candidates for user %s", len(candidates), userID)
	return candidates, nil
}

// GetInteractionHistory assembles a user's past interactions from the Likes
// and Messages tables.
func (ps *ProfileService) GetInteractionHistory(ctx context.Context, userID string) ([]models.InteractionRecord, error) {
	var interactions []models.InteractionRecord

	likeItems, err := ps.Dynamo.QueryItems(ctx, models.LikesTable,
		"fromUserId = :fromUserId",
		map[string]types.AttributeValue{
			":fromUserId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query likes for %s: %w", userID, err)
	}

	var likes []models.LikeRecord
	if err := attributevalue.UnmarshalListOfMaps(likeItems, &likes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal likes: %w", err)
	}
	for _, like := range likes {
		score := 0.3
		if like.Matched {
			score = 1.0
		}
		interactions = append(interactions, models.InteractionRecord{
			UserID:           userID,
			TargetUserID:     like.ToUserID,
			InteractionType:  models.InteractionTypeLike,
			Timestamp:        like.Timestamp,
			SuccessOutcome:   like.Matched,
			InteractionScore: score,
		})
	}

	messageItems, err := ps.Dynamo.QueryItems(ctx, models.MessagesTable,
		"senderId = :senderId",
		map[string]types.AttributeValue{
			":senderId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for %s: %w", userID, err)
	}

	var messages []models.MessageRecord
	if err := attributevalue.UnmarshalListOfMaps(messageItems, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	for _, message := range messages {
		score := 0.5
		if message.LedToDate {
			score = 0.8
		}
		interactions = append(interactions, models.InteractionRecord{
			UserID:           userID,
			TargetUserID:     message.ReceiverID,
			InteractionType:  models.InteractionTypeMessage,
			Timestamp:        message.Timestamp,
			SuccessOutcome:   message.LedToDate,
			InteractionScore: score,
		})
	}

	return interactions, nil
}

// FindSimilarUsers returns the ids of users sharing at least one interest or
// the relationship goal with the given profile.
func (ps *ProfileService) FindSimilarUsers(ctx context.Context, profile *models.UserProfile) (map[string]struct{}, error) {
	var scanned []models.UserProfile
	err := ps.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, nil, map[string]types.AttributeValue{
		"isActive": &types.AttributeValueMemberBOOL{Value: true},
	}, &scanned)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for similar users: %w", err)
	}

	wanted := make(map[string]struct{}, len(profile.Interests))
	for _, interest := range profile.Interests {
		wanted[interest] = struct{}{}
	}

	similar := make(map[string]struct{})
	for _, other := range scanned {
		if other.UserID == profile.UserID {
			continue
		}
		if profile.RelationshipGoal != "" && other.RelationshipGoal == profile.RelationshipGoal {
			similar[other.UserID] = struct{}{}
			continue
		}
		for _, interest := range other.Interests {
			if _, ok := wanted[interest]; ok {
				similar[other.UserID] = struct{}{}
				break
			}
		}
	}

	return similar, nil
}

// pairedGender returns the gender a requester is matched against, or "" when
// the requester's gender is unknown (no gender constraint applied).
func pairedGender(gender string) string {
	switch gender {
	case "male":
		return "female"
	case "female":
		return "male"
	default:
		return ""
	}
}
