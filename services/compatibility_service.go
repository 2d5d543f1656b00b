package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"tucita_server/models"
	"tucita_server/utils"
)

// Top-level sub-score weights. They sum to 1.0, which together with the
// bounded sub-scores keeps the final score in [0,1].
const (
	collaborativeWeight = 0.4
	contentWeight       = 0.3
	geographicWeight    = 0.2
	behavioralWeight    = 0.1
)

// neutralScore is returned whenever a sub-score has no data to work with,
// so new users are neither favored nor penalized.
const neutralScore = 0.5

// CompatibilityService computes the weighted compatibility score between two
// user profiles along with human-readable reasons.
type CompatibilityService struct {
	Store ProfileStore
}

// Score combines the collaborative, content, geographic and behavioral
// sub-scores into a final score in [0,1]. Reasons are emitted in generation
// order: common interests first, then matching relationship goals.
func (cs *CompatibilityService) Score(ctx context.Context, user, candidate *models.UserProfile) (float64, []string) {
	reasons := []string{}

	collaborativeScore := cs.collaborativeScore(ctx, user, candidate)
	contentScore := cs.contentScore(user, candidate, &reasons)
	geographicScore := cs.geographicScore(user, candidate)
	behavioralScore := cs.behavioralScore(user, candidate)

	finalScore := collaborativeScore*collaborativeWeight +
		contentScore*contentWeight +
		geographicScore*geographicWeight +
		behavioralScore*behavioralWeight

	return finalScore, reasons
}

// collaborativeScore is the requester's past success rate with users similar
// to the candidate. Missing history or store failures degrade to neutral.
func (cs *CompatibilityService) collaborativeScore(ctx context.Context, user, candidate *models.UserProfile) float64 {
	interactions, err := cs.Store.GetInteractionHistory(ctx, user.UserID)
	if err != nil {
		log.Printf("Collaborative score degraded to neutral for %s: %v", user.UserID, err)
		return neutralScore
	}
	if len(interactions) == 0 {
		return neutralScore
	}

	similar, err := cs.Store.FindSimilarUsers(ctx, candidate)
	if err != nil {
		log.Printf("Similar-user lookup failed for %s: %v", candidate.UserID, err)
		return neutralScore
	}

	successful := 0
	total := 0
	for _, interaction := range interactions {
		if _, ok := similar[interaction.TargetUserID]; !ok {
			continue
		}
		total++
		if interaction.SuccessOutcome {
			successful++
		}
	}

	if total == 0 {
		return neutralScore
	}
	return float64(successful) / float64(total)
}

// contentScore is the weighted sum of five profile-similarity factors.
func (cs *CompatibilityService) contentScore(user, candidate *models.UserProfile, reasons *[]string) float64 {
	score := 0.0

	// Shared interests (30%)
	common := commonInterests(user, candidate)
	interestScore := float64(len(common)) / math.Max(math.Max(float64(len(user.Interests)), float64(len(candidate.Interests))), 1)
	score += interestScore * 0.3

	if len(common) > 0 {
		listed := common
		if len(listed) > 3 {
			listed = listed[:3]
		}
		*reasons = append(*reasons, fmt.Sprintf("Common interests: %s", strings.Join(listed, ", ")))
	}

	// Relationship goals (25%)
	goalScore := 0.3
	if user.RelationshipGoal == candidate.RelationshipGoal {
		goalScore = 1.0
	}
	score += goalScore * 0.25

	if goalScore > 0.5 {
		*reasons = append(*reasons, "Compatible relationship goals")
	}

	// Age gap (20%)
	ageGap := user.Age - candidate.Age
	if ageGap < 0 {
		ageGap = -ageGap
	}
	ageScore := 0.3
	switch {
	case ageGap <= 5:
		ageScore = 1.0
	case ageGap <= 10:
		ageScore = 0.7
	}
	score += ageScore * 0.2

	// Education proximity (15%)
	score += educationScore(user.EducationLevel, candidate.EducationLevel) * 0.15

	// Lifestyle compatibility (10%)
	score += lifestyleScore(user, candidate) * 0.1

	return score
}

// geographicScore is a step function of the distance between the two users.
func (cs *CompatibilityService) geographicScore(user, candidate *models.UserProfile) float64 {
	distance := utils.CalculateDistance(user.Latitude, user.Longitude, candidate.Latitude, candidate.Longitude)

	switch {
	case distance <= 5:
		return 1.0
	case distance <= 25:
		return 0.8
	case distance <= 50:
		return 0.6
	case distance <= 100:
		return 0.3
	default:
		return 0.1
	}
}

// behavioralScore compares activity, reputation and verification levels.
func (cs *CompatibilityService) behavioralScore(user, candidate *models.UserProfile) float64 {
	activityScore := math.Max(0, 1.0-math.Abs(user.ActivityScore-candidate.ActivityScore))
	reputationScore := math.Max(0, 1.0-math.Abs(user.ReputationScore-candidate.ReputationScore))

	rank1 := models.VerificationRank[user.VerificationLevel]
	rank2 := models.VerificationRank[candidate.VerificationLevel]
	rankGap := rank1 - rank2
	if rankGap < 0 {
		rankGap = -rankGap
	}
	verificationScore := 0.4
	switch {
	case rankGap == 0:
		verificationScore = 1.0
	case rankGap <= 1:
		verificationScore = 0.7
	}

	return activityScore*0.4 + reputationScore*0.3 + verificationScore*0.3
}

// educationScore maps both levels onto the ordered education scale and
// decays by 0.2 per step of separation. Unrecognized levels score neutral.
func educationScore(level1, level2 string) float64 {
	idx1 := educationIndex(level1)
	idx2 := educationIndex(level2)
	if idx1 < 0 || idx2 < 0 {
		return neutralScore
	}
	gap := idx1 - idx2
	if gap < 0 {
		gap = -gap
	}
	return math.Max(0, 1.0-float64(gap)*0.2)
}

func educationIndex(level string) int {
	level = strings.ToLower(level)
	for i, known := range models.EducationLevels {
		if known == level {
			return i
		}
	}
	return -1
}

// lifestyleScore counts lifestyle attributes where either side has no
// preference or both sides agree, out of the five attributes.
func lifestyleScore(user, candidate *models.UserProfile) float64 {
	pairs := [][2]string{
		{user.Smoking, candidate.Smoking},
		{user.Drinking, candidate.Drinking},
		{user.Exercise, candidate.Exercise},
		{user.Religion, candidate.Religion},
		{user.Politics, candidate.Politics},
	}

	compatible := 0
	for _, pair := range pairs {
		if pair[0] == models.LifestyleNoPreference || pair[1] == models.LifestyleNoPreference || pair[0] == pair[1] {
			compatible++
		}
	}

	return float64(compatible) / float64(len(pairs))
}

// commonInterests returns the intersection of both interest sets, in the
// requester's interest order.
func commonInterests(user, candidate *models.UserProfile) []string {
	candidateSet := make(map[string]struct{}, len(candidate.Interests))
	for _, interest := range candidate.Interests {
		candidateSet[interest] = struct{}{}
	}

	var common []string
	for _, interest := range user.Interests {
		if _, ok := candidateSet[interest]; ok {
			common = append(common, interest)
		}
	}
	return common
}
