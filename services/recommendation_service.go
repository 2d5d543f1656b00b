package services

import (
	"context"
	"log"
	"math"
	"sort"

	"tucita_server/models"
	"tucita_server/utils"
)

// MinCompatibilityScore is the fixed minimum score a candidate must reach to
// be recommended.
const MinCompatibilityScore = 0.6

// RecommendationService orchestrates the candidate pool, the compatibility
// scorer and the derived recommendation fields. Recommendations are a
// best-effort feature: every failure surfaces as an empty list, never as an
// error to the caller.
type RecommendationService struct {
	Store  ProfileStore
	Scorer *CompatibilityService
}

// GetRecommendations scores the candidate pool for a user, keeps candidates
// at or above the minimum compatibility score, sorts descending by score and
// truncates to limit. A missing requester profile is an expected cold-start
// case and yields an empty list.
func (rs *RecommendationService) GetRecommendations(
	ctx context.Context,
	userID string,
	limit int,
	filters *models.CandidateFilters,
) []models.Recommendation {
	log.Printf("Generating recommendations for user %s", userID)

	profile, err := rs.Store.GetProfile(ctx, userID)
	if err != nil || profile == nil {
		log.Printf("No profile available for user %s: %v", userID, err)
		return []models.Recommendation{}
	}

	candidates, err := rs.Store.GetCandidates(ctx, userID, profile, filters)
	if err != nil {
		log.Printf("Candidate pool unavailable for user %s: %v", userID, err)
		return []models.Recommendation{}
	}
	if len(candidates) == 0 {
		log.Printf("No candidates available for user %s", userID)
		return []models.Recommendation{}
	}

	recommendations := []models.Recommendation{}
	for i := range candidates {
		candidate := &candidates[i]
		score, reasons := rs.Scorer.Score(ctx, profile, candidate)
		if score < MinCompatibilityScore {
			continue
		}

		recommendations = append(recommendations, models.Recommendation{
			UserID:                  candidate.UserID,
			Score:                   score,
			Reasons:                 reasons,
			CompatibilityPercentage: score * 100,
			DistanceKm:              utils.CalculateDistance(profile.Latitude, profile.Longitude, candidate.Latitude, candidate.Longitude),
			CommonInterests:         commonInterests(profile, candidate),
			PredictedSuccessRate:    predictSuccessRate(profile, candidate),
			RiskFactors:             assessRiskFactors(candidate),
		})
	}

	// Stable sort keeps pool order between equal scores.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if limit > 0 && len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	log.Printf("Generated %d recommendations for user %s", len(recommendations), userID)
	return recommendations
}

// predictSuccessRate averages four normalized factors: shared interests
// (capped at 5), inverted distance, mutual reputation and mutual activity.
func predictSuccessRate(user, candidate *models.UserProfile) float64 {
	interestFactor := math.Min(float64(len(commonInterests(user, candidate)))/5.0, 1.0)

	distance := utils.CalculateDistance(user.Latitude, user.Longitude, candidate.Latitude, candidate.Longitude)
	distanceFactor := math.Max(0, 1.0-distance/100.0)

	reputationFactor := (user.ReputationScore + candidate.ReputationScore) / 2
	activityFactor := (user.ActivityScore + candidate.ActivityScore) / 2

	return (interestFactor + distanceFactor + reputationFactor + activityFactor) / 4
}

// assessRiskFactors flags every triggered risk condition independently.
func assessRiskFactors(candidate *models.UserProfile) []string {
	risks := []string{}

	if candidate.VerificationLevel == models.VerificationNone || candidate.VerificationLevel == models.VerificationEmail {
		risks = append(risks, models.RiskLowVerification)
	}
	if candidate.ActivityScore < 0.3 {
		risks = append(risks, models.RiskLowActivity)
	}
	if candidate.ReputationScore < 0.5 {
		risks = append(risks, models.RiskLowReputation)
	}
	if candidate.PhotosCount < 2 || candidate.BioLength < 50 {
		risks = append(risks, models.RiskIncompleteProfile)
	}

	return risks
}
