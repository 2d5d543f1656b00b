package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"tucita_server/models"
)

// mockProfileStore is an in-memory ProfileStore for scorer and ranker tests.
type mockProfileStore struct {
	profiles        map[string]*models.UserProfile
	profileErr      error
	candidates      []models.UserProfile
	candidatesErr   error
	interactions    []models.InteractionRecord
	interactionsErr error
	similar         map[string]struct{}
	similarErr      error
}

func (m *mockProfileStore) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if m.profileErr != nil {
		return nil, m.profileErr
	}
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, errors.New("item not found")
	}
	return profile, nil
}

func (m *mockProfileStore) GetCandidates(ctx context.Context, userID string, requester *models.UserProfile, filters *models.CandidateFilters) ([]models.UserProfile, error) {
	if m.candidatesErr != nil {
		return nil, m.candidatesErr
	}
	return m.candidates, nil
}

func (m *mockProfileStore) GetInteractionHistory(ctx context.Context, userID string) ([]models.InteractionRecord, error) {
	if m.interactionsErr != nil {
		return nil, m.interactionsErr
	}
	return m.interactions, nil
}

func (m *mockProfileStore) FindSimilarUsers(ctx context.Context, profile *models.UserProfile) (map[string]struct{}, error) {
	if m.similarErr != nil {
		return nil, m.similarErr
	}
	return m.similar, nil
}

func newProfile(userID string, mutate func(*models.UserProfile)) *models.UserProfile {
	profile := &models.UserProfile{
		UserID:            userID,
		Age:               28,
		Gender:            "female",
		Latitude:          40.7128,
		Longitude:         -74.0060,
		Interests:         []string{"music", "travel", "cooking"},
		EducationLevel:    "bachelor",
		RelationshipGoal:  "serious",
		ActivityScore:     0.7,
		ReputationScore:   0.8,
		VerificationLevel: models.VerificationPhone,
		PhotosCount:       4,
		BioLength:         120,
		IsActive:          true,
	}
	if mutate != nil {
		mutate(profile)
	}
	return profile
}

func TestScoreWellMatchedPair(t *testing.T) {
	store := &mockProfileStore{}
	cs := &CompatibilityService{Store: store}

	user := newProfile("user-1", nil)
	candidate := newProfile("user-2", func(p *models.UserProfile) {
		p.Age = 26
		p.Latitude = 40.7200
		p.Longitude = -74.0100
		p.Interests = []string{"music", "travel"}
	})

	score, reasons := cs.Score(context.Background(), user, candidate)

	if score < MinCompatibilityScore {
		t.Errorf("expected well-matched pair to clear the threshold, got %f", score)
	}
	if score < 0 || score > 1 {
		t.Errorf("score out of bounds: %f", score)
	}

	var interestReason, goalReason bool
	for _, reason := range reasons {
		if strings.Contains(reason, "music") && strings.Contains(reason, "travel") {
			interestReason = true
		}
		if reason == "Compatible relationship goals" {
			goalReason = true
		}
	}
	if !interestReason {
		t.Errorf("expected a shared-interests reason, got %v", reasons)
	}
	if !goalReason {
		t.Errorf("expected a relationship-goals reason, got %v", reasons)
	}
}

func TestScoreStaysBounded(t *testing.T) {
	store := &mockProfileStore{}
	cs := &CompatibilityService{Store: store}

	user := newProfile("user-1", nil)
	candidates := []*models.UserProfile{
		newProfile("twin", nil),
		newProfile("opposite", func(p *models.UserProfile) {
			p.Age = 55
			p.Latitude = 34.0522
			p.Longitude = -118.2437
			p.Interests = []string{"golf"}
			p.RelationshipGoal = "casual"
			p.EducationLevel = "phd"
			p.ActivityScore = 0.0
			p.ReputationScore = 0.0
			p.VerificationLevel = models.VerificationNone
		}),
		newProfile("empty", func(p *models.UserProfile) {
			*p = models.UserProfile{UserID: "empty"}
		}),
	}

	for _, candidate := range candidates {
		score, _ := cs.Score(context.Background(), user, candidate)
		if score < 0 || score > 1 {
			t.Errorf("score for %s out of bounds: %f", candidate.UserID, score)
		}
	}
}

func TestCollaborativeScoreSuccessRatio(t *testing.T) {
	now := time.Now()
	store := &mockProfileStore{
		interactions: []models.InteractionRecord{
			{UserID: "user-1", TargetUserID: "t1", SuccessOutcome: true, Timestamp: now},
			{UserID: "user-1", TargetUserID: "t2", SuccessOutcome: true, Timestamp: now},
			{UserID: "user-1", TargetUserID: "t3", SuccessOutcome: false, Timestamp: now},
			{UserID: "user-1", TargetUserID: "t4", SuccessOutcome: true, Timestamp: now},
		},
		similar: map[string]struct{}{"t1": {}, "t2": {}, "t3": {}},
	}
	cs := &CompatibilityService{Store: store}

	got := cs.collaborativeScore(context.Background(), newProfile("user-1", nil), newProfile("user-2", nil))
	want := 2.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("collaborative score = %f, want %f", got, want)
	}
}

func TestCollaborativeScoreDegradesToNeutral(t *testing.T) {
	user := newProfile("user-1", nil)
	candidate := newProfile("user-2", nil)

	cases := []struct {
		name  string
		store *mockProfileStore
	}{
		{"no history", &mockProfileStore{}},
		{"history lookup fails", &mockProfileStore{interactionsErr: errors.New("dynamo down")}},
		{"similar lookup fails", &mockProfileStore{
			interactions: []models.InteractionRecord{{TargetUserID: "t1", SuccessOutcome: true}},
			similarErr:   errors.New("dynamo down"),
		}},
		{"no overlap with similar users", &mockProfileStore{
			interactions: []models.InteractionRecord{{TargetUserID: "t1", SuccessOutcome: true}},
			similar:      map[string]struct{}{"someone-else": {}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cs := &CompatibilityService{Store: tc.store}
			if got := cs.collaborativeScore(context.Background(), user, candidate); got != neutralScore {
				t.Errorf("expected neutral score, got %f", got)
			}
		})
	}
}

func TestEducationScore(t *testing.T) {
	cases := []struct {
		level1, level2 string
		want           float64
	}{
		{"bachelor", "bachelor", 1.0},
		{"bachelor", "master", 0.8},
		{"high_school", "phd", 0.4},
		{"none", "phd", 0.2},
		{"Bachelor", "MASTER", 0.8},
		{"bootcamp", "bachelor", neutralScore},
		{"", "bachelor", neutralScore},
	}

	for _, tc := range cases {
		if got := educationScore(tc.level1, tc.level2); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("educationScore(%q, %q) = %f, want %f", tc.level1, tc.level2, got, tc.want)
		}
	}
}

func TestLifestyleScore(t *testing.T) {
	user := newProfile("user-1", func(p *models.UserProfile) {
		p.Smoking = "never"
		p.Drinking = "socially"
		p.Exercise = "often"
		p.Religion = models.LifestyleNoPreference
		p.Politics = "moderate"
	})
	candidate := newProfile("user-2", func(p *models.UserProfile) {
		p.Smoking = "never"
		p.Drinking = "never"
		p.Exercise = models.LifestyleNoPreference
		p.Religion = "catholic"
		p.Politics = "liberal"
	})

	// smoking matches, exercise and religion hit wildcards, drinking and
	// politics conflict
	want := 3.0 / 5.0
	if got := lifestyleScore(user, candidate); math.Abs(got-want) > 1e-9 {
		t.Errorf("lifestyleScore = %f, want %f", got, want)
	}
}

func TestGeographicScoreSteps(t *testing.T) {
	cs := &CompatibilityService{Store: &mockProfileStore{}}
	user := newProfile("user-1", func(p *models.UserProfile) {
		p.Latitude = 0
		p.Longitude = 0
	})

	// one degree of latitude is roughly 111 km
	cases := []struct {
		name     string
		latitude float64
		want     float64
	}{
		{"same block", 0.01, 1.0},
		{"same city", 0.1, 0.8},
		{"nearby city", 0.3, 0.6},
		{"same region", 0.6, 0.3},
		{"far away", 2.0, 0.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := newProfile("user-2", func(p *models.UserProfile) {
				p.Latitude = tc.latitude
				p.Longitude = 0
			})
			if got := cs.geographicScore(user, candidate); got != tc.want {
				t.Errorf("geographicScore at lat %f = %f, want %f", tc.latitude, got, tc.want)
			}
		})
	}
}

func TestBehavioralScoreIdenticalProfiles(t *testing.T) {
	cs := &CompatibilityService{Store: &mockProfileStore{}}
	user := newProfile("user-1", nil)
	candidate := newProfile("user-2", nil)

	if got := cs.behavioralScore(user, candidate); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("identical behavioral profiles should score 1.0, got %f", got)
	}
}

func TestBehavioralScoreVerificationGap(t *testing.T) {
	cs := &CompatibilityService{Store: &mockProfileStore{}}
	user := newProfile("user-1", func(p *models.UserProfile) {
		p.VerificationLevel = models.VerificationPremium
	})
	candidate := newProfile("user-2", func(p *models.UserProfile) {
		p.VerificationLevel = models.VerificationNone
	})

	// activity and reputation match, verification is four ranks apart
	want := 1.0*0.4 + 1.0*0.3 + 0.4*0.3
	if got := cs.behavioralScore(user, candidate); math.Abs(got-want) > 1e-9 {
		t.Errorf("behavioralScore = %f, want %f", got, want)
	}
}

func TestCommonInterestsKeepsRequesterOrder(t *testing.T) {
	user := newProfile("user-1", func(p *models.UserProfile) {
		p.Interests = []string{"hiking", "music", "film", "travel"}
	})
	candidate := newProfile("user-2", func(p *models.UserProfile) {
		p.Interests = []string{"travel", "music"}
	})

	got := commonInterests(user, candidate)
	want := []string{"music", "travel"}
	if len(got) != len(want) {
		t.Fatalf("commonInterests = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("commonInterests[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
