package usecase

import (
	"context"
	"testing"

	"job-board/internal/domain/matching"

	"github.com/google/uuid"
)

func TestMatcher_RankJobs_NoSkillsFallsBackToFullList(t *testing.T) {
	jobs := newMockJobRepo()
	skills := newMockSkillRepo()
	cache := newMockMatchCache()

	seedJob(jobs, uuid.New())
	seedJob(jobs, uuid.New())

	uc := NewMatchingUsecase(jobs, skills, cache, nil)

	items, ranked, err := uc.RankJobs(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ranked {
		t.Fatalf("expected ranked=false for an applicant with no skills")
	}
	if len(items) != 2 {
		t.Fatalf("expected all 2 jobs, got %d", len(items))
	}
	for _, it := range items {
		if it.MatchScore != 0 {
			t.Fatalf("fallback list must not carry scores")
		}
	}
}

func TestMatcher_RankJobs_OrdersByOverlap(t *testing.T) {
	jobs := newMockJobRepo()
	skills := newMockSkillRepo()
	cache := newMockMatchCache()

	applicantID := uuid.New()
	a := uuid.New()
	b := uuid.New()

	weak := seedJob(jobs, uuid.New())
	strong := seedJob(jobs, uuid.New())
	skills.profileSkills[applicantID] = []uuid.UUID{a, b}
	jobs.candidates = []matching.Candidate{
		{JobID: weak.ID, RequiredSkills: []uuid.UUID{a}},
		{JobID: strong.ID, RequiredSkills: []uuid.UUID{a, b}},
	}

	uc := NewMatchingUsecase(jobs, skills, cache, nil)

	items, ranked, err := uc.RankJobs(context.Background(), applicantID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ranked {
		t.Fatalf("expected ranked=true")
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Job.ID != strong.ID || items[0].MatchScore != 2 {
		t.Fatalf("expected the two-skill job first with score 2")
	}
	if items[1].Job.ID != weak.ID || items[1].MatchScore != 1 {
		t.Fatalf("expected the one-skill job second with score 1")
	}
}

func TestMatcher_RankJobs_SkipsDeletedJobOnHydration(t *testing.T) {
	jobs := newMockJobRepo()
	skills := newMockSkillRepo()

	applicantID := uuid.New()
	skill := uuid.New()

	kept := seedJob(jobs, uuid.New())
	skills.profileSkills[applicantID] = []uuid.UUID{skill}
	jobs.candidates = []matching.Candidate{
		{JobID: kept.ID, RequiredSkills: []uuid.UUID{skill}},
		{JobID: uuid.New(), RequiredSkills: []uuid.UUID{skill}},
	}

	uc := NewMatchingUsecase(jobs, skills, newMockMatchCache(), nil)

	items, _, err := uc.RankJobs(context.Background(), applicantID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].Job.ID != kept.ID {
		t.Fatalf("expected only the surviving job, got %d items", len(items))
	}
}

func TestMatcher_RankJobs_ServesSecondCallFromCache(t *testing.T) {
	jobs := newMockJobRepo()
	skills := newMockSkillRepo()
	cache := newMockMatchCache()

	applicantID := uuid.New()
	skill := uuid.New()

	job := seedJob(jobs, uuid.New())
	skills.profileSkills[applicantID] = []uuid.UUID{skill}
	jobs.candidates = []matching.Candidate{
		{JobID: job.ID, RequiredSkills: []uuid.UUID{skill}},
	}

	uc := NewMatchingUsecase(jobs, skills, cache, nil)

	if _, _, err := uc.RankJobs(context.Background(), applicantID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, _, err := uc.RankJobs(context.Background(), applicantID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if jobs.candidateCalls != 1 {
		t.Fatalf("expected 1 candidate query, got %d", jobs.candidateCalls)
	}
}

func TestMatcher_RankJobs_TruncatesToShortlistLimit(t *testing.T) {
	jobs := newMockJobRepo()
	skills := newMockSkillRepo()

	applicantID := uuid.New()
	skill := uuid.New()
	skills.profileSkills[applicantID] = []uuid.UUID{skill}

	for i := 0; i < 15; i++ {
		j := seedJob(jobs, uuid.New())
		jobs.candidates = append(jobs.candidates, matching.Candidate{
			JobID:          j.ID,
			RequiredSkills: []uuid.UUID{skill},
		})
	}

	uc := NewMatchingUsecase(jobs, skills, newMockMatchCache(), nil)

	items, ranked, err := uc.RankJobs(context.Background(), applicantID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ranked {
		t.Fatalf("expected ranked=true")
	}
	if len(items) != matching.Limit {
		t.Fatalf("expected %d items, got %d", matching.Limit, len(items))
	}
}
