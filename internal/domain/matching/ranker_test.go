package matching

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestRank_ScoresByOverlapCount(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	d := uuid.New()

	j1 := Candidate{JobID: uuid.New(), RequiredSkills: []uuid.UUID{a}}
	j2 := Candidate{JobID: uuid.New(), RequiredSkills: []uuid.UUID{a, b}}
	j3 := Candidate{JobID: uuid.New(), RequiredSkills: []uuid.UUID{d}}
	j4 := Candidate{JobID: uuid.New(), RequiredSkills: []uuid.UUID{a, b, c}}

	got := Rank([]uuid.UUID{a, b, c}, []Candidate{j1, j2, j3, j4}, Limit)

	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if got[0].JobID != j4.JobID || got[0].MatchScore != 3 {
		t.Fatalf("expected j4 with score 3 first, got %v score %d", got[0].JobID, got[0].MatchScore)
	}
	if got[1].JobID != j2.JobID || got[1].MatchScore != 2 {
		t.Fatalf("expected j2 with score 2 second")
	}
	if got[2].JobID != j1.JobID || got[2].MatchScore != 1 {
		t.Fatalf("expected j1 with score 1 third")
	}
}

func TestRank_TieBreaksByJobIDAscending(t *testing.T) {
	skill := uuid.New()

	cands := []Candidate{
		{JobID: uuid.New(), RequiredSkills: []uuid.UUID{skill}},
		{JobID: uuid.New(), RequiredSkills: []uuid.UUID{skill}},
		{JobID: uuid.New(), RequiredSkills: []uuid.UUID{skill}},
	}

	got := Rank([]uuid.UUID{skill}, cands, Limit)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if bytes.Compare(got[i-1].JobID[:], got[i].JobID[:]) >= 0 {
			t.Fatalf("tie not ordered by job id ascending at index %d", i)
		}
	}
}

func TestRank_TruncatesToLimit(t *testing.T) {
	skill := uuid.New()

	cands := make([]Candidate, 0, 15)
	for i := 0; i < 15; i++ {
		cands = append(cands, Candidate{JobID: uuid.New(), RequiredSkills: []uuid.UUID{skill}})
	}

	got := Rank([]uuid.UUID{skill}, cands, Limit)
	if len(got) != Limit {
		t.Fatalf("expected %d results, got %d", Limit, len(got))
	}
}

func TestRank_DropsZeroOverlap(t *testing.T) {
	got := Rank(
		[]uuid.UUID{uuid.New()},
		[]Candidate{{JobID: uuid.New(), RequiredSkills: []uuid.UUID{uuid.New()}}},
		Limit,
	)
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestRank_NoSkillsReturnsNil(t *testing.T) {
	if got := Rank(nil, []Candidate{{JobID: uuid.New()}}, Limit); got != nil {
		t.Fatalf("expected nil for empty skill set, got %v", got)
	}
}

func TestRank_DuplicateRequiredSkillsCountOnce(t *testing.T) {
	skill := uuid.New()
	got := Rank(
		[]uuid.UUID{skill},
		[]Candidate{{JobID: uuid.New(), RequiredSkills: []uuid.UUID{skill, skill, skill}}},
		Limit,
	)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].MatchScore != 1 {
		t.Fatalf("expected score 1, got %d", got[0].MatchScore)
	}
}
