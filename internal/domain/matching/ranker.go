package matching

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// Limit is the shortlist size returned to applicants.
const Limit = 10

// Candidate is a job eligible for ranking: it shares at least one skill
// with the applicant and the applicant has not applied to it. The
// repository guarantees both properties; Rank only scores and orders.
type Candidate struct {
	JobID          uuid.UUID
	RequiredSkills []uuid.UUID
}

type Scored struct {
	JobID      uuid.UUID
	MatchScore int
}

// Rank scores candidates by the count of skills shared with the applicant
// and returns up to limit results ordered by score descending. Ties order
// by job id ascending so output is deterministic. Candidates with no
// overlap are dropped.
func Rank(applicantSkills []uuid.UUID, candidates []Candidate, limit int) []Scored {
	if limit <= 0 {
		limit = Limit
	}

	skillSet := make(map[uuid.UUID]struct{}, len(applicantSkills))
	for _, id := range applicantSkills {
		if id == uuid.Nil {
			continue
		}
		skillSet[id] = struct{}{}
	}
	if len(skillSet) == 0 {
		return nil
	}

	scored := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		seen := make(map[uuid.UUID]struct{}, len(c.RequiredSkills))
		score := 0
		for _, id := range c.RequiredSkills {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if _, ok := skillSet[id]; ok {
				score++
			}
		}
		if score == 0 {
			continue
		}
		scored = append(scored, Scored{JobID: c.JobID, MatchScore: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		return bytes.Compare(scored[i].JobID[:], scored[j].JobID[:]) < 0
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
