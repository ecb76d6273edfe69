package usecase

import (
	"context"
	"log"
	"time"

	"job-board/internal/domain/matching"
	"job-board/internal/repository"

	"github.com/google/uuid"
)

const shortlistCacheTTL = 5 * time.Minute

type RankedJob struct {
	Job        repository.Job `json:"job"`
	MatchScore int            `json:"match_score"`
}

type MatchingUsecase interface {
	// RankJobs returns the applicant's shortlist. The bool reports whether
	// the result is ranked; it is false when the applicant has no declared
	// skills and the full unranked job list is returned instead.
	RankJobs(ctx context.Context, applicantID uuid.UUID) ([]RankedJob, bool, error)
}

type Matcher struct {
	jobs   repository.JobRepository
	skills repository.SkillRepository

	cache  MatchCache
	logger *log.Logger
}

func NewMatchingUsecase(jobs repository.JobRepository, skills repository.SkillRepository, cache MatchCache, logger *log.Logger) *Matcher {
	return &Matcher{jobs: jobs, skills: skills, cache: cache, logger: logger}
}

type shortlistCacheEntry struct {
	Ranked bool        `json:"ranked"`
	Items  []RankedJob `json:"items"`
}

func (u *Matcher) RankJobs(ctx context.Context, applicantID uuid.UUID) ([]RankedJob, bool, error) {
	if applicantID == uuid.Nil {
		return nil, false, ErrInvalidInput
	}

	key := MatchShortlistCacheKey(applicantID)
	if u.cache != nil {
		var cached shortlistCacheEntry
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached.Items, cached.Ranked, nil
		}
	}

	skillIDs, err := u.skills.FindProfileSkillIDs(ctx, applicantID)
	if err != nil {
		return nil, false, ErrInternal
	}

	items, ranked, err := u.rank(ctx, applicantID, skillIDs)
	if err != nil {
		return nil, false, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, shortlistCacheEntry{Ranked: ranked, Items: items}, shortlistCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("Matching | cache set failed key=%s err=%v", key, err)
		}
	}
	return items, ranked, nil
}

func (u *Matcher) rank(ctx context.Context, applicantID uuid.UUID, skillIDs []uuid.UUID) ([]RankedJob, bool, error) {
	// Degraded mode: an applicant with no declared skills sees every job,
	// unranked. This mirrors a plain job listing and is not an error.
	if len(skillIDs) == 0 {
		jobs, err := u.jobs.ListAll(ctx)
		if err != nil {
			return nil, false, ErrInternal
		}
		items := make([]RankedJob, 0, len(jobs))
		for _, j := range jobs {
			items = append(items, RankedJob{Job: j})
		}
		return items, false, nil
	}

	candidates, err := u.jobs.FindCandidateJobs(ctx, applicantID)
	if err != nil {
		return nil, false, ErrInternal
	}

	scored := matching.Rank(skillIDs, candidates, matching.Limit)

	ids := make([]uuid.UUID, 0, len(scored))
	for _, s := range scored {
		ids = append(ids, s.JobID)
	}
	byID, err := u.jobs.FindByIDs(ctx, ids)
	if err != nil {
		return nil, false, ErrInternal
	}

	items := make([]RankedJob, 0, len(scored))
	for _, s := range scored {
		j, ok := byID[s.JobID]
		if !ok {
			// Job deleted between the candidate query and hydration.
			continue
		}
		items = append(items, RankedJob{Job: j, MatchScore: s.MatchScore})
	}
	return items, true, nil
}
