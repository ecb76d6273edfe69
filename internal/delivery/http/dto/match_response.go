package dto

import "job-board/internal/usecase"

type MatchedJobResponse struct {
	Job        JobResponse `json:"job"`
	MatchScore int         `json:"match_score"`
}

type MatchShortlistResponse struct {
	Ranked bool                 `json:"ranked"`
	Items  []MatchedJobResponse `json:"items"`
}

func NewMatchShortlistResponse(items []usecase.RankedJob, ranked bool) MatchShortlistResponse {
	out := make([]MatchedJobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, MatchedJobResponse{
			Job:        NewJobResponse(it.Job),
			MatchScore: it.MatchScore,
		})
	}
	return MatchShortlistResponse{Ranked: ranked, Items: out}
}
