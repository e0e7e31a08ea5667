package dto

type MatchRequest struct {
	CVID  string `json:"cv_id" validate:"required"`
	JobID string `json:"job_id" validate:"required"`
}

type RankRequest struct {
	CVID   string   `json:"cv_id" validate:"required"`
	JobIDs []string `json:"job_ids"`
	TopN   int      `json:"top_n" validate:"gte=0"`
}
