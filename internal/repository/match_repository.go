package repository

import (
	"context"
	"encoding/json"

	"resume-screener/internal/database"
	"resume-screener/internal/domain/match"

	"github.com/google/uuid"
)

type MatchRepository interface {
	UpsertBatch(ctx context.Context, results []match.Result) error
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

// UpsertBatch persists match results verbatim as value objects, one row
// per (cv, job) pair, replacing any previous result for the same pair.
func (r *PostgresMatchRepository) UpsertBatch(ctx context.Context, results []match.Result) error {
	for _, res := range results {
		if res.CVID == "" || res.JobID == "" {
			continue
		}

		payload, err := json.Marshal(res)
		if err != nil {
			return err
		}

		_, err = r.db.Exec(ctx,
			`INSERT INTO match_results (id, cv_id, job_id, overall_score, category, payload, matched_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)
			 ON CONFLICT (cv_id, job_id) DO UPDATE SET
				overall_score = EXCLUDED.overall_score,
				category = EXCLUDED.category,
				payload = EXCLUDED.payload,
				matched_at = EXCLUDED.matched_at`,
			uuid.New(),
			res.CVID,
			res.JobID,
			res.Score.OverallScore,
			string(res.Score.Category),
			payload,
			res.MatchedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
