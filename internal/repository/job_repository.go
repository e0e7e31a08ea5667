package repository

import (
	"context"
	"encoding/json"

	"resume-screener/internal/database"
	"resume-screener/internal/domain/job"
)

type JobRepository interface {
	Upsert(ctx context.Context, posting *job.Posting) error
	List(ctx context.Context, limit, offset int) ([]*job.Posting, error)
	FindByIDs(ctx context.Context, jobIDs []string) ([]*job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Upsert(ctx context.Context, posting *job.Posting) error {
	payload, err := json.Marshal(posting)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (job_id, title, company_name, location, source, payload, posted_at, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,now())
		 ON CONFLICT (job_id) DO UPDATE SET
			title = EXCLUDED.title,
			company_name = EXCLUDED.company_name,
			location = EXCLUDED.location,
			source = EXCLUDED.source,
			payload = EXCLUDED.payload,
			posted_at = EXCLUDED.posted_at`,
		posting.ID,
		posting.Title,
		posting.CompanyName,
		posting.Location,
		posting.Source,
		payload,
		posting.PostedAt,
	)
	return err
}

func (r *PostgresJobRepository) List(ctx context.Context, limit, offset int) ([]*job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT payload FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*job.Posting, 0, limit)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var p job.Posting
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// FindByIDs returns the postings that exist, preserving the order of the
// requested IDs. Missing IDs are skipped, not errors; the caller decides
// whether a partial batch is acceptable.
func (r *PostgresJobRepository) FindByIDs(ctx context.Context, jobIDs []string) ([]*job.Posting, error) {
	if len(jobIDs) == 0 {
		return []*job.Posting{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT payload FROM jobs WHERE job_id = ANY($1)`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*job.Posting, len(jobIDs))
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var p job.Posting
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]*job.Posting, 0, len(jobIDs))
	for _, id := range jobIDs {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
