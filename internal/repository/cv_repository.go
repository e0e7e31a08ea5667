package repository

import (
	"context"
	"encoding/json"
	"time"

	"resume-screener/internal/database"
	"resume-screener/internal/domain/cv"
)

type CVRepository interface {
	Upsert(ctx context.Context, profile *cv.Profile) error
	FindByID(ctx context.Context, cvID string) (*cv.Profile, error)
}

type PostgresCVRepository struct {
	db database.DB
}

func NewPostgresCVRepository(db database.DB) *PostgresCVRepository {
	return &PostgresCVRepository{db: db}
}

func (r *PostgresCVRepository) Upsert(ctx context.Context, profile *cv.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO cvs (cv_id, name, total_experience_years, highest_education, payload, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,now(),now())
		 ON CONFLICT (cv_id) DO UPDATE SET
			name = EXCLUDED.name,
			total_experience_years = EXCLUDED.total_experience_years,
			highest_education = EXCLUDED.highest_education,
			payload = EXCLUDED.payload,
			updated_at = now()`,
		profile.ID,
		profile.Name,
		profile.TotalExperienceYears,
		string(profile.HighestEducation),
		payload,
	)
	return err
}

// FindByID returns (nil, nil) when no profile exists; callers map that
// to their own not-found error.
func (r *PostgresCVRepository) FindByID(ctx context.Context, cvID string) (*cv.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT payload FROM cvs WHERE cv_id = $1`,
		cvID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return nil, err
	}

	var profile cv.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, err
	}
	if profile.ExtractedAt.IsZero() {
		profile.ExtractedAt = time.Now().UTC()
	}
	return &profile, nil
}
