package repository

import (
	"context"

	"career-match/internal/database"
	"career-match/internal/domain/matching"
)

type CourseRepository interface {
	List(ctx context.Context) ([]matching.Resource, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) List(ctx context.Context) ([]matching.Resource, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, provider, duration_label, level_label, skills, rating::float8, url
		 FROM courses
		 ORDER BY position ASC, title ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Resource, 0)
	for rows.Next() {
		var c matching.Resource
		if err := rows.Scan(&c.ID, &c.Title, &c.Provider, &c.DurationLabel, &c.LevelLabel, &c.AddressedSkills, &c.Rating, &c.URL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
