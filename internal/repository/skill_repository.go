package repository

import (
	"context"

	"skillmatrix/internal/database"
	"skillmatrix/internal/domain/skill"
)

const skillColumns = `id, name, description, category`

type PostgresSkillRepository struct {
	q database.Querier
}

func NewPostgresSkillRepository(q database.Querier) *PostgresSkillRepository {
	return &PostgresSkillRepository{q: q}
}

func scanSkill(row database.Row) (skill.Skill, error) {
	var s skill.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category); err != nil {
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	return r.query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY seq ASC`)
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id string) (skill.Skill, error) {
	s, err := scanSkill(r.q.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		return skill.Skill{}, translate(err)
	}
	return s, nil
}

func (r *PostgresSkillRepository) GetByIDs(ctx context.Context, ids []string) (map[string]skill.Skill, error) {
	out := make(map[string]skill.Skill, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	items, err := r.query(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range items {
		out[s.ID] = s
	}
	return out, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO skills (id, name, description, category) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.Description, s.Category,
	)
	return translate(err)
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s skill.Skill) error {
	return affectedOrNotFound(r.q.Exec(ctx,
		`UPDATE skills SET name = $1, description = $2, category = $3 WHERE id = $4`,
		s.Name, s.Description, s.Category, s.ID,
	))
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id string) error {
	return affectedOrNotFound(r.q.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id))
}

func (r *PostgresSkillRepository) query(ctx context.Context, query string, args ...any) ([]skill.Skill, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
