package repository

import (
	"context"

	"skillmatrix/internal/database"
	"skillmatrix/internal/domain/skill"
)

const personSkillColumns = `id, person_id, skill_id, proficiency_level, years_of_experience, is_verified`

type PostgresPersonSkillRepository struct {
	q database.Querier
}

func NewPostgresPersonSkillRepository(q database.Querier) *PostgresPersonSkillRepository {
	return &PostgresPersonSkillRepository{q: q}
}

func scanPersonSkill(row database.Row) (skill.PersonSkill, error) {
	var (
		ps    skill.PersonSkill
		level int16
	)
	if err := row.Scan(&ps.ID, &ps.PersonID, &ps.SkillID, &level, &ps.YearsOfExperience, &ps.IsVerified); err != nil {
		return skill.PersonSkill{}, err
	}
	ps.ProficiencyLevel = skill.ProficiencyLevel(level)
	return ps, nil
}

func (r *PostgresPersonSkillRepository) GetByID(ctx context.Context, id string) (skill.PersonSkill, error) {
	ps, err := scanPersonSkill(r.q.QueryRow(ctx,
		`SELECT `+personSkillColumns+` FROM person_skills WHERE id = $1`, id))
	if err != nil {
		return skill.PersonSkill{}, translate(err)
	}
	return ps, nil
}

func (r *PostgresPersonSkillRepository) GetForUpdate(ctx context.Context, id string) (skill.PersonSkill, error) {
	ps, err := scanPersonSkill(r.q.QueryRow(ctx,
		`SELECT `+personSkillColumns+` FROM person_skills WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return skill.PersonSkill{}, translate(err)
	}
	return ps, nil
}

func (r *PostgresPersonSkillRepository) GetByPair(ctx context.Context, personID, skillID string) (skill.PersonSkill, error) {
	ps, err := scanPersonSkill(r.q.QueryRow(ctx,
		`SELECT `+personSkillColumns+` FROM person_skills WHERE person_id = $1 AND skill_id = $2`,
		personID, skillID,
	))
	if err != nil {
		return skill.PersonSkill{}, translate(err)
	}
	return ps, nil
}

func (r *PostgresPersonSkillRepository) ListByPerson(ctx context.Context, personID string) ([]skill.PersonSkill, error) {
	return r.query(ctx,
		`SELECT `+personSkillColumns+` FROM person_skills WHERE person_id = $1 ORDER BY seq ASC`, personID)
}

func (r *PostgresPersonSkillRepository) ListByPeople(ctx context.Context, personIDs []string) (map[string][]skill.PersonSkill, error) {
	out := make(map[string][]skill.PersonSkill, len(personIDs))
	if len(personIDs) == 0 {
		return out, nil
	}
	items, err := r.query(ctx,
		`SELECT `+personSkillColumns+` FROM person_skills WHERE person_id = ANY($1) ORDER BY seq ASC`, personIDs)
	if err != nil {
		return nil, err
	}
	for _, ps := range items {
		out[ps.PersonID] = append(out[ps.PersonID], ps)
	}
	return out, nil
}

func (r *PostgresPersonSkillRepository) ListBySkill(ctx context.Context, skillID string) ([]skill.PersonSkill, error) {
	return r.query(ctx,
		`SELECT `+personSkillColumns+` FROM person_skills WHERE skill_id = $1 ORDER BY seq ASC`, skillID)
}

func (r *PostgresPersonSkillRepository) Create(ctx context.Context, ps skill.PersonSkill) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO person_skills (id, person_id, skill_id, proficiency_level, years_of_experience, is_verified)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ps.ID, ps.PersonID, ps.SkillID, int16(ps.ProficiencyLevel), ps.YearsOfExperience, ps.IsVerified,
	)
	return translate(err)
}

func (r *PostgresPersonSkillRepository) Update(ctx context.Context, ps skill.PersonSkill) error {
	return affectedOrNotFound(r.q.Exec(ctx,
		`UPDATE person_skills SET proficiency_level = $1, years_of_experience = $2 WHERE id = $3`,
		int16(ps.ProficiencyLevel), ps.YearsOfExperience, ps.ID,
	))
}

func (r *PostgresPersonSkillRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	return affectedOrNotFound(r.q.Exec(ctx,
		`UPDATE person_skills SET is_verified = $1 WHERE id = $2`, verified, id))
}

func (r *PostgresPersonSkillRepository) Delete(ctx context.Context, id string) error {
	return affectedOrNotFound(r.q.Exec(ctx, `DELETE FROM person_skills WHERE id = $1`, id))
}

func (r *PostgresPersonSkillRepository) query(ctx context.Context, query string, args ...any) ([]skill.PersonSkill, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.PersonSkill, 0)
	for rows.Next() {
		ps, err := scanPersonSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
