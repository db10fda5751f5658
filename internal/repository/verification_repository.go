package repository

import (
	"context"

	"skillmatrix/internal/database"
	"skillmatrix/internal/domain/skill"
)

const verificationColumns = `id, person_skill_id, verification_type, verified_by, note, certification_url, verification_date`

type PostgresVerificationRepository struct {
	q database.Querier
}

func NewPostgresVerificationRepository(q database.Querier) *PostgresVerificationRepository {
	return &PostgresVerificationRepository{q: q}
}

func scanVerification(row database.Row) (skill.Verification, error) {
	var v skill.Verification
	if err := row.Scan(&v.ID, &v.PersonSkillID, &v.VerificationType, &v.VerifiedBy, &v.Note, &v.CertificationURL, &v.VerificationDate); err != nil {
		return skill.Verification{}, err
	}
	v.VerificationDate = v.VerificationDate.UTC()
	return v, nil
}

func (r *PostgresVerificationRepository) GetByID(ctx context.Context, id string) (skill.Verification, error) {
	v, err := scanVerification(r.q.QueryRow(ctx,
		`SELECT `+verificationColumns+` FROM skill_verifications WHERE id = $1`, id))
	if err != nil {
		return skill.Verification{}, translate(err)
	}
	return v, nil
}

func (r *PostgresVerificationRepository) ListByPersonSkill(ctx context.Context, personSkillID string) ([]skill.Verification, error) {
	return r.query(ctx,
		`SELECT `+verificationColumns+` FROM skill_verifications WHERE person_skill_id = $1 ORDER BY seq ASC`,
		personSkillID)
}

func (r *PostgresVerificationRepository) ListByPersonSkills(ctx context.Context, personSkillIDs []string) (map[string][]skill.Verification, error) {
	out := make(map[string][]skill.Verification, len(personSkillIDs))
	if len(personSkillIDs) == 0 {
		return out, nil
	}
	items, err := r.query(ctx,
		`SELECT `+verificationColumns+` FROM skill_verifications WHERE person_skill_id = ANY($1) ORDER BY seq ASC`,
		personSkillIDs)
	if err != nil {
		return nil, err
	}
	for _, v := range items {
		out[v.PersonSkillID] = append(out[v.PersonSkillID], v)
	}
	return out, nil
}

func (r *PostgresVerificationRepository) ExistsForPersonSkill(ctx context.Context, personSkillID string) (bool, error) {
	var exists bool
	row := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM skill_verifications WHERE person_skill_id = $1)`, personSkillID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresVerificationRepository) Create(ctx context.Context, v skill.Verification) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO skill_verifications (id, person_skill_id, verification_type, verified_by, note, certification_url, verification_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.PersonSkillID, v.VerificationType, v.VerifiedBy, v.Note, v.CertificationURL, v.VerificationDate,
	)
	return translate(err)
}

func (r *PostgresVerificationRepository) Delete(ctx context.Context, id string) error {
	return affectedOrNotFound(r.q.Exec(ctx, `DELETE FROM skill_verifications WHERE id = $1`, id))
}

func (r *PostgresVerificationRepository) query(ctx context.Context, query string, args ...any) ([]skill.Verification, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Verification, 0)
	for rows.Next() {
		v, err := scanVerification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
