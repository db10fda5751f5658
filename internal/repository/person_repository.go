package repository

import (
	"context"

	"skillmatrix/internal/database"
	"skillmatrix/internal/domain/skill"
)

const personColumns = `id, first_name, last_name, job_title, department, email, photo_url`

type PostgresPersonRepository struct {
	q database.Querier
}

func NewPostgresPersonRepository(q database.Querier) *PostgresPersonRepository {
	return &PostgresPersonRepository{q: q}
}

func scanPerson(row database.Row) (skill.Person, error) {
	var p skill.Person
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.JobTitle, &p.Department, &p.Email, &p.PhotoURL); err != nil {
		return skill.Person{}, err
	}
	return p, nil
}

func (r *PostgresPersonRepository) List(ctx context.Context) ([]skill.Person, error) {
	rows, err := r.q.Query(ctx, `SELECT `+personColumns+` FROM people ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPersonRepository) GetByID(ctx context.Context, id string) (skill.Person, error) {
	p, err := scanPerson(r.q.QueryRow(ctx, `SELECT `+personColumns+` FROM people WHERE id = $1`, id))
	if err != nil {
		return skill.Person{}, translate(err)
	}
	return p, nil
}

func (r *PostgresPersonRepository) Create(ctx context.Context, p skill.Person) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO people (id, first_name, last_name, job_title, department, email, photo_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.FirstName, p.LastName, p.JobTitle, p.Department, p.Email, p.PhotoURL,
	)
	return translate(err)
}

func (r *PostgresPersonRepository) Update(ctx context.Context, p skill.Person) error {
	return affectedOrNotFound(r.q.Exec(ctx,
		`UPDATE people
		 SET first_name = $1, last_name = $2, job_title = $3, department = $4, email = $5, photo_url = $6
		 WHERE id = $7`,
		p.FirstName, p.LastName, p.JobTitle, p.Department, p.Email, p.PhotoURL, p.ID,
	))
}

func (r *PostgresPersonRepository) Delete(ctx context.Context, id string) error {
	return affectedOrNotFound(r.q.Exec(ctx, `DELETE FROM people WHERE id = $1`, id))
}
