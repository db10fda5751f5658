package skill

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// PersonRepository lists people in store iteration order (insertion order).
type PersonRepository interface {
	List(ctx context.Context) ([]Person, error)
	GetByID(ctx context.Context, id string) (Person, error)
	Create(ctx context.Context, p Person) error
	Update(ctx context.Context, p Person) error
	// Delete removes the person together with its person skills and their
	// verifications.
	Delete(ctx context.Context, id string) error
}

type SkillRepository interface {
	List(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id string) (Skill, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]Skill, error)
	Create(ctx context.Context, s Skill) error
	Update(ctx context.Context, s Skill) error
	Delete(ctx context.Context, id string) error
}

type PersonSkillRepository interface {
	GetByID(ctx context.Context, id string) (PersonSkill, error)
	// GetForUpdate reads like GetByID; inside WithinTx it also holds a row
	// lock on the person skill until the transaction ends.
	GetForUpdate(ctx context.Context, id string) (PersonSkill, error)
	GetByPair(ctx context.Context, personID, skillID string) (PersonSkill, error)
	ListByPerson(ctx context.Context, personID string) ([]PersonSkill, error)
	ListByPeople(ctx context.Context, personIDs []string) (map[string][]PersonSkill, error)
	ListBySkill(ctx context.Context, skillID string) ([]PersonSkill, error)
	// Create fails with ErrDuplicate when the (person, skill) pair exists.
	Create(ctx context.Context, ps PersonSkill) error
	// Update persists proficiency and years of experience only.
	Update(ctx context.Context, ps PersonSkill) error
	SetVerified(ctx context.Context, id string, verified bool) error
	Delete(ctx context.Context, id string) error
}

type VerificationRepository interface {
	GetByID(ctx context.Context, id string) (Verification, error)
	ListByPersonSkill(ctx context.Context, personSkillID string) ([]Verification, error)
	ListByPersonSkills(ctx context.Context, personSkillIDs []string) (map[string][]Verification, error)
	ExistsForPersonSkill(ctx context.Context, personSkillID string) (bool, error)
	Create(ctx context.Context, v Verification) error
	Delete(ctx context.Context, id string) error
}

// Store groups the repositories over one backing store. WithinTx runs fn
// against a Store bound to a single transaction; any error rolls it back.
type Store interface {
	People() PersonRepository
	Skills() SkillRepository
	PersonSkills() PersonSkillRepository
	Verifications() VerificationRepository

	WithinTx(ctx context.Context, fn func(Store) error) error
	Ping(ctx context.Context) error
}
