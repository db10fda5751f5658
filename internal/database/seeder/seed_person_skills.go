package seeder

import (
	"context"

	"skillmatrix/internal/domain/skill"
)

type demoPersonSkill struct {
	id, person, skill string
	level             skill.ProficiencyLevel
	years             int
	verified          bool
}

// The verified flags are seeded as listed, independent of the seeded
// verification records.
var demoPersonSkills = []demoPersonSkill{
	{"ps-1", "person-1", "skill-1", skill.Expert, 5, true},
	{"ps-2", "person-1", "skill-2", skill.Advanced, 3, true},
	{"ps-3", "person-1", "skill-5", skill.Intermediate, 2, false},
	{"ps-4", "person-2", "skill-3", skill.Expert, 6, true},
	{"ps-5", "person-2", "skill-6", skill.Advanced, 4, true},
	{"ps-6", "person-2", "skill-4", skill.Intermediate, 2, true},
	{"ps-7", "person-3", "skill-1", skill.Advanced, 4, true},
	{"ps-8", "person-3", "skill-3", skill.Intermediate, 2, false},
	{"ps-9", "person-3", "skill-4", skill.Beginner, 1, false},
	{"ps-10", "person-4", "skill-7", skill.Expert, 7, true},
	{"ps-11", "person-4", "skill-8", skill.Expert, 5, true},
	{"ps-12", "person-4", "skill-3", skill.Advanced, 4, true},
	{"ps-13", "person-5", "skill-4", skill.Expert, 8, true},
	{"ps-14", "person-5", "skill-6", skill.Intermediate, 3, false},
	{"ps-15", "person-5", "skill-3", skill.Beginner, 1, false},
}

func (d demoPersonSkill) entity() skill.PersonSkill {
	years := d.years
	return skill.PersonSkill{
		ID:                d.id,
		PersonID:          d.person,
		SkillID:           d.skill,
		ProficiencyLevel:  d.level,
		YearsOfExperience: &years,
		IsVerified:        d.verified,
	}
}

type PersonSkillsSeeder struct{}

func (PersonSkillsSeeder) Name() string { return "person_skills" }

func (PersonSkillsSeeder) Run(ctx context.Context, store skill.Store) error {
	repo := store.PersonSkills()
	for _, d := range demoPersonSkills {
		ps := d.entity()
		err := createMissing(ctx,
			func(ctx context.Context) error { _, err := repo.GetByID(ctx, ps.ID); return err },
			func(ctx context.Context) error { return repo.Create(ctx, ps) },
		)
		if err != nil {
			return err
		}
	}
	return nil
}
