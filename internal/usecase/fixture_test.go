package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/readmodel"
	"skillmatrix/internal/repository/memory"
	"skillmatrix/internal/usecase"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int                                      { return &v }
func strPtr(v string) *string                                { return &v }
func level(l skill.ProficiencyLevel) *skill.ProficiencyLevel { return &l }

type fixture struct {
	store *memory.Store
	asm   *readmodel.Assembler
}

// newFixture seeds a small team:
//
//	person-1 Rita React  : skill-go (Expert)
//	person-2 Sam Stone   : skill-reactjs (Intermediate), skill-go (Novice)
//	person-3 Ann Archer  : skill-go (Advanced)
func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	st := memory.NewStore()

	people := []skill.Person{
		{ID: "person-1", FirstName: "Rita", LastName: "React", JobTitle: "Designer", Department: "Product", Email: "rita@example.com"},
		{ID: "person-2", FirstName: "Sam", LastName: "Stone", JobTitle: "Developer", Department: "Engineering", Email: "sam@example.com"},
		{ID: "person-3", FirstName: "Ann", LastName: "Archer", JobTitle: "Developer", Department: "Engineering", Email: "ann@example.com"},
	}
	for _, p := range people {
		require.NoError(t, st.People().Create(ctx, p))
	}

	skills := []skill.Skill{
		{ID: "skill-go", Name: "Go", Description: "Systems programming", Category: "Backend"},
		{ID: "skill-reactjs", Name: "ReactJS", Description: "UI library", Category: "Frontend"},
		{ID: "skill-sql", Name: "SQL", Description: "Relational queries", Category: "Database"},
	}
	for _, s := range skills {
		require.NoError(t, st.Skills().Create(ctx, s))
	}

	links := []skill.PersonSkill{
		{ID: "ps-1", PersonID: "person-1", SkillID: "skill-go", ProficiencyLevel: skill.Expert},
		{ID: "ps-2", PersonID: "person-2", SkillID: "skill-reactjs", ProficiencyLevel: skill.Intermediate, YearsOfExperience: intPtr(3)},
		{ID: "ps-3", PersonID: "person-2", SkillID: "skill-go", ProficiencyLevel: skill.Novice},
		{ID: "ps-4", PersonID: "person-3", SkillID: "skill-go", ProficiencyLevel: skill.Advanced},
	}
	for _, ps := range links {
		require.NoError(t, st.PersonSkills().Create(ctx, ps))
	}

	return fixture{store: st, asm: readmodel.NewAssembler("/api")}
}

func (f fixture) personSkill(t *testing.T, id string) skill.PersonSkill {
	t.Helper()
	ps, err := f.store.PersonSkills().GetByID(context.Background(), id)
	require.NoError(t, err)
	return ps
}

// assertConsistent checks that every person skill's flag matches the
// existence of verification records.
func (f fixture) assertConsistent(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	people, err := f.store.People().List(ctx)
	require.NoError(t, err)
	for _, p := range people {
		list, err := f.store.PersonSkills().ListByPerson(ctx, p.ID)
		require.NoError(t, err)
		for _, ps := range list {
			exists, err := f.store.Verifications().ExistsForPersonSkill(ctx, ps.ID)
			require.NoError(t, err)
			require.Equal(t, exists, ps.IsVerified, fmt.Sprintf("person skill %s", ps.ID))
		}
	}
}

func (f fixture) verifications(opts ...usecase.Option) *usecase.Verifications {
	return usecase.NewVerificationUsecase(f.store, f.asm, opts...)
}
