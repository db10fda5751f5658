package seeder

import (
	"context"
	"errors"
	"testing"

	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_SeedDemoData(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, Runner{Seeders: Defaults()}.Run(ctx, store))

	people, err := store.People().List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 5)
	assert.Equal(t, "John", people[0].FirstName)

	skills, err := store.Skills().List(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, 8)

	johns, err := store.PersonSkills().ListByPerson(ctx, "person-1")
	require.NoError(t, err)
	assert.Len(t, johns, 3)

	ps2, err := store.PersonSkills().GetByID(ctx, "ps-2")
	require.NoError(t, err)
	assert.True(t, ps2.IsVerified, "seeded flag is kept without a record")
	assert.Equal(t, skill.Advanced, ps2.ProficiencyLevel)

	vs, err := store.Verifications().ListByPersonSkill(ctx, "ps-4")
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "CertificationUpload", vs[0].VerificationType)
	assert.Nil(t, vs[0].VerifiedBy)
}

func TestRunner_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	r := Runner{Seeders: Defaults()}

	require.NoError(t, r.Run(ctx, store))
	require.NoError(t, r.Run(ctx, store))

	people, err := store.People().List(ctx)
	require.NoError(t, err)
	assert.Len(t, people, 5)
}

type failingSeeder struct{}

func (failingSeeder) Name() string { return "broken" }

func (failingSeeder) Run(context.Context, skill.Store) error { return errors.New("boom") }

func TestRunner_FailureRollsBack(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := Runner{Seeders: []Seeder{SkillsSeeder{}, failingSeeder{}}}.Run(ctx, store)
	require.ErrorContains(t, err, "seed broken")

	skills, err := store.Skills().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestRunner_NilStore(t *testing.T) {
	require.Error(t, Runner{}.Run(context.Background(), nil))
}
