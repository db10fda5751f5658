package usecase_test

import (
	"context"
	"testing"

	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillUsecase_ListFilters(t *testing.T) {
	fx := newFixture(t)
	uc := usecase.NewSkillUsecase(fx.store, fx.asm)
	ctx := context.Background()

	all, err := uc.List(ctx, usecase.SkillFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "/api/skills/skill-go/people", all[0].Links["people"])
	assert.Nil(t, all[0].ProficiencyLevel)

	byCategory, err := uc.List(ctx, usecase.SkillFilter{Category: "DATABASE"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "skill-sql", byCategory[0].ID)

	// search wins over category
	both, err := uc.List(ctx, usecase.SkillFilter{Search: "ui", Category: "Database"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "skill-reactjs", both[0].ID)
}

func TestSkillUsecase_PeopleWithMinProficiency(t *testing.T) {
	fx := newFixture(t)
	uc := usecase.NewSkillUsecase(fx.store, fx.asm)
	ctx := context.Background()

	all, err := uc.People(ctx, "skill-go", nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	advanced, err := uc.People(ctx, "skill-go", level(skill.Advanced))
	require.NoError(t, err)
	require.Len(t, advanced, 2)
	for _, p := range advanced {
		assert.True(t, p.ProficiencyLevel.AtLeast(skill.Advanced))
	}
	assert.Equal(t, all[0], advanced[0])

	_, err = uc.People(ctx, "skill-go", level(0))
	assert.ErrorIs(t, err, usecase.ErrValidation)
	_, err = uc.People(ctx, "skill-missing", nil)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestSkillUsecase_CRUD(t *testing.T) {
	fx := newFixture(t)
	uc := usecase.NewSkillUsecase(fx.store, fx.asm)
	ctx := context.Background()

	_, err := uc.Create(ctx, usecase.SkillInput{Name: " "})
	assert.ErrorIs(t, err, usecase.ErrValidation)
	_, err = uc.Create(ctx, usecase.SkillInput{Name: "x", Category: longString(51)})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	created, err := uc.Create(ctx, usecase.SkillInput{Name: "  HATEOAS ", Category: "API Design"})
	require.NoError(t, err)
	assert.Equal(t, "HATEOAS", created.Name)
	assert.Empty(t, created.People)

	updated, err := uc.Update(ctx, "skill-go", usecase.SkillInput{Name: "Golang", Category: "Backend"})
	require.NoError(t, err)
	assert.Equal(t, "Golang", updated.Name)
	assert.Len(t, updated.People, 3)

	require.NoError(t, uc.Delete(ctx, "skill-go"))
	_, err = fx.store.PersonSkills().GetByID(ctx, "ps-1")
	assert.ErrorIs(t, err, skill.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, "skill-go"), usecase.ErrNotFound)
	_, err = uc.Update(ctx, "skill-go", usecase.SkillInput{Name: "Go"})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}
