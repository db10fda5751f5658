package usecase_test

import (
	"context"
	"testing"

	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personIDs(people []skill.Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.ID)
	}
	return out
}

func skillIDs(skills []skill.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.ID)
	}
	return out
}

func TestSearchPeople(t *testing.T) {
	fx := newFixture(t)
	q := usecase.NewQuery(fx.store)
	ctx := context.Background()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "personal field or owned skill name", term: "React", want: []string{"person-1", "person-2"}},
		{name: "case insensitive skill name", term: "reactjs", want: []string{"person-2"}},
		{name: "department", term: "engineering", want: []string{"person-2", "person-3"}},
		{name: "email", term: "ANN@", want: []string{"person-3"}},
		{name: "job title", term: "design", want: []string{"person-1"}},
		{name: "owned skill shared by all", term: "go", want: []string{"person-1", "person-2", "person-3"}},
		{name: "blank returns all", term: "   ", want: []string{"person-1", "person-2", "person-3"}},
		{name: "no match", term: "cobol", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.SearchPeople(ctx, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, personIDs(got))
		})
	}
}

func TestSearchSkills(t *testing.T) {
	fx := newFixture(t)
	q := usecase.NewQuery(fx.store)
	ctx := context.Background()

	got, err := q.SearchSkills(ctx, "LIBRARY")
	require.NoError(t, err)
	assert.Equal(t, []string{"skill-reactjs"}, skillIDs(got))

	got, err = q.SearchSkills(ctx, "end")
	require.NoError(t, err)
	assert.Equal(t, []string{"skill-go", "skill-reactjs"}, skillIDs(got))

	got, err = q.SearchSkills(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSkillsByCategory(t *testing.T) {
	fx := newFixture(t)
	q := usecase.NewQuery(fx.store)
	ctx := context.Background()

	got, err := q.SkillsByCategory(ctx, "frontend")
	require.NoError(t, err)
	assert.Equal(t, []string{"skill-reactjs"}, skillIDs(got))

	// exact match only
	got, err = q.SkillsByCategory(ctx, "front")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPeopleBySkill(t *testing.T) {
	fx := newFixture(t)
	q := usecase.NewQuery(fx.store)
	ctx := context.Background()

	all, err := q.PeopleBySkill(ctx, "skill-go", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"person-1", "person-2", "person-3"}, personIDs(all))

	advanced, err := q.PeopleBySkill(ctx, "skill-go", level(skill.Advanced))
	require.NoError(t, err)
	assert.Equal(t, []string{"person-1", "person-3"}, personIDs(advanced))

	prev := len(all)
	for l := skill.Novice; l <= skill.Expert; l++ {
		got, err := q.PeopleBySkill(ctx, "skill-go", level(l))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), prev)
		prev = len(got)
	}

	none, err := q.PeopleBySkill(ctx, "skill-sql", nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = q.PeopleBySkill(ctx, "skill-missing", nil)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}
