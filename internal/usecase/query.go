package usecase

import (
	"context"
	"strings"

	"skillmatrix/internal/domain/skill"
)

// Query resolves list and search requests against the store. Results keep
// store iteration order; matching is case-insensitive substring containment.
type Query struct {
	store skill.Store
}

func NewQuery(store skill.Store) *Query {
	return &Query{store: store}
}

// SearchPeople matches term against the personal fields and against the
// names of every skill the person holds. A blank term returns everyone.
func (q *Query) SearchPeople(ctx context.Context, term string) ([]skill.Person, error) {
	people, err := q.store.People().List(ctx)
	if err != nil {
		return nil, storeError(err, "people", "")
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return people, nil
	}

	out := make([]skill.Person, 0, len(people))
	var rest []skill.Person
	for _, p := range people {
		if personFieldsContain(p, needle) {
			out = append(out, p)
			continue
		}
		rest = append(rest, p)
	}
	if len(rest) == 0 {
		return out, nil
	}

	bySkill, err := q.peopleWithSkillNameContaining(ctx, rest, needle)
	if err != nil {
		return nil, err
	}

	// rebuild in store order
	matched := make(map[string]bool, len(out)+len(bySkill))
	for _, p := range out {
		matched[p.ID] = true
	}
	for id := range bySkill {
		matched[id] = true
	}
	out = out[:0]
	for _, p := range people {
		if matched[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (q *Query) peopleWithSkillNameContaining(ctx context.Context, people []skill.Person, needle string) (map[string]bool, error) {
	ids := make([]string, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.ID)
	}
	owned, err := q.store.PersonSkills().ListByPeople(ctx, ids)
	if err != nil {
		return nil, storeError(err, "person skills", "")
	}

	skillIDs := make([]string, 0)
	for _, list := range owned {
		for _, ps := range list {
			skillIDs = append(skillIDs, ps.SkillID)
		}
	}
	catalog, err := q.store.Skills().GetByIDs(ctx, skillIDs)
	if err != nil {
		return nil, storeError(err, "skills", "")
	}

	out := make(map[string]bool)
	for personID, list := range owned {
		for _, ps := range list {
			if sk, ok := catalog[ps.SkillID]; ok && contains(sk.Name, needle) {
				out[personID] = true
				break
			}
		}
	}
	return out, nil
}

func (q *Query) SearchSkills(ctx context.Context, term string) ([]skill.Skill, error) {
	skills, err := q.store.Skills().List(ctx)
	if err != nil {
		return nil, storeError(err, "skills", "")
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return skills, nil
	}

	out := make([]skill.Skill, 0, len(skills))
	for _, s := range skills {
		if contains(s.Name, needle) || contains(s.Description, needle) || contains(s.Category, needle) {
			out = append(out, s)
		}
	}
	return out, nil
}

// SkillsByCategory is an exact, case-insensitive category match.
func (q *Query) SkillsByCategory(ctx context.Context, category string) ([]skill.Skill, error) {
	skills, err := q.store.Skills().List(ctx)
	if err != nil {
		return nil, storeError(err, "skills", "")
	}
	category = strings.TrimSpace(category)

	out := make([]skill.Skill, 0)
	for _, s := range skills {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out, nil
}

// PeopleBySkill returns the holders of skillID, in person skill order,
// optionally restricted to a proficiency floor.
func (q *Query) PeopleBySkill(ctx context.Context, skillID string, min *skill.ProficiencyLevel) ([]skill.Person, error) {
	if _, err := q.store.Skills().GetByID(ctx, skillID); err != nil {
		return nil, storeError(err, "skill", skillID)
	}
	holders, err := q.store.PersonSkills().ListBySkill(ctx, skillID)
	if err != nil {
		return nil, storeError(err, "person skills", "")
	}

	out := make([]skill.Person, 0, len(holders))
	for _, ps := range holders {
		if min != nil && !ps.ProficiencyLevel.AtLeast(*min) {
			continue
		}
		p, err := q.store.People().GetByID(ctx, ps.PersonID)
		if err != nil {
			return nil, storeError(err, "person", ps.PersonID)
		}
		out = append(out, p)
	}
	return out, nil
}

func personFieldsContain(p skill.Person, needle string) bool {
	return contains(p.FirstName, needle) ||
		contains(p.LastName, needle) ||
		contains(p.Email, needle) ||
		contains(p.Department, needle) ||
		contains(p.JobTitle, needle)
}

// contains expects needle already lower-cased.
func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
