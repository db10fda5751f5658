package usecase

import (
	"context"

	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/readmodel"
)

// personGraphs loads skills, catalog entries and, when withVerifications is
// set, verification records for every person in one batch per table.
func personGraphs(ctx context.Context, store skill.Store, people []skill.Person, withVerifications bool) ([]readmodel.PersonGraph, error) {
	ids := make([]string, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.ID)
	}
	owned, err := store.PersonSkills().ListByPeople(ctx, ids)
	if err != nil {
		return nil, storeError(err, "person skills", "")
	}

	var skillIDs, psIDs []string
	for _, list := range owned {
		for _, ps := range list {
			skillIDs = append(skillIDs, ps.SkillID)
			psIDs = append(psIDs, ps.ID)
		}
	}
	catalog, err := store.Skills().GetByIDs(ctx, skillIDs)
	if err != nil {
		return nil, storeError(err, "skills", "")
	}

	var verifications map[string][]skill.Verification
	if withVerifications && len(psIDs) > 0 {
		verifications, err = store.Verifications().ListByPersonSkills(ctx, psIDs)
		if err != nil {
			return nil, storeError(err, "verifications", "")
		}
	}

	out := make([]readmodel.PersonGraph, 0, len(people))
	for _, p := range people {
		out = append(out, readmodel.PersonGraph{
			Person:        p,
			Skills:        owned[p.ID],
			Catalog:       catalog,
			Verifications: verifications,
		})
	}
	return out, nil
}

func personGraph(ctx context.Context, store skill.Store, id string) (readmodel.PersonGraph, error) {
	p, err := store.People().GetByID(ctx, id)
	if err != nil {
		return readmodel.PersonGraph{}, storeError(err, "person", id)
	}
	graphs, err := personGraphs(ctx, store, []skill.Person{p}, true)
	if err != nil {
		return readmodel.PersonGraph{}, err
	}
	return graphs[0], nil
}

func skillGraph(ctx context.Context, store skill.Store, id string) (readmodel.SkillGraph, error) {
	s, err := store.Skills().GetByID(ctx, id)
	if err != nil {
		return readmodel.SkillGraph{}, storeError(err, "skill", id)
	}
	holders, err := store.PersonSkills().ListBySkill(ctx, id)
	if err != nil {
		return readmodel.SkillGraph{}, storeError(err, "person skills", "")
	}

	people := make(map[string]skill.Person, len(holders))
	for _, ps := range holders {
		if _, ok := people[ps.PersonID]; ok {
			continue
		}
		p, err := store.People().GetByID(ctx, ps.PersonID)
		if err != nil {
			return readmodel.SkillGraph{}, storeError(err, "person", ps.PersonID)
		}
		people[p.ID] = p
	}
	return readmodel.SkillGraph{Skill: s, Holders: holders, People: people}, nil
}
