package memory

import (
	"context"
	"fmt"

	"skillmatrix/internal/domain/skill"
)

type personRepo struct{ s *Store }

func (r *personRepo) List(ctx context.Context) ([]skill.Person, error) {
	var out []skill.Person
	r.s.read(func(st *state) {
		out = append(make([]skill.Person, 0, len(st.people)), st.people...)
	})
	return out, ctx.Err()
}

func (r *personRepo) GetByID(ctx context.Context, id string) (skill.Person, error) {
	var (
		out   skill.Person
		found bool
	)
	r.s.read(func(st *state) {
		for _, p := range st.people {
			if p.ID == id {
				out, found = p, true
				return
			}
		}
	})
	if !found {
		return skill.Person{}, skill.ErrNotFound
	}
	return out, ctx.Err()
}

func (r *personRepo) Create(ctx context.Context, p skill.Person) error {
	return r.s.write(func(st *state) error {
		for _, existing := range st.people {
			if existing.ID == p.ID {
				return fmt.Errorf("%w: person %s", skill.ErrDuplicate, p.ID)
			}
		}
		st.people = append(st.people, p)
		return nil
	})
}

func (r *personRepo) Update(ctx context.Context, p skill.Person) error {
	return r.s.write(func(st *state) error {
		for i := range st.people {
			if st.people[i].ID == p.ID {
				st.people[i] = p
				return nil
			}
		}
		return skill.ErrNotFound
	})
}

func (r *personRepo) Delete(ctx context.Context, id string) error {
	return r.s.write(func(st *state) error {
		idx := -1
		for i, p := range st.people {
			if p.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return skill.ErrNotFound
		}
		st.people = append(st.people[:idx:idx], st.people[idx+1:]...)
		st.cascadePersonSkills(func(ps skill.PersonSkill) bool { return ps.PersonID == id })
		return nil
	})
}

type skillRepo struct{ s *Store }

func (r *skillRepo) List(ctx context.Context) ([]skill.Skill, error) {
	var out []skill.Skill
	r.s.read(func(st *state) {
		out = append(make([]skill.Skill, 0, len(st.skills)), st.skills...)
	})
	return out, ctx.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (skill.Skill, error) {
	var (
		out   skill.Skill
		found bool
	)
	r.s.read(func(st *state) {
		for _, s := range st.skills {
			if s.ID == id {
				out, found = s, true
				return
			}
		}
	})
	if !found {
		return skill.Skill{}, skill.ErrNotFound
	}
	return out, ctx.Err()
}

func (r *skillRepo) GetByIDs(ctx context.Context, ids []string) (map[string]skill.Skill, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make(map[string]skill.Skill, len(ids))
	r.s.read(func(st *state) {
		for _, s := range st.skills {
			if _, ok := want[s.ID]; ok {
				out[s.ID] = s
			}
		}
	})
	return out, ctx.Err()
}

func (r *skillRepo) Create(ctx context.Context, s skill.Skill) error {
	return r.s.write(func(st *state) error {
		for _, existing := range st.skills {
			if existing.ID == s.ID {
				return fmt.Errorf("%w: skill %s", skill.ErrDuplicate, s.ID)
			}
		}
		st.skills = append(st.skills, s)
		return nil
	})
}

func (r *skillRepo) Update(ctx context.Context, s skill.Skill) error {
	return r.s.write(func(st *state) error {
		for i := range st.skills {
			if st.skills[i].ID == s.ID {
				st.skills[i] = s
				return nil
			}
		}
		return skill.ErrNotFound
	})
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	return r.s.write(func(st *state) error {
		idx := -1
		for i, s := range st.skills {
			if s.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return skill.ErrNotFound
		}
		st.skills = append(st.skills[:idx:idx], st.skills[idx+1:]...)
		st.cascadePersonSkills(func(ps skill.PersonSkill) bool { return ps.SkillID == id })
		return nil
	})
}

type personSkillRepo struct{ s *Store }

func (r *personSkillRepo) find(match func(skill.PersonSkill) bool) (skill.PersonSkill, error) {
	var (
		out   skill.PersonSkill
		found bool
	)
	r.s.read(func(st *state) {
		for _, ps := range st.personSkills {
			if match(ps) {
				out, found = ps, true
				return
			}
		}
	})
	if !found {
		return skill.PersonSkill{}, skill.ErrNotFound
	}
	return out, nil
}

func (r *personSkillRepo) filter(match func(skill.PersonSkill) bool) []skill.PersonSkill {
	out := make([]skill.PersonSkill, 0)
	r.s.read(func(st *state) {
		for _, ps := range st.personSkills {
			if match(ps) {
				out = append(out, ps)
			}
		}
	})
	return out
}

func (r *personSkillRepo) GetByID(ctx context.Context, id string) (skill.PersonSkill, error) {
	return r.find(func(ps skill.PersonSkill) bool { return ps.ID == id })
}

// GetForUpdate needs no row lock: WithinTx already holds the store lock.
func (r *personSkillRepo) GetForUpdate(ctx context.Context, id string) (skill.PersonSkill, error) {
	return r.GetByID(ctx, id)
}

func (r *personSkillRepo) GetByPair(ctx context.Context, personID, skillID string) (skill.PersonSkill, error) {
	return r.find(func(ps skill.PersonSkill) bool { return ps.PersonID == personID && ps.SkillID == skillID })
}

func (r *personSkillRepo) ListByPerson(ctx context.Context, personID string) ([]skill.PersonSkill, error) {
	return r.filter(func(ps skill.PersonSkill) bool { return ps.PersonID == personID }), ctx.Err()
}

func (r *personSkillRepo) ListByPeople(ctx context.Context, personIDs []string) (map[string][]skill.PersonSkill, error) {
	want := make(map[string]struct{}, len(personIDs))
	for _, id := range personIDs {
		want[id] = struct{}{}
	}
	out := make(map[string][]skill.PersonSkill, len(personIDs))
	for _, ps := range r.filter(func(ps skill.PersonSkill) bool { _, ok := want[ps.PersonID]; return ok }) {
		out[ps.PersonID] = append(out[ps.PersonID], ps)
	}
	return out, ctx.Err()
}

func (r *personSkillRepo) ListBySkill(ctx context.Context, skillID string) ([]skill.PersonSkill, error) {
	return r.filter(func(ps skill.PersonSkill) bool { return ps.SkillID == skillID }), ctx.Err()
}

func (r *personSkillRepo) Create(ctx context.Context, ps skill.PersonSkill) error {
	return r.s.write(func(st *state) error {
		if !containsPerson(st, ps.PersonID) {
			return fmt.Errorf("%w: person %s", skill.ErrNotFound, ps.PersonID)
		}
		if !containsSkill(st, ps.SkillID) {
			return fmt.Errorf("%w: skill %s", skill.ErrNotFound, ps.SkillID)
		}
		for _, existing := range st.personSkills {
			if existing.ID == ps.ID || (existing.PersonID == ps.PersonID && existing.SkillID == ps.SkillID) {
				return fmt.Errorf("%w: person skill %s/%s", skill.ErrDuplicate, ps.PersonID, ps.SkillID)
			}
		}
		st.personSkills = append(st.personSkills, ps)
		return nil
	})
}

func (r *personSkillRepo) Update(ctx context.Context, ps skill.PersonSkill) error {
	return r.s.write(func(st *state) error {
		for i := range st.personSkills {
			if st.personSkills[i].ID == ps.ID {
				st.personSkills[i].ProficiencyLevel = ps.ProficiencyLevel
				st.personSkills[i].YearsOfExperience = ps.YearsOfExperience
				return nil
			}
		}
		return skill.ErrNotFound
	})
}

func (r *personSkillRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.s.write(func(st *state) error {
		for i := range st.personSkills {
			if st.personSkills[i].ID == id {
				st.personSkills[i].IsVerified = verified
				return nil
			}
		}
		return skill.ErrNotFound
	})
}

func (r *personSkillRepo) Delete(ctx context.Context, id string) error {
	return r.s.write(func(st *state) error {
		found := false
		for _, ps := range st.personSkills {
			if ps.ID == id {
				found = true
				break
			}
		}
		if !found {
			return skill.ErrNotFound
		}
		st.cascadePersonSkills(func(ps skill.PersonSkill) bool { return ps.ID == id })
		return nil
	})
}

type verificationRepo struct{ s *Store }

func (r *verificationRepo) GetByID(ctx context.Context, id string) (skill.Verification, error) {
	var (
		out   skill.Verification
		found bool
	)
	r.s.read(func(st *state) {
		for _, v := range st.verifications {
			if v.ID == id {
				out, found = v, true
				return
			}
		}
	})
	if !found {
		return skill.Verification{}, skill.ErrNotFound
	}
	return out, ctx.Err()
}

func (r *verificationRepo) ListByPersonSkill(ctx context.Context, personSkillID string) ([]skill.Verification, error) {
	out := make([]skill.Verification, 0)
	r.s.read(func(st *state) {
		for _, v := range st.verifications {
			if v.PersonSkillID == personSkillID {
				out = append(out, v)
			}
		}
	})
	return out, ctx.Err()
}

func (r *verificationRepo) ListByPersonSkills(ctx context.Context, personSkillIDs []string) (map[string][]skill.Verification, error) {
	want := make(map[string]struct{}, len(personSkillIDs))
	for _, id := range personSkillIDs {
		want[id] = struct{}{}
	}
	out := make(map[string][]skill.Verification, len(personSkillIDs))
	r.s.read(func(st *state) {
		for _, v := range st.verifications {
			if _, ok := want[v.PersonSkillID]; ok {
				out[v.PersonSkillID] = append(out[v.PersonSkillID], v)
			}
		}
	})
	return out, ctx.Err()
}

func (r *verificationRepo) ExistsForPersonSkill(ctx context.Context, personSkillID string) (bool, error) {
	exists := false
	r.s.read(func(st *state) {
		for _, v := range st.verifications {
			if v.PersonSkillID == personSkillID {
				exists = true
				return
			}
		}
	})
	return exists, ctx.Err()
}

func (r *verificationRepo) Create(ctx context.Context, v skill.Verification) error {
	return r.s.write(func(st *state) error {
		found := false
		for _, ps := range st.personSkills {
			if ps.ID == v.PersonSkillID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: person skill %s", skill.ErrNotFound, v.PersonSkillID)
		}
		for _, existing := range st.verifications {
			if existing.ID == v.ID {
				return fmt.Errorf("%w: verification %s", skill.ErrDuplicate, v.ID)
			}
		}
		st.verifications = append(st.verifications, v)
		return nil
	})
}

func (r *verificationRepo) Delete(ctx context.Context, id string) error {
	return r.s.write(func(st *state) error {
		for i, v := range st.verifications {
			if v.ID == id {
				st.verifications = append(st.verifications[:i:i], st.verifications[i+1:]...)
				return nil
			}
		}
		return skill.ErrNotFound
	})
}

func containsPerson(st *state, id string) bool {
	for _, p := range st.people {
		if p.ID == id {
			return true
		}
	}
	return false
}

func containsSkill(st *state, id string) bool {
	for _, s := range st.skills {
		if s.ID == id {
			return true
		}
	}
	return false
}
