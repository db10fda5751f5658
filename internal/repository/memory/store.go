// Package memory provides an in-process skill.Store. It backs development
// mode and unit tests; data does not survive a restart.
package memory

import (
	"context"
	"sync"

	"skillmatrix/internal/domain/skill"
)

type state struct {
	people        []skill.Person
	skills        []skill.Skill
	personSkills  []skill.PersonSkill
	verifications []skill.Verification
}

func (s *state) clone() *state {
	return &state{
		people:        append([]skill.Person(nil), s.people...),
		skills:        append([]skill.Skill(nil), s.skills...),
		personSkills:  append([]skill.PersonSkill(nil), s.personSkills...),
		verifications: append([]skill.Verification(nil), s.verifications...),
	}
}

type Store struct {
	mu   *sync.RWMutex
	data **state
	// inTx is set on the view handed to WithinTx; the caller already holds mu.
	inTx bool
}

func NewStore() *Store {
	data := &state{}
	return &Store{mu: &sync.RWMutex{}, data: &data}
}

func (s *Store) People() skill.PersonRepository              { return &personRepo{s: s} }
func (s *Store) Skills() skill.SkillRepository               { return &skillRepo{s: s} }
func (s *Store) PersonSkills() skill.PersonSkillRepository   { return &personSkillRepo{s: s} }
func (s *Store) Verifications() skill.VerificationRepository { return &verificationRepo{s: s} }

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// WithinTx serialises fn against every other access and restores the
// previous state when fn fails.
func (s *Store) WithinTx(ctx context.Context, fn func(skill.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := (*s.data).clone()
	view := &Store{mu: s.mu, data: s.data, inTx: true}
	if err := fn(view); err != nil {
		*s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) read(fn func(*state)) {
	if !s.inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(*s.data)
}

func (s *Store) write(fn func(*state) error) error {
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(*s.data)
}

// cascadePersonSkills removes every person skill for which drop returns true,
// together with its verifications.
func (st *state) cascadePersonSkills(drop func(skill.PersonSkill) bool) {
	removed := make(map[string]struct{})
	kept := st.personSkills[:0:0]
	for _, ps := range st.personSkills {
		if drop(ps) {
			removed[ps.ID] = struct{}{}
			continue
		}
		kept = append(kept, ps)
	}
	st.personSkills = kept

	if len(removed) == 0 {
		return
	}
	vs := st.verifications[:0:0]
	for _, v := range st.verifications {
		if _, ok := removed[v.PersonSkillID]; ok {
			continue
		}
		vs = append(vs, v)
	}
	st.verifications = vs
}
