package usecase

import (
	"context"
	"errors"

	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/readmodel"

	"github.com/google/uuid"
)

type AddPersonSkillInput struct {
	SkillID           string
	ProficiencyLevel  skill.ProficiencyLevel
	YearsOfExperience *int
}

type UpdatePersonSkillInput struct {
	ProficiencyLevel  skill.ProficiencyLevel
	YearsOfExperience *int
}

type PersonSkillUsecase interface {
	Add(ctx context.Context, personID string, in AddPersonSkillInput) (readmodel.PersonSkillView, error)
	Update(ctx context.Context, personID, skillID string, in UpdatePersonSkillInput) (readmodel.PersonSkillView, error)
	Remove(ctx context.Context, personID, skillID string) error
}

// PersonSkills manages the skills of one person, addressed by the
// (person, skill) pair. New person skills always start unverified.
type PersonSkills struct {
	store skill.Store
	asm   *readmodel.Assembler
	hooks
}

func NewPersonSkillUsecase(store skill.Store, asm *readmodel.Assembler, opts ...Option) *PersonSkills {
	return &PersonSkills{store: store, asm: asm, hooks: newHooks(opts)}
}

func (u *PersonSkills) Add(ctx context.Context, personID string, in AddPersonSkillInput) (readmodel.PersonSkillView, error) {
	skillID, err := requiredID("skillId", in.SkillID)
	if err != nil {
		return readmodel.PersonSkillView{}, err
	}
	if err := validProficiency("proficiencyLevel", in.ProficiencyLevel); err != nil {
		return readmodel.PersonSkillView{}, err
	}
	if err := validYears("yearsOfExperience", in.YearsOfExperience); err != nil {
		return readmodel.PersonSkillView{}, err
	}

	if _, err := u.store.People().GetByID(ctx, personID); err != nil {
		return readmodel.PersonSkillView{}, storeError(err, "person", personID)
	}
	sk, err := u.store.Skills().GetByID(ctx, skillID)
	if err != nil {
		return readmodel.PersonSkillView{}, storeError(err, "skill", skillID)
	}

	_, err = u.store.PersonSkills().GetByPair(ctx, personID, skillID)
	if err == nil {
		return readmodel.PersonSkillView{}, errSkillAlreadyAdded()
	}
	if !errors.Is(err, skill.ErrNotFound) {
		return readmodel.PersonSkillView{}, storeError(err, "person skill", "")
	}

	ps := skill.PersonSkill{
		ID:                uuid.NewString(),
		PersonID:          personID,
		SkillID:           skillID,
		ProficiencyLevel:  in.ProficiencyLevel,
		YearsOfExperience: in.YearsOfExperience,
	}
	if err := u.store.PersonSkills().Create(ctx, ps); err != nil {
		if errors.Is(err, skill.ErrDuplicate) {
			return readmodel.PersonSkillView{}, errSkillAlreadyAdded()
		}
		return readmodel.PersonSkillView{}, storeError(err, "person skill", ps.ID)
	}

	out := u.asm.PersonSkill(ps, sk, nil)
	u.changed(ctx, Event{Type: EventPersonSkillAdded, ResourceID: ps.ID, Data: out})
	return out, nil
}

// Update changes proficiency and years of experience. The verified flag and
// the (person, skill) identity are left as they are.
func (u *PersonSkills) Update(ctx context.Context, personID, skillID string, in UpdatePersonSkillInput) (readmodel.PersonSkillView, error) {
	if err := validProficiency("proficiencyLevel", in.ProficiencyLevel); err != nil {
		return readmodel.PersonSkillView{}, err
	}
	if err := validYears("yearsOfExperience", in.YearsOfExperience); err != nil {
		return readmodel.PersonSkillView{}, err
	}

	ps, err := u.store.PersonSkills().GetByPair(ctx, personID, skillID)
	if err != nil {
		return readmodel.PersonSkillView{}, storeError(err, "person skill", personID+"/"+skillID)
	}
	ps.ProficiencyLevel = in.ProficiencyLevel
	ps.YearsOfExperience = in.YearsOfExperience
	if err := u.store.PersonSkills().Update(ctx, ps); err != nil {
		return readmodel.PersonSkillView{}, storeError(err, "person skill", ps.ID)
	}

	out, err := u.view(ctx, ps)
	if err != nil {
		return readmodel.PersonSkillView{}, err
	}
	u.changed(ctx, Event{Type: EventPersonSkillUpdated, ResourceID: ps.ID, Data: out})
	return out, nil
}

// Remove deletes the person skill together with its verifications.
func (u *PersonSkills) Remove(ctx context.Context, personID, skillID string) error {
	ps, err := u.store.PersonSkills().GetByPair(ctx, personID, skillID)
	if err != nil {
		return storeError(err, "person skill", personID+"/"+skillID)
	}
	if err := u.store.PersonSkills().Delete(ctx, ps.ID); err != nil {
		return storeError(err, "person skill", ps.ID)
	}
	u.changed(ctx, Event{Type: EventPersonSkillRemoved, ResourceID: ps.ID})
	return nil
}

func (u *PersonSkills) view(ctx context.Context, ps skill.PersonSkill) (readmodel.PersonSkillView, error) {
	return personSkillView(ctx, u.store, u.asm, ps)
}

func personSkillView(ctx context.Context, store skill.Store, asm *readmodel.Assembler, ps skill.PersonSkill) (readmodel.PersonSkillView, error) {
	sk, err := store.Skills().GetByID(ctx, ps.SkillID)
	if err != nil {
		return readmodel.PersonSkillView{}, storeError(err, "skill", ps.SkillID)
	}
	vs, err := store.Verifications().ListByPersonSkill(ctx, ps.ID)
	if err != nil {
		return readmodel.PersonSkillView{}, storeError(err, "verifications", "")
	}
	return asm.PersonSkill(ps, sk, vs), nil
}

func errSkillAlreadyAdded() error {
	return invalid("skillId", "skill already added to this person")
}
