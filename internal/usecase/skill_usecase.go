package usecase

import (
	"context"
	"strings"

	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/readmodel"

	"github.com/google/uuid"
)

const (
	maxSkillNameLen   = 100
	maxDescriptionLen = 500
	maxCategoryLen    = 50
)

type SkillInput struct {
	Name        string
	Description string
	Category    string
}

// SkillFilter selects at most one filter: Search wins over Category when both
// are set.
type SkillFilter struct {
	Search   string
	Category string
}

type SkillUsecase interface {
	List(ctx context.Context, f SkillFilter) ([]readmodel.SkillSummary, error)
	Get(ctx context.Context, id string) (readmodel.SkillDetail, error)
	People(ctx context.Context, id string, min *skill.ProficiencyLevel) ([]readmodel.PersonWithProficiency, error)
	Create(ctx context.Context, in SkillInput) (readmodel.SkillDetail, error)
	Update(ctx context.Context, id string, in SkillInput) (readmodel.SkillDetail, error)
	Delete(ctx context.Context, id string) error
}

type Skills struct {
	store skill.Store
	query *Query
	asm   *readmodel.Assembler
	hooks
}

func NewSkillUsecase(store skill.Store, asm *readmodel.Assembler, opts ...Option) *Skills {
	return &Skills{
		store: store,
		query: NewQuery(store),
		asm:   asm,
		hooks: newHooks(opts),
	}
}

func (u *Skills) List(ctx context.Context, f SkillFilter) ([]readmodel.SkillSummary, error) {
	key := SkillListCacheKey(f)
	var cached []readmodel.SkillSummary
	if u.cached(ctx, key, &cached) {
		return cached, nil
	}

	var (
		skills []skill.Skill
		err    error
	)
	switch {
	case strings.TrimSpace(f.Search) != "":
		skills, err = u.query.SearchSkills(ctx, f.Search)
	case strings.TrimSpace(f.Category) != "":
		skills, err = u.query.SkillsByCategory(ctx, f.Category)
	default:
		skills, err = u.query.SearchSkills(ctx, "")
	}
	if err != nil {
		return nil, err
	}

	out := make([]readmodel.SkillSummary, 0, len(skills))
	for _, s := range skills {
		out = append(out, u.asm.SummarizeSkill(s))
	}
	u.remember(ctx, key, out)
	return out, nil
}

func (u *Skills) Get(ctx context.Context, id string) (readmodel.SkillDetail, error) {
	key := SkillDetailCacheKey(id)
	var cached readmodel.SkillDetail
	if u.cached(ctx, key, &cached) {
		return cached, nil
	}

	g, err := skillGraph(ctx, u.store, id)
	if err != nil {
		return readmodel.SkillDetail{}, err
	}
	out := u.asm.DetailSkill(g)
	u.remember(ctx, key, out)
	return out, nil
}

// People lists the holders of a skill. The floor is applied to the assembled
// list, so filtered entries are identical to unfiltered ones.
func (u *Skills) People(ctx context.Context, id string, min *skill.ProficiencyLevel) ([]readmodel.PersonWithProficiency, error) {
	detail, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if min == nil {
		return detail.People, nil
	}
	if err := validProficiency("minProficiency", *min); err != nil {
		return nil, err
	}
	return readmodel.FilterByMinProficiency(detail.People, *min), nil
}

func (u *Skills) Create(ctx context.Context, in SkillInput) (readmodel.SkillDetail, error) {
	s, err := validateSkill(in)
	if err != nil {
		return readmodel.SkillDetail{}, err
	}
	s.ID = uuid.NewString()

	if err := u.store.Skills().Create(ctx, s); err != nil {
		return readmodel.SkillDetail{}, storeError(err, "skill", s.ID)
	}

	out := u.asm.DetailSkill(readmodel.SkillGraph{Skill: s})
	u.changed(ctx, Event{Type: EventSkillCreated, ResourceID: s.ID, Data: out})
	return out, nil
}

func (u *Skills) Update(ctx context.Context, id string, in SkillInput) (readmodel.SkillDetail, error) {
	s, err := validateSkill(in)
	if err != nil {
		return readmodel.SkillDetail{}, err
	}
	s.ID = id

	if err := u.store.Skills().Update(ctx, s); err != nil {
		return readmodel.SkillDetail{}, storeError(err, "skill", id)
	}
	u.changed(ctx, Event{Type: EventSkillUpdated, ResourceID: id})

	g, err := skillGraph(ctx, u.store, id)
	if err != nil {
		return readmodel.SkillDetail{}, err
	}
	return u.asm.DetailSkill(g), nil
}

// Delete removes the skill with every person skill referencing it.
func (u *Skills) Delete(ctx context.Context, id string) error {
	if err := u.store.Skills().Delete(ctx, id); err != nil {
		return storeError(err, "skill", id)
	}
	u.changed(ctx, Event{Type: EventSkillDeleted, ResourceID: id})
	return nil
}

func validateSkill(in SkillInput) (skill.Skill, error) {
	var (
		s   skill.Skill
		err error
	)
	if s.Name, err = requiredText("name", in.Name, maxSkillNameLen); err != nil {
		return s, err
	}
	if s.Description, err = optionalText("description", in.Description, maxDescriptionLen); err != nil {
		return s, err
	}
	if s.Category, err = optionalText("category", in.Category, maxCategoryLen); err != nil {
		return s, err
	}
	return s, nil
}
