package usecase

import (
	"context"
	"strings"

	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/readmodel"

	"github.com/google/uuid"
)

const (
	maxNameLen       = 50
	maxEmailLen      = 100
	maxJobTitleLen   = 100
	maxDepartmentLen = 50
	maxURLLen        = 255
)

type PersonInput struct {
	FirstName  string
	LastName   string
	JobTitle   string
	Department string
	Email      string
	PhotoURL   *string
}

// PeopleFilter narrows the people list. Search is a substring match; SkillID
// restricts to holders of that skill, optionally at MinProficiency or above.
type PeopleFilter struct {
	Search         string
	SkillID        string
	MinProficiency *skill.ProficiencyLevel
}

type PeopleUsecase interface {
	List(ctx context.Context, f PeopleFilter) ([]readmodel.PersonSummary, error)
	Get(ctx context.Context, id string) (readmodel.PersonDetail, error)
	Skills(ctx context.Context, id string) ([]readmodel.PersonSkillView, error)
	Create(ctx context.Context, in PersonInput) (readmodel.PersonDetail, error)
	Update(ctx context.Context, id string, in PersonInput) (readmodel.PersonDetail, error)
	Delete(ctx context.Context, id string) error
}

type People struct {
	store skill.Store
	query *Query
	asm   *readmodel.Assembler
	hooks
}

func NewPeopleUsecase(store skill.Store, asm *readmodel.Assembler, opts ...Option) *People {
	return &People{
		store: store,
		query: NewQuery(store),
		asm:   asm,
		hooks: newHooks(opts),
	}
}

func (u *People) List(ctx context.Context, f PeopleFilter) ([]readmodel.PersonSummary, error) {
	key := PeopleListCacheKey(f)
	var cached []readmodel.PersonSummary
	if u.cached(ctx, key, &cached) {
		return cached, nil
	}

	people, err := u.filter(ctx, f)
	if err != nil {
		return nil, err
	}
	graphs, err := personGraphs(ctx, u.store, people, false)
	if err != nil {
		return nil, err
	}

	out := make([]readmodel.PersonSummary, 0, len(graphs))
	for _, g := range graphs {
		out = append(out, u.asm.SummarizePerson(g))
	}
	u.remember(ctx, key, out)
	return out, nil
}

func (u *People) filter(ctx context.Context, f PeopleFilter) ([]skill.Person, error) {
	skillID := strings.TrimSpace(f.SkillID)
	if skillID == "" {
		return u.query.SearchPeople(ctx, f.Search)
	}

	holders, err := u.query.PeopleBySkill(ctx, skillID, f.MinProficiency)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(f.Search) == "" {
		return holders, nil
	}
	matching, err := u.query.SearchPeople(ctx, f.Search)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(matching))
	for _, p := range matching {
		keep[p.ID] = true
	}
	out := make([]skill.Person, 0, len(holders))
	for _, p := range holders {
		if keep[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *People) Get(ctx context.Context, id string) (readmodel.PersonDetail, error) {
	key := PersonDetailCacheKey(id)
	var cached readmodel.PersonDetail
	if u.cached(ctx, key, &cached) {
		return cached, nil
	}

	g, err := personGraph(ctx, u.store, id)
	if err != nil {
		return readmodel.PersonDetail{}, err
	}
	out := u.asm.DetailPerson(g)
	u.remember(ctx, key, out)
	return out, nil
}

// Skills returns the skill list of the person detail view.
func (u *People) Skills(ctx context.Context, id string) ([]readmodel.PersonSkillView, error) {
	detail, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return detail.Skills, nil
}

func (u *People) Create(ctx context.Context, in PersonInput) (readmodel.PersonDetail, error) {
	p, err := validatePerson(in)
	if err != nil {
		return readmodel.PersonDetail{}, err
	}
	p.ID = uuid.NewString()

	if err := u.store.People().Create(ctx, p); err != nil {
		return readmodel.PersonDetail{}, storeError(err, "person", p.ID)
	}

	out := u.asm.DetailPerson(readmodel.PersonGraph{Person: p})
	u.changed(ctx, Event{Type: EventPersonCreated, ResourceID: p.ID, Data: out})
	return out, nil
}

func (u *People) Update(ctx context.Context, id string, in PersonInput) (readmodel.PersonDetail, error) {
	p, err := validatePerson(in)
	if err != nil {
		return readmodel.PersonDetail{}, err
	}
	p.ID = id

	if err := u.store.People().Update(ctx, p); err != nil {
		return readmodel.PersonDetail{}, storeError(err, "person", id)
	}
	u.changed(ctx, Event{Type: EventPersonUpdated, ResourceID: id})

	g, err := personGraph(ctx, u.store, id)
	if err != nil {
		return readmodel.PersonDetail{}, err
	}
	return u.asm.DetailPerson(g), nil
}

// Delete removes the person with its person skills and their verifications.
func (u *People) Delete(ctx context.Context, id string) error {
	if err := u.store.People().Delete(ctx, id); err != nil {
		return storeError(err, "person", id)
	}
	u.changed(ctx, Event{Type: EventPersonDeleted, ResourceID: id})
	return nil
}

func validatePerson(in PersonInput) (skill.Person, error) {
	var (
		p   skill.Person
		err error
	)
	if p.FirstName, err = requiredText("firstName", in.FirstName, maxNameLen); err != nil {
		return p, err
	}
	if p.LastName, err = requiredText("lastName", in.LastName, maxNameLen); err != nil {
		return p, err
	}
	if p.Email, err = validEmail("email", in.Email, maxEmailLen); err != nil {
		return p, err
	}
	if p.JobTitle, err = optionalText("jobTitle", in.JobTitle, maxJobTitleLen); err != nil {
		return p, err
	}
	if p.Department, err = optionalText("department", in.Department, maxDepartmentLen); err != nil {
		return p, err
	}
	if p.PhotoURL, err = optionalPtr("photoUrl", in.PhotoURL, maxURLLen); err != nil {
		return p, err
	}
	return p, nil
}
