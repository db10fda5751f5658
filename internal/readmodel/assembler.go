package readmodel

import (
	"sort"

	"skillmatrix/internal/domain/skill"
)

const topSkillLimit = 3

// PersonGraph is a person with everything needed to render it. Skills are in
// store order; Catalog and Verifications are keyed by skill id and person
// skill id.
type PersonGraph struct {
	Person        skill.Person
	Skills        []skill.PersonSkill
	Catalog       map[string]skill.Skill
	Verifications map[string][]skill.Verification
}

// SkillGraph is a skill with its holders. People is keyed by person id.
type SkillGraph struct {
	Skill   skill.Skill
	Holders []skill.PersonSkill
	People  map[string]skill.Person
}

// Assembler turns stored entities into response views. It holds no state
// besides the base path and never touches the store.
type Assembler struct {
	basePath string
}

func NewAssembler(basePath string) *Assembler {
	return &Assembler{basePath: basePath}
}

func (a *Assembler) Root() Links {
	return BuildLinks(KindRoot, "", a.basePath)
}

func (a *Assembler) SummarizePerson(g PersonGraph) PersonSummary {
	p := g.Person
	out := PersonSummary{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		JobTitle:   p.JobTitle,
		Department: p.Department,
		PhotoURL:   p.PhotoURL,
		TopSkills:  make([]SkillSummary, 0, topSkillLimit),
		Links:      BuildLinks(KindPerson, p.ID, a.basePath),
	}

	for _, ps := range TopSkills(g.Skills, topSkillLimit) {
		sk, ok := g.Catalog[ps.SkillID]
		if !ok {
			continue
		}
		level := ps.ProficiencyLevel
		verified := ps.IsVerified
		out.TopSkills = append(out.TopSkills, SkillSummary{
			ID:               sk.ID,
			Name:             sk.Name,
			Category:         sk.Category,
			ProficiencyLevel: &level,
			IsVerified:       &verified,
			Links:            BuildLinks(KindSkill, sk.ID, a.basePath),
		})
	}
	return out
}

func (a *Assembler) DetailPerson(g PersonGraph) PersonDetail {
	p := g.Person
	out := PersonDetail{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		JobTitle:   p.JobTitle,
		Department: p.Department,
		Email:      p.Email,
		PhotoURL:   p.PhotoURL,
		Skills:     make([]PersonSkillView, 0, len(g.Skills)),
		Links:      BuildLinks(KindPerson, p.ID, a.basePath),
	}

	for _, ps := range g.Skills {
		sk, ok := g.Catalog[ps.SkillID]
		if !ok {
			continue
		}
		out.Skills = append(out.Skills, a.PersonSkill(ps, sk, g.Verifications[ps.ID]))
	}
	return out
}

func (a *Assembler) PersonSkill(ps skill.PersonSkill, sk skill.Skill, vs []skill.Verification) PersonSkillView {
	links := BuildLinks(KindPersonSkill, ps.ID, a.basePath)
	links["skill"] = BuildLinks(KindSkill, sk.ID, a.basePath)["self"]

	return PersonSkillView{
		ID:                ps.ID,
		SkillID:           sk.ID,
		SkillName:         sk.Name,
		SkillDescription:  sk.Description,
		SkillCategory:     sk.Category,
		ProficiencyLevel:  ps.ProficiencyLevel,
		YearsOfExperience: ps.YearsOfExperience,
		IsVerified:        ps.IsVerified,
		Verifications:     a.Verifications(vs),
		Links:             links,
	}
}

func (a *Assembler) SummarizeSkill(s skill.Skill) SkillSummary {
	return SkillSummary{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Links:    BuildLinks(KindSkill, s.ID, a.basePath),
	}
}

func (a *Assembler) DetailSkill(g SkillGraph) SkillDetail {
	s := g.Skill
	out := SkillDetail{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		People:      make([]PersonWithProficiency, 0, len(g.Holders)),
		Links:       BuildLinks(KindSkill, s.ID, a.basePath),
	}

	for _, ps := range g.Holders {
		p, ok := g.People[ps.PersonID]
		if !ok {
			continue
		}
		out.People = append(out.People, PersonWithProficiency{
			PersonID:          p.ID,
			FirstName:         p.FirstName,
			LastName:          p.LastName,
			JobTitle:          p.JobTitle,
			PhotoURL:          p.PhotoURL,
			ProficiencyLevel:  ps.ProficiencyLevel,
			IsVerified:        ps.IsVerified,
			YearsOfExperience: ps.YearsOfExperience,
			Links:             BuildLinks(KindPerson, p.ID, a.basePath),
		})
	}
	return out
}

func (a *Assembler) Verification(v skill.Verification) VerificationView {
	return VerificationView{
		ID:               v.ID,
		PersonSkillID:    v.PersonSkillID,
		VerificationType: v.VerificationType,
		VerifiedBy:       v.VerifiedBy,
		Note:             v.Note,
		CertificationURL: v.CertificationURL,
		VerificationDate: v.VerificationDate,
	}
}

func (a *Assembler) Verifications(vs []skill.Verification) []VerificationView {
	out := make([]VerificationView, 0, len(vs))
	for _, v := range vs {
		out = append(out, a.Verification(v))
	}
	return out
}

// TopSkills orders by proficiency descending, keeping store order among
// equal levels, and truncates to limit. The input is not modified.
func TopSkills(items []skill.PersonSkill, limit int) []skill.PersonSkill {
	sorted := append([]skill.PersonSkill(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ProficiencyLevel > sorted[j].ProficiencyLevel
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// FilterByMinProficiency keeps the holders at or above min. It runs on the
// assembled list so the filtered shape matches the unfiltered one.
func FilterByMinProficiency(people []PersonWithProficiency, min skill.ProficiencyLevel) []PersonWithProficiency {
	out := make([]PersonWithProficiency, 0, len(people))
	for _, p := range people {
		if p.ProficiencyLevel.AtLeast(min) {
			out = append(out, p)
		}
	}
	return out
}
