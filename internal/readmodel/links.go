package readmodel

import "strings"

type Kind string

const (
	KindRoot        Kind = "root"
	KindPerson      Kind = "person"
	KindSkill       Kind = "skill"
	KindPersonSkill Kind = "person_skill"
)

// Links maps a relation name to a URL.
type Links map[string]string

// BuildLinks returns the link set of one resource. Every set carries "self";
// the remaining relations depend on kind. Unknown kinds get an empty set.
func BuildLinks(kind Kind, id, basePath string) Links {
	base := strings.TrimRight(basePath, "/")

	switch kind {
	case KindRoot:
		return Links{
			"self":   rootSelf(base),
			"people": base + "/people",
			"skills": base + "/skills",
		}
	case KindPerson:
		self := base + "/people/" + id
		return Links{
			"self":   self,
			"skills": self + "/skills",
		}
	case KindSkill:
		self := base + "/skills/" + id
		return Links{
			"self":   self,
			"people": self + "/people",
		}
	case KindPersonSkill:
		self := base + "/personskills/" + id
		return Links{
			"self":          self,
			"verifications": self + "/verifications",
		}
	default:
		return Links{}
	}
}

func rootSelf(base string) string {
	if base == "" {
		return "/"
	}
	return base
}
