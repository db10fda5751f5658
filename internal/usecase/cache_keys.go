package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

const (
	peopleCachePattern = "people:*"
	skillsCachePattern = "skills:*"
)

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func hashKey(v any) string {
	b, _ := json.Marshal(v)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

type peopleListKeyInput struct {
	Search         string `json:"search"`
	SkillID        string `json:"skillId"`
	MinProficiency int    `json:"minProficiency"`
}

func PeopleListCacheKey(f PeopleFilter) string {
	in := peopleListKeyInput{
		Search:  normalizeSearchValue(f.Search),
		SkillID: strings.TrimSpace(f.SkillID),
	}
	if f.MinProficiency != nil {
		in.MinProficiency = int(*f.MinProficiency)
	}
	return "people:list:" + hashKey(in)
}

func PersonDetailCacheKey(id string) string {
	return "people:detail:" + id
}

type skillListKeyInput struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

func SkillListCacheKey(f SkillFilter) string {
	in := skillListKeyInput{
		Search:   normalizeSearchValue(f.Search),
		Category: normalizeSearchValue(f.Category),
	}
	return "skills:list:" + hashKey(in)
}

func SkillDetailCacheKey(id string) string {
	return "skills:detail:" + id
}
