package skill

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type ProficiencyLevel int

const (
	Novice       ProficiencyLevel = 1
	Beginner     ProficiencyLevel = 2
	Intermediate ProficiencyLevel = 3
	Advanced     ProficiencyLevel = 4
	Expert       ProficiencyLevel = 5
)

var proficiencyNames = map[ProficiencyLevel]string{
	Novice:       "Novice",
	Beginner:     "Beginner",
	Intermediate: "Intermediate",
	Advanced:     "Advanced",
	Expert:       "Expert",
}

func (l ProficiencyLevel) Valid() bool {
	return l >= Novice && l <= Expert
}

func (l ProficiencyLevel) String() string {
	if n, ok := proficiencyNames[l]; ok {
		return n
	}
	return strconv.Itoa(int(l))
}

// AtLeast reports whether l is at or above min on the ordinal scale.
func (l ProficiencyLevel) AtLeast(min ProficiencyLevel) bool {
	return int(l) >= int(min)
}

// ParseProficiency accepts either the ordinal ("4") or the name ("advanced").
func ParseProficiency(raw string) (ProficiencyLevel, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty proficiency level")
	}
	if n, err := strconv.Atoi(s); err == nil {
		l := ProficiencyLevel(n)
		if !l.Valid() {
			return 0, fmt.Errorf("proficiency level out of range: %d", n)
		}
		return l, nil
	}
	for l, name := range proficiencyNames {
		if strings.EqualFold(name, s) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown proficiency level: %q", raw)
}

func (l ProficiencyLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *ProficiencyLevel) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*l = ProficiencyLevel(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("proficiency level must be a number or a name")
	}
	parsed, err := ParseProficiency(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
