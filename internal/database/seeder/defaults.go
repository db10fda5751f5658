package seeder

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		PeopleSeeder{},
		PersonSkillsSeeder{},
		VerificationsSeeder{},
	}
}
