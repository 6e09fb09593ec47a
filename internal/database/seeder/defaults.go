package seeder

func Defaults() []Seeder {
	return []Seeder{
		RegionsSeeder{},
		SkillsSeeder{},
		LanguagesSeeder{},
	}
}
