package seeder

func Defaults() []Seeder {
	return []Seeder{
		VocabularySeeder{},
		CoursesSeeder{},
		PostingsSeeder{},
		DemoCandidateSeeder{},
	}
}
