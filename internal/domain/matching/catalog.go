package matching

import "github.com/google/uuid"

var DefaultVocabularyEntries = []VocabularyEntry{
	{Skill: Skill{Name: "React", Category: CategoryTechnical}, RequiredLevel: 85},
	{Skill: Skill{Name: "TypeScript", Category: CategoryTechnical}, RequiredLevel: 80},
	{Skill: Skill{Name: "JavaScript", Category: CategoryTechnical}, RequiredLevel: 90},
	{Skill: Skill{Name: "Node.js", Category: CategoryTechnical}, RequiredLevel: 75},
	{Skill: Skill{Name: "Python", Category: CategoryTechnical}, RequiredLevel: 70},
	{Skill: Skill{Name: "AWS", Category: CategoryTool}, RequiredLevel: 80},
	{Skill: Skill{Name: "Docker", Category: CategoryTool}, RequiredLevel: 70},
	{Skill: Skill{Name: "Kubernetes", Category: CategoryTool}, RequiredLevel: 65},
	{Skill: Skill{Name: "GraphQL", Category: CategoryTechnical}, RequiredLevel: 60},
	{Skill: Skill{Name: "SQL", Category: CategoryTechnical}, RequiredLevel: 75},
	{Skill: Skill{Name: "MongoDB", Category: CategoryTool}, RequiredLevel: 60},
	{Skill: Skill{Name: "Git", Category: CategoryTool}, RequiredLevel: 80},
	{Skill: Skill{Name: "CI/CD", Category: CategoryTool}, RequiredLevel: 75},
	{Skill: Skill{Name: "Agile", Category: CategorySoft}, RequiredLevel: 70},
	{Skill: Skill{Name: "Communication", Category: CategorySoft}, RequiredLevel: 80},
	{Skill: Skill{Name: "Leadership", Category: CategorySoft}, RequiredLevel: 65},
	{Skill: Skill{Name: "Problem Solving", Category: CategorySoft}, RequiredLevel: 85},
	{Skill: Skill{Name: "System Design", Category: CategoryTechnical}, RequiredLevel: 80},
	{Skill: Skill{Name: "REST APIs", Category: CategoryTechnical}, RequiredLevel: 85},
	{Skill: Skill{Name: "HTML", Category: CategoryTechnical}, RequiredLevel: 70},
	{Skill: Skill{Name: "CSS", Category: CategoryTechnical}, RequiredLevel: 70},
	{Skill: Skill{Name: "Tailwind", Category: CategoryTool}, RequiredLevel: 60},
}

func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(DefaultVocabularyEntries)
	if err != nil {
		panic(err)
	}
	return v
}

// CourseID derives a stable id so seeding is idempotent.
func CourseID(title string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("course:"+title))
}

var DefaultCourses = []Resource{
	{
		ID:              CourseID("AWS Certified Solutions Architect"),
		Title:           "AWS Certified Solutions Architect",
		Provider:        "AWS Training",
		DurationLabel:   "6 weeks",
		LevelLabel:      "Intermediate",
		AddressedSkills: []string{"AWS", "Cloud Architecture", "DevOps"},
		Rating:          4.8,
		URL:             "https://aws.amazon.com/training",
	},
	{
		ID:              CourseID("Docker & Kubernetes Masterclass"),
		Title:           "Docker & Kubernetes Masterclass",
		Provider:        "Udemy",
		DurationLabel:   "8 weeks",
		LevelLabel:      "Advanced",
		AddressedSkills: []string{"Docker", "Kubernetes", "CI/CD", "DevOps"},
		Rating:          4.7,
		URL:             "https://udemy.com",
	},
	{
		ID:              CourseID("Python for Data Science"),
		Title:           "Python for Data Science",
		Provider:        "Coursera",
		DurationLabel:   "4 weeks",
		LevelLabel:      "Beginner",
		AddressedSkills: []string{"Python", "Data Science", "Machine Learning"},
		Rating:          4.9,
		URL:             "https://coursera.org",
	},
	{
		ID:              CourseID("Advanced React Patterns"),
		Title:           "Advanced React Patterns",
		Provider:        "Frontend Masters",
		DurationLabel:   "3 weeks",
		LevelLabel:      "Advanced",
		AddressedSkills: []string{"React", "TypeScript", "Architecture"},
		Rating:          4.8,
		URL:             "https://frontendmasters.com",
	},
	{
		ID:              CourseID("GraphQL Complete Guide"),
		Title:           "GraphQL Complete Guide",
		Provider:        "LinkedIn Learning",
		DurationLabel:   "5 weeks",
		LevelLabel:      "Intermediate",
		AddressedSkills: []string{"GraphQL", "API Design", "Node.js"},
		Rating:          4.6,
		URL:             "https://linkedin.com/learning",
	},
	{
		ID:              CourseID("System Design Interview Prep"),
		Title:           "System Design Interview Prep",
		Provider:        "Educative",
		DurationLabel:   "6 weeks",
		LevelLabel:      "Advanced",
		AddressedSkills: []string{"System Design", "Architecture", "Scalability"},
		Rating:          4.9,
		URL:             "https://educative.io",
	},
}
