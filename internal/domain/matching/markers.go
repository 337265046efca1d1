package matching

// MarkerRule injects a fixed requirement set when any of its tokens appears
// in the text. Rules only fire when direct vocabulary hits are scarce.
type MarkerRule struct {
	Name   string
	Tokens []string
	Inject []RequiredSkill
}

var DefaultMarkerRules = []MarkerRule{
	{
		Name:   "frontend",
		Tokens: []string{"frontend", "front-end"},
		Inject: []RequiredSkill{
			{Name: "React", RequiredLevel: 85, Category: CategoryTechnical},
			{Name: "TypeScript", RequiredLevel: 80, Category: CategoryTechnical},
			{Name: "CSS", RequiredLevel: 75, Category: CategoryTechnical},
		},
	},
	{
		Name:   "backend",
		Tokens: []string{"backend", "back-end"},
		Inject: []RequiredSkill{
			{Name: "Node.js", RequiredLevel: 80, Category: CategoryTechnical},
			{Name: "SQL", RequiredLevel: 75, Category: CategoryTechnical},
			{Name: "REST APIs", RequiredLevel: 85, Category: CategoryTechnical},
		},
	},
	{
		Name:   "fullstack",
		Tokens: []string{"fullstack", "full-stack", "full stack"},
		Inject: []RequiredSkill{
			{Name: "React", RequiredLevel: 85, Category: CategoryTechnical},
			{Name: "Node.js", RequiredLevel: 80, Category: CategoryTechnical},
			{Name: "TypeScript", RequiredLevel: 75, Category: CategoryTechnical},
			{Name: "AWS", RequiredLevel: 70, Category: CategoryTool},
		},
	},
	{
		Name:   "cloud",
		Tokens: []string{"cloud", "devops"},
		Inject: []RequiredSkill{
			{Name: "AWS", RequiredLevel: 85, Category: CategoryTool},
			{Name: "Docker", RequiredLevel: 75, Category: CategoryTool},
			{Name: "CI/CD", RequiredLevel: 80, Category: CategoryTool},
		},
	},
}
