package seeder

import (
	"context"
	"fmt"
	"time"

	"career-match/internal/database"
	"career-match/internal/domain/matching"

	"github.com/google/uuid"
)

type seedPosting struct {
	Title        string
	Company      string
	Location     string
	LocationType matching.LocationType
	Salary       string
	Experience   string
	DaysAgo      int
	PostedLabel  string
	Description  string
	Applicants   int
	CompanySize  string
	Skills       []string
}

var defaultPostings = []seedPosting{
	{
		Title: "Senior Frontend Developer", Company: "TechCorp India", Location: "Bangalore, India",
		LocationType: matching.LocationHybrid, Salary: "₹25-35 LPA", Experience: "4-6 years",
		DaysAgo: 2, PostedLabel: "2 days ago", Applicants: 45, CompanySize: "500-1000",
		Description: "Join our team to build cutting-edge web applications using React and TypeScript.",
		Skills:      []string{"React", "TypeScript", "JavaScript", "CSS", "Git"},
	},
	{
		Title: "Full Stack Engineer", Company: "StartupXYZ", Location: "Bangalore, India",
		LocationType: matching.LocationRemote, Salary: "₹20-30 LPA", Experience: "3-5 years",
		DaysAgo: 1, PostedLabel: "1 day ago", Applicants: 78, CompanySize: "50-200",
		Description: "Looking for a versatile full-stack developer to help scale our product.",
		Skills:      []string{"React", "Node.js", "TypeScript", "MongoDB", "AWS", "Docker"},
	},
	{
		Title: "React Developer", Company: "FinTech Solutions", Location: "Mumbai, India",
		LocationType: matching.LocationHybrid, Salary: "₹18-28 LPA", Experience: "3-5 years",
		DaysAgo: 3, PostedLabel: "3 days ago", Applicants: 120, CompanySize: "1000+",
		Description: "Build financial products that impact millions of users.",
		Skills:      []string{"React", "JavaScript", "Redux", "REST APIs", "Git"},
	},
	{
		Title: "Frontend Architect", Company: "Global Tech", Location: "Bangalore, India",
		LocationType: matching.LocationOnsite, Salary: "₹35-50 LPA", Experience: "6-8 years",
		DaysAgo: 5, PostedLabel: "5 days ago", Applicants: 32, CompanySize: "5000+",
		Description: "Lead the frontend architecture for our enterprise applications.",
		Skills:      []string{"React", "TypeScript", "System Design", "AWS", "Leadership", "Micro-frontends"},
	},
	{
		Title: "JavaScript Developer", Company: "EdTech Startup", Location: "Hyderabad, India",
		LocationType: matching.LocationRemote, Salary: "₹12-18 LPA", Experience: "2-4 years",
		DaysAgo: 7, PostedLabel: "1 week ago", Applicants: 156, CompanySize: "10-50",
		Description: "Help us revolutionize online education with interactive learning experiences.",
		Skills:      []string{"JavaScript", "React", "HTML", "CSS", "Node.js"},
	},
	{
		Title: "Senior Software Engineer", Company: "Cloud Giants", Location: "Bangalore, India",
		LocationType: matching.LocationHybrid, Salary: "₹28-40 LPA", Experience: "5-7 years",
		DaysAgo: 4, PostedLabel: "4 days ago", Applicants: 89, CompanySize: "1000+",
		Description: "Work on cloud-native applications serving millions of requests.",
		Skills:      []string{"React", "TypeScript", "AWS", "Kubernetes", "CI/CD", "Python"},
	},
}

// Skills outside the vocabulary are seeded at this level.
const defaultPostingSkillLevel = 70

func PostingID(title, company string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("posting:"+company+"/"+title))
}

type PostingsSeeder struct{}

func (PostingsSeeder) Name() string { return "postings" }

func (PostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "postings", "id", "title", "location_type", "posted_at", "tagged_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "posting_skills", "posting_id", "name", "required_level", "position"); err != nil {
		return err
	}

	vocab := matching.DefaultVocabulary()
	now := time.Now().UTC()

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range defaultPostings {
		id := PostingID(p.Title, p.Company)
		postedAt := now.AddDate(0, 0, -p.DaysAgo)

		affected, err := tx.Exec(
			ctx,
			`INSERT INTO postings (id, title, company, location, location_type, salary, experience, posted_label, posted_at, description, applicants, company_size, tagged_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
			 ON CONFLICT (id) DO NOTHING`,
			id, p.Title, p.Company, p.Location, string(p.LocationType), p.Salary, p.Experience,
			p.PostedLabel, postedAt, p.Description, p.Applicants, p.CompanySize,
		)
		if err != nil {
			return err
		}
		if affected == 0 {
			continue
		}

		for i, name := range p.Skills {
			level, category := defaultPostingSkillLevel, matching.CategoryTechnical
			if e, ok := vocab.Lookup(name); ok {
				level, category = e.RequiredLevel, e.Category
			}
			_, err := tx.Exec(
				ctx,
				`INSERT INTO posting_skills (posting_id, name, category, required_level, position) VALUES ($1, $2, $3, $4, $5)`,
				id, name, string(category), level, i+1,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
