package seeder

import (
	"context"
	"fmt"
	"time"

	"career-match/internal/database"
	"career-match/internal/domain/matching"

	"github.com/google/uuid"
)

const DemoCandidateEmail = "demo@career-match.dev"

var DemoCandidateID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("candidate:"+DemoCandidateEmail))

var demoSkills = []matching.CandidateSkill{
	{Name: "React", Proficiency: 85, Category: matching.CategoryTechnical},
	{Name: "TypeScript", Proficiency: 80, Category: matching.CategoryTechnical},
	{Name: "JavaScript", Proficiency: 90, Category: matching.CategoryTechnical},
	{Name: "Node.js", Proficiency: 70, Category: matching.CategoryTechnical},
	{Name: "AWS", Proficiency: 45, Category: matching.CategoryTool},
	{Name: "Git", Proficiency: 85, Category: matching.CategoryTool},
	{Name: "CI/CD", Proficiency: 55, Category: matching.CategoryTool},
	{Name: "CSS", Proficiency: 85, Category: matching.CategoryTechnical},
}

type demoApplication struct {
	Title, Company, Location, Salary, Status string
	AppliedAt                                time.Time
	InterviewAt                              *time.Time
	InterviewTime, MeetingLink, Interviewer  string
}

func demoApplications() []demoApplication {
	at := func(y int, m time.Month, d, h, min int) *time.Time {
		t := time.Date(y, m, d, h, min, 0, 0, time.UTC)
		return &t
	}
	day := func(d int) time.Time { return time.Date(2026, time.January, d, 9, 0, 0, 0, time.UTC) }

	return []demoApplication{
		{Title: "React Native Developer", Company: "MobileFirst Tech", Location: "Bangalore, India", Salary: "₹22-32 LPA", Status: "shortlisted", AppliedAt: day(10)},
		{Title: "Frontend Lead", Company: "InnovateTech", Location: "Mumbai, India", Salary: "₹30-45 LPA", Status: "viewed", AppliedAt: day(8)},
		{
			Title: "Senior UI Engineer", Company: "DesignHub", Location: "Hyderabad, India", Salary: "₹25-35 LPA", Status: "interview", AppliedAt: day(5),
			InterviewAt: at(2026, time.January, 18, 15, 0), InterviewTime: "3:00 PM - 4:00 PM",
			MeetingLink: "https://meet.google.com/abc-defg-hij", Interviewer: "Sarah Johnson, Engineering Manager",
		},
		{Title: "JavaScript Developer", Company: "WebScale Inc", Location: "Chennai, India", Salary: "₹15-22 LPA", Status: "applied", AppliedAt: day(3)},
		{
			Title: "React Developer", Company: "TechVista Solutions", Location: "Pune, India", Salary: "₹18-28 LPA", Status: "interview", AppliedAt: day(12),
			InterviewAt: at(2026, time.January, 20, 10, 0), InterviewTime: "10:00 AM - 11:00 AM",
			MeetingLink: "https://zoom.us/j/123456789", Interviewer: "Rajesh Kumar, Tech Lead",
		},
		{
			Title: "Full Stack Engineer", Company: "CloudWorks", Location: "Bangalore, India", Salary: "₹30-42 LPA", Status: "interview", AppliedAt: day(14),
			InterviewAt: at(2026, time.January, 17, 14, 30), InterviewTime: "2:30 PM - 3:30 PM",
			MeetingLink: "https://meet.google.com/xyz-abcd-efg", Interviewer: "Priya Sharma, Senior Developer",
		},
	}
}

// DemoCandidateSeeder creates one candidate with a profile and a few tracked
// applications. It does nothing when the candidate already exists.
type DemoCandidateSeeder struct{}

func (DemoCandidateSeeder) Name() string { return "demo_candidate" }

func (DemoCandidateSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "candidates", "id", "name", "email"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := tx.Exec(
		ctx,
		`INSERT INTO candidates (id, name, email) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		DemoCandidateID, "Demo Candidate", DemoCandidateEmail,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return nil
	}

	for i, s := range demoSkills {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO candidate_skills (candidate_id, name, category, proficiency, position) VALUES ($1, $2, $3, $4, $5)`,
			DemoCandidateID, s.Name, string(s.Category), s.Proficiency, i+1,
		)
		if err != nil {
			return err
		}
	}

	for _, a := range demoApplications() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO applications (candidate_id, title, company, location, salary, status, applied_at, updated_at, interview_at, interview_time_label, interview_mode, meeting_link, interviewer)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8, $9, $10, $11, $12)`,
			DemoCandidateID, a.Title, a.Company, a.Location, a.Salary, a.Status, a.AppliedAt,
			a.InterviewAt, a.InterviewTime, interviewMode(a.InterviewAt), a.MeetingLink, a.Interviewer,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func interviewMode(at *time.Time) string {
	if at == nil {
		return ""
	}
	return "video"
}
