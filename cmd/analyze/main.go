package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"career-match/internal/app"
	"career-match/internal/config"
	"career-match/internal/domain/matching"
	"career-match/internal/export"
	"career-match/internal/jdsource"
	"career-match/internal/usecase"

	"github.com/google/uuid"
)

type profileSkill struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
	Category    string `json:"category"`
}

func main() {
	file := flag.String("file", "", "job description file (.txt, .md, .pdf, .docx)")
	url := flag.String("url", "", "job posting url")
	text := flag.String("text", "", "job description text")
	profilePath := flag.String("profile", "", "candidate profile json: [{\"name\",\"proficiency\",\"category\"}]")
	candidate := flag.String("candidate", "", "stored candidate id (uses the database)")
	xlsx := flag.String("xlsx", "", "write the report to this xlsx file")
	asJSON := flag.Bool("json", false, "print the result as json")
	headless := flag.Bool("headless", true, "allow the headless browser fallback for -url")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := run(ctx, options{
		file: *file, url: *url, text: *text,
		profilePath: *profilePath, candidate: *candidate, headless: *headless,
	})
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatalf("encode: %v", err)
		}
	} else {
		printReport(os.Stdout, res)
	}

	if *xlsx != "" {
		path, err := export.SaveAnalysisWorkbook(*xlsx, res, time.Now())
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		fmt.Fprintf(os.Stderr, "report written to %s\n", path)
	}
}

type options struct {
	file, url, text        string
	profilePath, candidate string
	headless               bool
}

func run(ctx context.Context, o options) (matching.AnalysisResult, error) {
	sources := 0
	for _, s := range []string{o.file, o.url, o.text} {
		if strings.TrimSpace(s) != "" {
			sources++
		}
	}
	if sources != 1 {
		return matching.AnalysisResult{}, errors.New("provide exactly one of -file, -url or -text")
	}

	if o.candidate != "" {
		return runStored(ctx, o)
	}

	jd, err := readJobDescription(ctx, o)
	if err != nil {
		return matching.AnalysisResult{}, err
	}
	profile, err := loadProfile(o.profilePath)
	if err != nil {
		return matching.AnalysisResult{}, err
	}
	return matching.AnalyzeJobDescription(jd, matching.DefaultVocabulary(), profile, matching.DefaultCourses)
}

func readJobDescription(ctx context.Context, o options) (string, error) {
	switch {
	case o.file != "":
		return jdsource.FromFile(o.file)
	case o.url != "":
		return jdsource.NewURLFetcher(jdsource.Options{Headless: o.headless}).Fetch(ctx, o.url)
	default:
		return o.text, nil
	}
}

// runStored analyzes against a candidate profile and catalog kept in Postgres.
func runStored(ctx context.Context, o options) (matching.AnalysisResult, error) {
	id, err := uuid.Parse(o.candidate)
	if err != nil {
		return matching.AnalysisResult{}, fmt.Errorf("invalid -candidate: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return matching.AnalysisResult{}, err
	}
	c, err := app.NewContainer(cfg, log.New(io.Discard, "", 0))
	if err != nil {
		return matching.AnalysisResult{}, err
	}
	defer c.Close()

	in := usecase.AnalysisInput{Text: o.text, URL: o.url, Source: "cli"}
	if o.file != "" {
		if in.Text, err = jdsource.FromFile(o.file); err != nil {
			return matching.AnalysisResult{}, err
		}
	}
	return c.Analysis.Analyze(ctx, id, in)
}

func loadProfile(path string) (matching.Profile, error) {
	if path == "" {
		return matching.NewProfile(nil), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return matching.Profile{}, err
	}
	var items []profileSkill
	if err := json.Unmarshal(b, &items); err != nil {
		return matching.Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}

	skills := make([]matching.CandidateSkill, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		if it.Proficiency < 0 || it.Proficiency > 100 {
			return matching.Profile{}, fmt.Errorf("profile skill %q: proficiency must be within 0..100", it.Name)
		}
		cat, ok := matching.ParseCategory(it.Category)
		if !ok {
			cat = matching.CategoryTechnical
		}
		skills = append(skills, matching.CandidateSkill{Name: strings.TrimSpace(it.Name), Proficiency: it.Proficiency, Category: cat})
	}
	return matching.NewProfile(skills), nil
}

func printReport(w io.Writer, res matching.AnalysisResult) {
	fmt.Fprintf(w, "%s at %s (%s)\n", res.JobInfo.Title, res.JobInfo.Company, res.JobInfo.Location)
	fmt.Fprintf(w, "Match score: %d%% (%s)\n%s\n\n", res.Score, res.ScoreLabel, res.Summary)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKILL\tYOU\tREQUIRED\tGAP\tSTATUS")
	for _, a := range res.Assessments {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", a.Name, a.UserProficiency, a.RequiredLevel, a.Gap, a.Status)
	}
	_ = tw.Flush()

	if len(res.Suggestions) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range res.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}

	switch {
	case res.ResourcesUnavailable:
		fmt.Fprintln(w, "\nCourse catalog unavailable.")
	case len(res.RecommendedResources) > 0:
		fmt.Fprintln(w, "\nRecommended courses:")
		for _, r := range res.RecommendedResources {
			fmt.Fprintf(w, "  - %s (%s, %s) %s\n", r.Title, r.Provider, r.DurationLabel, r.URL)
		}
	}
}
