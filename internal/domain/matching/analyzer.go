package matching

import "fmt"

type AnalysisResult struct {
	JobInfo              JobInfo
	RequiredSkills       []RequiredSkill
	Assessments          []SkillAssessment
	MatchedSkills        []string
	PartialSkills        []string
	MissingSkills        []string
	Score                int
	ScoreLabel           string
	Summary              string
	Suggestions          []string
	RecommendedResources []Resource
	ResourcesUnavailable bool
}

type Analyzer struct {
	extractor     RequirementExtractor
	resourceLimit int
}

func NewAnalyzer(extractor RequirementExtractor, resourceLimit int) *Analyzer {
	if resourceLimit <= 0 {
		resourceLimit = DefaultResourceLimit
	}
	return &Analyzer{extractor: extractor, resourceLimit: resourceLimit}
}

// Analyze runs extraction, classification, scoring and course selection over
// text. A nil catalog yields no recommendations.
func (a *Analyzer) Analyze(text string, profile Profile, catalog []Resource) AnalysisResult {
	reqs := a.extractor.Extract(text)
	assessments := AssessAll(reqs, profile)
	matched, partial, missing := Partition(assessments)
	score := Aggregate(assessments)

	return AnalysisResult{
		JobInfo:              ParseJobInfo(text),
		RequiredSkills:       reqs,
		Assessments:          assessments,
		MatchedSkills:        matched,
		PartialSkills:        partial,
		MissingSkills:        missing,
		Score:                score,
		ScoreLabel:           ScoreLabel(score),
		Summary:              Summary(score),
		Suggestions:          Suggestions(assessments),
		RecommendedResources: SelectResources(assessments, catalog, a.resourceLimit),
	}
}

func AnalyzeJobDescription(text string, vocab *Vocabulary, profile Profile, catalog []Resource) (AnalysisResult, error) {
	if vocab == nil {
		return AnalysisResult{}, fmt.Errorf("%w: vocabulary not loaded", ErrCatalogUnavailable)
	}
	return NewAnalyzer(NewKeywordExtractor(vocab, nil), DefaultResourceLimit).Analyze(text, profile, catalog), nil
}
