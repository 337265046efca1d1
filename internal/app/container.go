package app

import (
	"context"
	"errors"
	"log"
	"time"

	"career-match/internal/config"
	"career-match/internal/database"
	dbpostgres "career-match/internal/database/postgres"
	"career-match/internal/infrastructure/cache"
	"career-match/internal/jdsource"
	"career-match/internal/pipeline"
	"career-match/internal/pkg/jwt"
	"career-match/internal/repository"
	"career-match/internal/usecase"
	"career-match/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service
	Hub    *ws.Hub

	Catalog    *usecase.Catalog
	Profiles   *usecase.Profile
	Analysis   *usecase.Analysis
	Postings   *usecase.Postings
	Tracker    *usecase.Tracker
	Candidates *usecase.Candidates

	Tagging *pipeline.TaggingPipeline
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		JWT:    jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn),
		Hub:    ws.NewHub(logger),
	}

	skills := repository.NewPostgresSkillRepository(db)
	courses := repository.NewPostgresCourseRepository(db)
	candidateSkills := repository.NewPostgresCandidateSkillRepository(db)
	postings := repository.NewPostgresPostingRepository(db)

	c.Catalog = usecase.NewCatalogUsecase(skills, courses, c.Cache, logger)
	c.Profiles = usecase.NewProfileUsecase(candidateSkills, c.Cache, c.Hub, logger)
	c.Analysis = usecase.NewAnalysisUsecase(c.Catalog, c.Profiles, usecase.AnalysisOptions{
		Results: repository.NewPostgresAnalysisRepository(db),
		Fetcher: jdsource.NewURLFetcher(jdsource.Options{
			Timeout:  cfg.Analysis.FetchTimeout,
			Headless: cfg.Analysis.FetchHeadless,
			Logger:   logger,
		}),
		Cache:       c.Cache,
		CourseLimit: cfg.Analysis.CourseLimit,
		Logger:      logger,
	})
	c.Postings = usecase.NewPostingUsecase(postings, repository.NewPostgresBookmarkRepository(db), c.Profiles, c.Catalog, logger)
	c.Tracker = usecase.NewTrackerUsecase(repository.NewPostgresApplicationRepository(db), postings)
	c.Candidates = usecase.NewCandidateUsecase(repository.NewPostgresCandidateRepository(db), c.JWT)
	c.Tagging = pipeline.NewTaggingPipeline(postings, c.Catalog, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
