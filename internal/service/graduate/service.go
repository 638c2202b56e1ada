package graduate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/match"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ai"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/cache"
)

// matchCacheTTL bounds how stale a graduate's cached match list may get.
const matchCacheTTL = 15 * time.Minute

type GraduateService interface {
	GetProfile(ctx context.Context, userID string) (graduate.Response, error)
	UpsertProfile(ctx context.Context, userID string, req graduate.UpsertProfileRequest) (graduate.Response, error)
	// SubmitAssessment embeds the graduate's profile and stores the AI
	// feedback; matches become available afterwards.
	SubmitAssessment(ctx context.Context, userID string, req graduate.SubmitAssessmentRequest) (graduate.Response, error)
	// Matches scores the graduate against every active job with an
	// embedding, persisting and caching the results.
	Matches(ctx context.Context, userID string, limit int) ([]match.Response, error)
}

type GraduateServiceImpl struct {
	graduates graduate.Repository
	jobs      job.Repository
	matches   match.Repository
	ai        *ai.Client
	cache     *cache.Cache
}

func NewGraduateService(
	graduates graduate.Repository,
	jobs job.Repository,
	matches match.Repository,
	aiClient *ai.Client,
	c *cache.Cache,
) GraduateService {
	return &GraduateServiceImpl{
		graduates: graduates,
		jobs:      jobs,
		matches:   matches,
		ai:        aiClient,
		cache:     c,
	}
}

// GetProfile implements GraduateService.
func (s *GraduateServiceImpl) GetProfile(ctx context.Context, userID string) (graduate.Response, error) {
	g, err := s.graduates.GetByUserID(ctx, userID)
	if err != nil {
		return graduate.Response{}, err
	}
	return graduate.ToResponse(g), nil
}

// UpsertProfile implements GraduateService.
func (s *GraduateServiceImpl) UpsertProfile(ctx context.Context, userID string, req graduate.UpsertProfileRequest) (graduate.Response, error) {
	if err := req.Validate(); err != nil {
		return graduate.Response{}, err
	}

	g, err := s.graduates.Upsert(ctx, graduate.Graduate{
		UserID:    userID,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Skills:    req.Skills,
		Education: req.Education,
		Interests: req.Interests,
	})
	if err != nil {
		return graduate.Response{}, err
	}

	s.invalidateMatches(ctx, g.ID)

	return graduate.ToResponse(g), nil
}

// SubmitAssessment implements GraduateService.
func (s *GraduateServiceImpl) SubmitAssessment(ctx context.Context, userID string, req graduate.SubmitAssessmentRequest) (graduate.Response, error) {
	if err := req.Validate(); err != nil {
		return graduate.Response{}, err
	}

	g, err := s.graduates.GetByUserID(ctx, userID)
	if err != nil {
		return graduate.Response{}, err
	}
	if g.FirstName == "" && g.LastName == "" {
		return graduate.Response{}, graduate.ErrProfileIncomplete
	}

	embedding, err := s.ai.Embed(ctx, s.profileText(g, req.Answers))
	if err != nil {
		return graduate.Response{}, err
	}

	assessment := graduate.Assessment{
		SubmittedAt: time.Now(),
		Embedding:   embedding,
	}

	feedback, err := s.ai.GenerateFeedback(ctx, g.Skills, g.Interests, req.Answers)
	if err != nil {
		// Feedback is advisory; the embedding is what matching needs.
		slog.Error("failed to generate assessment feedback", "graduate_id", g.ID, "error", err)
	} else {
		assessment.Feedback = feedback.Feedback
	}

	if err := s.graduates.SetAssessment(ctx, g.ID, assessment); err != nil {
		return graduate.Response{}, err
	}

	s.invalidateMatches(ctx, g.ID)

	g.Assessment = &assessment
	return graduate.ToResponse(g), nil
}

// profileText flattens the profile and answers into the text the embedder
// scores.
func (s *GraduateServiceImpl) profileText(g graduate.Graduate, answers string) string {
	parts := []string{
		"Skills: " + strings.Join(g.Skills, ", "),
		"Interests: " + strings.Join(g.Interests, ", "),
		fmt.Sprintf("Education: %s in %s, %s", g.Education.Degree, g.Education.Field, g.Education.Institution),
		"Assessment: " + answers,
	}
	return strings.Join(parts, "\n")
}

func matchCacheKey(graduateID string) string {
	return "matches:graduate:" + graduateID
}

func (s *GraduateServiceImpl) invalidateMatches(ctx context.Context, graduateID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, matchCacheKey(graduateID)); err != nil {
		slog.Error("failed to invalidate match cache", "graduate_id", graduateID, "error", err)
	}
}

// Matches implements GraduateService.
func (s *GraduateServiceImpl) Matches(ctx context.Context, userID string, limit int) ([]match.Response, error) {
	g, err := s.graduates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if g.Assessment == nil || len(g.Assessment.Embedding) == 0 {
		return nil, graduate.ErrAssessmentRequired
	}
	if limit <= 0 {
		limit = 20
	}

	if s.cache != nil {
		var cached []match.Response
		if err := s.cache.Get(ctx, matchCacheKey(g.ID), &cached); err == nil {
			if len(cached) > limit {
				cached = cached[:limit]
			}
			return cached, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			slog.Error("match cache read failed", "graduate_id", g.ID, "error", err)
		}
	}

	responses, err := s.scoreMatches(ctx, g)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, matchCacheKey(g.ID), responses, matchCacheTTL); err != nil {
			slog.Error("match cache write failed", "graduate_id", g.ID, "error", err)
		}
	}

	if len(responses) > limit {
		responses = responses[:limit]
	}
	return responses, nil
}

func (s *GraduateServiceImpl) scoreMatches(ctx context.Context, g graduate.Graduate) ([]match.Response, error) {
	jobs, err := s.jobs.ActiveWithEmbeddings(ctx)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return []match.Response{}, nil
	}

	titles := make(map[string]string, len(jobs))
	jobEmbeddings := make([]ai.JobEmbedding, len(jobs))
	for i, j := range jobs {
		jobEmbeddings[i] = ai.JobEmbedding{ID: j.ID, Embedding: j.Embedding}
		titles[j.ID] = j.Title
	}

	scores, err := s.ai.Match(ctx, g.Assessment.Embedding, jobEmbeddings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", match.ErrScoringFailed, err)
	}

	responses := make([]match.Response, 0, len(scores))
	for _, sc := range scores {
		m, err := s.matches.Upsert(ctx, match.Match{
			GraduateID: g.ID,
			JobID:      sc.ID,
			Score:      sc.Score,
		})
		if err != nil {
			return nil, err
		}
		responses = append(responses, match.Response{
			ID:         m.ID,
			GraduateID: m.GraduateID,
			JobID:      m.JobID,
			JobTitle:   titles[m.JobID],
			Score:      m.Score,
		})
	}
	return responses, nil
}
