// Package ai talks to the external scoring microservice that computes
// embeddings and graduate/job compatibility scores.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// JobEmbedding pairs a job id with its embedding for a match request.
type JobEmbedding struct {
	ID        string    `json:"id"`
	Embedding []float64 `json:"embedding"`
}

// MatchScore is one scored pairing returned by the service.
type MatchScore struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Feedback is the assessment feedback produced for a graduate.
type Feedback struct {
	Feedback        string   `json:"feedback"`
	SkillGaps       []string `json:"skillGaps"`
	Recommendations []string `json:"recommendations"`
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

type matchRequest struct {
	GraduateEmbedding []float64      `json:"graduate_embedding"`
	JobEmbeddings     []JobEmbedding `json:"job_embeddings"`
}

type matchResponse struct {
	Matches []MatchScore `json:"matches"`
}

type feedbackRequest struct {
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Answers   string   `json:"answers"`
}

// Embed generates an embedding for free text (graduate profile or job description).
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	var resp embedResponse
	if err := c.post(ctx, "/embed", embedRequest{Text: text}, &resp); err != nil {
		return nil, fmt.Errorf("generate embedding: %w", err)
	}
	return resp.Embedding, nil
}

// Match scores a graduate embedding against a set of job embeddings and
// returns the ranked results.
func (c *Client) Match(ctx context.Context, graduateEmbedding []float64, jobs []JobEmbedding) ([]MatchScore, error) {
	var resp matchResponse
	req := matchRequest{GraduateEmbedding: graduateEmbedding, JobEmbeddings: jobs}
	if err := c.post(ctx, "/match", req, &resp); err != nil {
		return nil, fmt.Errorf("find matches: %w", err)
	}
	return resp.Matches, nil
}

// GenerateFeedback produces assessment feedback for a graduate submission.
func (c *Client) GenerateFeedback(ctx context.Context, skills, interests []string, answers string) (*Feedback, error) {
	var resp Feedback
	req := feedbackRequest{Skills: skills, Interests: interests, Answers: answers}
	if err := c.post(ctx, "/feedback", req, &resp); err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}
	return &resp, nil
}

// Health reports whether the scoring service answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ai service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ai service returned status %d: %s", resp.StatusCode, snippet)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
