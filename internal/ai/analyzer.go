package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"careerhub/internal/config"

	"google.golang.org/genai"
)

var ErrNotConfigured = errors.New("gemini not configured")

type AnalysisInput struct {
	JobTitle       string
	JobDescription string
	RequiredSkills []string
	ResumeText     string
}

type Report struct {
	MatchScore          float64  `json:"match_score"`
	RelevantExperiences []string `json:"relevant_experiences"`
	RelevantSkills      []string `json:"relevant_skills"`
	MissingSkills       []string `json:"missing_skills"`
	Summary             string   `json:"summary"`
	Recommendation      string   `json:"recommendation"`
}

// Analyzer scores a resume against a job posting.
type Analyzer interface {
	Analyze(ctx context.Context, in AnalysisInput) (Report, error)
}

type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

func NewGeminiAnalyzer(ctx context.Context, cfg config.GeminiConfig) (*GeminiAnalyzer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiAnalyzer{client: client, model: cfg.Model}, nil
}

func (a *GeminiAnalyzer) Analyze(ctx context.Context, in AnalysisInput) (Report, error) {
	if a == nil || a.client == nil {
		return Report{}, ErrNotConfigured
	}

	msg := fmt.Sprintf(
		"%s\n\nJob Title:\n%s\n\nRequired Skills:\n%s\n\nJob Description:\n%s\n\nResume:\n%s",
		analysisPrompt(),
		in.JobTitle,
		strings.Join(in.RequiredSkills, ", "),
		in.JobDescription,
		in.ResumeText,
	)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(msg), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return Report{}, fmt.Errorf("generate analysis: %w", err)
	}

	return ParseReport(resp.Text())
}

// ParseReport decodes the model output, tolerating markdown code fences the
// model sometimes wraps JSON in despite the response MIME type.
func ParseReport(raw string) (Report, error) {
	cleaned := CleanJSON(raw)
	if cleaned == "" {
		return Report{}, errors.New("empty response from model")
	}

	var r Report
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		return Report{}, fmt.Errorf("decode analysis response: %w", err)
	}
	return r, nil
}

func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
