package usecase

import (
	"context"
	"log"

	"careerhub/internal/ai"
	"careerhub/internal/resume"

	"github.com/google/uuid"
)

// maxResumeBytes caps uploads before extraction even runs.
const maxResumeBytes = 5 << 20

type ResumeUpload struct {
	FileName string
	MimeType string
	Data     []byte
}

type ResumeAnalysisUsecase interface {
	Analyze(ctx context.Context, studentID, jobID uuid.UUID, upload ResumeUpload) (ai.Report, error)
}

type ResumeAnalysis struct {
	jobs     JobUsecase
	analyzer ai.Analyzer
	logger   *log.Logger
}

func NewResumeAnalysisUsecase(jobs JobUsecase, analyzer ai.Analyzer, logger *log.Logger) *ResumeAnalysis {
	return &ResumeAnalysis{jobs: jobs, analyzer: analyzer, logger: logger}
}

// Analyze extracts text from the uploaded resume and scores it against the
// posting. Only publicly visible postings can be analyzed against.
func (u *ResumeAnalysis) Analyze(ctx context.Context, studentID, jobID uuid.UUID, upload ResumeUpload) (ai.Report, error) {
	if len(upload.Data) == 0 || len(upload.Data) > maxResumeBytes {
		return ai.Report{}, ErrInvalidInput
	}
	if u.analyzer == nil {
		return ai.Report{}, ErrUpstream
	}

	posting, err := u.jobs.Get(ctx, jobID, nil)
	if err != nil {
		return ai.Report{}, err
	}

	text, err := resume.ExtractText(upload.MimeType, upload.Data)
	if err != nil {
		// Unsupported formats, corrupt files, and empty documents are all
		// problems with the upload itself.
		return ai.Report{}, ErrInvalidInput
	}

	report, err := u.analyzer.Analyze(ctx, ai.AnalysisInput{
		JobTitle:       posting.Title,
		JobDescription: posting.Description,
		RequiredSkills: posting.Skills,
		ResumeText:     text,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Resume] Analysis failed | student=%s job=%s err=%v", studentID, jobID, err)
		}
		return ai.Report{}, ErrUpstream
	}

	return report, nil
}
