package generate

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-latex/internal/generations"
	"resume-latex/internal/shared/metrics"
	"resume-latex/internal/shared/telemetry"
	"resume-latex/internal/shared/util"
	"resume-latex/resume/latex"
	"resume-latex/resume/model"
)

const auditTimeout = 2 * time.Second

// Result is a synthesized document and its audit identifiers.
type Result struct {
	Document      string
	GenerationID  string
	ContentSHA256 string
	Counts        model.Counts
}

// Service synthesizes documents and records an audit entry per generation.
type Service struct {
	// Audit is optional; nil disables the audit log.
	Audit generations.Repo
	Now   func() time.Time
	NewID func() string
}

// NewService constructs a Service with wall-clock time and UUID ids.
func NewService(audit generations.Repo) *Service {
	return &Service{
		Audit: audit,
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// Generate renders rec. Synthesis cannot fail for a validated record; audit
// failures are logged and never affect the returned document.
func (s *Service) Generate(ctx context.Context, requestID string, rec model.ResumeRecord) Result {
	start := s.now()
	doc := latex.Synthesize(rec)
	elapsed := s.now().Sub(start)

	metrics.IncGeneration(metrics.ResultOK)
	metrics.ObserveGeneration(elapsed, len(doc))

	res := Result{
		Document:      doc,
		ContentSHA256: util.HashContent(doc),
		Counts:        rec.Counts(),
	}
	if s.Audit == nil {
		return res
	}

	gen := generations.Generation{
		ID:            s.newID(),
		RequestID:     requestID,
		ContentSHA256: res.ContentSHA256,
		SizeBytes:     len(doc),
		Counts:        res.Counts,
		Duration:      elapsed,
		CreatedAt:     start.UTC(),
	}
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()
	if err := s.Audit.Create(auditCtx, gen); err != nil {
		telemetry.Error("generation.record_failed", map[string]any{
			"request_id":    requestID,
			"generation_id": gen.ID,
			"error":         err,
		})
		return res
	}
	res.GenerationID = gen.ID
	return res
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}
