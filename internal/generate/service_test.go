package generate

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"resume-latex/internal/generations"
	"resume-latex/internal/shared/telemetry"
	"resume-latex/internal/shared/util"
	"resume-latex/resume/latex"
	"resume-latex/resume/model"
)

type failingRepo struct {
	generations.Repo
}

func (failingRepo) Create(ctx context.Context, gen generations.Generation) error {
	return errors.New("db down")
}

func text(s string) *string { return &s }

func minimalRecord() model.ResumeRecord {
	return model.ResumeRecord{
		Personal:   model.PersonalInfo{Name: text("Ada Lovelace"), Email: text("ada@example.com")},
		Experience: []model.ExperienceEntry{{
			Title: text("Engineer"), Company: text("AE"), Location: text("London"), StartDate: text("1842"),
			Responsibilities: []string{},
		}},
		Education:  []model.EducationEntry{},
		Skills:     []model.SkillEntry{},
		Languages:  []model.LanguageEntry{},
		References: []model.ReferenceEntry{},
	}
}

func fixedService(repo generations.Repo) *Service {
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	return &Service{
		Audit: repo,
		Now:   func() time.Time { return now },
		NewID: func() string { return "3f2504e0-4f89-41d3-9a0c-0305e82c3301" },
	}
}

func TestServiceGenerateRecordsAudit(t *testing.T) {
	repo := generations.NewMemoryRepo()
	svc := fixedService(repo)
	rec := minimalRecord()

	res := svc.Generate(context.Background(), "req-1", rec)

	if res.Document != latex.Synthesize(rec) {
		t.Fatalf("service must return the synthesized document unchanged")
	}
	if res.GenerationID == "" {
		t.Fatalf("expected generation id")
	}
	gen, err := repo.GetByID(context.Background(), res.GenerationID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gen.RequestID != "req-1" || gen.SizeBytes != len(res.Document) || gen.Counts.Experience != 1 {
		t.Fatalf("unexpected audit record: %+v", gen)
	}
	if gen.ContentSHA256 != util.HashContent(res.Document) {
		t.Fatalf("audit hash does not match document")
	}
}

func TestServiceGenerateWithoutAudit(t *testing.T) {
	res := NewService(nil).Generate(context.Background(), "", minimalRecord())
	if res.GenerationID != "" {
		t.Fatalf("expected no generation id without audit, got %q", res.GenerationID)
	}
	if res.Document == "" {
		t.Fatalf("expected document")
	}
}

func TestServiceGenerateAuditFailureStillReturnsDocument(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := telemetry.SetLogger(zap.New(core))
	defer restore()

	res := fixedService(failingRepo{}).Generate(context.Background(), "req-2", minimalRecord())

	if res.Document == "" {
		t.Fatalf("expected document despite audit failure")
	}
	if res.GenerationID != "" {
		t.Fatalf("expected empty generation id on audit failure")
	}
	if logs.FilterMessage("generation.record_failed").Len() != 1 {
		t.Fatalf("expected audit failure to be logged")
	}
}

func TestServiceGenerateIgnoresCallerCancellationForAudit(t *testing.T) {
	repo := generations.NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := fixedService(repo).Generate(ctx, "req-3", minimalRecord())
	if res.GenerationID == "" {
		t.Fatalf("expected audit to be recorded after client cancellation")
	}
}
