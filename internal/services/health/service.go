package health

import (
	"context"
	"time"
)

// Audit backends reported by Status.
const (
	AuditDisabled = "disabled"
	AuditMemory   = "memory"
	AuditPostgres = "postgres"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Report is the health payload served by the API.
type Report struct {
	OK    bool   `json:"ok"`
	Audit string `json:"audit"`
	Error string `json:"error,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	db      Pinger
	audit   string
	timeout time.Duration
}

// NewService constructs a health service. db may be nil when the audit log is
// in memory or disabled.
func NewService(db Pinger, audit string) *Service {
	if audit == "" {
		audit = AuditDisabled
	}
	return &Service{db: db, audit: audit, timeout: 2 * time.Second}
}

// Status reports whether the process can serve generations. A failing database
// ping marks the report unhealthy; generation itself never needs the database.
func (s *Service) Status(ctx context.Context) Report {
	report := Report{OK: true, Audit: s.audit}
	if s.db == nil {
		return report
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		report.OK = false
		report.Error = "database unreachable"
	}
	return report
}
