package generations

import (
	"time"

	"resume-latex/resume/model"
)

// Generation is the audit record of one synthesized document. It holds
// metadata only; résumé text is never stored.
type Generation struct {
	ID            string
	RequestID     string
	ContentSHA256 string
	SizeBytes     int
	Counts        model.Counts
	Duration      time.Duration
	CreatedAt     time.Time
}
