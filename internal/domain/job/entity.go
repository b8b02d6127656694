package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting. PostedBy is nil for rows created before owner tracking
// existed; such jobs never show up in a recruiter's application view.
type Job struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Location    string
	JobType     string
	Salary      string
	Description string
	CreatedAt   time.Time
	PostedBy    *uuid.UUID
}
