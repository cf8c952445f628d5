package timelog

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

// DailyReportInput holds the parameters for the daily report query.
// StartDate and EndDate may carry any time-of-day; the service normalizes
// them to whole-day UTC boundaries before querying.
type DailyReportInput struct {
	StartDate time.Time
	EndDate   time.Time
	Page      int
	Limit     int
	UserID    *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DailyReportInput) Validate() error {
	var errs []domain.FieldError

	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if i.EndDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "required"})
	}
	if !i.StartDate.IsZero() && !i.EndDate.IsZero() && i.StartDate.After(i.EndDate) {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "must not be after end_date"})
	}
	if i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 1"})
	}
	if i.Limit < 1 || i.Limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// dayStart normalizes t to 00:00:00.000 UTC of its calendar day.
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayEnd normalizes t to 23:59:59.999 UTC of its calendar day.
func dayEnd(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}
