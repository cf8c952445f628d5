package timelog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

// DailyReport validates the query, normalizes the range to whole-day UTC
// boundaries, and returns one page of per-user-per-day rows plus range
// metrics. The validated range is inclusive on both ends.
func (s *Service) DailyReport(ctx context.Context, input DailyReportInput) (*domain.DailyReportPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rangeStart := dayStart(input.StartDate)
	rangeEnd := dayEnd(input.EndDate)

	page, err := s.logs.DailyAggregate(ctx, rangeStart, rangeEnd, input.Page, input.Limit, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("daily aggregate: %w", err)
	}

	return page, nil
}
