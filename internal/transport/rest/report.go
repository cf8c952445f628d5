package rest

import (
	"fmt"
	"net/http"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
	"github.com/heartmarshall/tasktime-backend/internal/service/timelog"
)

type taskTimeEntryResponse struct {
	TaskID    *string `json:"taskId"`
	TaskTitle string  `json:"taskTitle"`
	Minutes   float64 `json:"minutes"`
	Sessions  int     `json:"sessions"`
}

type dailyReportRowResponse struct {
	Date         string                  `json:"date"`
	UserID       string                  `json:"userId"`
	UserName     string                  `json:"userName"`
	TotalMinutes float64                 `json:"totalMinutes"`
	TaskCount    int                     `json:"taskCount"`
	Entries      []taskTimeEntryResponse `json:"entries"`
}

type rangeMetricsResponse struct {
	TotalMinutes          float64 `json:"totalMinutes"`
	TotalUsers            int     `json:"totalUsers"`
	TotalTasks            int     `json:"totalTasks"`
	TotalSessions         int     `json:"totalSessions"`
	AverageMinutesPerUser float64 `json:"averageMinutesPerUser"`
	AverageMinutesPerTask float64 `json:"averageMinutesPerTask"`
}

type dailyReportResponse struct {
	Rows       []dailyReportRowResponse `json:"rows"`
	Metrics    rangeMetricsResponse     `json:"metrics"`
	Pagination paginationResponse       `json:"pagination"`
}

// DailyReport handles GET /timelogs/daily with startDate, endDate, page,
// limit, and optional userId query params. Dates are YYYY-MM-DD and are
// interpreted as whole UTC days. The queried range is capped by
// report.max_range_days.
func (h *TimeLogHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	input := timelog.DailyReportInput{}

	var err error
	if input.StartDate, err = queryDate(r, "startDate"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate, want YYYY-MM-DD")
		return
	}
	if input.EndDate, err = queryDate(r, "endDate"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate, want YYYY-MM-DD")
		return
	}
	if input.Page, err = queryInt(r, "page", 1); err != nil {
		writeError(w, http.StatusBadRequest, "invalid page")
		return
	}
	if input.Limit, err = queryInt(r, "limit", h.report.DefaultPageSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	if input.UserID, err = queryUUID(r, "userId"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	if input.Limit > h.report.MaxPageSize {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("limit must not exceed %d", h.report.MaxPageSize))
		return
	}

	if !input.StartDate.IsZero() && !input.EndDate.IsZero() {
		rangeDays := int(input.EndDate.Sub(input.StartDate).Hours()/24) + 1
		if rangeDays > h.report.MaxRangeDays {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("date range exceeds %d days", h.report.MaxRangeDays))
			return
		}
	}

	report, err := h.svc.DailyReport(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDailyReportResponse(report))
}

func toDailyReportResponse(report *domain.DailyReportPage) dailyReportResponse {
	rows := make([]dailyReportRowResponse, 0, len(report.Rows))
	for _, row := range report.Rows {
		entries := make([]taskTimeEntryResponse, 0, len(row.Entries))
		for _, e := range row.Entries {
			entry := taskTimeEntryResponse{
				TaskTitle: e.TaskTitle,
				Minutes:   e.Minutes,
				Sessions:  e.Sessions,
			}
			if e.TaskID != nil {
				s := e.TaskID.String()
				entry.TaskID = &s
			}
			entries = append(entries, entry)
		}
		rows = append(rows, dailyReportRowResponse{
			Date:         row.Date.Format("2006-01-02"),
			UserID:       row.UserID.String(),
			UserName:     row.UserName,
			TotalMinutes: row.TotalMinutes,
			TaskCount:    row.TaskCount,
			Entries:      entries,
		})
	}

	return dailyReportResponse{
		Rows: rows,
		Metrics: rangeMetricsResponse{
			TotalMinutes:          report.Metrics.TotalMinutes,
			TotalUsers:            report.Metrics.TotalUsers,
			TotalTasks:            report.Metrics.TotalTasks,
			TotalSessions:         report.Metrics.TotalSessions,
			AverageMinutesPerUser: report.Metrics.AverageMinutesPerUser,
			AverageMinutesPerTask: report.Metrics.AverageMinutesPerTask,
		},
		Pagination: toPaginationResponse(report.Pagination),
	}
}
