package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTimeLog_IsActive(t *testing.T) {
	t.Parallel()

	open := TimeLog{StartedAt: time.Now()}
	if !open.IsActive() {
		t.Error("interval without EndedAt should be active")
	}

	end := time.Now()
	closed := TimeLog{StartedAt: end.Add(-time.Hour), EndedAt: &end}
	if closed.IsActive() {
		t.Error("interval with EndedAt should not be active")
	}
}

func TestTimeLog_Minutes(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  *time.Time
		want float64
	}{
		{"open interval", nil, 0},
		{"half hour", ptr(start.Add(30 * time.Minute)), 30},
		{"ninety seconds", ptr(start.Add(90 * time.Second)), 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := TimeLog{StartedAt: start, EndedAt: tt.end}
			if got := l.Minutes(); got != tt.want {
				t.Errorf("Minutes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		limit      int
		totalItems int
		want       Pagination
	}{
		{
			name: "first of two pages", page: 1, limit: 2, totalItems: 3,
			want: Pagination{CurrentPage: 1, TotalPages: 2, TotalItems: 3, ItemsPerPage: 2, HasNextPage: true, HasPreviousPage: false},
		},
		{
			name: "last page", page: 2, limit: 2, totalItems: 3,
			want: Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 3, ItemsPerPage: 2, HasNextPage: false, HasPreviousPage: true},
		},
		{
			name: "empty result", page: 1, limit: 10, totalItems: 0,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0, ItemsPerPage: 10, HasNextPage: false, HasPreviousPage: false},
		},
		{
			name: "exact fit", page: 2, limit: 5, totalItems: 10,
			want: Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 10, ItemsPerPage: 5, HasNextPage: false, HasPreviousPage: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NewPagination(tt.page, tt.limit, tt.totalItems); got != tt.want {
				t.Errorf("NewPagination(%d, %d, %d) = %+v, want %+v", tt.page, tt.limit, tt.totalItems, got, tt.want)
			}
		})
	}
}

func TestUser_DisplayName(t *testing.T) {
	t.Parallel()

	u := User{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace"}
	if got := u.DisplayName(); got != "Ada Lovelace" {
		t.Errorf("DisplayName() = %q, want %q", got, "Ada Lovelace")
	}

	noLast := User{FirstName: "Ada"}
	if got := noLast.DisplayName(); got != "Ada" {
		t.Errorf("DisplayName() = %q, want %q", got, "Ada")
	}
}

func ptr[T any](v T) *T { return &v }
