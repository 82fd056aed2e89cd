package dto_test

import (
	"net/http"
	"net/url"
	"palmera/shared/constant"
	"palmera/shared/dto"
	"palmera/shared/model"
	"palmera/shared/timezone"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "check_in",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "check_in",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortDir: "DESC",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "guest_email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:   3,
				Limit:  constant.DefaultValueLimit,
				SortBy: "guest_email",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		expected string
	}{
		{
			name:     "equality with table prefix",
			filter:   dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "bookings"},
			expected: "bookings.status = :status",
		},
		{
			name:     "like is case insensitive",
			filter:   dto.Filter{Field: "guest_email", Value: "guest", Operator: dto.FilterOperatorLike},
			expected: "LOWER(guest_email) LIKE LOWER(:guest_email) ",
		},
		{
			name:     "greater or equal",
			filter:   dto.Filter{Field: "check_in", Value: "2026-09-01", Operator: dto.FilterOperatorGreaterEq},
			expected: "check_in >= :check_in",
		},
		{
			name:     "is null",
			filter:   dto.Filter{Field: "payment_session_id", Operator: dto.FilterIsNull},
			expected: "payment_session_id IS NULL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, _ := tt.filter.GetWhereClause()
			if where != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, where)
			}
		})
	}
}

func TestFilter_GetWhereClauseIn(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"pending", "confirmed"},
		Operator: dto.FilterOperatorIn,
	}

	where, args := filter.GetWhereClause()

	if where != "status IN (:status_0, :status_1) " {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["status_0"] != "pending" || args["status_1"] != "confirmed" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "room_type_id", Value: "room-id", Operator: dto.FilterOperatorEq, ArgName: "room"},
		},
	}

	where, args := group.GetWhereClause()

	if where != "(status = :status AND room_type_id = :room)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}

	empty := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}
	if where, _ := empty.GetWhereClause(); where != "" {
		t.Errorf("expected empty clause, got %q", where)
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}
