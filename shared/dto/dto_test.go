package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"lotus/shared/constant"
	"lotus/shared/dto"
	"lotus/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

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
				"sort_by":  "start_time",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "start_time",
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
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "with unrecognized sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "created_at",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:   3,
				Limit:  constant.DefaultValueLimit,
				SortBy: "created_at",
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
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "status",
				Value:    "done",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "done"},
		},
		{
			name: "greater or equal with explicit arg name",
			filter: dto.Filter{
				ArgName:  "range_start",
				Field:    "start_time",
				Value:    "2025-06-01",
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.start_time >= :range_start",
			wantArgs:  map[string]any{"range_start": "2025-06-01"},
		},
		{
			name: "less than",
			filter: dto.Filter{
				Field:    "start_time",
				Value:    "2025-07-01",
				Operator: dto.FilterOperatorLess,
			},
			wantWhere: "start_time < :start_time",
			wantArgs:  map[string]any{"start_time": "2025-07-01"},
		},
		{
			name: "in with slice expands named args",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"pending", "in_progress"},
				Operator: dto.FilterOperatorIn,
			},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "in_progress"},
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "status",
				Value:    "done",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where clause %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if got, ok := args[key]; !ok {
					t.Errorf("expected arg %s to exist", key)
				} else if got != want {
					t.Errorf("expected arg %s to be %v, got %v", key, want, got)
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields nothing", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()
		if where != "" {
			t.Errorf("expected empty where clause, got %q", where)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("filters join with AND by default", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "status", Value: "done", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "therapist_id", Value: "t-1", Operator: dto.FilterOperatorEq},
			},
		}

		where, args := group.GetWhereClause()
		expected := "(status = :status AND therapist_id = :therapist_id)"
		if where != expected {
			t.Errorf("expected %q, got %q", expected, where)
		}
		if args["status"] != "done" || args["therapist_id"] != "t-1" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("explicit OR operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, ArgName: "status_a"},
				dto.Filter{Field: "status", Value: "in_progress", Operator: dto.FilterOperatorEq, ArgName: "status_b"},
			},
		}

		where, _ := group.GetWhereClause()
		expected := "(status = :status_a OR status = :status_b)"
		if where != expected {
			t.Errorf("expected %q, got %q", expected, where)
		}
	})

	t.Run("nested group", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "therapist_id", Value: "t-1", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, ArgName: "status_a"},
						dto.Filter{Field: "status", Value: "in_progress", Operator: dto.FilterOperatorEq, ArgName: "status_b"},
					},
				},
			},
		}

		where, args := group.GetWhereClause()
		expected := "(therapist_id = :therapist_id AND (status = :status_a OR status = :status_b))"
		if where != expected {
			t.Errorf("expected %q, got %q", expected, where)
		}
		if len(args) != 3 {
			t.Errorf("expected 3 args, got %d", len(args))
		}
	})
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}
