package dto_test

import (
	"net/http/httptest"
	"testing"

	"handy/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "provider_id",
				Operator: dto.FilterIsNull,
				Table:    "bookings",
			},
			wantWhere: "bookings.provider_id IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name: "in with slice",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"pending", "accepted"},
				Operator: dto.FilterOperatorIn,
			},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "accepted"},
		},
		{
			name: "not eq with arg name",
			filter: dto.Filter{
				ArgName:  "excluded_status",
				Field:    "status",
				Value:    "rejected",
				Operator: dto.FilterOperatorNotEq,
			},
			wantWhere: "status != :excluded_status",
			wantArgs:  map[string]any{"excluded_status": "rejected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "provider_id", Operator: dto.FilterIsNull},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(status = :status AND provider_id IS NULL)", where)
	assert.Equal(t, map[string]any{"status": "pending"}, args)
}

func TestFilterGroupEmpty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParamsFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/jobs?page=2&limit=25&sort_by=scheduled_at&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "scheduled_at", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestQueryParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/jobs", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}
