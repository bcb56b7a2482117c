package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workmate/commerce-api/pkg/pagination"
)

func TestPaginationParams_Validate(t *testing.T) {
	params := &pagination.PaginationParams{Page: 0, PerPage: 0}
	params.Validate()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 15, params.PerPage)

	params = &pagination.PaginationParams{Page: 3, PerPage: 500}
	params.Validate()
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 100, params.PerPage)
}

func TestPaginationParams_Offset(t *testing.T) {
	params := &pagination.PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, params.Offset())
}

func TestNewPagination(t *testing.T) {
	pag := pagination.NewPagination(2, 15, 31)
	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	last := pagination.NewPagination(3, 15, 31)
	assert.False(t, last.HasNext)
}
