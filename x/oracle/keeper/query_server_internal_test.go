package keeper

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"
)

// TestSanitizePagination tests the default and cap applied to page requests
func TestSanitizePagination(t *testing.T) {
	page := sanitizePagination(nil)
	require.Equal(t, uint64(defaultPaginationLimit), page.Limit)

	page = sanitizePagination(&query.PageRequest{})
	require.Equal(t, uint64(defaultPaginationLimit), page.Limit)

	page = sanitizePagination(&query.PageRequest{Limit: 50})
	require.Equal(t, uint64(50), page.Limit)

	page = sanitizePagination(&query.PageRequest{Limit: 5_000})
	require.Equal(t, uint64(maxPaginationLimit), page.Limit)
}
