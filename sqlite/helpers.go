package sqlite

import (
	"strings"

	"github.com/fwojciec/campusguide"
)

// joinList encodes an ordered list as a single column value.
func joinList(items []string) string {
	return strings.Join(items, campusguide.ListSeparator)
}

// splitList decodes a column value written by joinList.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, campusguide.ListSeparator)
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
