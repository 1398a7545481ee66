package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"verse-report/internal/repository"
)

// TransmissionQueryBuilder builds the dynamic WHERE clause shared by the
// paginated list query and its COUNT twin, so the two can never drift apart.
type TransmissionQueryBuilder struct{}

func NewTransmissionQueryBuilder() *TransmissionQueryBuilder {
	return &TransmissionQueryBuilder{}
}

// BuildWhereClause renders the filter into SQL with numbered placeholders.
// tableAlias prefixes column references when the query joins other tables
// (pass "" for unaliased queries). The base predicate published_at IS NOT
// NULL is always present: unpublished drafts never reach listing views.
func (qb *TransmissionQueryBuilder) BuildWhereClause(q repository.TransmissionQuery, tableAlias string) (string, []any) {
	prefix := ""
	if tableAlias != "" {
		prefix = tableAlias + "."
	}

	conditions := []string{prefix + "published_at IS NOT NULL"}
	args := make([]any, 0, 4)

	if len(q.TagIDs) > 0 {
		args = append(args, pq.Array(q.TagIDs))
		// OR semantics across tags: one matching association row qualifies.
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM transmission_tags tt WHERE tt.transmission_id = %sid AND tt.tag_id = ANY($%d))",
			prefix, len(args)))
	}
	if q.PublishedFrom != nil {
		args = append(args, *q.PublishedFrom)
		conditions = append(conditions, fmt.Sprintf("%spublished_at >= $%d", prefix, len(args)))
	}
	if q.PublishedTo != nil {
		args = append(args, *q.PublishedTo)
		conditions = append(conditions, fmt.Sprintf("%spublished_at < $%d", prefix, len(args)))
	}
	if q.PublisherID != nil {
		args = append(args, *q.PublisherID)
		conditions = append(conditions, fmt.Sprintf("%spublisher_id = $%d", prefix, len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
