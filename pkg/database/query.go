package database

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrderBy is returned when an order_by expression names a column
// outside the allow-list or has a malformed direction
var ErrInvalidOrderBy = errors.New("invalid order_by expression")

// ParseOrderBy validates "column [asc|desc]" against allowedColumns.
// An empty expression yields empty column and direction.
func ParseOrderBy(orderBy string, allowedColumns []string) (string, string, error) {
	parts := strings.Fields(orderBy)
	if len(parts) == 0 {
		return "", "", nil
	}
	if len(parts) > 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidOrderBy, orderBy)
	}

	column := strings.ToLower(parts[0])
	allowed := false
	for _, col := range allowedColumns {
		if col == column {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", "", fmt.Errorf("%w: column %q not allowed", ErrInvalidOrderBy, parts[0])
	}

	direction := "ASC"
	if len(parts) == 2 {
		switch strings.ToUpper(parts[1]) {
		case "ASC":
		case "DESC":
			direction = "DESC"
		default:
			return "", "", fmt.Errorf("%w: direction %q", ErrInvalidOrderBy, parts[1])
		}
	}

	return column, direction, nil
}

// BuildOrderByClause renders an ORDER BY clause. The fallback column keeps
// results deterministic when orderBy is empty and breaks ties otherwise.
func BuildOrderByClause(orderBy string, allowedColumns []string, fallback string) (string, error) {
	column, direction, err := ParseOrderBy(orderBy, allowedColumns)
	if err != nil {
		return "", err
	}

	if column == "" {
		return fmt.Sprintf(" ORDER BY %s ASC", fallback), nil
	}
	if column == fallback {
		return fmt.Sprintf(" ORDER BY %s %s", column, direction), nil
	}
	return fmt.Sprintf(" ORDER BY %s %s, %s ASC", column, direction, fallback), nil
}
