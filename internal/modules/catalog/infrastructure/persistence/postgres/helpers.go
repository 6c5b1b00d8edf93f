package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// requireRow turns a zero-row write into notFound.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// inQuery expands "IN (?)" for ids and rebinds for the connection's driver.
func inQuery(db *sqlx.DB, query string, ids []uuid.UUID) (string, []interface{}, error) {
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return "", nil, fmt.Errorf("expand ids: %w", err)
	}
	return db.Rebind(q), args, nil
}

func likePattern(s string) string {
	return "%" + s + "%"
}
