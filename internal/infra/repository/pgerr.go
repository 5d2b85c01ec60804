package repository

import (
	"errors"

	"tablebook/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories classify:
// 23505: unique_violation
// 23P01: exclusion_violation (overlapping slot on the same table)
const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

func classify(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
