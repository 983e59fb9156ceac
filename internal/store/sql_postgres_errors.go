package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells withRetry whether a failed statement may be
// repeated.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports lost connections (class 08), rolled back transactions
// (class 40, incl. serialization failures and deadlocks), a server that is
// still starting and an exhausted connection limit as Retryable. Everything
// else, non-PostgreSQL errors included, is NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.TooManyConnections:
		return Retryable
	}

	return NonRetryable
}

// IsUniqueViolation reports a duplicate key, i.e. a taken email.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
