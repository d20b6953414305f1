// Package postgres は各リポジトリの PostgreSQL 実装を提供します。
package postgres

// PostgreSQL の SQLSTATE コード。
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)
