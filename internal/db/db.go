package db

import "database/sql"

// DB wraps the raw sql.DB so stores depend on a single package-local type.
type DB struct {
	*sql.DB
}
