package mysql

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// withLock adds SELECT ... FOR UPDATE on dialects that support row locks.
// sqlite (tests) serializes writers on the database lock instead, so the
// clause is skipped there rather than producing invalid SQL.
func withLock(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
