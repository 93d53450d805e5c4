package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Users    UserRepository
	Scans    ScanRepository
	Activity ActivityLogRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Scans:    NewScanRepository(db),
		Activity: NewActivityLogRepository(db),
	}
}
