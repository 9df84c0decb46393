package store

import "github.com/MKhiriev/go-pass-vault/internal/logger"

// Repositories groups every repository built on one [DB].
type Repositories struct {
	EntryRepository EntryRepository
	UserRepository  UserRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		EntryRepository: NewEntryRepository(db, log),
		UserRepository:  NewUserRepository(db, log),
	}
}
