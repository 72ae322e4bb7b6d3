package postgres

import (
	"database/sql"

	"hvz-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.OrganizationRepository
	repository.UserRepository
	repository.GameRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		OrganizationRepository: NewOrganizationRepository(db),
		UserRepository:         NewUserRepository(db),
		GameRepository:         NewGameRepository(db),
	}
}
