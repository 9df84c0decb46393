package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	AuthService  AuthService
	VaultService VaultService
}

func NewServices(repositories *store.Repositories, sealer crypto.Sealer, hasher crypto.PasswordHasher, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repositories.UserRepository, hasher, logger),
		VaultService: NewVaultService(repositories.EntryRepository, sealer, logger),
	}
}
