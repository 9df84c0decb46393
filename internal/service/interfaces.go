package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/policy"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultService stores and reveals encrypted secrets. Every accessor takes the
// owner capability and an explicit entry id; an entry of another owner is
// reported as [ErrNotFound], exactly like a missing one.
type VaultService interface {
	CreateEntry(ctx context.Context, owner models.Owner, label, secret string) (string, error)
	ListEntries(ctx context.Context, owner models.Owner) ([]models.EntrySummary, error)
	RevealSecret(ctx context.Context, owner models.Owner, id string) (string, error)
	UpdateSecret(ctx context.Context, owner models.Owner, id, newSecret string) error
	RenameEntry(ctx context.Context, owner models.Owner, id, label string) error
	DeleteEntry(ctx context.Context, owner models.Owner, id string) error

	// AdviseSecret rates an entry secret. It never blocks a write.
	AdviseSecret(secret string) policy.Verdict
}

// AuthService manages the master credential. Register, ResetPassword and
// ChangePassword are gated on the master password policy.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (models.Owner, error)
	Login(ctx context.Context, username, password string) (models.Owner, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
	ChangePassword(ctx context.Context, owner models.Owner, current, next string) error
	EvaluatePassword(password string) policy.Verdict
}
