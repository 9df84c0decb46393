package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/policy"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (*vaultService, *mock.MockEntryRepository, *mock.MockSealer) {
	t.Helper()
	entries := mock.NewMockEntryRepository(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	svc := NewVaultService(entries, sealer, logger.Nop()).(*vaultService)
	svc.ids = fixedIDs("0190f000-0000-7000-8000-000000000001")
	svc.now = func() time.Time { return testNow }

	return svc, entries, sealer
}

func mustOwner(t *testing.T, id int64) models.Owner {
	t.Helper()
	o, err := models.NewOwner(id)
	require.NoError(t, err)
	return o
}

// ── CreateEntry ──────────────────────────────────────────────────────────────

func TestVaultService_CreateEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, sealer := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	owner := mustOwner(t, 1)

	blob := []byte{0x01, 0xAA, 0xBB}
	gomock.InOrder(
		sealer.EXPECT().Seal(ctx, "x7!Qz2@Lm").Return(blob, nil),
		entries.EXPECT().CreateEntry(ctx, models.VaultEntry{
			ID:         "0190f000-0000-7000-8000-000000000001",
			OwnerID:    1,
			Label:      "Email",
			Ciphertext: blob,
			CreatedAt:  testNow,
			UpdatedAt:  testNow,
		}).Return(nil),
	)

	id, err := svc.CreateEntry(ctx, owner, "  Email  ", "x7!Qz2@Lm")
	require.NoError(t, err)
	assert.Equal(t, "0190f000-0000-7000-8000-000000000001", id)
}

func TestVaultService_CreateEntry_WeakSecretAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, sealer := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	sealer.EXPECT().Seal(ctx, "a").Return([]byte{1}, nil)
	entries.EXPECT().CreateEntry(ctx, gomock.Any()).Return(nil)

	assert.False(t, svc.AdviseSecret("a").Valid)

	_, err := svc.CreateEntry(ctx, mustOwner(t, 1), "PIN", "a")
	require.NoError(t, err)
}

func TestVaultService_CreateEntry_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		ownerID int64
		label   string
		secret  string
		wantErr error
	}{
		{name: "zero owner", ownerID: 0, label: "Email", secret: "s", wantErr: ErrInvalidOwner},
		{name: "empty label", ownerID: 1, label: "", secret: "s", wantErr: ErrInvalidInput},
		{name: "whitespace label", ownerID: 1, label: " \t ", secret: "s", wantErr: ErrInvalidInput},
		{name: "long label", ownerID: 1, label: strings.Repeat("a", 256), secret: "s", wantErr: ErrInvalidInput},
		{name: "empty secret", ownerID: 1, label: "Email", secret: "", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no sealer or repository call is expected
			svc, _, _ := newTestVaultSvc(t, ctrl)

			var owner models.Owner
			if tt.ownerID > 0 {
				owner = mustOwner(t, tt.ownerID)
			}

			_, err := svc.CreateEntry(context.Background(), owner, tt.label, tt.secret)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVaultService_CreateEntry_SealError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, sealer := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	sealer.EXPECT().Seal(ctx, gomock.Any()).Return(nil, fmt.Errorf("load master key: %w", crypto.ErrKeyStoreUnavailable))

	_, err := svc.CreateEntry(ctx, mustOwner(t, 1), "Email", "secret")
	assert.ErrorIs(t, err, crypto.ErrKeyStoreUnavailable)
}

func TestVaultService_CreateEntry_StoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{name: "conflict", storeErr: fmt.Errorf("%w: duplicate", store.ErrConflict), wantErr: ErrStorageConflict},
		{name: "unavailable", storeErr: fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrUnavailable), wantErr: ErrStorageUnavailable},
		{name: "unclassified", storeErr: fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("no such table: vault_entries")), wantErr: ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, entries, sealer := newTestVaultSvc(t, ctrl)
			ctx := context.Background()

			sealer.EXPECT().Seal(ctx, gomock.Any()).Return([]byte{1}, nil)
			entries.EXPECT().CreateEntry(ctx, gomock.Any()).Return(tt.storeErr)

			_, err := svc.CreateEntry(ctx, mustOwner(t, 1), "Email", "secret")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── ListEntries ──────────────────────────────────────────────────────────────

func TestVaultService_ListEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	want := []models.EntrySummary{{ID: "a", Label: "Email"}, {ID: "b", Label: "Bank"}}
	entries.EXPECT().ListEntries(ctx, int64(3)).Return(want, nil)

	got, err := svc.ListEntries(ctx, mustOwner(t, 3))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.ListEntries(ctx, models.Owner{})
	assert.ErrorIs(t, err, ErrInvalidOwner)
}

func TestVaultService_ListEntries_LogsWithoutContextLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestVaultSvc(t, ctrl)

	var own, attached strings.Builder
	svc.logger = logger.New("vault-test", &own, zerolog.DebugLevel)

	entries.EXPECT().ListEntries(gomock.Any(), int64(3)).Return(nil, store.ErrUnavailable).Times(2)

	_, err := svc.ListEntries(context.Background(), mustOwner(t, 3))
	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Contains(t, own.String(), "error listing vault entries")

	own.Reset()
	ctx := logger.New("ctx", &attached, zerolog.DebugLevel).WithContext(context.Background())
	_, err = svc.ListEntries(ctx, mustOwner(t, 3))
	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Contains(t, attached.String(), "error listing vault entries")
	assert.Empty(t, own.String())
}

// ── RevealSecret ─────────────────────────────────────────────────────────────

func TestVaultService_RevealSecret_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, sealer := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	blob := []byte{1, 2, 3}
	gomock.InOrder(
		entries.EXPECT().GetEntry(ctx, int64(1), "e1").Return(models.VaultEntry{ID: "e1", OwnerID: 1, Ciphertext: blob}, nil),
		sealer.EXPECT().Open(ctx, blob).Return("x7!Qz2@Lm", nil),
	)

	secret, err := svc.RevealSecret(ctx, mustOwner(t, 1), "e1")
	require.NoError(t, err)
	assert.Equal(t, "x7!Qz2@Lm", secret)
}

func TestVaultService_RevealSecret_ForeignEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().GetEntry(ctx, int64(2), "owned-by-1").Return(models.VaultEntry{}, store.ErrEntryNotFound)

	_, err := svc.RevealSecret(ctx, mustOwner(t, 2), "owned-by-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVaultService_RevealSecret_OpenErrors(t *testing.T) {
	tests := []struct {
		name        string
		openErr     error
		wantErr     error
		wantCorrupt bool
	}{
		{name: "tampered", openErr: crypto.ErrAuthenticationFailed, wantErr: ErrVaultCorrupt, wantCorrupt: true},
		{name: "malformed", openErr: crypto.ErrMalformedCiphertext, wantErr: ErrVaultCorrupt, wantCorrupt: true},
		{name: "key unavailable", openErr: fmt.Errorf("load master key: %w", crypto.ErrKeyStoreUnavailable), wantErr: crypto.ErrKeyStoreUnavailable},
		{name: "key corrupt", openErr: fmt.Errorf("load master key: %w", crypto.ErrKeyCorrupt), wantErr: crypto.ErrKeyCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, entries, sealer := newTestVaultSvc(t, ctrl)
			ctx := context.Background()

			entries.EXPECT().GetEntry(ctx, int64(1), "e1").Return(models.VaultEntry{Ciphertext: []byte{1}}, nil)
			sealer.EXPECT().Open(ctx, gomock.Any()).Return("", tt.openErr)

			_, err := svc.RevealSecret(ctx, mustOwner(t, 1), "e1")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCorrupt, errors.Is(err, ErrVaultCorrupt))
		})
	}
}

func TestVaultService_RevealSecret_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.RevealSecret(context.Background(), mustOwner(t, 1), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// ── UpdateSecret / RenameEntry / DeleteEntry ─────────────────────────────────

func TestVaultService_UpdateSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, sealer := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	blob := []byte{9, 9}
	gomock.InOrder(
		sealer.EXPECT().Seal(ctx, "new-secret").Return(blob, nil),
		entries.EXPECT().UpdateCiphertext(ctx, int64(1), "e1", blob, testNow).Return(nil),
	)

	require.NoError(t, svc.UpdateSecret(ctx, mustOwner(t, 1), "e1", "new-secret"))
}

func TestVaultService_UpdateSecret_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, sealer := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	sealer.EXPECT().Seal(ctx, gomock.Any()).Return([]byte{1}, nil)
	entries.EXPECT().UpdateCiphertext(ctx, int64(1), "gone", gomock.Any(), gomock.Any()).Return(store.ErrEntryNotFound)

	err := svc.UpdateSecret(ctx, mustOwner(t, 1), "gone", "s")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVaultService_RenameEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().UpdateLabel(ctx, int64(1), "e1", "Gmail Account", testNow).Return(nil)

	require.NoError(t, svc.RenameEntry(ctx, mustOwner(t, 1), "e1", " Gmail Account "))
	assert.ErrorIs(t, svc.RenameEntry(ctx, mustOwner(t, 1), "e1", ""), ErrInvalidInput)
}

func TestVaultService_DeleteEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		entries.EXPECT().DeleteEntry(ctx, int64(1), "e1").Return(nil),
		entries.EXPECT().DeleteEntry(ctx, int64(1), "e1").Return(store.ErrEntryNotFound),
	)

	require.NoError(t, svc.DeleteEntry(ctx, mustOwner(t, 1), "e1"))
	assert.ErrorIs(t, svc.DeleteEntry(ctx, mustOwner(t, 1), "e1"), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteEntry(ctx, models.Owner{}, "e1"), ErrInvalidOwner)
}

func TestVaultService_AdviseSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestVaultSvc(t, ctrl)

	v := svc.AdviseSecret("short")
	assert.False(t, v.Valid)
	assert.True(t, v.Failing(policy.RuleMinLength))

	assert.True(t, svc.AdviseSecret("Abcdefg1").Valid)
}
