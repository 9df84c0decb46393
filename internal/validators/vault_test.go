// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func testOwner(t *testing.T) models.Owner {
	t.Helper()
	owner, err := models.NewOwner(7)
	require.NoError(t, err)
	return owner
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()
	owner := testOwner(t)

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	valid := []any{
		models.CreateEntryRequest{Owner: owner, Label: "Email", Secret: "x7!Qz2@Lm"},
		&models.CreateEntryRequest{Owner: owner, Label: "Email", Secret: "x7!Qz2@Lm"},
		models.EntryRequest{Owner: owner, EntryID: "id-1"},
		&models.EntryRequest{Owner: owner, EntryID: "id-1"},
		models.UpdateSecretRequest{Owner: owner, EntryID: "id-1", Secret: "s"},
		&models.UpdateSecretRequest{Owner: owner, EntryID: "id-1", Secret: "s"},
		models.RenameEntryRequest{Owner: owner, EntryID: "id-1", Label: "Bank"},
		&models.RenameEntryRequest{Owner: owner, EntryID: "id-1", Label: "Bank"},
		models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"},
		&models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"},
		owner,
		&owner,
	}
	for _, obj := range valid {
		assert.NoError(t, v.Validate(ctx, obj), "%T", obj)
	}
}

// ---------------------------------------------------------------------------
// Entry requests
// ---------------------------------------------------------------------------

func TestValidateEntryRequests(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()
	owner := testOwner(t)

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name:    "zero owner",
			obj:     models.CreateEntryRequest{Label: "Email", Secret: "s"},
			wantErr: ErrInvalidOwner,
		},
		{
			name:    "empty label",
			obj:     models.CreateEntryRequest{Owner: owner, Secret: "s"},
			wantErr: ErrEmptyLabel,
		},
		{
			name:    "label too long",
			obj:     models.CreateEntryRequest{Owner: owner, Label: strings.Repeat("é", 256), Secret: "s"},
			wantErr: ErrLabelTooLong,
		},
		{
			name: "label at limit",
			obj:  models.CreateEntryRequest{Owner: owner, Label: strings.Repeat("é", 255), Secret: "s"},
		},
		{
			name:    "empty secret",
			obj:     models.CreateEntryRequest{Owner: owner, Label: "Email"},
			wantErr: ErrEmptySecret,
		},
		{
			name:   "scoped to label only",
			obj:    models.CreateEntryRequest{Label: "Email"},
			fields: []string{FieldLabel},
		},
		{
			name:    "unknown field",
			obj:     models.CreateEntryRequest{Owner: owner, Label: "Email", Secret: "s"},
			fields:  []string{"color"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "blank entry id",
			obj:     models.EntryRequest{Owner: owner, EntryID: "  "},
			wantErr: ErrInvalidEntryID,
		},
		{
			name:    "entry zero owner",
			obj:     &models.EntryRequest{EntryID: "id"},
			wantErr: ErrInvalidOwner,
		},
		{
			name:    "update empty secret",
			obj:     models.UpdateSecretRequest{Owner: owner, EntryID: "id"},
			wantErr: ErrEmptySecret,
		},
		{
			name:    "update missing id",
			obj:     models.UpdateSecretRequest{Owner: owner, Secret: "s"},
			wantErr: ErrInvalidEntryID,
		},
		{
			name:    "rename empty label",
			obj:     models.RenameEntryRequest{Owner: owner, EntryID: "id"},
			wantErr: ErrEmptyLabel,
		},
		{
			name:    "zero owner value",
			obj:     models.Owner{},
			wantErr: ErrInvalidOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// RegisterRequest
// ---------------------------------------------------------------------------

func TestValidateRegister(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	valid := func() models.RegisterRequest {
		return models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"}
	}

	t.Run("empty username", func(t *testing.T) {
		r := valid()
		r.Username = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrEmptyUsername)
	})

	t.Run("username too long", func(t *testing.T) {
		r := valid()
		r.Username = strings.Repeat("a", 256)
		require.ErrorIs(t, v.Validate(ctx, r), ErrUsernameTooLong)
	})

	t.Run("empty password", func(t *testing.T) {
		r := valid()
		r.Password = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrEmptyPassword)
	})

	for _, email := range []string{"", "alice", "alice@", "@example.com", "alice@example", "a b@example.com", "a@b@c.com", "alice@exa mple.com"} {
		t.Run("invalid email "+email, func(t *testing.T) {
			r := valid()
			r.Email = email
			require.ErrorIs(t, v.Validate(ctx, r, FieldEmail), ErrInvalidEmail)
		})
	}

	for _, email := range []string{"a@b.c", "first.last+tag@mail.example.org"} {
		t.Run("valid email "+email, func(t *testing.T) {
			r := valid()
			r.Email = email
			require.NoError(t, v.Validate(ctx, r, FieldEmail))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "Email", NormalizeText("  Email\t\n"))
	// e + combining acute composes to a single code point
	assert.Equal(t, "Caf\u00e9", NormalizeText("Cafe\u0301"))
	assert.Empty(t, NormalizeText("   "))
}
