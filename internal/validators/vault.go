package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
	"golang.org/x/text/unicode/norm"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldOwner targets the owner capability of a request.
	FieldOwner = "owner"

	// FieldEntryID targets the entry identifier of a request.
	FieldEntryID = "entry_id"

	// FieldLabel targets the user-visible entry label.
	FieldLabel = "label"

	// FieldSecret targets the plaintext secret of a request.
	FieldSecret = "secret"

	// FieldUsername targets the master credential username.
	FieldUsername = "username"

	// FieldEmail targets the master credential email address.
	FieldEmail = "email"

	// FieldPassword targets the master password presence. Strength is
	// checked by the policy engine, not here.
	FieldPassword = "password"
)

// MaxLabelLength and MaxUsernameLength bound text columns, in characters.
const (
	MaxLabelLength    = 255
	MaxUsernameLength = 255
	maxEmailLength    = 255
)

var emailPattern = regexp.MustCompile(`^[^@ \t\r\n]+@[^@ \t\r\n]+\.[^@ \t\r\n]+$`)

// NormalizeText trims surrounding whitespace and converts s to Unicode NFC,
// so visually identical labels and usernames compare and sort equal.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// VaultValidator implements the Validator interface for the vault request
// models: CreateEntryRequest, EntryRequest, UpdateSecretRequest,
// RenameEntryRequest, RegisterRequest and Owner.
//
// It expects text fields already passed through [NormalizeText] and
// supports both value and pointer forms of every model.
type VaultValidator struct {
}

// NewVaultValidator constructs a new VaultValidator and returns it as the
// Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the model is validated.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateEntryRequest:
		return v.validateCreateEntry(value, fields...)
	case *models.CreateEntryRequest:
		return v.validateCreateEntry(*value, fields...)
	case models.EntryRequest:
		return v.validateEntry(value, fields...)
	case *models.EntryRequest:
		return v.validateEntry(*value, fields...)
	case models.UpdateSecretRequest:
		return v.validateUpdateSecret(value, fields...)
	case *models.UpdateSecretRequest:
		return v.validateUpdateSecret(*value, fields...)
	case models.RenameEntryRequest:
		return v.validateRenameEntry(value, fields...)
	case *models.RenameEntryRequest:
		return v.validateRenameEntry(*value, fields...)
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.Owner:
		return validateOwner(value)
	case *models.Owner:
		return validateOwner(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateCreateEntry(r models.CreateEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldLabel, FieldSecret}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldOwner:
			err = validateOwner(r.Owner)
		case FieldLabel:
			err = validateLabel(r.Label)
		case FieldSecret:
			err = validateSecret(r.Secret)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *VaultValidator) validateEntry(r models.EntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldEntryID}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldOwner:
			err = validateOwner(r.Owner)
		case FieldEntryID:
			err = validateEntryID(r.EntryID)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *VaultValidator) validateUpdateSecret(r models.UpdateSecretRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldEntryID, FieldSecret}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldOwner:
			err = validateOwner(r.Owner)
		case FieldEntryID:
			err = validateEntryID(r.EntryID)
		case FieldSecret:
			err = validateSecret(r.Secret)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *VaultValidator) validateRenameEntry(r models.RenameEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldEntryID, FieldLabel}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldOwner:
			err = validateOwner(r.Owner)
		case FieldEntryID:
			err = validateEntryID(r.EntryID)
		case FieldLabel:
			err = validateLabel(r.Label)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *VaultValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if r.Username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(r.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldEmail:
			if len(r.Email) > maxEmailLength || !emailPattern.MatchString(r.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateOwner(o models.Owner) error {
	if !o.Valid() {
		return ErrInvalidOwner
	}
	return nil
}

func validateEntryID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidEntryID
	}
	return nil
}

func validateLabel(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return ErrLabelTooLong
	}
	return nil
}

func validateSecret(secret string) error {
	if secret == "" {
		return ErrEmptySecret
	}
	return nil
}
