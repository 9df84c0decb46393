package models

// CreateEntryRequest carries the input of a new vault entry.
type CreateEntryRequest struct {
	Owner  Owner
	Label  string
	Secret string `json:"-"`
}

// EntryRequest addresses a single entry of an owner.
type EntryRequest struct {
	Owner   Owner
	EntryID string
}

// UpdateSecretRequest replaces the secret of an entry.
type UpdateSecretRequest struct {
	Owner   Owner
	EntryID string
	Secret  string `json:"-"`
}

// RenameEntryRequest replaces the label of an entry.
type RenameEntryRequest struct {
	Owner   Owner
	EntryID string
	Label   string
}

// RegisterRequest carries the input of a new master credential.
type RegisterRequest struct {
	Username string
	Email    string
	Password string `json:"-"`
}
