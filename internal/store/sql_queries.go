package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	entriesTable = models.VaultEntry{}.TableName()
	usersTable   = models.User{}.TableName()
)

var (
	entryColumns   = []string{"id", "owner_id", "label", "ciphertext", "created_at", "updated_at"}
	summaryColumns = []string{"id", "label", "created_at", "updated_at"}
	userColumns    = []string{"user_id", "username", "email", "password_hash", "created_at", "updated_at"}
)

func buildInsertEntryQuery(b sq.StatementBuilderType, entry models.VaultEntry) (string, []any, error) {
	return b.Insert(entriesTable).
		Columns(entryColumns...).
		Values(entry.ID, entry.OwnerID, entry.Label, entry.Ciphertext, entry.CreatedAt, entry.UpdatedAt).
		ToSql()
}

func buildListEntriesQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select(summaryColumns...).
		From(entriesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildGetEntryQuery(b sq.StatementBuilderType, ownerID int64, id string) (string, []any, error) {
	return b.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

// buildUpdateEntryQuery updates column of a single owned entry and bumps
// updated_at.
func buildUpdateEntryQuery(b sq.StatementBuilderType, ownerID int64, id, column string, value any, at time.Time) (string, []any, error) {
	return b.Update(entriesTable).
		Set(column, value).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildDeleteEntryQuery(b sq.StatementBuilderType, ownerID int64, id string) (string, []any, error) {
	return b.Delete(entriesTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

// buildInsertUserQuery appends RETURNING user_id when returning is set, for
// dialects without LastInsertId support.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User, returning bool) (string, []any, error) {
	q := b.Insert(usersTable).
		Columns("username", "email", "password_hash", "created_at", "updated_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if returning {
		q = q.Suffix("RETURNING user_id")
	}
	return q.ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildUpdatePasswordHashQuery(b sq.StatementBuilderType, userID int64, hash string, at time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", hash).
		Set("updated_at", at).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
