// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

const appRole = "go-pass-vault"

var errNoUser = errors.New("no vault owner given: pass --user or set VAULT_APP_USER")

// application holds everything a command needs. Storage, keys and services
// are built lazily on the first command that touches them, so commands like
// check and generate work without a database.
type application struct {
	prompt  *prompter
	printer printer
	build   models.AppBuildInfo

	flags     *config.Flags
	cfg       *config.StructuredConfig
	log       *logger.Logger
	logCloser io.Closer

	db       *store.DB
	services *service.Services

	copyToClipboard func(string) error
}

func newApplication(in io.Reader, out, errOut io.Writer, build models.AppBuildInfo) *application {
	return &application{
		prompt:          newPrompter(in, errOut),
		printer:         printer{out: out, errOut: errOut},
		build:           build,
		copyToClipboard: clipboard.WriteAll,
	}
}

// setup loads the configuration and the logger. It runs before every
// command; values already present are kept.
func (a *application) setup(cmd *cobra.Command, _ []string) error {
	if a.cfg == nil {
		cfg, err := config.Load(a.flags)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	if a.log == nil {
		log, closer, err := logger.NewFileLogger(appRole, a.cfg.Log.File, a.cfg.Log.Level)
		if err != nil {
			return err
		}
		a.log, a.logCloser = log, closer
	}

	cmd.SetContext(a.log.WithContext(cmd.Context()))
	return nil
}

// storageContext bounds the storage work of one command step.
func (a *application) storageContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.Storage.DB.Timeout)
}

func (a *application) openDB(ctx context.Context) (*store.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	db, err := store.Open(ctx, a.cfg.Storage.DB, a.log)
	if errors.Is(err, store.ErrUnavailable) {
		return nil, fmt.Errorf("%w: %w", service.ErrStorageUnavailable, err)
	}
	if err != nil {
		return nil, err
	}
	a.db = db
	return db, nil
}

// open wires storage, key management, the secret cipher and the credential
// hasher into the vault services. Pending migrations are applied first.
func (a *application) open(ctx context.Context) (*service.Services, error) {
	if a.services != nil {
		return a.services, nil
	}

	db, err := a.openDB(ctx)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(ctx); err != nil {
		return nil, err
	}

	suite, err := crypto.ParseSuite(a.cfg.Crypto.Suite)
	if err != nil {
		return nil, err
	}

	keys := crypto.NewKeyManager(a.keyStore(), a.log)
	sealer := crypto.NewVaultCipher(keys, crypto.NewSecretCipher(suite))
	hasher := crypto.NewCredentialHasher(crypto.Argon2Params{
		Time:      a.cfg.Crypto.Argon2.Time,
		MemoryKiB: a.cfg.Crypto.Argon2.MemoryKiB,
		Threads:   a.cfg.Crypto.Argon2.Threads,
	})

	a.services = service.NewServices(store.NewRepositories(db, a.log), sealer, hasher, a.log)
	return a.services, nil
}

func (a *application) keyStore() crypto.KeyStore {
	if a.cfg.Crypto.KeyEnv != "" {
		return crypto.NewEnvKeyStore(a.cfg.Crypto.KeyEnv)
	}
	return crypto.NewFileKeyStore(a.cfg.Crypto.KeyFile)
}

func (a *application) username() (string, error) {
	if a.cfg.App.Username == "" {
		return "", errNoUser
	}
	return a.cfg.App.Username, nil
}

// login asks for the master password of the configured user and returns the
// owner capability together with the opened services.
func (a *application) login(cmd *cobra.Command) (models.Owner, *service.Services, error) {
	username, err := a.username()
	if err != nil {
		return models.Owner{}, nil, err
	}

	password, err := a.prompt.secret("Master password: ")
	if err != nil {
		return models.Owner{}, nil, err
	}

	ctx, cancel := a.storageContext(cmd)
	defer cancel()

	services, err := a.open(ctx)
	if err != nil {
		return models.Owner{}, nil, err
	}

	owner, err := services.AuthService.Login(ctx, username, password)
	if err != nil {
		return models.Owner{}, nil, err
	}
	return owner, services, nil
}

// report prints err to the error stream in a form safe for the user and
// records the full chain in the log.
func (a *application) report(err error) {
	if a.log != nil {
		a.log.Debug().Err(err).Str("func", "main.report").Msg("command failed")
	}
	a.printer.error("%s", describe(err))
}

// describe prefers the public message of a vault error. Errors the vault
// does not know about come from the command line itself and are shown as is.
func describe(err error) string {
	if msg := service.PublicMessage(err); msg != app.MsgInternalError {
		return msg
	}
	return err.Error()
}

func (a *application) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil && a.log != nil {
			a.log.Warn().Err(err).Str("func", "*application.close").Msg("error closing database")
		}
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}
