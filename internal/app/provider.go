package app

import (
	"database/sql"
	"fmt"

	"github.com/for-hk/linkup-auth/internal/auth"
	"github.com/for-hk/linkup-auth/internal/config"
	"github.com/for-hk/linkup-auth/internal/notify"
	"github.com/for-hk/linkup-auth/internal/platform/db"
	"github.com/for-hk/linkup-auth/internal/platform/email"
	"github.com/for-hk/linkup-auth/internal/platform/hash"
	"github.com/for-hk/linkup-auth/internal/platform/router"
	"github.com/for-hk/linkup-auth/internal/platform/token"
	"github.com/for-hk/linkup-auth/internal/platform/validation"
	"github.com/for-hk/linkup-auth/internal/user"
)

type Provider struct {
	DB        *sql.DB
	Signer    token.Signer
	Mailer    email.Mailer
	Notifier  notify.Notifier
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager

	Users *user.Module
	Auth  *auth.Module
}

func newProvider(cfg *config.Config, signingKey string, dbConn *sql.DB) (*Provider, error) {
	smtpCfg, err := email.NewSMTPConfig()
	if err != nil {
		return nil, fmt.Errorf("smtp config: %w", err)
	}
	mailer, err := email.NewSMTPMailer(smtpCfg, cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("new smtp mailer: %w", err)
	}

	users := user.NewModule(dbConn)
	notifier := notify.NewMailNotifier(users.Service(), mailer)

	provider := &Provider{
		DB:        dbConn,
		Signer:    token.NewGolangJWTSigner(signingKey),
		Mailer:    mailer,
		Notifier:  notifier,
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, signingKey),
		Router:    router.NewGoexpressRouter(),
		TxMgr:     db.NewSQLTxManager(dbConn),
		Users:     users,
	}

	provider.Auth = auth.NewModule(&auth.Provider{
		Cfg:       cfg,
		Hasher:    provider.Hasher,
		Signer:    provider.Signer,
		Notifier:  provider.Notifier,
		Validator: provider.Validator,
		TxMgr:     provider.TxMgr,
	}, users.Service())

	return provider, nil
}
