package auth

import (
	"github.com/for-hk/linkup-auth/internal/config"
	"github.com/for-hk/linkup-auth/internal/notify"
	"github.com/for-hk/linkup-auth/internal/platform/db"
	"github.com/for-hk/linkup-auth/internal/platform/hash"
	"github.com/for-hk/linkup-auth/internal/platform/token"
	"github.com/for-hk/linkup-auth/internal/platform/validation"
	"github.com/for-hk/linkup-auth/internal/user"
)

type Provider struct {
	Cfg       *config.Config
	Hasher    hash.Hasher
	Signer    token.Signer
	Notifier  notify.Notifier
	Validator validation.Validator
	TxMgr     db.TxManager
}

type Module struct {
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

func NewModule(provider *Provider, userSvc user.Service) *Module {
	svc := NewService(userSvc, provider)
	handler := NewHandler(svc, userSvc)
	return &Module{
		svc:     svc,
		handler: handler,
	}
}
