package user

import "github.com/for-hk/linkup-auth/internal/platform/db"

type Module struct {
	repo Repository
	svc  Service
}

func (m *Module) Service() Service {
	return m.svc
}

func NewModule(dbExec db.Executor) *Module {
	repo := NewSQLRepository(dbExec)
	svc := NewService(repo)
	return &Module{
		repo: repo,
		svc:  svc,
	}
}
