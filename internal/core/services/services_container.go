package services

import (
	portsrepo "github.com/SscSPs/fund_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_balance_app/internal/core/ports/services"
	"github.com/SscSPs/fund_balance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.AccountRepo)

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithSettingRepository(repos.SettingRepo),
		WithSnapshotRepository(repos.SnapshotRepo),
	)

	container.Settings = NewSettingsService(repos.SettingRepo, repos.SnapshotRepo, repos.AccountRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade     = (*authService)(nil)
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.SettingsSvcFacade = (*settingsService)(nil)
)
