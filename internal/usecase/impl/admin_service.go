package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"landhub/config"
	deliverycontext "landhub/internal/delivery/context"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/service"
	"landhub/internal/infra/auth"
	"landhub/internal/usecase"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface. There is a single
// administrator account, configured at deploy time.
type adminService struct {
	email        string
	passwordHash string
	tokens       service.TokenService
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	cfg *config.Config,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) (usecase.AdminUsecase, error) {
	if cfg.Auth == nil || cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPasswordHash == "" {
		return nil, errors.New("admin credentials are not configured")
	}

	return &adminService{
		email:        cfg.Auth.AdminEmail,
		passwordHash: cfg.Auth.AdminPasswordHash,
		tokens:       tokens,
		hasher:       hasher,
		logger:       logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the supplied credentials against the configured account and
// returns a signed session token. A wrong email and a wrong password produce
// the same error, and both paths cost a hash comparison.
func (srv *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(normalizeEmail(input.Email)), []byte(normalizeEmail(srv.email))) == 1
	passwordMatch := srv.hasher.Check(input.Password, srv.passwordHash)

	if !emailMatch || !passwordMatch {
		srv.log(ctx).Warn("Admin login rejected")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "invalid email or password")
	}

	token, err := srv.tokens.GenerateAdminToken(srv.email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Admin login succeeded")

	return &usecase.LoginOutput{
		Token: token,
		User: usecase.AdminUser{
			Email: srv.email,
			Role:  auth.AdminRole,
		},
	}, nil
}
