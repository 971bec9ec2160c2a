package auth

import (
	"time"

	"github.com/bloglane/admin-auth-server/admins"
	"github.com/bloglane/admin-auth-server/internal/config"
	"github.com/bloglane/admin-auth-server/sessions"
	"github.com/bloglane/admin-auth-server/token"
	"github.com/pkg/errors"
)

// Repos holds all repository dependencies for the AuthService
type Repos struct {
	Admins   admins.Repo   // Repository for admin records (the Principal Store)
	Sessions sessions.Repo // Repository for server-side sessions
}

// AuthService is the session and token authority for the admin panel: it
// establishes an authenticated admin from credentials, mints the access
// and refresh tokens, maintains the server-side session binding and
// resolves admins for the role-gated operations.
type AuthService struct {
	repos   Repos
	tokens  *token.Manager
	config  config.AuthConfig
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// AuthServiceOption defines a function type to modify the AuthService instance.
type AuthServiceOption func(*AuthService)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) AuthServiceOption {
	return func(as *AuthService) {
		as.nowTime = nowFunc
	}
}

// NewAuthService initializes a new AuthService with required dependencies.
func NewAuthService(repos Repos, tokens *token.Manager, cfg config.AuthConfig, options ...AuthServiceOption) (*AuthService, error) {
	if repos.Admins == nil {
		return nil, errors.New("[NewAuthService] Admins repo is required")
	}
	if repos.Sessions == nil {
		return nil, errors.New("[NewAuthService] Sessions repo is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewAuthService] token manager is required")
	}
	if cfg == nil {
		return nil, errors.New("[NewAuthService] auth config is required")
	}

	authService := &AuthService{
		repos:   repos,
		tokens:  tokens,
		config:  cfg,
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(authService)
	}

	return authService, nil
}

// LoginResult carries what a successful login hands back to the transport
// layer: the access token goes into the response body, the refresh token
// only into a cookie.
type LoginResult struct {
	Admin        *admins.Admin
	AccessToken  string
	RefreshToken string
}

// Login verifies the credentials, binds the admin to the session and mints
// both tokens.
//
// An unknown email and a wrong password fail identically so callers cannot
// tell which field was wrong. The inactive check runs before the password
// comparison, so an inactive account's correct password yields the
// distinct inactive denial rather than the generic one.
func (as *AuthService) Login(sessionID, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	admin, err := as.repos.Admins.GetByEmail(email)
	if err == admins.ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "[AuthService.Login] Admins.GetByEmail")
	}

	if !admin.IsActive() {
		return nil, ErrAccountInactive
	}

	if !admins.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := as.tokens.MintAccessToken(admin.ID, admin.Email, as.config.GetLoginAccessTokenExpiry())
	if err != nil {
		return nil, errors.Wrap(err, "[AuthService.Login] MintAccessToken")
	}
	refreshToken, err := as.tokens.MintRefreshToken(admin.ID, admin.Email, as.config.GetRefreshTokenExpiry())
	if err != nil {
		return nil, errors.Wrap(err, "[AuthService.Login] MintRefreshToken")
	}

	if err := as.repos.Sessions.Upsert(sessionID, sessions.Session{
		AdminID:   admin.ID,
		CreatedAt: as.nowTime(),
	}); err != nil {
		return nil, errors.Wrap(err, "[AuthService.Login] Sessions.Upsert")
	}

	return &LoginResult{
		Admin:        admin,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// CreateAdminCommand is the typed input of both provisioning operations.
type CreateAdminCommand struct {
	Email    string
	Password string
	Name     string
	Status   admins.Status
}

// CreateFirstAdmin bootstraps the system with its one superAdmin. It is
// usable exactly once: any call after an admin exists fails with
// ErrAlreadyBootstrapped. The precondition check and the write are not
// atomic; the store's email uniqueness constraint is the race safety net.
func (as *AuthService) CreateFirstAdmin(cmd CreateAdminCommand) (*admins.Admin, error) {
	count, err := as.repos.Admins.Count()
	if err != nil {
		return nil, errors.Wrap(err, "[AuthService.CreateFirstAdmin] Admins.Count")
	}
	if count > 0 {
		return nil, ErrAlreadyBootstrapped
	}

	return as.createAdmin(cmd, true)
}

// SignUp provisions a further admin. The superAdmin requirement on the
// caller is enforced by the transport gates; the created admin is always
// non-super regardless of input.
func (as *AuthService) SignUp(cmd CreateAdminCommand) (*admins.Admin, error) {
	return as.createAdmin(cmd, false)
}

func (as *AuthService) createAdmin(cmd CreateAdminCommand, superAdmin bool) (*admins.Admin, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, ErrMissingCredentials
	}
	if err := admins.ValidateEmail(cmd.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if err := admins.ValidatePasswordStrength(cmd.Password); err != nil {
		return nil, ErrWeakPassword
	}
	if cmd.Name != "" {
		if err := admins.ValidateName(cmd.Name); err != nil {
			return nil, ErrInvalidName
		}
	}

	name := cmd.Name
	if name == "" {
		name = admins.LocalPart(cmd.Email)
	}
	status := cmd.Status
	if status == "" {
		status = admins.StatusActive
	} else if err := admins.ValidateStatus(status); err != nil {
		return nil, ErrInvalidStatus
	}

	hash, err := admins.HashPassword(cmd.Password)
	if err != nil {
		return nil, errors.Wrap(err, "[AuthService.createAdmin] HashPassword")
	}

	admin := &admins.Admin{
		Email:        admins.NormalizeEmail(cmd.Email),
		PasswordHash: hash,
		Name:         name,
		Status:       status,
		SuperAdmin:   superAdmin,
		CreatedAt:    as.nowTime(),
	}

	if err := as.repos.Admins.Create(admin); err != nil {
		if errors.Is(err, admins.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, errors.Wrap(err, "[AuthService.createAdmin] Admins.Create")
	}

	return admin, nil
}

// Refresh mints a new access token from a refresh token. The refresh token
// is not rotated and the admin's status is not re-checked: an inactive
// admin can still refresh. That gap is inherited policy, preserved rather
// than silently fixed.
func (as *AuthService) Refresh(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrMissingRefreshToken
	}

	claims, err := as.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	admin, err := as.repos.Admins.GetByID(claims.Subject)
	if err == admins.ErrNotFound {
		return "", ErrAdminNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "[AuthService.Refresh] Admins.GetByID")
	}

	accessToken, err := as.tokens.MintAccessToken(admin.ID, admin.Email, as.config.GetRefreshedAccessTokenExpiry())
	if err != nil {
		return "", errors.Wrap(err, "[AuthService.Refresh] MintAccessToken")
	}
	return accessToken, nil
}

// VerifyAccessToken validates an access token for the transport-layer
// token gate and returns its claims.
func (as *AuthService) VerifyAccessToken(raw string) (*token.Claims, error) {
	claims, err := as.tokens.VerifyAccessToken(raw)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Logout clears the admin bound to the session. It is idempotent: a
// missing or unbound session still succeeds. Access tokens already issued
// remain valid until natural expiry.
func (as *AuthService) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := as.repos.Sessions.ClearAdmin(sessionID); err != nil {
		return errors.Wrap(err, "[AuthService.Logout] Sessions.ClearAdmin")
	}
	return nil
}

// Me resolves the admin bound to the session.
func (as *AuthService) Me(adminID string) (*admins.Admin, error) {
	admin, err := as.repos.Admins.GetByID(adminID)
	if err == admins.ErrNotFound {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "[AuthService.Me] Admins.GetByID")
	}
	return admin, nil
}

// ListAdmins returns all non-super admins.
func (as *AuthService) ListAdmins() ([]*admins.Admin, error) {
	list, err := as.repos.Admins.ListNonSuper()
	if err != nil {
		return nil, errors.Wrap(err, "[AuthService.ListAdmins] Admins.ListNonSuper")
	}
	return list, nil
}

// ToggleStatus sets the target admin's status to explicitStatus when
// given, otherwise flips active and inactive.
func (as *AuthService) ToggleStatus(targetID string, explicitStatus admins.Status) (*admins.Admin, error) {
	admin, err := as.repos.Admins.GetByID(targetID)
	if err == admins.ErrNotFound {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "[AuthService.ToggleStatus] Admins.GetByID")
	}

	if explicitStatus != "" {
		if err := admins.ValidateStatus(explicitStatus); err != nil {
			return nil, ErrInvalidStatus
		}
		admin.Status = explicitStatus
	} else {
		admin.Status = admin.ToggledStatus()
	}

	if err := as.repos.Admins.Update(admin); err != nil {
		return nil, errors.Wrap(err, "[AuthService.ToggleStatus] Admins.Update")
	}
	return admin, nil
}
