package config

import "time"

// AuthConfig exposes token secrets and lifetimes.
//
// The access-token lifetime deliberately differs between the login path
// (15 minutes) and the refresh path (1 hour). The split is inherited
// behavior, kept as two independent knobs rather than silently unified.
type AuthConfig interface {
	GetJWTSecret() string
	GetRefreshSecret() string
	GetLoginAccessTokenExpiry() time.Duration
	GetRefreshedAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetJWTSecret() string {
	return GetEnv("JWT_SECRET", "")
}

func (Auth) GetRefreshSecret() string {
	return GetEnv("REFRESH_SECRET", "")
}

func (Auth) GetLoginAccessTokenExpiry() time.Duration {
	return 15 * time.Minute
}

func (Auth) GetRefreshedAccessTokenExpiry() time.Duration {
	return 1 * time.Hour
}

func (Auth) GetRefreshTokenExpiry() time.Duration {
	return 30 * 24 * time.Hour
}
