package config

import "time"

type SecurityConfig interface {
	GetMaxSessionAge() time.Duration
	GetSecureCookies() bool
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetMaxSessionAge() time.Duration {
	return 24 * time.Hour // Redis session TTL; in-memory sessions live until restart
}

func (s Security) GetSecureCookies() bool {
	return EnvVars{}.GetEnv() != "DEV"
}
