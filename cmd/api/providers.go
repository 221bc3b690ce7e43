package main

import (
	"github.com/xiebiao/libraryapi/internal/application/user"
	domainuser "github.com/xiebiao/libraryapi/internal/domain/user"
	"github.com/xiebiao/libraryapi/internal/infrastructure/config"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/libraryapi/pkg/jwt"
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideLoginUseCase Session有效期与Refresh Token一致
func provideLoginUseCase(
	cfg *config.Config,
	userService domainuser.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *user.LoginUseCase {
	return user.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
}
