package user

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/libraryapi/internal/domain/user"
	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/libraryapi/pkg/jwt"
)

// LoginUseCase 用户登录
// 1. 验证邮箱密码
// 2. 生成Token对
// 3. 保存会话（有效期与Refresh Token一致）
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration
}

func NewLoginUseCase(userService user.Service, jwtManager *jwt.Manager, sessionStore *redis.SessionStore, sessionTTL time.Duration) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}

func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := uc.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	pair, err := uc.jwtManager.GenerateToken(u.ID, u.Email, u.Nickname)
	if err != nil {
		return nil, err
	}

	// 会话只用于刷新Token，保存失败时登录仍然成功
	session := &redis.Session{UserID: u.ID, Email: u.Email, Nickname: u.Nickname, LoginAt: time.Now()}
	if err := uc.sessionStore.SaveSession(ctx, session, uc.sessionTTL); err != nil {
		log.Warn().Err(err).Uint("user_id", u.ID).Msg("save session failed")
	}

	return &LoginResponse{
		User:         UserInfo{ID: u.ID, Email: u.Email, Nickname: u.Nickname},
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// RefreshUseCase 用Refresh Token换取新的Access Token
// 会话已删除（登出）时拒绝刷新
type RefreshUseCase struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

func NewRefreshUseCase(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *RefreshUseCase {
	return &RefreshUseCase{jwtManager: jwtManager, sessionStore: sessionStore}
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	userID, err := uc.jwtManager.UserIDFromRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	session, err := uc.sessionStore.GetSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	accessToken, err := uc.jwtManager.RefreshAccessToken(refreshToken, session.Email, session.Nickname)
	if err != nil {
		return nil, err
	}
	return &RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(uc.jwtManager.AccessTokenTTL().Seconds()),
	}, nil
}

// LogoutUseCase 用户登出
// 删除会话并把当前Access Token加入黑名单，黑名单有效期等于Access Token有效期
type LogoutUseCase struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

func NewLogoutUseCase(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{jwtManager: jwtManager, sessionStore: sessionStore}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string) error {
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, uc.jwtManager.AccessTokenTTL())
}
