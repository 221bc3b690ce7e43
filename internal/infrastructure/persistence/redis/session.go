package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

// Key设计：library:session:{user_id}、library:blacklist:{sha256(token)}
const (
	sessionKeyPrefix   = "library:session:"
	blacklistKeyPrefix = "library:blacklist:"
)

// Session 登录会话
// 刷新Access Token时从会话读取email和nickname，会话不存在视为已登出
type Session struct {
	UserID   uint
	Email    string
	Nickname string
	LoginAt  time.Time
}

// SessionStore 会话存储与Access Token黑名单
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveSession 保存会话，过期时间与Refresh Token一致
// HSet和Expire在同一个MULTI中执行，不会留下永不过期的会话
func (s *SessionStore) SaveSession(ctx context.Context, session *Session, ttl time.Duration) error {
	key := sessionKey(session.UserID)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"email", session.Email,
			"nickname", session.Nickname,
			"login_at", session.LoginAt.Unix(),
		)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "保存会话失败")
	}
	return nil
}

// GetSession 获取会话，不存在返回ErrUnauthorized
func (s *SessionStore) GetSession(ctx context.Context, userID uint) (*Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "获取会话失败")
	}
	if len(fields) == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	loginAt, _ := strconv.ParseInt(fields["login_at"], 10, 64)
	return &Session{
		UserID:   userID,
		Email:    fields["email"],
		Nickname: fields["nickname"],
		LoginAt:  time.Unix(loginAt, 0),
	}, nil
}

// DeleteSession 删除会话（登出）
func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return apperrors.Wrap(err, "删除会话失败")
	}
	return nil
}

// AddToBlacklist 将Token加入黑名单，ttl取Access Token有效期，过期后自动清理
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "添加Token到黑名单失败")
	}
	return nil
}

// IsInBlacklist 检查Token是否已被吊销
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	exists, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "检查黑名单失败")
	}
	return exists > 0, nil
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, userID)
}

// blacklistKey Token较长，按摘要存储
func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return blacklistKeyPrefix + hex.EncodeToString(sum[:])
}
