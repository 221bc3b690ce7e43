package user

import (
	"context"
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
	"github.com/xiebiao/libraryapi/pkg/rules"
)

// Service 用户领域服务
type Service interface {
	Register(ctx context.Context, email, password, nickname string) (*User, error)

	// Login 邮箱不存在与密码错误返回同一个错误，避免泄露邮箱是否注册
	Login(ctx context.Context, email, password string) (*User, error)

	GetUser(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo       Repository
	bcryptCost int
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return NewServiceWithCost(repo, 12)
}

// NewServiceWithCost 指定bcrypt cost（测试中使用bcrypt.MinCost加速）
func NewServiceWithCost(repo Repository, cost int) Service {
	return &service{repo: repo, bcryptCost: cost}
}

var (
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
)

// Register 用户注册
// 业务规则：
// 1. 邮箱格式、昵称长度校验
// 2. 密码8-20位，包含字母和数字
// 3. 邮箱唯一性由数据库唯一索引保证
func (s *service) Register(ctx context.Context, email, password, nickname string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	err := validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.EmailFormat),
		"nickname": validation.Validate(nickname, validation.Required, validation.RuneLength(2, 50)),
	}.Filter()
	if err != nil {
		if fields, ok := rules.FieldMessages(err); ok {
			return nil, apperrors.NewValidation(fields)
		}
		return nil, apperrors.Wrap(err, "用户校验失败")
	}

	if len(password) < 8 || len(password) > 20 || !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return nil, apperrors.ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	u := NewUser(email, string(hashed), nickname)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}
	return u, nil
}

func (s *service) GetUser(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}
