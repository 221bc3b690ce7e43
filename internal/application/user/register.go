package user

import (
	"context"

	"github.com/xiebiao/libraryapi/internal/domain/user"
)

// RegisterUseCase 用户注册
type RegisterUseCase struct {
	userService user.Service
}

func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{userService: userService}
}

type RegisterRequest struct {
	Email    string
	Password string
	Nickname string
}

// UserInfo 用户信息（不含密码）
type UserInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	u, err := uc.userService.Register(ctx, req.Email, req.Password, req.Nickname)
	if err != nil {
		return nil, err
	}
	return &UserInfo{ID: u.ID, Email: u.Email, Nickname: u.Nickname}, nil
}
