package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

// pathID 解析路径中的正整数ID
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidParams.WithDetails(map[string]string{name: "必须是正整数"})
	}
	return uint(id), nil
}

// bindError 请求体无法解析
func bindError(err error) error {
	return apperrors.ErrBindError.WithDetails(map[string]string{"body": err.Error()})
}
