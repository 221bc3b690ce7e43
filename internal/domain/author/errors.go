package author

import (
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrAuthorNameDuplicate 已存在同名作者
	ErrAuthorNameDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "已存在同名作者")

	// ErrEmptySearchName 搜索关键字为空
	ErrEmptySearchName = apperrors.New(apperrors.ErrCodeInvalidParams, "搜索关键字不能为空")
)
