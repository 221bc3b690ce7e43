package book

import (
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrNoAuthors 创建或替换图书时未提供作者
	ErrNoAuthors = apperrors.New(apperrors.ErrCodeInvalidParams, "不能创建没有作者的图书")

	// ErrDuplicateAuthorIDs 作者ID重复
	ErrDuplicateAuthorIDs = apperrors.New(apperrors.ErrCodeInvalidParams, "作者ID不能重复")

	// ErrAuthorNotExist 提交的作者ID中至少有一个不存在
	ErrAuthorNotExist = apperrors.New(apperrors.ErrCodeInvalidParams, "提交的作者中有不存在的作者")

	// ErrInvalidPatch Patch文档格式错误或修改了不存在的字段
	ErrInvalidPatch = apperrors.New(apperrors.ErrCodeInvalidPatch, "Patch文档无效")
)
