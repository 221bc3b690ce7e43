package comment

import (
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
)

var (
	ErrCommentNotFound = apperrors.New(apperrors.ErrCodeCommentNotFound, "评论不存在")

	// ErrBookNotFound 评论所属的图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrNotCommentAuthor 只能修改自己发表的评论
	ErrNotCommentAuthor = apperrors.New(apperrors.ErrCodeForbidden, "只能修改自己发表的评论")
)
