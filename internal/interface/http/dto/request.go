// Package dto HTTP层请求结构
//
// binding tag只做格式层面的约束，业务字段规则（首字母大写、长度、作者存在性）由领域层校验并返回字段级错误
package dto

import "time"

// AuthorRequest 创建/更新作者
type AuthorRequest struct {
	Name string `json:"name" example:"Jorge Luis Borges"`
}

// BookRequest 创建/全量更新图书
// AuthorIDs的顺序即署名顺序
type BookRequest struct {
	Title           string     `json:"title" example:"Ficciones"`
	PublicationDate *time.Time `json:"publication_date" example:"1944-01-01T00:00:00Z"`
	AuthorIDs       []uint     `json:"author_ids" example:"2,1"`
}

// PatchOperation RFC 6902 JSON Patch操作（仅用于接口文档）
type PatchOperation struct {
	Op    string      `json:"op" example:"replace"`
	Path  string      `json:"path" example:"/title"`
	From  string      `json:"from,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// CommentRequest 发表/修改评论
type CommentRequest struct {
	Content string `json:"content" example:"Un clásico."`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
