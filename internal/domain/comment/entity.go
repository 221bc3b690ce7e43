package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Comment 图书评论
// UserID只来自已认证身份，请求体无法指定
type Comment struct {
	ID        uint
	Content   string
	BookID    uint
	UserID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment 创建评论
func NewComment(bookID, userID uint, content string) *Comment {
	now := time.Now()
	return &Comment{
		Content:   content,
		BookID:    bookID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Edit 修改内容
func (c *Comment) Edit(content string) {
	c.Content = content
	c.UpdatedAt = time.Now()
}

// BelongsTo 评论是否属于图书
func (c *Comment) BelongsTo(bookID uint) bool {
	return c.BookID == bookID
}

// IsWrittenBy 评论是否由该用户发表
func (c *Comment) IsWrittenBy(userID uint) bool {
	return c.UserID == userID
}

func (c *Comment) Validate() error {
	return validation.Errors{
		"content": validation.Validate(c.Content, validation.Required.Error("评论内容不能为空")),
	}.Filter()
}
