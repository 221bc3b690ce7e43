package gormdb

import (
	"time"

	"gorm.io/gorm"
)

// 数据库模型与领域实体分离：实体不带gorm标签，模型通过toXxxEntity转换

// UserModel 用户表
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (UserModel) TableName() string {
	return "users"
}

// AuthorModel 作者表（姓名唯一）
type AuthorModel struct {
	ID        uint              `gorm:"primaryKey"`
	Name      string            `gorm:"uniqueIndex;size:120;not null;comment:作者姓名"`
	Links     []AuthorBookModel `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time         `gorm:"comment:创建时间"`
	UpdatedAt time.Time         `gorm:"comment:更新时间"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel 图书表
type BookModel struct {
	ID              uint              `gorm:"primaryKey"`
	Title           string            `gorm:"index;size:250;not null;comment:书名"`
	PublicationDate *time.Time        `gorm:"comment:出版日期"`
	AuthorLinks     []AuthorBookModel `gorm:"foreignKey:BookID"`
	CreatedAt       time.Time         `gorm:"comment:创建时间"`
	UpdatedAt       time.Time         `gorm:"comment:更新时间"`
}

func (BookModel) TableName() string {
	return "books"
}

// AuthorBookModel 作者-图书有序关联表
// 复合主键(author_id, book_id)；同一本书的sort_order为0..n-1
type AuthorBookModel struct {
	AuthorID  uint         `gorm:"primaryKey;autoIncrement:false;comment:作者ID"`
	BookID    uint         `gorm:"primaryKey;autoIncrement:false;index;comment:图书ID"`
	SortOrder int          `gorm:"not null;default:0;comment:作者署名顺序"`
	Author    *AuthorModel `gorm:"foreignKey:AuthorID"`
}

func (AuthorBookModel) TableName() string {
	return "author_books"
}

// CommentModel 评论表
type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	Content   string    `gorm:"type:text;not null;comment:评论内容"`
	BookID    uint      `gorm:"index;not null;comment:图书ID"`
	UserID    uint      `gorm:"index;not null;comment:发表者用户ID"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (CommentModel) TableName() string {
	return "comments"
}
