package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xiebiao/libraryapi/pkg/rules"
)

// NameMaxLength 作者姓名最大长度（按字符计）
const NameMaxLength = 120

// Author 作者实体
// 姓名全局唯一，由数据库唯一索引和Service层预检查共同保证
type Author struct {
	ID        uint
	Name      string
	Books     []BookSummary // 只读：查询详情时填充，按图书ID升序
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookSummary 作者详情中展示的图书摘要
type BookSummary struct {
	ID    uint
	Title string
}

// NewAuthor 创建作者（工厂方法，不做校验）
func NewAuthor(name string) *Author {
	now := time.Now()
	return &Author{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename 修改姓名
func (a *Author) Rename(name string) {
	a.Name = name
	a.UpdatedAt = time.Now()
}

// Validate 校验字段规则：必填、不超过120个字符、首字母大写
func (a *Author) Validate() error {
	return validation.Errors{
		"name": validation.Validate(a.Name,
			validation.Required.Error("姓名不能为空"),
			validation.RuneLength(0, NameMaxLength).Error("姓名不能超过120个字符"),
			rules.FirstLetterUppercase,
		),
	}.Filter()
}
