package gormdb

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 唯一键冲突
// 开启TranslateError后各驱动返回gorm.ErrDuplicatedKey，字符串匹配兜底未翻译的情况
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // MySQL
		strings.Contains(msg, "duplicate key value") || // PostgreSQL
		strings.Contains(msg, "UNIQUE constraint failed") // SQLite
}

// escapeLike 转义LIKE通配符，配合 ESCAPE '!' 使用，关键字按字面量匹配
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)
