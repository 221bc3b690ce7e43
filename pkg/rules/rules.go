// Package rules 收集跨领域复用的ozzo-validation校验规则
package rules

import (
	"errors"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrFirstLetterUppercase 首字母非大写
var ErrFirstLetterUppercase = validation.NewError("validation_first_letter_uppercase", "首字母必须大写")

// FirstLetterUppercase 要求字符串的第一个字符为大写字母
// 空字符串交给Required处理
var FirstLetterUppercase = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(r) {
		return ErrFirstLetterUppercase
	}
	return nil
})

// FieldMessages 把ozzo校验结果展开为 字段名 → 错误信息
// 返回false表示err不是字段级校验错误（例如规则内部错误）
func FieldMessages(err error) (map[string]string, bool) {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil, false
	}

	fields := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		fields[field] = fieldErr.Error()
	}
	return fields, true
}
