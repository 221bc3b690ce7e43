// Package patch 把RFC 6902 JSON Patch文档应用到可校验的"补丁视图"上
//
// 使用流程：
//  1. 调用方把持久化实体转换成补丁视图（只暴露允许修改的字段）
//  2. Apply在视图的JSON表示上依次执行各个操作，严格反序列化并运行视图自身的校验规则
//  3. 校验通过后调用方再把视图合并回实体并提交事务
//
// Apply从不修改传入的视图，失败时调用方手里的实体保持原样
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/samber/lo"

	"github.com/xiebiao/libraryapi/pkg/rules"
)

var (
	// ErrInvalidDocument 文档为空、格式错误、操作类型未知或test操作失败
	ErrInvalidDocument = errors.New("patch: invalid document")
	// ErrNoSuchField 操作路径指向视图中不存在的字段
	ErrNoSuchField = errors.New("patch: no such field")
)

// Validatable 补丁视图需要实现的接口
type Validatable interface {
	Validate() error
}

// ValidationErrors 字段级校验失败（字段名 → 错误信息）
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "patch: validation failed: " + strings.Join(parts, "; ")
}

var supportedOps = map[string]bool{
	"add":     true,
	"remove":  true,
	"replace": true,
	"move":    true,
	"copy":    true,
	"test":    true,
}

// Apply 在view上应用document，返回校验通过的新视图
//
// 错误：
//   - ErrInvalidDocument（可用errors.Is判断）
//   - ErrNoSuchField（可用errors.Is判断）
//   - ValidationErrors（可用errors.As提取字段错误）
func Apply[V Validatable](view V, document []byte) (V, error) {
	var zero V

	if len(bytes.TrimSpace(document)) == 0 {
		return zero, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	ops, err := jsonpatch.DecodePatch(document)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	// JSON null解码为nil Patch且不报错
	if ops == nil {
		return zero, fmt.Errorf("%w: null document", ErrInvalidDocument)
	}

	original, err := json.Marshal(view)
	if err != nil {
		return zero, fmt.Errorf("patch: marshal view: %w", err)
	}

	fields, err := topLevelFields(original)
	if err != nil {
		return zero, err
	}

	// 先检查所有操作再执行，任何一个操作非法都不会产生部分修改
	for i, op := range ops {
		if err := checkOperation(op, fields); err != nil {
			return zero, fmt.Errorf("operation %d: %w", i, err)
		}
	}

	patched, err := ops.Apply(original)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	out, err := decodeStrict[V](patched)
	if err != nil {
		return zero, err
	}

	if err := out.Validate(); err != nil {
		if msgs, ok := rules.FieldMessages(err); ok {
			return zero, ValidationErrors(msgs)
		}
		return zero, err
	}

	return out, nil
}

func checkOperation(op jsonpatch.Operation, fields map[string]bool) error {
	kind := op.Kind()
	if !supportedOps[kind] {
		return fmt.Errorf("%w: unsupported op %q", ErrInvalidDocument, kind)
	}

	path, err := op.Path()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := checkPath(path, fields); err != nil {
		return err
	}

	if kind == "move" || kind == "copy" {
		from, err := op.From()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		if err := checkPath(from, fields); err != nil {
			return err
		}
	}
	return nil
}

// checkPath 视图字段都是标量，只允许 "/<field>" 形式的路径
func checkPath(path string, fields map[string]bool) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q", ErrNoSuchField, path)
	}

	segments := strings.Split(path[1:], "/")
	if len(segments) != 1 {
		return fmt.Errorf("%w: %q", ErrNoSuchField, path)
	}

	name := unescapePointer(segments[0])
	if !fields[name] {
		return fmt.Errorf("%w: %q", ErrNoSuchField, path)
	}
	return nil
}

func unescapePointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

func topLevelFields(doc []byte) (map[string]bool, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		return nil, fmt.Errorf("patch: view must marshal to a JSON object: %w", err)
	}

	fields := make(map[string]bool, len(obj))
	for k := range obj {
		fields[k] = true
	}
	return fields, nil
}

func decodeStrict[V any](doc []byte) (V, error) {
	var out V

	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "document"
			}
			return out, ValidationErrors{field: fmt.Sprintf("类型错误，期望 %s", typeErr.Type)}
		}
		if strings.Contains(err.Error(), "unknown field") {
			return out, fmt.Errorf("%w: %v", ErrNoSuchField, err)
		}
		// 自定义UnmarshalJSON（如time.Time）的错误不带字段名，逐个字段重试定位
		if field := failingField[V](doc); field != "" {
			return out, ValidationErrors{field: err.Error()}
		}
		return out, ValidationErrors{"document": err.Error()}
	}
	return out, nil
}

// failingField 逐个字段单独反序列化，返回第一个失败的字段名
func failingField[V any](doc []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		return ""
	}

	names := lo.Keys(obj)
	sort.Strings(names)

	for _, name := range names {
		single, err := json.Marshal(map[string]json.RawMessage{name: obj[name]})
		if err != nil {
			continue
		}
		var v V
		if json.Unmarshal(single, &v) != nil {
			return name
		}
	}
	return ""
}
