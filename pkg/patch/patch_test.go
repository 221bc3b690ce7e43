package patch

import (
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/libraryapi/pkg/rules"
)

type titleView struct {
	Title string `json:"title"`
	Pages int    `json:"pages"`
}

func (v titleView) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Title, validation.Required, validation.RuneLength(0, 20), rules.FirstLetterUppercase),
		validation.Field(&v.Pages, validation.Min(0)),
	)
}

func TestApply_Replace(t *testing.T) {
	view := titleView{Title: "Ficciones", Pages: 10}

	got, err := Apply(view, []byte(`[{"op":"replace","path":"/title","value":"El Aleph"}]`))
	require.NoError(t, err)

	assert.Equal(t, "El Aleph", got.Title)
	assert.Equal(t, 10, got.Pages)
	assert.Equal(t, "Ficciones", view.Title, "原视图不应被修改")
}

func TestApply_OperationsRunInSequence(t *testing.T) {
	view := titleView{Title: "Ficciones", Pages: 10}

	doc := `[
		{"op":"test","path":"/pages","value":10},
		{"op":"replace","path":"/pages","value":20},
		{"op":"replace","path":"/title","value":"Otro"},
		{"op":"replace","path":"/title","value":"Final"}
	]`
	got, err := Apply(view, []byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, 20, got.Pages)
}

func TestApply_EmptyOperationListKeepsView(t *testing.T) {
	view := titleView{Title: "Ficciones", Pages: 10}

	got, err := Apply(view, []byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, view, got)
}

func TestApply_Errors(t *testing.T) {
	view := titleView{Title: "Ficciones", Pages: 10}

	tests := []struct {
		name     string
		doc      string
		sentinel error
		field    string
	}{
		{"空文档", ``, ErrInvalidDocument, ""},
		{"非JSON", `{not json`, ErrInvalidDocument, ""},
		{"null文档", ` null `, ErrInvalidDocument, ""},
		{"未知操作", `[{"op":"merge","path":"/title","value":"X"}]`, ErrInvalidDocument, ""},
		{"test失败", `[{"op":"test","path":"/pages","value":99}]`, ErrInvalidDocument, ""},
		{"未知字段", `[{"op":"replace","path":"/isbn","value":"X"}]`, ErrNoSuchField, ""},
		{"add未知字段", `[{"op":"add","path":"/isbn","value":"X"}]`, ErrNoSuchField, ""},
		{"嵌套路径", `[{"op":"replace","path":"/title/0","value":"X"}]`, ErrNoSuchField, ""},
		{"根路径", `[{"op":"replace","path":"","value":{}}]`, ErrNoSuchField, ""},
		{"move来源未知", `[{"op":"move","from":"/isbn","path":"/title"}]`, ErrNoSuchField, ""},
		{"标题置空", `[{"op":"replace","path":"/title","value":""}]`, nil, "title"},
		{"删除标题", `[{"op":"remove","path":"/title"}]`, nil, "title"},
		{"首字母小写", `[{"op":"replace","path":"/title","value":"minúscula"}]`, nil, "title"},
		{"类型错误", `[{"op":"replace","path":"/pages","value":"many"}]`, nil, "pages"},
		{"范围错误", `[{"op":"replace","path":"/pages","value":-1}]`, nil, "pages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(view, []byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, titleView{}, got)

			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel), "期望 %v，实际 %v", tt.sentinel, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "期望字段校验错误，实际 %v", err)
			assert.Contains(t, verrs, tt.field)
		})
	}

	assert.Equal(t, "Ficciones", view.Title)
}

func TestApply_FailedOperationLeavesNoPartialChange(t *testing.T) {
	view := titleView{Title: "Ficciones", Pages: 10}

	// 第一个操作合法，第二个非法：整个文档被拒绝
	doc := `[{"op":"replace","path":"/pages","value":1},{"op":"replace","path":"/isbn","value":"X"}]`
	_, err := Apply(view, []byte(doc))

	assert.ErrorIs(t, err, ErrNoSuchField)
	assert.Equal(t, 10, view.Pages)
}

type datedView struct {
	Title     string     `json:"title"`
	Published *time.Time `json:"published"`
}

func (v datedView) Validate() error { return nil }

func TestApply_UnparsableValueReportsField(t *testing.T) {
	view := datedView{Title: "Ficciones"}

	_, err := Apply(view, []byte(`[{"op":"replace","path":"/published","value":"bad"}]`))

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "期望字段校验错误，实际 %v", err)
	assert.Contains(t, verrs, "published")
	assert.NotContains(t, verrs, "document")

	got, err := Apply(view, []byte(`[{"op":"replace","path":"/published","value":"1944-01-01T00:00:00Z"}]`))
	require.NoError(t, err)
	require.NotNil(t, got.Published)
	assert.Equal(t, 1944, got.Published.Year())
}
