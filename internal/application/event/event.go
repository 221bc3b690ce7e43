// Package event 领域事件
//
// 写用例在事务提交后发布事件；发布失败只记录日志，不影响已提交的请求。
// 路由键按 {聚合}.{动作} 命名，消费者可以用 topic 通配符（如 book.*）订阅。
package event

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// 路由键
const (
	AuthorCreated  = "author.created"
	AuthorDeleted  = "author.deleted"
	BookCreated    = "book.created"
	BookUpdated    = "book.updated"
	CommentCreated = "comment.created"
)

// RoutingKeys 全部路由键
var RoutingKeys = []string{AuthorCreated, AuthorDeleted, BookCreated, BookUpdated, CommentCreated}

// Publisher 事件发布端口，由infrastructure/messaging实现
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// Envelope 消息体
type Envelope struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// NewEnvelope 包装事件数据
func NewEnvelope(routingKey string, data interface{}) Envelope {
	return Envelope{Type: routingKey, OccurredAt: time.Now().UTC(), Data: data}
}

type AuthorCreatedPayload struct {
	AuthorID uint   `json:"author_id"`
	Name     string `json:"name"`
}

// AuthorDeletedPayload BookIDs为重新编号了作者顺序的图书
type AuthorDeletedPayload struct {
	AuthorID uint   `json:"author_id"`
	BookIDs  []uint `json:"book_ids"`
}

type BookCreatedPayload struct {
	BookID    uint   `json:"book_id"`
	Title     string `json:"title"`
	AuthorIDs []uint `json:"author_ids"`
}

// BookUpdatedPayload Mode为replace（PUT）或patch（PATCH）
type BookUpdatedPayload struct {
	BookID uint   `json:"book_id"`
	Title  string `json:"title"`
	Mode   string `json:"mode"`
}

// 图书更新方式
const (
	ModeReplace = "replace"
	ModePatch   = "patch"
)

type CommentCreatedPayload struct {
	CommentID uint `json:"comment_id"`
	BookID    uint `json:"book_id"`
	UserID    uint `json:"user_id"`
}

// Emit 发布事件，失败只记录日志
func Emit(ctx context.Context, publisher Publisher, routingKey string, data interface{}) {
	if err := publisher.Publish(ctx, routingKey, NewEnvelope(routingKey, data)); err != nil {
		log.Warn().Err(err).Str("routing_key", routingKey).Msg("publish event failed")
	}
}

// NopPublisher 未启用MQ时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
