package event

import (
	"context"
	"sync"
)

// Recorder 记录已发布事件，测试中替代真实发布者
type Recorder struct {
	mu     sync.Mutex
	events []Envelope
	keys   []string
}

func (r *Recorder) Publish(_ context.Context, routingKey string, payload interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = append(r.keys, routingKey)
	if env, ok := payload.(Envelope); ok {
		r.events = append(r.events, env)
	}
	return nil
}

// Keys 已发布的路由键（按发布顺序）
func (r *Recorder) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.keys...)
}

// Events 已发布的消息
func (r *Recorder) Events() []Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Envelope(nil), r.events...)
}
