package twin

import "sync"

// Thing 后端中的一个孪生实体（对齐Ditto的Thing模型）
type Thing struct {
	ThingID    string                 `json:"thingId"`
	Attributes map[string]interface{} `json:"attributes"`
	Features   map[string]interface{} `json:"features"`
}

// Backend 孪生持久化后端的CRUD契约
// 所有调用都是尽力而为：调用失败只表示本周期未同步，不是致命错误
type Backend interface {
	// Name 后端标识，用于快照和统计展示
	Name() string
	// CreateThing 创建孪生实体，已存在视为成功
	CreateThing(id string, attributes, features map[string]interface{}) error
	// UpdateFeatures 整体替换实体的动态特征
	UpdateFeatures(id string, features map[string]interface{}) error
	// GetThing 读取实体，不存在时第二个返回值为false
	GetThing(id string) (*Thing, bool)
	// DeleteThing 删除实体
	DeleteThing(id string) error
	// ListThings 列出所有实体ID
	ListThings() []string
}

// MemoryBackend 内存后端：用map保存Thing，永不失败
// 外部孪生平台不可达时的永久回退实现
type MemoryBackend struct {
	mu     sync.RWMutex
	things map[string]*Thing
}

// NewMemoryBackend 创建内存后端
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		things: make(map[string]*Thing),
	}
}

func (b *MemoryBackend) Name() string {
	return "memory"
}

func (b *MemoryBackend) CreateThing(id string, attributes, features map[string]interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.things[id]; exists {
		return nil
	}
	b.things[id] = &Thing{
		ThingID:    id,
		Attributes: attributes,
		Features:   features,
	}
	return nil
}

func (b *MemoryBackend) UpdateFeatures(id string, features map[string]interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	thing, exists := b.things[id]
	if !exists {
		// 对未知实体的特征更新按创建处理
		b.things[id] = &Thing{
			ThingID:    id,
			Attributes: map[string]interface{}{},
			Features:   features,
		}
		return nil
	}
	thing.Features = features
	return nil
}

func (b *MemoryBackend) GetThing(id string) (*Thing, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	thing, exists := b.things[id]
	if !exists {
		return nil, false
	}
	return thing, true
}

func (b *MemoryBackend) DeleteThing(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.things, id)
	return nil
}

func (b *MemoryBackend) ListThings() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.things))
	for id := range b.things {
		ids = append(ids, id)
	}
	return ids
}
