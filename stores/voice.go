package stores

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Soneshaps/musicgpt-clone/models"
)

type VoiceOrder int

const (
	OrderCreatedDesc VoiceOrder = iota
	OrderNameAsc
)

func (o VoiceOrder) clause() string {
	if o == OrderNameAsc {
		return "name ASC, id ASC"
	}
	return "created_at DESC, id DESC"
}

// VoiceFilter is the closed set of predicates a lookup may apply. Zero
// values mean "no constraint".
type VoiceFilter struct {
	Language     string
	NameContains string
}

// VoiceRepository is the read surface the lookup service depends on.
type VoiceRepository interface {
	FindPage(ctx context.Context, filter VoiceFilter, order VoiceOrder, offset, limit int) ([]models.Voice, error)
	Count(ctx context.Context, filter VoiceFilter) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type VoiceStore struct {
	BaseStore
}

func CreateVoiceStore(db *gorm.DB) *VoiceStore {
	return &VoiceStore{BaseStore: BaseStore{db: db}}
}

func (s *VoiceStore) scope(ctx context.Context, filter VoiceFilter) *gorm.DB {
	query := s.GetDB(ctx).Model(&models.Voice{})
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.NameContains != "" {
		query = query.Where("search_name LIKE ? ESCAPE '!'", "%"+escapeLike(models.FoldName(filter.NameContains))+"%")
	}
	return query
}

func (s *VoiceStore) FindPage(ctx context.Context, filter VoiceFilter, order VoiceOrder, offset, limit int) ([]models.Voice, error) {
	voices := make([]models.Voice, 0, limit)
	err := s.scope(ctx, filter).
		Order(order.clause()).
		Offset(offset).
		Limit(limit).
		Find(&voices).Error
	if err != nil {
		return nil, err
	}
	return voices, nil
}

func (s *VoiceStore) Count(ctx context.Context, filter VoiceFilter) (int64, error) {
	var total int64
	if err := s.scope(ctx, filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *VoiceStore) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := s.GetDB(ctx).Model(&models.Voice{}).Where("id = ?", id).Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// escapeLike makes s match literally inside a LIKE pattern using '!' as the
// escape character.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
