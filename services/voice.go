package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Soneshaps/musicgpt-clone/cache"
	"github.com/Soneshaps/musicgpt-clone/models"
	"github.com/Soneshaps/musicgpt-clone/monitoring"
	"github.com/Soneshaps/musicgpt-clone/stores"
	"github.com/Soneshaps/musicgpt-clone/utils"
)

const (
	DefaultCacheTTL = 300 * time.Second

	cacheNamespace = "voices"

	branchRecent     = "recent"
	branchByLanguage = "by-language"
	branchSearch     = "search"
)

type VoiceQuery struct {
	Query    string
	Language string
	Page     int
	Limit    int
}

type VoiceService struct {
	repo    stores.VoiceRepository
	cache   cache.Cache
	ttl     time.Duration
	metrics *monitoring.Metrics
}

// CreateVoiceService wires the lookup service. A nil cache disables caching;
// metrics may be nil.
func CreateVoiceService(repo stores.VoiceRepository, c cache.Cache, ttl time.Duration, metrics *monitoring.Metrics) *VoiceService {
	if c == nil {
		c = cache.NopCache{}
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &VoiceService{repo: repo, cache: c, ttl: ttl, metrics: metrics}
}

// ListVoices pages through the catalog, newest first, or alphabetically when
// a language filter is given.
func (s *VoiceService) ListVoices(ctx context.Context, q VoiceQuery) (*models.VoicePage, error) {
	page := models.NormalizePage(q.Page)
	limit := models.NormalizeLimit(q.Limit)
	language := strings.TrimSpace(q.Language)

	branch, order := branchRecent, stores.OrderCreatedDesc
	if language != "" {
		branch, order = branchByLanguage, stores.OrderNameAsc
	}

	return s.lookup(ctx, "list", branch, stores.VoiceFilter{Language: language}, order, page, limit)
}

// SearchVoices matches names containing the query, case-insensitively. A
// blank query returns an empty first page without touching cache or store.
func (s *VoiceService) SearchVoices(ctx context.Context, q VoiceQuery) (*models.VoicePage, error) {
	query := strings.TrimSpace(q.Query)
	if query == "" {
		s.recordLookup("search", "empty")
		return models.EmptyVoicePage(models.DefaultPage, models.DefaultLimit), nil
	}

	filter := stores.VoiceFilter{
		Language:     strings.TrimSpace(q.Language),
		NameContains: query,
	}
	return s.lookup(ctx, "search", branchSearch, filter, stores.OrderNameAsc,
		models.NormalizePage(q.Page), models.NormalizeLimit(q.Limit))
}

// ClearCache drops every cached lookup. Backend failures are logged only.
func (s *VoiceService) ClearCache(ctx context.Context) {
	if err := s.cache.FlushAll(ctx); err != nil {
		utils.FromContext(ctx).Warn("cache flush failed", zap.Error(err))
	}
}

func (s *VoiceService) lookup(ctx context.Context, kind, branch string, filter stores.VoiceFilter, order stores.VoiceOrder, page, limit int) (*models.VoicePage, error) {
	log := utils.FromContext(ctx)

	key := cache.BuildKey(cacheNamespace, branch, map[string]string{
		"language": filter.Language,
		"query":    strings.ToLower(filter.NameContains),
		"page":     strconv.Itoa(page),
		"limit":    strconv.Itoa(limit),
	})

	if cached, ok := s.fromCache(ctx, key); ok {
		s.recordLookup(kind, "cache")
		return cached, nil
	}

	offset, inRange := models.NewPagination(0, page, limit).Offset()

	var (
		total  int64
		voices []models.Voice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, filter)
		return err
	})
	if inRange {
		g.Go(func() error {
			var err error
			voices, err = s.repo.FindPage(gctx, filter, order, offset, limit)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("voice lookup failed", zap.String("kind", kind), zap.Error(err))
		return nil, utils.NewStoreError("voice lookup", err)
	}

	if voices == nil {
		voices = []models.Voice{}
	}
	result := &models.VoicePage{
		Voices:     voices,
		Pagination: models.NewPagination(total, page, limit),
	}
	s.recordLookup(kind, "store")

	s.toCache(ctx, key, result)
	return result, nil
}

func (s *VoiceService) fromCache(ctx context.Context, key string) (*models.VoicePage, bool) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		utils.FromContext(ctx).Warn("cache read failed, falling back to store",
			zap.String("key", key), zap.Error(utils.NewCacheError("cache get", err)))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var page models.VoicePage
	if err := json.Unmarshal(data, &page); err != nil {
		utils.FromContext(ctx).Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if page.Voices == nil {
		page.Voices = []models.Voice{}
	}
	return &page, true
}

func (s *VoiceService) toCache(ctx context.Context, key string, page *models.VoicePage) {
	data, err := json.Marshal(page)
	if err != nil {
		utils.FromContext(ctx).Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		utils.FromContext(ctx).Warn("cache write failed",
			zap.String("key", key), zap.Error(utils.NewCacheError("cache set", err)))
	}
}

func (s *VoiceService) recordLookup(kind, source string) {
	if s.metrics != nil {
		s.metrics.LookupResults.WithLabelValues(kind, source).Inc()
	}
}
