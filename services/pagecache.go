package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"yatube/config"
)

const (
	// PAGE_CACHE_TTL - время жизни кеша страницы по умолчанию
	PAGE_CACHE_TTL = 20 * time.Second
	// PAGE_CACHE_PREFIX - префикс ключей кеша страниц в Redis
	PAGE_CACHE_PREFIX = "page_cache:"
)

// CachedPage - сохраненный ответ: тело и content-type
type CachedPage struct {
	Body        []byte `json:"body"`
	ContentType string `json:"content_type"`
}

type localEntry struct {
	page      CachedPage
	expiresAt time.Time
}

// PageCache - кеш отрендеренных страниц с ключом по URL.
// Основное хранилище - Redis, при его отсутствии - память процесса.
type PageCache struct {
	mu    sync.RWMutex
	local map[string]localEntry
}

func NewPageCache() *PageCache {
	return &PageCache{local: make(map[string]localEntry)}
}

var GlobalPageCache = NewPageCache()

// TTL возвращает время жизни кеша из конфига (по умолчанию 20 секунд)
func (pc *PageCache) TTL() time.Duration {
	if config.AppConfig != nil && config.AppConfig.Cache.IndexTTL > 0 {
		return time.Duration(config.AppConfig.Cache.IndexTTL) * time.Second
	}
	return PAGE_CACHE_TTL
}

// Get возвращает закешированную страницу по URL, если окно кеша не истекло
func (pc *PageCache) Get(ctx context.Context, url string) (*CachedPage, bool) {
	key := PAGE_CACHE_PREFIX + url

	if RedisClient != nil {
		val, err := RedisClient.Get(ctx, key).Bytes()
		if err != nil {
			return nil, false
		}
		var page CachedPage
		if err := json.Unmarshal(val, &page); err != nil {
			return nil, false
		}
		return &page, true
	}

	pc.mu.RLock()
	defer pc.mu.RUnlock()
	entry, ok := pc.local[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return &entry.page, true
}

// Set кладет страницу в кеш на время TTL
func (pc *PageCache) Set(ctx context.Context, url string, page CachedPage) {
	key := PAGE_CACHE_PREFIX + url

	if RedisClient != nil {
		data, err := json.Marshal(page)
		if err != nil {
			return
		}
		RedisClient.Set(ctx, key, data, pc.TTL())
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.local[key] = localEntry{page: page, expiresAt: time.Now().Add(pc.TTL())}
}

// Clear сбрасывает кеш всех страниц
func (pc *PageCache) Clear(ctx context.Context) error {
	if RedisClient != nil {
		keys, err := RedisClient.Keys(ctx, PAGE_CACHE_PREFIX+"*").Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			return RedisClient.Del(ctx, keys...).Err()
		}
		return nil
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	for key := range pc.local {
		if strings.HasPrefix(key, PAGE_CACHE_PREFIX) {
			delete(pc.local, key)
		}
	}
	return nil
}
