package reporting

import (
	"sync"
	"time"

	"github.com/vfg2006/fudo-analytics-api/internal/domain"
)

type cacheEntry struct {
	report    *domain.SalesReport
	expiresAt time.Time
}

// reportCache guarda relatórios prontos por período. O conjunto de períodos
// consultados é pequeno (presets do dashboard), então um mapa protegido por
// mutex é suficiente
type reportCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newReportCache(ttl time.Duration) *reportCache {
	return &reportCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *reportCache) get(key string) (*domain.SalesReport, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.report, true
}

func (c *reportCache) put(key string, report *domain.SalesReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Limpar entradas vencidas antes de inserir, para o mapa não crescer
	// indefinidamente com períodos antigos
	now := time.Now()
	for k, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = cacheEntry{
		report:    report,
		expiresAt: now.Add(c.ttl),
	}
}
