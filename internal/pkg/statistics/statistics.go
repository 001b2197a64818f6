// Package statistics caches the admin dashboard entity counts in Redis so
// the dashboard does not hit five COUNT queries on every load.
package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/cache"
)

const (
	CacheKeyNews       = "statistics:news:total"
	CacheKeyCategories = "statistics:categories:total"
	CacheKeyProfiles   = "statistics:profiles:total"
	CacheKeyComments   = "statistics:comments:total"
	CacheKeyReactions  = "statistics:reactions:total"
	CacheExpiration    = 30 * time.Minute
)

// EntityCounts holds the totals shown on the admin dashboard
type EntityCounts struct {
	News       int64
	Categories int64
	Profiles   int64
	Comments   int64
	Reactions  int64
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// Counter is any repository exposing a total row count.
type Counter interface {
	Count() (int64, error)
}

// UpdateStatisticsCache recounts every entity and stores the totals in the
// cache. The five counts are issued concurrently; a failed count is logged
// and its cache entry left untouched.
func UpdateStatisticsCache() error {
	repos := repository.GetGlobalRepositories()

	counters := map[string]Counter{
		CacheKeyNews:       repos.News,
		CacheKeyCategories: repos.Category,
		CacheKeyProfiles:   repos.Profile,
		CacheKeyComments:   repos.Comment,
		CacheKeyReactions:  repos.Reaction,
	}

	var wg sync.WaitGroup
	for key, counter := range counters {
		wg.Add(1)
		go func(key string, counter Counter) {
			defer wg.Done()
			count, err := counter.Count()
			if err != nil {
				log.Printf("Error counting for %s: %v", key, err)
				return
			}
			if err := cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
				log.Printf("Error caching %s: %v", key, err)
			}
		}(key, counter)
	}
	wg.Wait()

	return nil
}

// UpdateCacheIfNeeded refreshes the cached totals when the last refresh is
// older than the update interval.
func UpdateCacheIfNeeded() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) < cacheUpdateInterval {
		return
	}
	if err := UpdateStatisticsCache(); err != nil {
		log.Printf("Error updating statistics cache: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// GetEntityCounts returns the dashboard totals, cache-first with a direct
// count as fallback.
func GetEntityCounts() EntityCounts {
	UpdateCacheIfNeeded()

	repos := repository.GetGlobalRepositories()
	return EntityCounts{
		News:       cachedCount(CacheKeyNews, repos.News),
		Categories: cachedCount(CacheKeyCategories, repos.Category),
		Profiles:   cachedCount(CacheKeyProfiles, repos.Profile),
		Comments:   cachedCount(CacheKeyComments, repos.Comment),
		Reactions:  cachedCount(CacheKeyReactions, repos.Reaction),
	}
}

func cachedCount(key string, counter Counter) int64 {
	if val, err := cache.Get(key); err == nil {
		if count, err := strconv.ParseInt(val, 10, 64); err == nil {
			return count
		}
	}

	count, err := counter.Count()
	if err != nil {
		log.Printf("Error counting for %s: %v", key, err)
		return 0
	}
	if err := cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
		log.Printf("Error caching %s: %v", key, err)
	}
	return count
}
