package bot

import (
	"sync"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/Houeta/price-radar/internal/services/aggregator"
)

// session is the per-chat view state. Slices are replaced, never mutated,
// so copies handed out by sessions stay consistent.
type session struct {
	result   models.Result[models.SearchResultSet]
	platform string
	bounds   aggregator.Bounds
	sortKey  aggregator.SortKey
	view     []models.PriceRecord
	insight  *models.Insight
}

func newSession(result models.Result[models.SearchResultSet]) session {
	s := session{
		result:   result,
		platform: aggregator.AllPlatforms,
		bounds:   aggregator.DefaultBounds(),
		sortKey:  aggregator.SortPriceAsc,
	}
	s.refresh()

	return s
}

// refresh rebuilds the view: platform partition, then bounds, then order.
func (s *session) refresh() {
	partition := aggregator.PartitionByPlatform(s.result.Data, s.platform)

	matched := make([]models.PriceRecord, 0, len(partition))
	for _, rec := range partition {
		if s.bounds.Match(rec) {
			matched = append(matched, rec)
		}
	}

	s.view = aggregator.Sort(matched, s.sortKey)
}

type sessions struct {
	mu     sync.Mutex
	byChat map[int64]session
}

func newSessions() *sessions {
	return &sessions{byChat: make(map[int64]session)}
}

func (s *sessions) get(chatID int64) (session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byChat[chatID]

	return sess, ok
}

func (s *sessions) put(chatID int64, sess session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byChat[chatID] = sess
}

// update applies fn to an existing session and reports whether there was one.
func (s *sessions) update(chatID int64, fn func(*session)) (session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byChat[chatID]
	if !ok {
		return session{}, false
	}

	fn(&sess)
	s.byChat[chatID] = sess

	return sess, true
}
