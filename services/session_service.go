package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/DanielWren48/techno-trades-sub001/config"
	"github.com/DanielWren48/techno-trades-sub001/discovery"
)

const sessionTTL = 24 * time.Hour

// DiscoverySessionService owns one discovery controller per browsing session
// and mirrors each session's facet state to Redis, so a shopper's filters
// survive a process restart and deep links keep working.
type DiscoverySessionService struct {
	catalog  discovery.Catalog
	mu       sync.Mutex
	sessions map[string]*discovery.Controller
}

func NewDiscoverySessionService(catalog discovery.Catalog) *DiscoverySessionService {
	return &DiscoverySessionService{
		catalog:  catalog,
		sessions: make(map[string]*discovery.Controller),
	}
}

// Controller returns the discovery controller for the given session,
// creating it (and restoring any persisted facet state) on first sight.
func (s *DiscoverySessionService) Controller(ctx context.Context, sessionID string) *discovery.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctrl, ok := s.sessions[sessionID]; ok {
		return ctrl
	}

	ctrl := discovery.NewController(s.catalog)
	if snap, ok := s.loadSnapshot(ctx, sessionID); ok {
		ctrl.Filters().Restore(snap)
	}
	ctrl.Filters().Observe(func(discovery.Facet) {
		s.persist(sessionID, ctrl)
	})
	// No fetch yet: the request that created the session runs RunOnce next,
	// which would only supersede an eager fetch issued here.
	ctrl.Attach(context.Background())

	s.sessions[sessionID] = ctrl
	return ctrl
}

// Drop tears the session down, cancelling its pending debounce timers. The
// persisted facet state stays in Redis until its TTL expires.
func (s *DiscoverySessionService) Drop(sessionID string) {
	s.mu.Lock()
	ctrl, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if ok {
		ctrl.Close()
	}
}

func (s *DiscoverySessionService) loadSnapshot(ctx context.Context, sessionID string) (discovery.Snapshot, bool) {
	if config.RedisClient == nil {
		return discovery.Snapshot{}, false
	}
	data, err := config.RedisClient.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		return discovery.Snapshot{}, false
	}
	var snap discovery.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Corrupt persisted state falls back to defaults, never errors.
		log.Printf("[session] discarding unreadable filter state for %s: %v", sessionID, err)
		return discovery.Snapshot{}, false
	}
	return snap, true
}

func (s *DiscoverySessionService) persist(sessionID string, ctrl *discovery.Controller) {
	if config.RedisClient == nil {
		return
	}
	data, err := json.Marshal(ctrl.Filters().Snapshot())
	if err != nil {
		log.Printf("[session] failed to encode filter state for %s: %v", sessionID, err)
		return
	}
	if err := config.RedisClient.Set(config.Ctx, sessionKey(sessionID), data, sessionTTL).Err(); err != nil {
		log.Printf("[session] failed to persist filter state for %s: %v", sessionID, err)
	}
}

func sessionKey(sessionID string) string {
	return "discovery:session:" + sessionID
}
