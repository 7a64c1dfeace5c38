// README: AI service status: availability from config, reachability probed and cached in Redis.
package planner

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tripkit/internal/ai"
	"tripkit/internal/config"
	"tripkit/internal/logger"
)

const (
	statusCacheKey = "ai:status:"
	statusCacheTTL = 5 * time.Minute
	probeTimeout   = 10 * time.Second
)

// Status describes the active AI service for the status endpoint.
type Status struct {
	Service   string `json:"service"`
	Available bool   `json:"available"`
	Reachable bool   `json:"reachable"`
	Detail    string `json:"status"`
}

// StatusService reports which vendor is active and whether it answers. The
// reachability probe is a real completion call, so results are cached in
// Redis to keep the endpoint cheap.
type StatusService struct {
	cfg      config.AIConfig
	provider ai.Provider
	rdb      *redis.Client
	log      *zap.SugaredLogger
}

// NewStatusService builds a status reporter for the configured vendor.
// rdb may be nil; the probe then runs uncached.
func NewStatusService(cfg config.AIConfig, rdb *redis.Client) *StatusService {
	return &StatusService{
		cfg:      cfg,
		provider: selectProvider(cfg),
		rdb:      rdb,
		log:      logger.GetLogger(),
	}
}

// Status returns the current service state. Simulation is always available
// and reachable; real vendors need a credential and a successful probe.
func (s *StatusService) Status(ctx context.Context) Status {
	st := Status{
		Service:   s.cfg.Service,
		Available: s.cfg.Available(),
	}

	switch {
	case s.cfg.Service == config.ServiceSimulation:
		st.Reachable = true
		st.Detail = "시뮬레이션 모드 (데모용)"
	case !st.Available:
		st.Detail = strings.ToUpper(s.cfg.Service) + " API 키 필요"
	case s.probe(ctx):
		st.Reachable = true
		st.Detail = strings.ToUpper(s.cfg.Service) + " 연결됨"
	default:
		st.Detail = strings.ToUpper(s.cfg.Service) + " 연결 실패"
	}
	return st
}

// probe issues a tiny completion to check the vendor answers, caching the
// outcome so repeated status calls do not burn quota.
func (s *StatusService) probe(ctx context.Context) bool {
	key := statusCacheKey + s.cfg.Service
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			return cached == "ok"
		}
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := s.provider.GenerateCompletion(probeCtx, ai.ConnectionTestPrompt, ai.Options{MaxTokens: 50})
	ok := err == nil && strings.TrimSpace(out) != ""
	if err != nil {
		s.log.Warnw("vendor probe failed", "vendor", s.provider.Name(), "error", err)
	}

	if s.rdb != nil {
		val := "fail"
		if ok {
			val = "ok"
		}
		if err := s.rdb.Set(ctx, key, val, statusCacheTTL).Err(); err != nil {
			s.log.Debugw("status cache write failed", "error", err)
		}
	}
	return ok
}
