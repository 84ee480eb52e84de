package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "ops:dashboard:summary"
	dashboardCacheTTL = time.Minute
)

type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
	rdb           *redis.Client
	logger        *zap.Logger
}

func NewDashboardService(dr *repository.DashboardRepository, rdb *redis.Client, logger *zap.Logger) *DashboardService {
	return &DashboardService{dashboardRepo: dr, rdb: rdb, logger: logger}
}

// DashboardSummary 首页汇总
type DashboardSummary struct {
	LowStockCount     int64                      `json:"low_stock_count"`
	ExpiringCount     int64                      `json:"expiring_count"`
	PendingRequests   int64                      `json:"pending_requests"`
	PendingChecklists int64                      `json:"pending_checklists"`
	StockByLocation   []repository.StockValueRow `json:"stock_by_location"`
}

// GetSummary 获取首页汇总。命中缓存直接返回；缓存不可用时退回数据库，
// redis 故障只记日志，不影响请求
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes()
		if err == nil {
			var summary DashboardSummary
			if jsonErr := json.Unmarshal(cached, &summary); jsonErr == nil {
				return &summary, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	summary, err := s.buildSummary()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		raw, _ := json.Marshal(summary)
		if err := s.rdb.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return summary, nil
}

func (s *DashboardService) buildSummary() (*DashboardSummary, error) {
	lowStock, err := s.dashboardRepo.LowStockCount()
	if err != nil {
		return nil, err
	}
	expiring, err := s.dashboardRepo.ExpiringCount(7)
	if err != nil {
		return nil, err
	}
	pendingRequests, err := s.dashboardRepo.OpenRequestCount()
	if err != nil {
		return nil, err
	}
	pendingChecklists, err := s.dashboardRepo.PendingChecklistCount()
	if err != nil {
		return nil, err
	}
	stockValue, err := s.dashboardRepo.StockValueByLocation()
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{
		LowStockCount:     lowStock,
		ExpiringCount:     expiring,
		PendingRequests:   pendingRequests,
		PendingChecklists: pendingChecklists,
		StockByLocation:   stockValue,
	}, nil
}

func (s *DashboardService) LowStockAlerts() ([]repository.LowStockRow, error) {
	return s.dashboardRepo.LowStock()
}
