package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	"github.com/fund-insight/fund_service/pkg/logger"
	"github.com/fund-insight/fund_service/pkg/metrics"
)

// ReportCache stores computed reports between requests
type ReportCache interface {
	// Get decodes the entry into dest and reports whether it was found
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

const (
	reportOverview    = "overview"
	reportPerformance = "performance"
	reportSectors     = "sectors"
	reportOverlap     = "overlap_graph"
)

// Timeframes lists every supported performance window
var Timeframes = []entities.Timeframe{
	entities.Timeframe1M,
	entities.Timeframe3M,
	entities.Timeframe6M,
	entities.Timeframe1Y,
	entities.Timeframe3Y,
	entities.TimeframeMax,
}

// CachedReporter serves the four derived reports from a cache, falling back
// to the wrapped Reporter on a miss or a cache failure. Raw listings always
// go to the wrapped Reporter.
type CachedReporter struct {
	Reporter
	cache  ReportCache
	ttl    time.Duration
	logger *logger.Logger
}

var _ Reporter = (*CachedReporter)(nil)

func NewCachedReporter(inner Reporter, cache ReportCache, ttl time.Duration, log *logger.Logger) *CachedReporter {
	return &CachedReporter{
		Reporter: inner,
		cache:    cache,
		ttl:      ttl,
		logger:   log.Named("report_cache"),
	}
}

func (c *CachedReporter) GetInvestmentOverview(ctx context.Context) (*entities.InvestmentOverview, error) {
	var cached entities.InvestmentOverview
	if c.lookup(ctx, reportOverview, reportOverview, &cached) {
		return &cached, nil
	}

	overview, err := c.Reporter.GetInvestmentOverview(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, reportOverview, overview)
	return overview, nil
}

func (c *CachedReporter) GetPerformanceSummary(ctx context.Context, timeframe entities.Timeframe) (*entities.PerformanceReport, error) {
	key := performanceKey(timeframe)

	var cached entities.PerformanceReport
	if c.lookup(ctx, reportPerformance, key, &cached) {
		return &cached, nil
	}

	report, err := c.Reporter.GetPerformanceSummary(ctx, timeframe)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, report)
	return report, nil
}

func (c *CachedReporter) GetSectorAllocation(ctx context.Context) ([]entities.SectorAllocation, error) {
	var cached []entities.SectorAllocation
	if c.lookup(ctx, reportSectors, reportSectors, &cached) {
		return cached, nil
	}

	sectors, err := c.Reporter.GetSectorAllocation(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, reportSectors, sectors)
	return sectors, nil
}

func (c *CachedReporter) GetFundOverlapData(ctx context.Context) (*entities.OverlapGraph, error) {
	var cached entities.OverlapGraph
	if c.lookup(ctx, reportOverlap, reportOverlap, &cached) {
		return &cached, nil
	}

	graph, err := c.Reporter.GetFundOverlapData(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, reportOverlap, graph)
	return graph, nil
}

// Refresh recomputes every report from the wrapped Reporter and overwrites the cache
func (c *CachedReporter) Refresh(ctx context.Context) error {
	overview, err := c.Reporter.GetInvestmentOverview(ctx)
	if err != nil {
		return fmt.Errorf("refresh overview: %w", err)
	}
	c.store(ctx, reportOverview, overview)

	for _, tf := range Timeframes {
		report, err := c.Reporter.GetPerformanceSummary(ctx, tf)
		if err != nil {
			return fmt.Errorf("refresh performance %s: %w", tf, err)
		}
		c.store(ctx, performanceKey(tf), report)
	}

	sectors, err := c.Reporter.GetSectorAllocation(ctx)
	if err != nil {
		return fmt.Errorf("refresh sectors: %w", err)
	}
	c.store(ctx, reportSectors, sectors)

	graph, err := c.Reporter.GetFundOverlapData(ctx)
	if err != nil {
		return fmt.Errorf("refresh overlap graph: %w", err)
	}
	c.store(ctx, reportOverlap, graph)

	return nil
}

func (c *CachedReporter) lookup(ctx context.Context, report, key string, dest interface{}) bool {
	found, err := c.cache.Get(ctx, key, dest)
	switch {
	case err != nil:
		metrics.RecordCacheResult(report, "error")
		c.logger.CtxWarn(ctx, "Report cache read failed", "key", key, "error", err)
		return false
	case found:
		metrics.RecordCacheResult(report, "hit")
		return true
	default:
		metrics.RecordCacheResult(report, "miss")
		return false
	}
}

func (c *CachedReporter) store(ctx context.Context, key string, value interface{}) {
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		c.logger.CtxWarn(ctx, "Report cache write failed", "key", key, "error", err)
	}
}

func performanceKey(timeframe entities.Timeframe) string {
	return reportPerformance + ":" + string(timeframe)
}
