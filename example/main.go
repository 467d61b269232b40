// Demo of the SDK caching layer: a read-through account Loader backed
// by a fake RPC fetcher, the analytics cache, and the prometheus
// stats collector.
package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/pod-protocol/podcache"
	"github.com/pod-protocol/podcache/lru"
	"github.com/pod-protocol/podcache/types"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Pretend RPC layer: every fetch costs a round trip.
	fetchAccount := func(ctx context.Context, address string) (types.AccountInfo, error) {
		log.WithField("address", address).Info("fetching account over RPC")
		time.Sleep(50 * time.Millisecond)
		return types.AccountInfo{Address: address, Owner: "PodComFeeP1e", Lamports: 1_000_000}, nil
	}

	cache := lru.New[string, types.AccountInfo](256,
		lru.WithTTL[string, types.AccountInfo](30*time.Second),
	)
	loader := podcache.NewLoader(cache, fetchAccount, podcache.WithLogger[types.AccountInfo](log))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		account, err := loader.Get(ctx, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
		if err != nil {
			log.WithError(err).Fatal("account lookup failed")
		}
		log.WithFields(logrus.Fields{
			"address":  account.Address,
			"lamports": account.Lamports,
		}).Info("account lookup done")
	}

	analytics := podcache.NewAnalyticsCache()
	analytics.SetMessageAnalytics(100, types.MessageAnalytics{
		TotalMessages:   12_345,
		MessagesLast24h: 420,
		LastUpdated:     time.Now(),
	})
	if report, ok := analytics.GetMessageAnalytics(100); ok {
		log.WithField("total_messages", report.TotalMessages).Info("message analytics hit")
	}

	collector := podcache.NewStatsCollector()
	collector.Register("accounts", podcache.StatsSourceFunc(loader.CacheStats))
	collector.Register("analytics", analytics)

	reg := prometheus.NewRegistry()
	if err := reg.Register(collector); err != nil {
		log.WithError(err).Fatal("register collector")
	}

	families, err := reg.Gather()
	if err != nil {
		log.WithError(err).Fatal("gather metrics")
	}
	for _, mf := range families {
		log.WithFields(logrus.Fields{
			"metric": mf.GetName(),
			"series": len(mf.GetMetric()),
		}).Info("cache metric exported")
	}

	stats := loader.Stats()
	log.WithFields(logrus.Fields{
		"hits":          stats.Hits,
		"loads":         stats.Loads,
		"avg_load_time": stats.AvgLoadTime,
	}).Info("loader stats")
}
