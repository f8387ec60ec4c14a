// Package seqmetrics exports seq cache activity as Prometheus metrics.
//
// A CacheCollector is both a seq.CacheObserver and a prometheus.Collector:
//
//	cc := seqmetrics.NewCacheCollector("orders")
//	prometheus.MustRegister(cc)
//	cached := view.WithCache(seq.WithObserver[Order](cc))
//
// Nothing is registered globally; the caller picks the registry.
package seqmetrics
