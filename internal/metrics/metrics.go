package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Inventory Metrics
var (
	ItemsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAdded,
			Help: HelpTextItemsAdded,
		},
		[]string{LabelRarity},
	)

	ItemsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsRemoved,
			Help: HelpTextItemsRemoved,
		},
		[]string{LabelRarity},
	)

	ItemsUpgraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUpgraded,
			Help: HelpTextItemsUpgraded,
		},
		[]string{LabelSourceRarity, LabelResultRarity},
	)

	UpgradesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesRejected,
			Help: HelpTextUpgradesRejected,
		},
		[]string{LabelSourceRarity},
	)
)

// Persistence Metrics
var (
	StacksSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStacksSaved,
			Help: HelpTextStacksSaved,
		},
	)

	StacksLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStacksLoaded,
			Help: HelpTextStacksLoaded,
		},
	)

	RowsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRowsSkipped,
			Help: HelpTextRowsSkipped,
		},
	)
)
