// Package goapmetrics exposes in-process Prometheus instruments for the
// planner and agent. Nothing here starts an HTTP listener; a host
// process that wants to scrape these registers its own handler against
// prometheus.DefaultRegisterer.
package goapmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goap_plans_computed_total",
		Help: "Number of plans successfully produced by GetPlan.",
	})

	PlansNotFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goap_plans_not_found_total",
		Help: "Number of GetPlan calls that returned no plan.",
	})

	PlanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "goap_plan_duration_seconds",
		Help:    "Wall-clock time spent inside GetPlan.",
		Buckets: prometheus.DefBuckets,
	})

	AgentTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goap_agent_ticks_total",
		Help: "Number of Agent.Update calls.",
	})

	AgentAborts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goap_agent_aborts_total",
		Help: "Number of plans abandoned mid-execution due to a new predicate.",
	})

	MemoryEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goap_memory_evictions_total",
		Help: "Number of short-term memory entries evicted after their TTL expired.",
	})
)
