package bayesian

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/samuelfneumann/bayesq/agent"
)

// RewardBuckets are the histogram buckets of rewards passed to Learn
var RewardBuckets = prometheus.LinearBuckets(-1, 0.25, 9)

// Instrumented wraps an agent.Agent and records Prometheus metrics
// about the calls made to it
type Instrumented struct {
	agent agent.Agent

	recommendations *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	learns          *prometheus.CounterVec
	rewards         prometheus.Histogram
}

// NewInstrumented returns a new Instrumented wrapping a, with its
// metrics registered on reg. If reg is nil the metrics are not
// registered anywhere.
func NewInstrumented(a agent.Agent, reg prometheus.Registerer) *Instrumented {
	factory := promauto.With(reg)

	return &Instrumented{
		agent: a,

		recommendations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bayesq_recommendations_total",
			Help: "The total number of action recommendations by outcome",
		}, []string{"status"}),

		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bayesq_transitions_total",
			Help: "The total number of state transitions by outcome",
		}, []string{"status"}),

		learns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bayesq_learn_total",
			Help: "The total number of learning calls by kind",
		}, []string{"kind"}),

		rewards: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bayesq_reward",
			Help:    "Rewards learned from",
			Buckets: RewardBuckets,
		}),
	}
}

// RecommendAction satisfies the agent.Agent interface
func (i *Instrumented) RecommendAction(s agent.State) (agent.Action, error) {
	a, err := i.agent.RecommendAction(s)
	switch {
	case err == nil:
		i.recommendations.WithLabelValues("ok").Inc()
	case agent.IsNoPossibleActions(err):
		i.recommendations.WithLabelValues("no_actions").Inc()
	default:
		i.recommendations.WithLabelValues("error").Inc()
	}
	return a, err
}

// Transition satisfies the agent.Agent interface
func (i *Instrumented) Transition(s agent.State, a agent.Action) error {
	err := i.agent.Transition(s, a)
	switch {
	case err == nil:
		i.transitions.WithLabelValues("ok").Inc()
	case agent.IsIncompatibleAction(err):
		i.transitions.WithLabelValues("incompatible").Inc()
	default:
		i.transitions.WithLabelValues("error").Inc()
	}
	return err
}

// Learn satisfies the agent.Agent interface
func (i *Instrumented) Learn(previous agent.State, a agent.Action,
	current agent.State, r float64) {
	i.agent.Learn(previous, a, current, r)
	if previous == nil {
		i.learns.WithLabelValues("bootstrap").Inc()
		return
	}
	i.learns.WithLabelValues("update").Inc()
	i.rewards.Observe(r)
}
