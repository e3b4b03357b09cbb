package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/algolds/ixgov/internal/domain"
)

// MaxHistorySamples caps the rolling effectiveness history; the oldest
// sample is evicted first.
const MaxHistorySamples = 30

// ComputeMetrics derives the real-time metric block from the current
// scores and history.
func ComputeMetrics(effectiveness decimal.Decimal, combined domain.CombinedModifiers, synergyCount, conflictCount int, history []domain.EffectivenessSample, now time.Time) domain.RealTimeMetrics {
	coherence := decimal.NewFromInt(70).
		Add(decimal.NewFromInt(int64(synergyCount * 5))).
		Sub(decimal.NewFromInt(int64(conflictCount * 15)))

	momentum := decimal.Zero
	if len(history) >= 2 {
		momentum = history[len(history)-1].Score.Sub(history[len(history)-2].Score)
	}

	return domain.RealTimeMetrics{
		OverallEffectiveness: effectiveness,
		StabilityIndex:       clampScore(decimal.NewFromInt(50).Add(combined.StabilityBonus)),
		PolicyCoherence:      clampScore(coherence),
		Momentum:             momentum,
		UpdatedAt:            now,
	}
}

// AppendSample appends an effectiveness sample to the history, evicting
// the oldest entry once the cap is reached. The input slice is not
// mutated.
func AppendSample(history []domain.EffectivenessSample, score decimal.Decimal, now time.Time) []domain.EffectivenessSample {
	out := make([]domain.EffectivenessSample, len(history), len(history)+1)
	copy(out, history)
	out = append(out, domain.EffectivenessSample{Score: score, At: now})
	if len(out) > MaxHistorySamples {
		out = out[len(out)-MaxHistorySamples:]
	}
	return out
}

// RefreshMetrics recomputes the metrics and history of an existing
// snapshot without rerunning the composition pipeline. This is the
// periodic-tick path: metrics stay visibly live with no mutation.
func RefreshMetrics(state *domain.UnifiedState, now time.Time) {
	state.History = AppendSample(state.History, state.EffectivenessScore, now)
	state.Metrics = ComputeMetrics(state.EffectivenessScore, state.Combined, len(state.ActiveSynergies), len(state.ActiveConflicts), state.History, now)
}
