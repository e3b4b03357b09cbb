package state

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolds/ixgov/internal/domain"
)

// quietOptions keeps the periodic refresh far away so tests observe only
// the notifications their own mutations produce.
func quietOptions(extra ...Option) []Option {
	opts := []Option{WithRefreshInterval(time.Hour)}
	return append(opts, extra...)
}

func TestNewStartsWithNeutralSnapshot(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	state := c.State()
	assert.True(t, state.EffectivenessScore.IsZero())
	assert.Empty(t, state.Governance)
	assert.Equal(t, "Unformed Government", state.Structure.StructureType)
	assert.True(t, state.Combined.GDPGrowthModifier.Equal(decimal.NewFromInt(1)))
	assert.Len(t, state.History, 1, "construction records the first history sample")
}

func TestAddComponentRecomputesAndNotifies(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	var got []domain.UnifiedState
	unsubscribe := c.Subscribe(func(s domain.UnifiedState) { got = append(got, s) })
	defer unsubscribe()

	c.AddComponent(domain.TechnocraticProcess)
	c.AddComponent(domain.ProfessionalBureaucracy)

	require.Len(t, got, 2)
	assert.Len(t, got[0].ActiveSynergies, 0)
	assert.Len(t, got[1].ActiveSynergies, 1, "the pair synergy activates on the second add")
	assert.True(t, got[1].EffectivenessScore.GreaterThan(got[0].EffectivenessScore))

	state := c.State()
	assert.True(t, state.Governance.Contains(domain.TechnocraticProcess))
	assert.True(t, state.Governance.Contains(domain.ProfessionalBureaucracy))
}

func TestAddComponentRoutesByFamily(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	c.AddComponent(domain.DemocraticProcess)
	c.AddComponent(domain.FreeMarketSystem)
	c.AddComponent(domain.ProgressiveIncomeTax)

	state := c.State()
	assert.Equal(t, domain.Selection{domain.DemocraticProcess}, state.Governance)
	assert.Equal(t, domain.Selection{domain.FreeMarketSystem}, state.Economic)
	assert.Equal(t, domain.Selection{domain.ProgressiveIncomeTax}, state.Tax)
}

func TestDuplicateAddIsNoOp(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	c.AddComponent(domain.RuleOfLaw)

	notifications := 0
	unsubscribe := c.Subscribe(func(domain.UnifiedState) { notifications++ })
	defer unsubscribe()

	before := c.State()
	c.AddComponent(domain.RuleOfLaw)
	after := c.State()

	assert.Zero(t, notifications, "re-adding a selected kind must not notify")
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt, "no recompute happened")
	assert.Len(t, after.History, len(before.History))
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	notifications := 0
	unsubscribe := c.Subscribe(func(domain.UnifiedState) { notifications++ })
	defer unsubscribe()

	c.RemoveComponent(domain.WealthTax)
	assert.Zero(t, notifications)
}

func TestRemoveComponent(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	c.AddComponent(domain.TechnocraticProcess)
	c.AddComponent(domain.ProfessionalBureaucracy)
	require.Len(t, c.State().ActiveSynergies, 1)

	c.RemoveComponent(domain.ProfessionalBureaucracy)

	state := c.State()
	assert.Empty(t, state.ActiveSynergies, "breaking the pair deactivates the synergy")
	assert.False(t, state.Governance.Contains(domain.ProfessionalBureaucracy))
}

func TestReplaceSelectionCollapsesDuplicates(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	c.ReplaceSelection(domain.FamilyGovernance, []domain.ComponentKind{
		domain.RuleOfLaw, domain.RuleOfLaw, domain.IndependentJudiciary,
	})

	state := c.State()
	assert.Equal(t, domain.Selection{domain.RuleOfLaw, domain.IndependentJudiciary}, state.Governance)
	assert.Len(t, state.ActiveSynergies, 1)
}

func TestSetCountryContextPatch(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()
	c.AddComponent(domain.RuleOfLaw)

	neutral := c.State().EffectivenessScore

	size := domain.SizeSmall
	level := domain.DevelopmentDeveloped
	c.SetCountryContext(domain.ContextPatch{Size: &size, DevelopmentLevel: &level})

	state := c.State()
	assert.Equal(t, domain.SizeSmall, state.Context.Size)
	assert.Equal(t, domain.DevelopmentDeveloped, state.Context.DevelopmentLevel)
	assert.Equal(t, "mixed", state.Context.PoliticalTradition, "unpatched fields keep their defaults")
	assert.True(t, state.EffectivenessScore.GreaterThan(neutral),
		"a favourable context lifts the score")
}

func TestSetBaseline(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	baseline := domain.EconomicBaseline{
		GDPGrowthRate:    decimal.NewFromFloat(0.04),
		NominalGDP:       decimal.NewFromInt(1_000_000_000),
		UnemploymentRate: decimal.NewFromFloat(0.06),
		Population:       5_000_000,
	}
	c.SetBaseline(baseline)

	state := c.State()
	assert.True(t, state.Baseline.GDPGrowthRate.Equal(baseline.GDPGrowthRate))
	assert.Equal(t, int64(5_000_000), state.Enhanced.Population)
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	firstCalls, secondCalls := 0, 0
	var unsubscribeFirst func()
	unsubscribeFirst = c.Subscribe(func(domain.UnifiedState) {
		firstCalls++
		unsubscribeFirst()
	})
	unsubscribeSecond := c.Subscribe(func(domain.UnifiedState) { secondCalls++ })
	defer unsubscribeSecond()

	c.AddComponent(domain.MixedEconomy)
	c.AddComponent(domain.OpenTradePolicy)

	assert.Equal(t, 1, firstCalls, "self-unsubscribing listener fires once")
	assert.Equal(t, 2, secondCalls, "remaining listener keeps receiving")
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	calls := 0
	unsubscribe := c.Subscribe(func(domain.UnifiedState) { calls++ })
	unsubscribe()
	unsubscribe()

	c.AddComponent(domain.ConsumptionTax)
	assert.Zero(t, calls)
}

func TestSnapshotIsolation(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()
	c.AddComponent(domain.FederalSystem)

	var received domain.UnifiedState
	unsubscribe := c.Subscribe(func(s domain.UnifiedState) { received = s })
	defer unsubscribe()
	c.AddComponent(domain.DemocraticProcess)

	// Mutating a delivered or read snapshot must not leak back in.
	received.Governance[0] = "TAMPERED"
	received.Structure.Departments[0] = "TAMPERED"

	read := c.State()
	read.Governance[0] = "ALSO_TAMPERED"

	state := c.State()
	assert.Equal(t, domain.FederalSystem, state.Governance[0])
	assert.Equal(t, "Ministry of Finance", state.Structure.Departments[0])
}

func TestPeriodicRefreshExtendsHistory(t *testing.T) {
	c := New(WithRefreshInterval(5 * time.Millisecond))
	defer c.Close()

	ticks := make(chan domain.UnifiedState, 64)
	unsubscribe := c.Subscribe(func(s domain.UnifiedState) { ticks <- s })
	defer unsubscribe()

	var last domain.UnifiedState
	deadline := time.After(5 * time.Second)
	for i := 0; i < 3; i++ {
		select {
		case last = <-ticks:
		case <-deadline:
			t.Fatal("timed out waiting for periodic refresh notifications")
		}
	}

	assert.GreaterOrEqual(t, len(last.History), 3,
		"each tick appends a history sample without any mutation")
	assert.True(t, last.Metrics.Momentum.IsZero(),
		"refreshing an unchanged selection repeats the score")
}

func TestCloseStopsNotificationsAndIsIdempotent(t *testing.T) {
	c := New(quietOptions()...)

	calls := 0
	c.Subscribe(func(domain.UnifiedState) { calls++ })

	c.Close()
	c.Close()

	c.AddComponent(domain.RuleOfLaw)
	c.SetBaseline(domain.EconomicBaseline{Population: 1})
	assert.Zero(t, calls, "a closed container neither recomputes nor notifies")

	state := c.State()
	assert.Empty(t, state.Governance, "mutations after Close are dropped")
}

func TestCloseDropsInFlightNotification(t *testing.T) {
	c := New(quietOptions()...)

	entered := make(chan struct{})
	release := make(chan struct{})
	c.Subscribe(func(domain.UnifiedState) {
		close(entered)
		<-release
	})

	laterCalls := 0
	c.Subscribe(func(domain.UnifiedState) { laterCalls++ })

	delivered := make(chan struct{})
	go func() {
		c.AddComponent(domain.RuleOfLaw)
		close(delivered)
	}()

	// Close lands while the first listener is mid-delivery; the rest of
	// the in-flight notification must be dropped, not delivered late.
	<-entered
	c.Close()
	close(release)
	<-delivered

	assert.Zero(t, laterCalls, "delivery stops once the container is closed")
}

func TestSubscribeAfterCloseIsNoOp(t *testing.T) {
	c := New(quietOptions()...)
	c.Close()

	calls := 0
	unsubscribe := c.Subscribe(func(domain.UnifiedState) { calls++ })
	unsubscribe()
	unsubscribe()

	assert.Empty(t, c.listeners, "a closed container retains no listener references")
	assert.Zero(t, calls)
}

func TestConcurrentMutations(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	kinds := []domain.ComponentKind{
		domain.RuleOfLaw, domain.IndependentJudiciary, domain.FederalSystem,
		domain.FreeMarketSystem, domain.OpenTradePolicy,
		domain.ProgressiveIncomeTax, domain.TaxEnforcementAgency,
	}

	var wg sync.WaitGroup
	for _, kind := range kinds {
		wg.Add(1)
		go func(k domain.ComponentKind) {
			defer wg.Done()
			c.AddComponent(k)
			_ = c.State()
		}(kind)
	}
	wg.Wait()

	state := c.State()
	total := len(state.Governance) + len(state.Economic) + len(state.Tax)
	assert.Equal(t, len(kinds), total, "every concurrent add lands exactly once")
}

func TestSystemHealthAccessor(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()

	c.AddComponent(domain.DemocraticProcess)
	c.AddComponent(domain.AutocraticProcess)

	health := c.SystemHealth()
	assert.NotEmpty(t, health.Issues, "an active conflict surfaces as an issue")
}

func TestComponentContributionAccessor(t *testing.T) {
	c := New(quietOptions()...)
	defer c.Close()
	c.AddComponent(domain.RuleOfLaw)

	contribution := c.ComponentContribution(domain.RuleOfLaw)
	assert.True(t, contribution.Selected)
	assert.Equal(t, "Rule of Law", contribution.Name)

	contribution = c.ComponentContribution(domain.FreeMarketSystem)
	assert.False(t, contribution.Selected)
}
