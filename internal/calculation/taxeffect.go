package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/domain"
)

// ComputeTaxEffectiveness breaks the tax-family composition down into
// collection, compliance and audit qualities. An empty tax selection
// reports the neutral midpoint across the board.
func ComputeTaxEffectiveness(selection domain.Selection, cat *catalog.Catalog, bundle domain.ModifierBundle) domain.TaxEffectiveness {
	midpoint := decimal.NewFromInt(50)
	if len(selection) == 0 {
		return domain.TaxEffectiveness{
			CollectionEfficiency: midpoint,
			ComplianceRate:       midpoint,
			AuditCapacity:        midpoint,
			OverallScore:         midpoint,
		}
	}

	collection := clampScore(midpoint.Mul(bundle.TaxCollectionMultiplier))

	sum := decimal.Zero
	for _, kind := range selection {
		sum = sum.Add(cat.Profile(kind).BaseEffectiveness)
	}
	compliance := clampScore(sum.Div(decimal.NewFromInt(int64(len(selection)))))

	audit := decimal.NewFromInt(40)
	if selection.Contains(domain.TaxEnforcementAgency) {
		audit = audit.Add(decimal.NewFromInt(25))
	}
	if selection.Contains(domain.DigitalTaxAdministration) {
		audit = audit.Add(decimal.NewFromInt(20))
	}
	if selection.Contains(domain.BroadTaxBase) {
		audit = audit.Add(decimal.NewFromInt(10))
	}
	audit = clampScore(audit)

	overall := clampScore(collection.Add(compliance).Add(audit).Div(decimal.NewFromInt(3)))

	return domain.TaxEffectiveness{
		CollectionEfficiency: collection,
		ComplianceRate:       compliance,
		AuditCapacity:        audit,
		OverallScore:         overall,
	}
}
