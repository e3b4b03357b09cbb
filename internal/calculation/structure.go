package calculation

import (
	"github.com/algolds/ixgov/internal/catalog"
	"github.com/algolds/ixgov/internal/domain"
)

// GenerateStructure derives a descriptive government structure from the
// governance selection. String-producing rules only; the output is
// deterministic for a given selection.
func GenerateStructure(selection domain.Selection, cat *catalog.Catalog) domain.GovernmentStructure {
	if len(selection) == 0 {
		return domain.GovernmentStructure{
			StructureType:   "Unformed Government",
			GovernanceStyle: "No governing components selected",
		}
	}

	structure := domain.GovernmentStructure{
		StructureType:   structureType(selection),
		GovernanceStyle: governanceStyle(selection),
		Departments:     []string{"Ministry of Finance", "Ministry of Foreign Affairs", "Ministry of the Interior"},
	}

	seen := map[string]bool{}
	for _, d := range structure.Departments {
		seen[d] = true
	}
	for _, kind := range selection {
		for _, label := range cat.Profile(kind).StructureImpacts {
			if !seen[label] {
				seen[label] = true
				structure.Departments = append(structure.Departments, label)
			}
		}
	}

	if selection.Contains(domain.RuleOfLaw) {
		structure.Notes = append(structure.Notes, "Constitutional constraints bind executive action")
	}
	if selection.Contains(domain.SurveillanceSystem) {
		structure.Notes = append(structure.Notes, "Domestic monitoring apparatus operates alongside civil institutions")
	}
	if selection.Contains(domain.MilitaryAdministration) {
		structure.Notes = append(structure.Notes, "Armed forces hold administrative portfolios")
	}

	return structure
}

func structureType(selection domain.Selection) string {
	base := "Sovereign"
	switch {
	case selection.Contains(domain.FederalSystem):
		base = "Federal"
	case selection.Contains(domain.ConfederateSystem):
		base = "Confederal"
	case selection.Contains(domain.CentralizedPower):
		base = "Centralized"
	case selection.Contains(domain.UnitarySystem):
		base = "Unitary"
	}

	form := "State"
	switch {
	case selection.Contains(domain.DemocraticProcess):
		form = "Republic"
	case selection.Contains(domain.TechnocraticProcess):
		form = "Technocracy"
	case selection.Contains(domain.AutocraticProcess):
		form = "Autocracy"
	case selection.Contains(domain.OligarchicProcess):
		form = "Oligarchy"
	case selection.Contains(domain.ConsensusProcess):
		form = "Assembly Government"
	}

	return base + " " + form
}

func governanceStyle(selection domain.Selection) string {
	switch {
	case selection.Contains(domain.ElectoralLegitimacy):
		return "Authority renewed through regular elections"
	case selection.Contains(domain.PerformanceLegitimacy):
		return "Authority justified by delivery of results"
	case selection.Contains(domain.TraditionalLegitimacy):
		return "Authority rooted in established custom"
	case selection.Contains(domain.CharismaticLegitimacy):
		return "Authority centered on a dominant leadership figure"
	case selection.Contains(domain.ReligiousLegitimacy):
		return "Authority derived from religious sanction"
	default:
		return "Authority exercised without a declared legitimacy source"
	}
}
