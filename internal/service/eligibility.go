package service

import (
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/config"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/dto"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
)

// EvaluateEligibility computes the compliance report for a team roster.
//
// Pure and total: any roster, including a partially-filled or empty one,
// yields a report; failing criteria come back false, the function never
// errors. Thresholds come from the rules configuration.
//
// Criteria:
//   - size: member count equals rules.team_size
//   - mixity: at least rules.mixity_min members of gender rules.mixity_gender
//   - diversity: at least rules.diversity_min distinct technical skills
//     across the roster
//   - core skill: at least one member declares one of rules.core_skills
//     (an empty list disables the criterion)
func EvaluateEligibility(members []model.TeamMember, rules *config.RulesConfig) *dto.EligibilityReport {
	report := &dto.EligibilityReport{
		MemberCount: len(members),
	}

	distinct := make(map[string]struct{})
	coreSkillFound := len(rules.CoreSkills) == 0

	for _, m := range members {
		if m.Profile == nil {
			continue
		}
		if m.Profile.Gender == rules.MixityGender {
			report.MixityCount++
		}
		for _, skill := range m.Profile.TechSkills {
			distinct[skill] = struct{}{}
			for _, core := range rules.CoreSkills {
				if skill == core {
					coreSkillFound = true
				}
			}
		}
	}

	report.DistinctTechSkills = len(distinct)
	report.SizeOK = report.MemberCount == rules.TeamSize
	report.MixityOK = report.MixityCount >= rules.MixityMin
	report.DiversityOK = report.DistinctTechSkills >= rules.DiversityMin
	report.CoreSkillOK = coreSkillFound
	report.OverallOK = report.SizeOK && report.MixityOK && report.DiversityOK && report.CoreSkillOK

	return report
}
