package model

import "testing"

func TestIdealTeams_CoverEveryTheme(t *testing.T) {
	if len(IdealTeams) != len(Themes) {
		t.Fatalf("expected %d ideal compositions, got %d", len(Themes), len(IdealTeams))
	}
	for _, theme := range Themes {
		it, ok := IdealTeams[theme]
		if !ok {
			t.Errorf("theme %q has no ideal composition", theme)
			continue
		}
		if len(it.Tech) == 0 || len(it.Metier) == 0 {
			t.Errorf("theme %q must recommend both tech and metier skills", theme)
		}
	}
}

func TestIdealTeams_SkillsBelongToTaxonomies(t *testing.T) {
	tech := make(map[string]bool, len(TechSkills))
	for _, s := range TechSkills {
		tech[s] = true
	}

	for theme, it := range IdealTeams {
		for _, s := range it.Tech {
			if !tech[s] {
				t.Errorf("theme %q recommends unknown tech skill %q", theme, s)
			}
		}

		metier := make(map[string]bool, len(MetierSkills[theme]))
		for _, s := range MetierSkills[theme] {
			metier[s] = true
		}
		for _, s := range it.Metier {
			if !metier[s] {
				t.Errorf("theme %q recommends metier skill %q outside its own taxonomy", theme, s)
			}
		}
	}
}
