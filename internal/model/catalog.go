package model

// Fixed enumerations of the 2026 edition. Themes, regional stages and skill
// taxonomies are event data, kept in French as published by the FNCT.

// Region is a regional stage of the hackathon.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// Regions lists the five stages in calendar order.
var Regions = []Region{
	{ID: "sud-est", Name: "Sud-Est (Djerba)", Date: "2026-04-03"},
	{ID: "centre-est", Name: "Centre-Est (Sfax)", Date: "2026-04-06"},
	{ID: "centre-ouest", Name: "Centre-Ouest (Kairouan)", Date: "2026-04-08"},
	{ID: "nord-ouest", Name: "Nord-Ouest (Tabarka)", Date: "2026-04-15"},
	{ID: "nationale", Name: "Finale nationale (Tunis)", Date: "2026-04-22"},
}

// Themes lists the five challenge themes.
var Themes = []string{
	"Gestion urbaine et territoriale",
	"Déchets et économie circulaire",
	"Adaptation au changement climatique",
	"Gestion administrative et financière",
	"Patrimoine, culture et jeunesse",
}

// TechSkills is the technical skill taxonomy candidates declare from.
var TechSkills = []string{
	"Développement logiciel",
	"Data / Intelligence Artificielle",
	"Design UX / UI",
	"Urbanisme / Aménagement",
	"Environnement / Climat",
	"Gestion / Finance publique",
	"Droit / Réglementation",
	"Communication / Pitch",
}

// MetierSkills is the per-theme domain skill taxonomy.
var MetierSkills = map[string][]string{
	"Gestion urbaine et territoriale": {
		"Urbanisme opérationnel",
		"Mobilité et transport",
		"Services urbains",
		"Gestion foncière",
	},
	"Déchets et économie circulaire": {
		"Gestion des déchets",
		"Économie circulaire",
		"Compostage et valorisation",
		"Plasturgie",
	},
	"Adaptation au changement climatique": {
		"Hydrologie et gestion de l'eau",
		"Risques naturels",
		"Espaces verts et biodiversité",
		"Énergie et climat",
	},
	"Gestion administrative et financière": {
		"Finances publiques locales",
		"Administration territoriale",
		"Digitalisation des services",
		"Management public",
	},
	"Patrimoine, culture et jeunesse": {
		"Patrimoine et tourisme",
		"Action culturelle",
		"Jeunesse et participation",
		"Événementiel local",
	},
}

// IdealTeam is the recommended skill mix for one theme, shown to candidates
// while they compose their team. Advisory only, never enforced.
type IdealTeam struct {
	Tech   []string `json:"tech"`
	Metier []string `json:"metier"`
}

// IdealTeams maps each theme to its recommended composition.
var IdealTeams = map[string]IdealTeam{
	"Gestion urbaine et territoriale": {
		Tech: []string{
			"Développement logiciel",
			"Data / Intelligence Artificielle",
			"Design UX / UI",
			"Droit / Réglementation",
		},
		Metier: []string{"Urbanisme opérationnel"},
	},
	"Déchets et économie circulaire": {
		Tech: []string{
			"Développement logiciel",
			"Data / Intelligence Artificielle",
			"Environnement / Climat",
			"Communication / Pitch",
		},
		Metier: []string{"Gestion des déchets"},
	},
	"Adaptation au changement climatique": {
		Tech: []string{
			"Développement logiciel",
			"Data / Intelligence Artificielle",
			"Environnement / Climat",
			"Urbanisme / Aménagement",
			"Gestion / Finance publique",
		},
		Metier: []string{"Hydrologie et gestion de l'eau"},
	},
	"Gestion administrative et financière": {
		Tech: []string{
			"Développement logiciel",
			"Design UX / UI",
			"Droit / Réglementation",
			"Gestion / Finance publique",
		},
		Metier: []string{"Finances publiques locales"},
	},
	"Patrimoine, culture et jeunesse": {
		Tech: []string{
			"Développement logiciel",
			"Design UX / UI",
			"Communication / Pitch",
		},
		Metier: []string{"Patrimoine et tourisme", "Action culturelle"},
	},
}

// ValidTheme reports whether s is one of the published themes.
func ValidTheme(s string) bool {
	for _, t := range Themes {
		if t == s {
			return true
		}
	}
	return false
}

// RegionByID resolves a regional stage by its identifier.
func RegionByID(id string) (Region, bool) {
	for _, r := range Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// ValidRegion reports whether id is one of the published regional stages.
func ValidRegion(id string) bool {
	for _, r := range Regions {
		if r.ID == id {
			return true
		}
	}
	return false
}

// ValidGender reports whether g is a recognized gender code.
func ValidGender(g string) bool {
	return g == "M" || g == "F" || g == "O"
}
