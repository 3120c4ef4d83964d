package engine

import (
	"math"
	"sort"

	"creatures/internal/models"
)

// MaxActiveAbilities plafonne le nombre de capacités actives d'une créature
const MaxActiveAbilities = 4

// mutationPalette liste les mutations de couleur possibles, ordre stable
var mutationPalette = []string{
	"crimson", "azure", "viridian", "aurum", "violet",
	"cinder", "pearl", "obsidian", "coral", "prismatic",
}

// mutationTraits liste les traits ajoutés au génome visuel lors d'un glitch
var mutationTraits = map[models.MutationSeverity][]string{
	models.SeverityLow:     {"shimmer"},
	models.SeverityMedium:  {"crystalline"},
	models.SeverityHigh:    {"crystalline", "fractal"},
	models.SeverityExtreme: {"glitch", "fractal", "void-touched"},
}

// InheritedAbilities représente l'ensemble de capacités d'une créature fusionnée
type InheritedAbilities struct {
	Passives []models.Ability
	Actives  []models.Ability
	Ultimate *models.Ability
}

// ResolveAbilities calcule les capacités héritées: union des pools des deux
// parents dédupliquée par identifiant, avec plafond d'actives. Les excédents
// sont écartés par priorité stable: ultimate d'abord, puis tier décroissant,
// puis identifiant croissant.
func ResolveAbilities(p1, p2 *models.Creature) InheritedAbilities {
	passives := dedupeAbilities(append(append([]models.Ability{}, p1.Passives...), p2.Passives...))
	actives := dedupeAbilities(append(append([]models.Ability{}, p1.Actives...), p2.Actives...))

	// Ordre de priorité stable avant application du plafond
	sort.SliceStable(actives, func(i, j int) bool {
		if actives[i].Tier != actives[j].Tier {
			return actives[i].Tier > actives[j].Tier
		}
		return actives[i].ID < actives[j].ID
	})
	if len(actives) > MaxActiveAbilities {
		actives = actives[:MaxActiveAbilities]
	}

	sort.SliceStable(passives, func(i, j int) bool {
		if passives[i].Tier != passives[j].Tier {
			return passives[i].Tier > passives[j].Tier
		}
		return passives[i].ID < passives[j].ID
	})

	var ultimate *models.Ability
	for _, c := range []*models.Ability{p1.Ultimate, p2.Ultimate} {
		if c == nil {
			continue
		}
		if ultimate == nil {
			u := *c
			ultimate = &u
			continue
		}
		// Au plus un ultimate: le plus haut tier gagne, identifiant croissant
		// en cas d'égalité
		if c.Tier > ultimate.Tier || (c.Tier == ultimate.Tier && c.ID < ultimate.ID) {
			u := *c
			ultimate = &u
		}
	}

	return InheritedAbilities{Passives: passives, Actives: actives, Ultimate: ultimate}
}

// dedupeAbilities supprime les doublons par identifiant en gardant la
// première occurrence
func dedupeAbilities(in []models.Ability) []models.Ability {
	seen := make(map[string]bool, len(in))
	out := make([]models.Ability, 0, len(in))
	for _, a := range in {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

// ResolveAppearance calcule l'apparence de la créature fusionnée. Couleur et
// lueur sont des fonctions déterministes du flux de fusion: refusionner les
// mêmes entrées avec la même graine produit une apparence identique. Les
// traits de mutation ne sont ajoutés que si le résolveur de mutation s'est
// réellement déclenché.
func ResolveAppearance(stream *Stream, p1, p2 *models.Creature, mutation models.MutationResult) models.Appearance {
	tags := dedupeStrings(append(append([]string{}, p1.Appearance.VisualTags...), p2.Appearance.VisualTags...))
	sort.Strings(tags)

	color := mutationPalette[stream.IntN(len(mutationPalette))]
	glow := math.Round(stream.Float64()*100) / 100

	genome := &models.VisualGenome{
		BodyParts: mergeBodyParts(p1.Appearance.Genome, p2.Appearance.Genome),
	}

	particle := p1.Appearance.ParticleTag
	if particle == "" {
		particle = p2.Appearance.ParticleTag
	}

	if mutation.Glitched {
		genome.MutationTraits = append(genome.MutationTraits, mutationTraits[mutation.Level]...)
		if mutation.Level == models.SeverityExtreme {
			particle = "glitch-static"
		}
	}

	return models.Appearance{
		ColorMutation: color,
		Glow:          glow,
		ParticleTag:   particle,
		VisualTags:    tags,
		Genome:        genome,
	}
}

// mergeBodyParts fusionne les génomes visuels des deux parents, le premier
// parent prioritaire sur les parties communes
func mergeBodyParts(g1, g2 *models.VisualGenome) map[string]string {
	merged := make(map[string]string)
	if g2 != nil {
		for part, desc := range g2.BodyParts {
			merged[part] = desc
		}
	}
	if g1 != nil {
		for part, desc := range g1.BodyParts {
			merged[part] = desc
		}
	}
	return merged
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
