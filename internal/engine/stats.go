package engine

import (
	"math"

	"creatures/internal/models"
	"creatures/internal/rules"
)

// ResolveRarity calcule le tier de rareté d'une fusion. Le résultat n'est
// jamais inférieur au plus haut tier des deux parents; les catalyseurs
// apportent un bonus d'escalade de 0, 1 ou 2 tiers selon la courbe de seuils,
// plafonné à Mythic.
func ResolveRarity(p1, p2 *models.Creature, s1, s2 *models.Stone) models.Rarity {
	base := p1.Rarity
	if p2.Rarity > base {
		base = p2.Rarity
	}

	promoted := base + models.Rarity(rules.EscalationBonus(rules.EscalationScore(s1, s2)))
	if promoted > models.RarityMythic {
		promoted = models.RarityMythic
	}
	return promoted
}

// BlendStats calcule le bloc de statistiques de base d'une fusion: moyenne
// pondérée des deux parents (les lignées de plus haute génération pèsent
// proportionnellement plus), puis mise à l'échelle par la courbe canonique
// du tier obtenu, arrondie à l'entier le plus proche, plancher zéro.
func BlendStats(p1, p2 *models.Creature, rarity models.Rarity) models.StatBlock {
	w1 := float64(p1.Generation() + 1)
	w2 := float64(p2.Generation() + 1)
	total := w1 + w2

	curve := rules.RarityCurve(rarity)

	blend := func(a, b int) int {
		raw := (float64(a)*w1 + float64(b)*w2) / total
		scaled := math.Round(raw * curve)
		if scaled < 0 {
			return 0
		}
		return int(scaled)
	}

	return models.StatBlock{
		HP:      blend(p1.Stats.HP, p2.Stats.HP),
		Attack:  blend(p1.Stats.Attack, p2.Stats.Attack),
		Defense: blend(p1.Stats.Defense, p2.Stats.Defense),
		Speed:   blend(p1.Stats.Speed, p2.Stats.Speed),
	}
}

// ApplyStoneBonuses applique les bonus de statistiques des catalyseurs,
// amplifiés par le multiplicateur de mutation quand un glitch s'est déclenché
func ApplyStoneBonuses(stats models.StatBlock, s1, s2 *models.Stone, mult float64) models.StatBlock {
	bonus := func(axis models.StatAxis) int {
		raw := float64(s1.StatBonus[axis] + s2.StatBonus[axis])
		return int(math.Round(raw * mult))
	}

	stats.HP += bonus(models.StatHP)
	stats.Attack += bonus(models.StatAttack)
	stats.Defense += bonus(models.StatDefense)
	stats.Speed += bonus(models.StatSpeed)
	return stats
}
