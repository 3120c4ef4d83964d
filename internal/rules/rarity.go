package rules

import "creatures/internal/models"

// escalationThresholds définit la courbe d'escalade de rareté. Le score d'un
// couple de catalyseurs est comparé aux seuils en ordre décroissant; la
// promotion est plafonnée à deux tiers par fusion.
var escalationThresholds = []struct {
	Score     int
	Promotion int
}{
	{90, 2},
	{45, 1},
}

// EscalationScore calcule le score d'escalade d'un couple de catalyseurs
// à partir de la somme des tiers et de la puissance élémentaire cumulée
func EscalationScore(s1, s2 *models.Stone) int {
	tierSum := int(s1.Tier) + int(s2.Tier)
	powerSum := s1.ElementalPower + s2.ElementalPower
	return tierSum*8 + powerSum/10
}

// EscalationBonus retourne la promotion de rareté (0, 1 ou 2 tiers)
// correspondant à un score d'escalade
func EscalationBonus(score int) int {
	for _, t := range escalationThresholds {
		if score >= t.Score {
			return t.Promotion
		}
	}
	return 0
}

// rarityCurves définit le facteur canonique d'échelle des statistiques par tier
var rarityCurves = map[models.Rarity]float64{
	models.RarityBasic:     1.0,
	models.RarityRare:      1.15,
	models.RarityEpic:      1.32,
	models.RarityLegendary: 1.55,
	models.RarityAncient:   1.8,
	models.RarityMythic:    2.1,
}

// RarityCurve retourne le facteur d'échelle des statistiques d'un tier
func RarityCurve(r models.Rarity) float64 {
	if f, ok := rarityCurves[r]; ok {
		return f
	}
	return 1.0
}

// familyBaseStats définit les courbes de statistiques de base par famille.
// Servies aux créatures de départ et aux tests; les fusions partent des
// statistiques réelles des parents.
var familyBaseStats = map[models.Family]models.StatBlock{
	models.FamilyEmber:  {HP: 90, Attack: 14, Defense: 8, Speed: 12},
	models.FamilyTide:   {HP: 105, Attack: 10, Defense: 11, Speed: 9},
	models.FamilyTerra:  {HP: 120, Attack: 9, Defense: 14, Speed: 6},
	models.FamilyGale:   {HP: 80, Attack: 11, Defense: 7, Speed: 16},
	models.FamilyVolt:   {HP: 85, Attack: 13, Defense: 7, Speed: 14},
	models.FamilyFrost:  {HP: 100, Attack: 10, Defense: 12, Speed: 8},
	models.FamilyFlora:  {HP: 110, Attack: 8, Defense: 12, Speed: 7},
	models.FamilyShade:  {HP: 88, Attack: 15, Defense: 6, Speed: 13},
	models.FamilyLumen:  {HP: 95, Attack: 11, Defense: 10, Speed: 10},
	models.FamilyChrono: {HP: 92, Attack: 12, Defense: 9, Speed: 11},
}

// FamilyBaseStats retourne la courbe de statistiques de base d'une famille
func FamilyBaseStats(f models.Family) models.StatBlock {
	if s, ok := familyBaseStats[f]; ok {
		return s
	}
	return models.StatBlock{HP: 90, Attack: 10, Defense: 10, Speed: 10}
}
