package engine

import "creatures/internal/models"

// Paramètres du résolveur de mutation. La probabilité croît avec le tier des
// catalyseurs et le compteur de fusions du joueur, sous un plafond global.
const (
	glitchBaseChance    = 0.01
	glitchTierIVBonus   = 0.08
	glitchTierVBonus    = 0.15
	glitchDoubleVBonus  = 0.10
	glitchPerFusion     = 0.005
	glitchFusionCap     = 0.10
	glitchChanceCeiling = 0.60

	severityJitterMax = 41 // jitter dans [0, 40]
)

// severityMultipliers associe chaque niveau de sévérité à son multiplicateur
var severityMultipliers = map[models.MutationSeverity]float64{
	models.SeverityLow:     1.1,
	models.SeverityMedium:  1.25,
	models.SeverityHigh:    1.5,
	models.SeverityExtreme: 2.0,
}

// GlitchChance calcule la probabilité de glitch d'une fusion à partir des
// tiers des deux catalyseurs et du compteur de fusions cumulé du joueur
func GlitchChance(t1, t2 models.StoneTier, fusionCount int) float64 {
	chance := glitchBaseChance

	for _, t := range []models.StoneTier{t1, t2} {
		switch t {
		case models.StoneTierIV:
			chance += glitchTierIVBonus
		case models.StoneTierV:
			chance += glitchTierVBonus
		}
	}
	if t1 == models.StoneTierV && t2 == models.StoneTierV {
		chance += glitchDoubleVBonus
	}

	fusionBonus := float64(fusionCount) * glitchPerFusion
	if fusionBonus > glitchFusionCap {
		fusionBonus = glitchFusionCap
	}
	chance += fusionBonus

	if chance > glitchChanceCeiling {
		chance = glitchChanceCeiling
	}
	return chance
}

// severityLevel classe un score de sévérité dans un des quatre niveaux discrets
func severityLevel(severity int) models.MutationSeverity {
	switch {
	case severity < 25:
		return models.SeverityLow
	case severity < 50:
		return models.SeverityMedium
	case severity < 75:
		return models.SeverityHigh
	default:
		return models.SeverityExtreme
	}
}

// ResolveMutation décide si la fusion glitche et avec quelle sévérité.
// Le glitch est résolu par un tirage unique sur le flux de la fusion, jamais
// rejoué. Deux catalyseurs déjà glitchés garantissent le glitch du résultat,
// mais le tirage est consommé quand même pour garder la position du flux
// identique entre les deux chemins.
func ResolveMutation(stream *Stream, s1, s2 *models.Stone, fusionCount int) models.MutationResult {
	chance := GlitchChance(s1.Tier, s2.Tier, fusionCount)
	guaranteed := s1.IsGlitched && s2.IsGlitched

	rolled := stream.Roll(chance)
	triggered := rolled || guaranteed

	result := models.MutationResult{
		Glitched:   triggered,
		Guaranteed: guaranteed,
		Chance:     chance,
		Multiplier: 1.0,
	}

	if !triggered {
		// Consommer le tirage de sévérité pour garder le flux aligné
		_ = stream.IntN(severityJitterMax)
		return result
	}

	maxTier := s1.Tier
	if s2.Tier > maxTier {
		maxTier = s2.Tier
	}

	severity := int(maxTier)*12 + stream.IntN(severityJitterMax)
	if severity > 100 {
		severity = 100
	}

	result.Severity = severity
	result.Level = severityLevel(severity)
	result.Multiplier = severityMultipliers[result.Level]
	return result
}
