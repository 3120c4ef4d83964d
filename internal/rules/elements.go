package rules

import (
	"fmt"

	"creatures/internal/models"
)

// interactionNames nomme le croisement de deux éléments. Les paires sont
// stockées dans un seul sens; Interaction normalise l'ordre avant la recherche.
var interactionNames = map[[2]models.Element]string{
	{models.ElementFire, models.ElementWater}:      "Vapor Surge",
	{models.ElementFire, models.ElementEarth}:      "Magma Vein",
	{models.ElementFire, models.ElementAir}:        "Wildfire Draft",
	{models.ElementFire, models.ElementLightning}:  "Plasma Arc",
	{models.ElementFire, models.ElementIce}:        "Thermal Shock",
	{models.ElementFire, models.ElementShadow}:     "Ashen Veil",
	{models.ElementFire, models.ElementLight}:      "Solar Flare",
	{models.ElementWater, models.ElementEarth}:     "Silt Bloom",
	{models.ElementWater, models.ElementAir}:       "Storm Front",
	{models.ElementWater, models.ElementLightning}: "Conductive Tide",
	{models.ElementWater, models.ElementIce}:       "Glacial Current",
	{models.ElementWater, models.ElementShadow}:    "Abyssal Depth",
	{models.ElementWater, models.ElementLight}:     "Prism Mist",
	{models.ElementEarth, models.ElementAir}:       "Dust Devil",
	{models.ElementEarth, models.ElementLightning}: "Fulgurite Core",
	{models.ElementEarth, models.ElementIce}:       "Permafrost",
	{models.ElementEarth, models.ElementShadow}:    "Hollow Root",
	{models.ElementEarth, models.ElementLight}:     "Crystal Garden",
	{models.ElementAir, models.ElementLightning}:   "Tempest Crown",
	{models.ElementAir, models.ElementIce}:         "Hail Spiral",
	{models.ElementAir, models.ElementShadow}:      "Night Gale",
	{models.ElementAir, models.ElementLight}:       "Aurora Stream",
	{models.ElementLightning, models.ElementIce}:   "Static Frost",
	{models.ElementLightning, models.ElementShadow}: "Dark Current",
	{models.ElementLightning, models.ElementLight}:  "Radiant Storm",
	{models.ElementIce, models.ElementShadow}:      "Umbral Freeze",
	{models.ElementIce, models.ElementLight}:       "Diamond Dust",
	{models.ElementShadow, models.ElementLight}:    "Eclipse",
}

// elementOrder fixe un ordre stable pour normaliser les paires
var elementOrder = map[models.Element]int{
	models.ElementFire:      0,
	models.ElementWater:     1,
	models.ElementEarth:     2,
	models.ElementAir:       3,
	models.ElementLightning: 4,
	models.ElementIce:       5,
	models.ElementShadow:    6,
	models.ElementLight:     7,
}

// Interaction retourne le descripteur de croisement de deux éléments.
// Donnée narrative uniquement: jamais consultée par les calculs numériques.
func Interaction(e1, e2 models.Element) models.ElementInteraction {
	a, b := e1, e2
	if elementOrder[a] > elementOrder[b] {
		a, b = b, a
	}

	name, ok := interactionNames[[2]models.Element{a, b}]
	if !ok {
		// Même élément des deux côtés: résonance pure
		name = "Pure Resonance"
	}

	return models.ElementInteraction{
		Element1:    e1,
		Element2:    e2,
		Name:        name,
		Description: fmt.Sprintf("The crossing of %s and %s manifests as %s.", e1, e2, name),
	}
}

// familyElement associe chaque famille de créature à son élément dominant
var familyElement = map[models.Family]models.Element{
	models.FamilyEmber:  models.ElementFire,
	models.FamilyTide:   models.ElementWater,
	models.FamilyTerra:  models.ElementEarth,
	models.FamilyGale:   models.ElementAir,
	models.FamilyVolt:   models.ElementLightning,
	models.FamilyFrost:  models.ElementIce,
	models.FamilyFlora:  models.ElementEarth,
	models.FamilyShade:  models.ElementShadow,
	models.FamilyLumen:  models.ElementLight,
	models.FamilyChrono: models.ElementAir,
}

// FamilyElement retourne l'élément dominant d'une famille
func FamilyElement(f models.Family) models.Element {
	if e, ok := familyElement[f]; ok {
		return e
	}
	return models.ElementEarth
}

// strongAgainst définit les avantages élémentaires en combat
var strongAgainst = map[models.Element]models.Element{
	models.ElementFire:      models.ElementIce,
	models.ElementWater:     models.ElementFire,
	models.ElementEarth:     models.ElementLightning,
	models.ElementAir:       models.ElementEarth,
	models.ElementLightning: models.ElementWater,
	models.ElementIce:       models.ElementAir,
	models.ElementShadow:    models.ElementLight,
	models.ElementLight:     models.ElementShadow,
}

// AffinityMultiplier retourne le multiplicateur d'affinité d'une attaque
// élémentaire contre une famille de défenseur: 1.25 en avantage, 0.8 en
// désavantage, 1.0 sinon
func AffinityMultiplier(attack models.Element, defender models.Family) float64 {
	if attack == "" {
		return 1.0
	}

	defElem := FamilyElement(defender)
	if strongAgainst[attack] == defElem {
		return 1.25
	}
	if strongAgainst[defElem] == attack {
		return 0.8
	}
	return 1.0
}
