package engine

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"creatures/internal/models"
	"creatures/internal/rules"
)

// Paramètres du résolveur de combat
const (
	MaxRosterSize      = 4
	RoundCeiling       = 50
	DefaultMaxEnergy   = 100
	EnergyRegenPerTick = 10

	critChance     = 0.05
	critMultiplier = 1.5

	domainDamageBoost   = 0.15
	lineagePerFamilyMod = 0.02
	shockEnergyDrain    = 5

	// Remaining d'un modificateur permanent, jamais décrémenté
	permanentModifier = -1
)

// NewBattle construit une session de combat à partir de deux rosters.
// L'ordre du tour initial est calculé sur la vitesse effective, décroissante,
// départagée par identifiant croissant. La graine fournie pilote tous les
// tirages du combat.
func NewBattle(team1, team2 []*models.Creature, seed uint64, at time.Time) (*models.Battle, error) {
	if len(team1) == 0 || len(team2) == 0 {
		return nil, models.ErrEmptyRoster
	}
	if len(team1) > MaxRosterSize || len(team2) > MaxRosterSize {
		return nil, models.ErrRosterTooLarge
	}

	for _, c := range append(append([]*models.Creature{}, team1...), team2...) {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	battle := &models.Battle{
		ID:        uuid.New(),
		Team1:     buildParticipants(team1, models.Team1),
		Team2:     buildParticipants(team2, models.Team2),
		Turn:      1,
		Round:     1,
		Seed:      seed,
		CreatedAt: at,
		UpdatedAt: at,
	}

	applyDomainEffects(battle)
	battle.TurnOrder = computeTurnOrder(battle)
	battle.CurrentActor = firstAliveIndex(battle, 0)

	return battle, nil
}

// buildParticipants enveloppe chaque créature dans son état de combat
// éphémère. Les passives de statistique sont posées comme des modificateurs
// permanents, jamais décrémentés par le tick de fin de round.
func buildParticipants(roster []*models.Creature, team models.Team) []*models.BattleParticipant {
	out := make([]*models.BattleParticipant, 0, len(roster))
	for i, c := range roster {
		position := models.PositionFront
		if i >= 2 {
			position = models.PositionBack
		}

		p := &models.BattleParticipant{
			Creature:  c,
			Team:      team,
			Position:  position,
			CurrentHP: c.Stats.HP,
			MaxHP:     c.Stats.HP,
			Energy:    DefaultMaxEnergy,
			MaxEnergy: DefaultMaxEnergy,
			Lineage:   lineageModifiers(c),
		}

		for _, passive := range c.Passives {
			for _, eff := range passive.Effects {
				if eff.Kind == models.EffectKindSpecial && eff.StatAffected != "" {
					p.Buffs = append(p.Buffs, models.StatModifier{
						Stat:      eff.StatAffected,
						Magnitude: eff.Magnitude,
						Remaining: permanentModifier,
					})
				}
			}
		}

		out = append(out, p)
	}
	return out
}

// lineageModifiers dérive les modificateurs de lignée: chaque famille
// ancestrale distincte apporte un petit bonus de dégâts sortants
func lineageModifiers(c *models.Creature) []models.LineageModifier {
	seen := make(map[models.Family]bool)
	var mods []models.LineageModifier
	for _, entry := range c.FusionHistory {
		for _, f := range []models.Family{entry.Parent1Family, entry.Parent2Family} {
			if f == c.Family || seen[f] {
				continue
			}
			seen[f] = true
			mods = append(mods, models.LineageModifier{Family: f, DamageMod: lineagePerFamilyMod})
		}
	}
	return mods
}

// applyDomainEffects pose les effets de domaine du combat: ils ne se
// déclenchent que lorsque deux créatures Mythic se font face, une dans
// chaque camp. Chaque ancre projette alors le domaine de son élément
// dominant. Les effets de domaine ne expirent jamais pendant le combat.
func applyDomainEffects(b *models.Battle) {
	anchor1 := mythicAnchor(b.Team1)
	anchor2 := mythicAnchor(b.Team2)
	if anchor1 == nil || anchor2 == nil {
		return
	}

	for _, side := range []struct {
		team    models.Team
		anchor  *models.BattleParticipant
		members []*models.BattleParticipant
		enemies []*models.BattleParticipant
	}{
		{models.Team1, anchor1, b.Team1, b.Team2},
		{models.Team2, anchor2, b.Team2, b.Team1},
	} {
		element := rules.FamilyElement(side.anchor.Creature.Family)
		b.DomainEffects = append(b.DomainEffects, models.DomainEffect{
			Name:        string(element) + " domain",
			Description: "The battlefield bends to the " + string(element) + " lineage.",
			Element:     element,
			DamageBoost: domainDamageBoost,
			Team:        side.team,
		})

		for _, p := range side.members {
			p.DomainBoost += domainDamageBoost
		}
		for _, p := range side.enemies {
			p.DomainVulnerability += domainDamageBoost / 2
		}
	}
}

// mythicAnchor retourne la première créature Mythic d'un camp, nil sinon
func mythicAnchor(team []*models.BattleParticipant) *models.BattleParticipant {
	for _, p := range team {
		if p.Creature.Rarity == models.RarityMythic {
			return p
		}
	}
	return nil
}

// computeTurnOrder calcule l'ordre du tour: vitesse effective décroissante,
// identifiant croissant en cas d'égalité. Recalculé au début de chaque round
// uniquement; l'ordre figé fait autorité pendant tout le round.
func computeTurnOrder(b *models.Battle) []uuid.UUID {
	participants := b.Participants()
	sort.SliceStable(participants, func(i, j int) bool {
		si := participants[i].EffectiveStat(models.StatSpeed)
		sj := participants[j].EffectiveStat(models.StatSpeed)
		if si != sj {
			return si > sj
		}
		return participants[i].Creature.ID.String() < participants[j].Creature.ID.String()
	})

	order := make([]uuid.UUID, len(participants))
	for i, p := range participants {
		order[i] = p.Creature.ID
	}
	return order
}

// firstAliveIndex retourne l'index du premier participant vivant de l'ordre
// du tour à partir d'une position donnée, -1 si aucun
func firstAliveIndex(b *models.Battle, from int) int {
	for i := from; i < len(b.TurnOrder); i++ {
		p := b.ParticipantByID(b.TurnOrder[i])
		if p != nil && p.IsAlive() {
			return i
		}
	}
	return -1
}

// SubmitAction applique l'action du joueur pour l'acteur courant. Toute
// violation du contrat rejette l'action avec une erreur typée et laisse
// l'état du combat strictement inchangé. Un acteur étourdi ou gelé voit son
// tour consommé sans effet.
func SubmitAction(b *models.Battle, action models.BattleAction, at time.Time) ([]models.TargetResult, error) {
	if b.Completed {
		return nil, models.ErrBattleComplete
	}

	actor := b.ParticipantByID(action.ActorID)
	if actor == nil {
		return nil, models.ErrActorNotFound
	}
	if b.CurrentActorID() != action.ActorID {
		return nil, models.ErrNotYourTurn
	}
	if !actor.IsAlive() {
		return nil, models.ErrActorDefeated
	}

	// Étourdi ou gelé: le tour est consommé, rien n'est résolu
	if actor.HasStatus(models.StatusStun) || actor.HasStatus(models.StatusFreeze) {
		b.Log = append(b.Log, models.BattleLogEntry{
			Turn:      b.Turn,
			Round:     b.Round,
			Action:    action,
			Timestamp: at,
		})
		advance(b, at)
		return nil, nil
	}

	ability := actor.Creature.AbilityByID(action.AbilityID)
	if ability == nil || ability.IsPassive() {
		return nil, models.ErrUnknownAbility
	}
	if actor.CooldownFor(ability.ID) > 0 {
		return nil, models.ErrAbilityOnCooldown
	}
	if actor.Energy < ability.EnergyCost {
		return nil, models.ErrNotEnoughEnergy
	}

	targets, err := resolveTargets(b, actor, ability, action.TargetIDs)
	if err != nil {
		return nil, err
	}

	// Tirages déterministes, dérivés de la graine du combat et du numéro de tour
	stream := NewStream(b.Seed ^ (uint64(b.Turn) * 0x9e3779b97f4a7c15))

	var results []models.TargetResult
	for _, eff := range ability.Effects {
		results = append(results, applyEffect(b, stream, actor, ability, eff, targets[eff.Target])...)
	}

	actor.Energy -= ability.EnergyCost
	if ability.Cooldown > 0 {
		setCooldown(actor, ability.ID, ability.Cooldown)
	}

	b.Log = append(b.Log, models.BattleLogEntry{
		Turn:      b.Turn,
		Round:     b.Round,
		Action:    action,
		Results:   results,
		Timestamp: at,
	})

	if !checkTermination(b, at) {
		advance(b, at)
	}
	return results, nil
}

// resolveTargets valide et résout les cibles de chaque sélecteur utilisé par
// la capacité. Les sélecteurs simples exigent une cible vivante du bon camp.
func resolveTargets(b *models.Battle, actor *models.BattleParticipant, ability *models.Ability, targetIDs []uuid.UUID) (map[models.TargetSelector][]*models.BattleParticipant, error) {
	allies, enemies := sides(b, actor.Team)

	targets := make(map[models.TargetSelector][]*models.BattleParticipant)
	for _, eff := range ability.Effects {
		if _, done := targets[eff.Target]; done {
			continue
		}
		switch eff.Target {
		case models.TargetSelf:
			targets[eff.Target] = []*models.BattleParticipant{actor}
		case models.TargetAllEnemies:
			targets[eff.Target] = alive(enemies)
		case models.TargetAllAllies:
			targets[eff.Target] = alive(allies)
		case models.TargetEnemy:
			t, err := pickTarget(b, targetIDs, enemies)
			if err != nil {
				return nil, err
			}
			targets[eff.Target] = []*models.BattleParticipant{t}
		case models.TargetAlly:
			t, err := pickTarget(b, targetIDs, allies)
			if err != nil {
				return nil, err
			}
			targets[eff.Target] = []*models.BattleParticipant{t}
		default:
			return nil, models.ErrInvalidTarget
		}
	}
	return targets, nil
}

func sides(b *models.Battle, team models.Team) (allies, enemies []*models.BattleParticipant) {
	if team == models.Team1 {
		return b.Team1, b.Team2
	}
	return b.Team2, b.Team1
}

func alive(in []*models.BattleParticipant) []*models.BattleParticipant {
	out := make([]*models.BattleParticipant, 0, len(in))
	for _, p := range in {
		if p.IsAlive() {
			out = append(out, p)
		}
	}
	return out
}

// pickTarget retrouve la cible désignée dans le groupe attendu, vivante
func pickTarget(b *models.Battle, targetIDs []uuid.UUID, pool []*models.BattleParticipant) (*models.BattleParticipant, error) {
	if len(targetIDs) == 0 {
		return nil, models.ErrInvalidTarget
	}
	for _, p := range pool {
		if p.Creature.ID == targetIDs[0] {
			if !p.IsAlive() {
				return nil, models.ErrInvalidTarget
			}
			return p, nil
		}
	}
	return nil, models.ErrInvalidTarget
}

// applyEffect résout un effet unitaire contre son groupe de cibles
func applyEffect(b *models.Battle, stream *Stream, actor *models.BattleParticipant, ability *models.Ability, eff models.AbilityEffect, targets []*models.BattleParticipant) []models.TargetResult {
	var results []models.TargetResult

	for _, target := range targets {
		result := models.TargetResult{TargetID: target.Creature.ID, Kind: eff.Kind}

		switch eff.Kind {
		case models.EffectKindDamage:
			dmg, crit := computeDamage(stream, actor, target, ability, eff)
			target.CurrentHP -= dmg
			if target.CurrentHP < 0 {
				target.CurrentHP = 0
			}
			result.Damage = dmg
			result.IsCritical = crit
			result.Defeated = !target.IsAlive()

			if eff.LifestealPct > 0 && dmg > 0 {
				heal := int(math.Floor(float64(dmg) * eff.LifestealPct))
				actor.CurrentHP += heal
				if actor.CurrentHP > actor.MaxHP {
					actor.CurrentHP = actor.MaxHP
				}
				result.Lifesteal = heal
			}

		case models.EffectKindHeal:
			healed := eff.Magnitude
			if target.CurrentHP+healed > target.MaxHP {
				healed = target.MaxHP - target.CurrentHP
			}
			target.CurrentHP += healed
			result.Healing = healed

		case models.EffectKindBuff:
			target.Buffs = append(target.Buffs, models.StatModifier{
				Stat:      eff.StatAffected,
				Magnitude: eff.Magnitude,
				Remaining: eff.Duration,
				SourceID:  &actor.Creature.ID,
			})
			result.StatAffected = eff.StatAffected

		case models.EffectKindDebuff:
			target.Debuffs = append(target.Debuffs, models.StatModifier{
				Stat:      eff.StatAffected,
				Magnitude: eff.Magnitude,
				Remaining: eff.Duration,
				SourceID:  &actor.Creature.ID,
			})
			result.StatAffected = eff.StatAffected

		case models.EffectKindStatus:
			if stream.Roll(eff.StatusChance) && !target.HasStatus(eff.StatusType) {
				target.Statuses = append(target.Statuses, models.StatusInstance{
					Type:      eff.StatusType,
					Remaining: eff.StatusDuration,
					Magnitude: eff.Magnitude,
					SourceID:  &actor.Creature.ID,
				})
				result.StatusApplied = eff.StatusType
			}
		}

		results = append(results, result)
	}
	return results
}

// computeDamage calcule les dégâts d'un effet: magnitude plus échelle sur la
// statistique de l'attaquant, mitigée par la moitié de la défense effective de
// la cible, modulée par l'affinité élémentaire, les lignées et les domaines.
// Un coup qui porte inflige toujours au moins 1.
func computeDamage(stream *Stream, actor, target *models.BattleParticipant, ability *models.Ability, eff models.AbilityEffect) (int, bool) {
	base := float64(eff.Magnitude)
	if eff.ScalesWith != "" {
		base += float64(actor.EffectiveStat(eff.ScalesWith)) * 0.5
	}
	base -= float64(target.EffectiveStat(models.StatDefense)) * 0.5

	element := eff.Element
	if element == "" {
		element = ability.Element
	}
	base *= rules.AffinityMultiplier(element, target.Creature.Family)

	for _, mod := range actor.Lineage {
		base *= 1 + mod.DamageMod
	}

	// Modificateurs de domaine, additifs, consultés à la résolution des dégâts
	base *= 1 + actor.DomainBoost
	base *= 1 + target.DomainVulnerability

	crit := stream.Roll(critChance)
	if crit {
		base *= critMultiplier
	}

	dmg := int(math.Round(base))
	if dmg < 1 {
		dmg = 1
	}
	return dmg, crit
}

func setCooldown(p *models.BattleParticipant, abilityID string, rounds int) {
	for i := range p.Cooldowns {
		if p.Cooldowns[i].AbilityID == abilityID {
			p.Cooldowns[i].RemainingCooldown = rounds
			return
		}
	}
	p.Cooldowns = append(p.Cooldowns, models.AbilityState{AbilityID: abilityID, RemainingCooldown: rounds})
}

// advance fait progresser la machine d'états: acteur suivant vivant dans
// l'ordre figé du round, ou tick de fin de round quand l'ordre est épuisé
func advance(b *models.Battle, at time.Time) {
	b.Turn++
	b.UpdatedAt = at

	next := firstAliveIndex(b, b.CurrentActor+1)
	if next >= 0 {
		b.CurrentActor = next
		return
	}

	endRound(b, at)
}

// endRound applique le tick de fin de round: dégâts sur la durée, expiration
// des modificateurs, décrément des cooldowns, régénération d'énergie, puis
// recalcul de l'ordre du tour pour le round suivant
func endRound(b *models.Battle, at time.Time) {
	for _, p := range b.Participants() {
		if !p.IsAlive() {
			continue
		}

		for _, s := range p.Statuses {
			switch s.Type {
			case models.StatusBurn, models.StatusPoison:
				p.CurrentHP -= s.Magnitude
				if p.CurrentHP < 0 {
					p.CurrentHP = 0
				}
			case models.StatusShock:
				p.Energy -= shockEnergyDrain
				if p.Energy < 0 {
					p.Energy = 0
				}
			}
		}

		p.Statuses = tickStatuses(p.Statuses)
		p.Buffs = tickModifiers(p.Buffs)
		p.Debuffs = tickModifiers(p.Debuffs)

		for i := range p.Cooldowns {
			if p.Cooldowns[i].RemainingCooldown > 0 {
				p.Cooldowns[i].RemainingCooldown--
			}
		}

		p.Energy += EnergyRegenPerTick
		if p.Energy > p.MaxEnergy {
			p.Energy = p.MaxEnergy
		}
	}

	// Les dégâts sur la durée peuvent terminer le combat
	if checkTermination(b, at) {
		return
	}

	b.Round++
	if b.Round > RoundCeiling {
		settleByRemainingHP(b, at)
		return
	}

	b.TurnOrder = computeTurnOrder(b)
	b.CurrentActor = firstAliveIndex(b, 0)
}

func tickStatuses(in []models.StatusInstance) []models.StatusInstance {
	out := in[:0]
	for _, s := range in {
		s.Remaining--
		if s.Remaining > 0 {
			out = append(out, s)
		}
	}
	return out
}

func tickModifiers(in []models.StatModifier) []models.StatModifier {
	out := in[:0]
	for _, m := range in {
		if m.Remaining == permanentModifier {
			out = append(out, m)
			continue
		}
		m.Remaining--
		if m.Remaining > 0 {
			out = append(out, m)
		}
	}
	return out
}

// checkTermination clôt le combat si un camp est balayé. Un combat terminé
// n'est plus jamais muté.
func checkTermination(b *models.Battle, at time.Time) bool {
	alive1 := b.AliveCount(models.Team1)
	alive2 := b.AliveCount(models.Team2)

	if alive1 > 0 && alive2 > 0 {
		return false
	}

	var winner models.Winner
	switch {
	case alive1 == 0 && alive2 == 0:
		winner = models.WinnerDraw
	case alive2 == 0:
		winner = models.WinnerTeam1
	default:
		winner = models.WinnerTeam2
	}

	b.Completed = true
	b.Winner = &winner
	b.UpdatedAt = at
	return true
}

// settleByRemainingHP départage un combat qui atteint le plafond de rounds:
// le camp avec la plus grande fraction de points de vie restants l'emporte
func settleByRemainingHP(b *models.Battle, at time.Time) {
	ratio := func(team []*models.BattleParticipant) float64 {
		current, max := 0, 0
		for _, p := range team {
			current += p.CurrentHP
			max += p.MaxHP
		}
		if max == 0 {
			return 0
		}
		return float64(current) / float64(max)
	}

	r1, r2 := ratio(b.Team1), ratio(b.Team2)

	var winner models.Winner
	switch {
	case r1 > r2:
		winner = models.WinnerTeam1
	case r2 > r1:
		winner = models.WinnerTeam2
	default:
		winner = models.WinnerDraw
	}

	b.Completed = true
	b.Winner = &winner
	b.UpdatedAt = at
}
