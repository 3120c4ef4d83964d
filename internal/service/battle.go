package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"creatures/internal/config"
	"creatures/internal/engine"
	"creatures/internal/models"
	"creatures/internal/monitoring"
	"creatures/internal/repository"
)

// BattleServiceInterface définit les méthodes du service combat
type BattleServiceInterface interface {
	CreateBattle(playerID uuid.UUID, req models.CreateBattleRequest) (*models.Battle, error)
	GetBattle(battleID uuid.UUID) (*models.Battle, error)
	GetBattleLog(battleID uuid.UUID) ([]models.BattleLogEntry, error)
	SubmitAction(battleID uuid.UUID, req models.ActionRequest) (*models.ActionResponse, error)
}

// BattleService implémente l'interface BattleServiceInterface
type BattleService struct {
	config       *config.Config
	battleRepo   repository.BattleRepositoryInterface
	creatureRepo repository.CreatureRepositoryInterface
	feed         BattleFeedInterface
}

// NewBattleService crée une nouvelle instance du service combat
func NewBattleService(
	config *config.Config,
	battleRepo repository.BattleRepositoryInterface,
	creatureRepo repository.CreatureRepositoryInterface,
	feed BattleFeedInterface,
) BattleServiceInterface {
	return &BattleService{
		config:       config,
		battleRepo:   battleRepo,
		creatureRepo: creatureRepo,
		feed:         feed,
	}
}

// CreateBattle assemble les deux rosters et démarre la machine d'états.
// Le créateur doit posséder les créatures de l'équipe 1.
func (s *BattleService) CreateBattle(playerID uuid.UUID, req models.CreateBattleRequest) (*models.Battle, error) {
	team1, err := s.loadRoster(req.Team1)
	if err != nil {
		return nil, err
	}
	team2, err := s.loadRoster(req.Team2)
	if err != nil {
		return nil, err
	}

	for _, c := range team1 {
		if c.OwnerID != playerID {
			return nil, models.ErrCreatureNotOwned
		}
	}

	now := time.Now()
	seed := engine.DeriveSeed(firstID(req.Team1), firstID(req.Team2), uuid.Nil, uuid.Nil, now)

	battle, err := engine.NewBattle(team1, team2, seed, now)
	if err != nil {
		return nil, err
	}

	if err := s.battleRepo.Create(battle); err != nil {
		return nil, fmt.Errorf("failed to persist battle: %w", err)
	}

	monitoring.BattlesCreated.Inc()

	logrus.WithFields(logrus.Fields{
		"battle_id":  battle.ID,
		"player_id":  playerID,
		"team1_size": len(team1),
		"team2_size": len(team2),
		"seed":       seed,
	}).Info("Battle created")

	return battle, nil
}

// GetBattle récupère l'état complet d'un combat
func (s *BattleService) GetBattle(battleID uuid.UUID) (*models.Battle, error) {
	return s.battleRepo.GetByID(battleID)
}

// GetBattleLog récupère le journal append-only d'un combat
func (s *BattleService) GetBattleLog(battleID uuid.UUID) ([]models.BattleLogEntry, error) {
	battle, err := s.battleRepo.GetByID(battleID)
	if err != nil {
		return nil, err
	}
	return battle.Log, nil
}

// SubmitAction applique une action sur le combat et persiste le nouvel état.
// Une action rejetée par le moteur laisse l'état stocké inchangé.
func (s *BattleService) SubmitAction(battleID uuid.UUID, req models.ActionRequest) (*models.ActionResponse, error) {
	start := time.Now()

	battle, err := s.battleRepo.GetByID(battleID)
	if err != nil {
		return nil, err
	}

	action := models.BattleAction{
		ActorID:   req.ActorID,
		AbilityID: req.AbilityID,
		TargetIDs: req.TargetIDs,
	}

	results, err := engine.SubmitAction(battle, action, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.battleRepo.Update(battle); err != nil {
		return nil, fmt.Errorf("failed to persist battle state: %w", err)
	}

	if s.feed != nil && len(battle.Log) > 0 {
		s.feed.Publish(battle.ID, battle.Log[len(battle.Log)-1])
	}

	monitoring.ActionDuration.Observe(time.Since(start).Seconds())

	if battle.Completed {
		monitoring.BattlesCompleted.Inc()
		logrus.WithFields(logrus.Fields{
			"battle_id": battle.ID,
			"winner":    *battle.Winner,
			"rounds":    battle.Round,
			"turns":     battle.Turn,
		}).Info("Battle completed")
	}

	return &models.ActionResponse{
		Results:   results,
		Battle:    battle,
		Completed: battle.Completed,
	}, nil
}

// loadRoster charge les créatures d'un roster dans l'ordre demandé
func (s *BattleService) loadRoster(ids []uuid.UUID) ([]*models.Creature, error) {
	if len(ids) == 0 {
		return nil, models.ErrEmptyRoster
	}

	roster := make([]*models.Creature, 0, len(ids))
	for _, id := range ids {
		creature, err := s.creatureRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		roster = append(roster, creature)
	}
	return roster, nil
}

func firstID(ids []uuid.UUID) uuid.UUID {
	if len(ids) == 0 {
		return uuid.Nil
	}
	return ids[0]
}
