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

// FusionServiceInterface définit les méthodes du service fusion
type FusionServiceInterface interface {
	Preview(playerID uuid.UUID, req models.FusionRequest) (*models.FusionSignature, error)
	Fuse(playerID uuid.UUID, req models.FusionRequest) (*models.FusionResponse, error)
}

// FusionService implémente l'interface FusionServiceInterface
type FusionService struct {
	config       *config.Config
	creatureRepo repository.CreatureRepositoryInterface
	stoneRepo    repository.StoneRepositoryInterface
}

// NewFusionService crée une nouvelle instance du service fusion
func NewFusionService(
	config *config.Config,
	creatureRepo repository.CreatureRepositoryInterface,
	stoneRepo repository.StoneRepositoryInterface,
) FusionServiceInterface {
	return &FusionService{
		config:       config,
		creatureRepo: creatureRepo,
		stoneRepo:    stoneRepo,
	}
}

// Preview construit la signature de fusion sans rien persister ni consommer.
// C'est le payload de transfert vers le générateur narratif.
func (s *FusionService) Preview(playerID uuid.UUID, req models.FusionRequest) (*models.FusionSignature, error) {
	input, err := s.loadInput(playerID, req)
	if err != nil {
		return nil, err
	}

	signature, err := engine.BuildSignature(*input)
	if err != nil {
		return nil, err
	}

	return signature, nil
}

// Fuse exécute la fusion complète: signature, matérialisation de la créature,
// consommation des deux catalyseurs, persistance
func (s *FusionService) Fuse(playerID uuid.UUID, req models.FusionRequest) (*models.FusionResponse, error) {
	input, err := s.loadInput(playerID, req)
	if err != nil {
		return nil, err
	}

	signature, err := engine.BuildSignature(*input)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = signature.Interaction.Name
	}
	if len(name) > s.config.Fusion.MaxNameLength {
		name = name[:s.config.Fusion.MaxNameLength]
	}

	creature := engine.MaterializeCreature(signature, name)
	creature.OwnerID = playerID

	// Les catalyseurs sont consommés avant l'insertion: une pierre déjà
	// consommée fait échouer la fusion sans créer de créature
	if err := s.stoneRepo.MarkConsumed(req.Stone1ID); err != nil {
		return nil, err
	}
	if err := s.stoneRepo.MarkConsumed(req.Stone2ID); err != nil {
		return nil, err
	}

	if err := s.creatureRepo.Create(creature); err != nil {
		return nil, fmt.Errorf("failed to persist fused creature: %w", err)
	}

	monitoring.FusionsTotal.Inc()
	if signature.Mutation.Glitched {
		monitoring.GlitchesTotal.Inc()
	}

	logrus.WithFields(logrus.Fields{
		"player_id":   playerID,
		"creature_id": creature.ID,
		"rarity":      creature.Rarity.String(),
		"generation":  signature.Generation,
		"glitched":    signature.Mutation.Glitched,
		"seed":        signature.Seed,
	}).Info("Fusion completed")

	return &models.FusionResponse{
		Creature:  creature,
		Signature: signature,
	}, nil
}

// loadInput charge et autorise les quatre entrées d'une fusion
func (s *FusionService) loadInput(playerID uuid.UUID, req models.FusionRequest) (*engine.FusionInput, error) {
	parent1, err := s.creatureRepo.GetByID(req.Parent1ID)
	if err != nil {
		return nil, err
	}
	parent2, err := s.creatureRepo.GetByID(req.Parent2ID)
	if err != nil {
		return nil, err
	}
	if parent1.OwnerID != playerID || parent2.OwnerID != playerID {
		return nil, models.ErrCreatureNotOwned
	}

	stone1, err := s.stoneRepo.GetByID(req.Stone1ID)
	if err != nil {
		return nil, err
	}
	stone2, err := s.stoneRepo.GetByID(req.Stone2ID)
	if err != nil {
		return nil, err
	}
	if stone1.OwnerID != playerID || stone2.OwnerID != playerID {
		return nil, models.ErrStoneNotOwned
	}

	fusionCount, err := s.creatureRepo.CountFusions(playerID)
	if err != nil {
		return nil, err
	}

	return &engine.FusionInput{
		Parent1:     parent1,
		Parent2:     parent2,
		Stone1:      stone1,
		Stone2:      stone2,
		FusionCount: fusionCount,
		Intent:      req.Intent,
		FusedAt:     time.Now(),
	}, nil
}
