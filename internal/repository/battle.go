package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"creatures/internal/database"
	"creatures/internal/models"
)

// BattleRepositoryInterface définit les méthodes du repository combats
type BattleRepositoryInterface interface {
	Create(battle *models.Battle) error
	GetByID(id uuid.UUID) (*models.Battle, error)
	Update(battle *models.Battle) error
	ListActive(limit int) ([]*models.Battle, error)
}

// BattleRepository implémente l'interface BattleRepositoryInterface
type BattleRepository struct {
	db *database.DB
}

// NewBattleRepository crée une nouvelle instance du repository combats
func NewBattleRepository(db *database.DB) BattleRepositoryInterface {
	return &BattleRepository{db: db}
}

// Create insère un nouveau combat
func (r *BattleRepository) Create(battle *models.Battle) error {
	data, err := battleRow(battle)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO battles (
			id, turn, round, current_actor, seed, completed, winner,
			team1, team2, turn_order, log, domain_effects,
			created_at, updated_at
		) VALUES (
			:id, :turn, :round, :current_actor, :seed, :completed, :winner,
			:team1, :team2, :turn_order, :log, :domain_effects,
			:created_at, :updated_at
		)`

	if _, err := r.db.NamedExec(query, data); err != nil {
		return fmt.Errorf("failed to create battle: %w", err)
	}

	return nil
}

// GetByID récupère un combat par son ID
func (r *BattleRepository) GetByID(id uuid.UUID) (*models.Battle, error) {
	query := `
		SELECT id, turn, round, current_actor, seed, completed, winner,
		       team1, team2, turn_order, log, domain_effects,
		       created_at, updated_at
		FROM battles
		WHERE id = $1`

	return r.scanBattle(r.db.QueryRow(query, id))
}

// Update remplace l'état sérialisé d'un combat
func (r *BattleRepository) Update(battle *models.Battle) error {
	battle.UpdatedAt = time.Now()

	data, err := battleRow(battle)
	if err != nil {
		return err
	}

	query := `
		UPDATE battles SET
			turn = :turn,
			round = :round,
			current_actor = :current_actor,
			completed = :completed,
			winner = :winner,
			team1 = :team1,
			team2 = :team2,
			turn_order = :turn_order,
			log = :log,
			domain_effects = :domain_effects,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExec(query, data)
	if err != nil {
		return fmt.Errorf("failed to update battle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// ListActive récupère les combats encore en cours
func (r *BattleRepository) ListActive(limit int) ([]*models.Battle, error) {
	query := `
		SELECT id, turn, round, current_actor, seed, completed, winner,
		       team1, team2, turn_order, log, domain_effects,
		       created_at, updated_at
		FROM battles
		WHERE completed = false
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list battles: %w", err)
	}
	defer rows.Close()

	var battles []*models.Battle
	for rows.Next() {
		battle, err := r.scanBattle(rows)
		if err != nil {
			return nil, err
		}
		battles = append(battles, battle)
	}

	return battles, rows.Err()
}

func battleRow(battle *models.Battle) (map[string]interface{}, error) {
	team1JSON, err := json.Marshal(battle.Team1)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal team1: %w", err)
	}
	team2JSON, err := json.Marshal(battle.Team2)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal team2: %w", err)
	}
	orderJSON, err := json.Marshal(battle.TurnOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal turn order: %w", err)
	}
	logJSON, err := json.Marshal(battle.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log: %w", err)
	}
	domainJSON, err := json.Marshal(battle.DomainEffects)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal domain effects: %w", err)
	}

	return map[string]interface{}{
		"id":             battle.ID,
		"turn":           battle.Turn,
		"round":          battle.Round,
		"current_actor":  battle.CurrentActor,
		"seed":           int64(battle.Seed),
		"completed":      battle.Completed,
		"winner":         battle.Winner,
		"team1":          team1JSON,
		"team2":          team2JSON,
		"turn_order":     orderJSON,
		"log":            logJSON,
		"domain_effects": domainJSON,
		"created_at":     battle.CreatedAt,
		"updated_at":     battle.UpdatedAt,
	}, nil
}

func (r *BattleRepository) scanBattle(row rowScanner) (*models.Battle, error) {
	var battle models.Battle
	var seed int64
	var winner sql.NullString
	var team1JSON, team2JSON, orderJSON, logJSON, domainJSON []byte

	err := row.Scan(
		&battle.ID, &battle.Turn, &battle.Round, &battle.CurrentActor,
		&seed, &battle.Completed, &winner,
		&team1JSON, &team2JSON, &orderJSON, &logJSON, &domainJSON,
		&battle.CreatedAt, &battle.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get battle: %w", err)
	}

	battle.Seed = uint64(seed)
	if winner.Valid {
		w := models.Winner(winner.String)
		battle.Winner = &w
	}

	if err := json.Unmarshal(team1JSON, &battle.Team1); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team1: %w", err)
	}
	if err := json.Unmarshal(team2JSON, &battle.Team2); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team2: %w", err)
	}
	if err := json.Unmarshal(orderJSON, &battle.TurnOrder); err != nil {
		return nil, fmt.Errorf("failed to unmarshal turn order: %w", err)
	}
	if err := json.Unmarshal(logJSON, &battle.Log); err != nil {
		return nil, fmt.Errorf("failed to unmarshal log: %w", err)
	}
	if err := json.Unmarshal(domainJSON, &battle.DomainEffects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal domain effects: %w", err)
	}

	return &battle, nil
}
