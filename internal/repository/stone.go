package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"creatures/internal/database"
	"creatures/internal/models"
)

// StoneRepositoryInterface définit les méthodes du repository pierres
type StoneRepositoryInterface interface {
	Create(stone *models.Stone) error
	GetByID(id uuid.UUID) (*models.Stone, error)
	ListByOwner(ownerID uuid.UUID, includeConsumed bool) ([]*models.Stone, error)
	MarkConsumed(id uuid.UUID) error
}

// StoneRepository implémente l'interface StoneRepositoryInterface
type StoneRepository struct {
	db *database.DB
}

// NewStoneRepository crée une nouvelle instance du repository pierres
func NewStoneRepository(db *database.DB) StoneRepositoryInterface {
	return &StoneRepository{db: db}
}

// Create insère une nouvelle pierre
func (r *StoneRepository) Create(stone *models.Stone) error {
	bonusJSON, err := json.Marshal(stone.StatBonus)
	if err != nil {
		return fmt.Errorf("failed to marshal stat bonus: %w", err)
	}

	query := `
		INSERT INTO stones (
			id, owner_id, element, tier, stat_bonus,
			elemental_power, is_glitched, consumed, acquired_at
		) VALUES (
			:id, :owner_id, :element, :tier, :stat_bonus,
			:elemental_power, :is_glitched, :consumed, :acquired_at
		)`

	data := map[string]interface{}{
		"id":              stone.ID,
		"owner_id":        stone.OwnerID,
		"element":         stone.Element,
		"tier":            stone.Tier,
		"stat_bonus":      bonusJSON,
		"elemental_power": stone.ElementalPower,
		"is_glitched":     stone.IsGlitched,
		"consumed":        stone.Consumed,
		"acquired_at":     stone.AcquiredAt,
	}

	if _, err := r.db.NamedExec(query, data); err != nil {
		return fmt.Errorf("failed to create stone: %w", err)
	}

	return nil
}

// GetByID récupère une pierre par son ID
func (r *StoneRepository) GetByID(id uuid.UUID) (*models.Stone, error) {
	query := `
		SELECT id, owner_id, element, tier, stat_bonus,
		       elemental_power, is_glitched, consumed, acquired_at
		FROM stones
		WHERE id = $1`

	return r.scanStone(r.db.QueryRow(query, id))
}

// ListByOwner récupère les pierres d'un joueur, consommées incluses sur demande
func (r *StoneRepository) ListByOwner(ownerID uuid.UUID, includeConsumed bool) ([]*models.Stone, error) {
	query := `
		SELECT id, owner_id, element, tier, stat_bonus,
		       elemental_power, is_glitched, consumed, acquired_at
		FROM stones
		WHERE owner_id = $1`
	if !includeConsumed {
		query += ` AND consumed = false`
	}
	query += ` ORDER BY acquired_at DESC`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stones: %w", err)
	}
	defer rows.Close()

	var stones []*models.Stone
	for rows.Next() {
		stone, err := r.scanStone(rows)
		if err != nil {
			return nil, err
		}
		stones = append(stones, stone)
	}

	return stones, rows.Err()
}

// MarkConsumed marque une pierre comme consommée. Une pierre déjà
// consommée ne peut pas l'être une seconde fois; une pierre inconnue
// remonte ErrNotFound.
func (r *StoneRepository) MarkConsumed(id uuid.UUID) error {
	result, err := r.db.Exec(`UPDATE stones SET consumed = true WHERE id = $1 AND consumed = false`, id)
	if err != nil {
		return fmt.Errorf("failed to consume stone: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM stones WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check stone: %w", err)
		}
		if !exists {
			return models.ErrNotFound
		}
		return models.ErrStoneConsumed
	}

	return nil
}

func (r *StoneRepository) scanStone(row rowScanner) (*models.Stone, error) {
	var stone models.Stone
	var bonusJSON []byte

	err := row.Scan(
		&stone.ID, &stone.OwnerID, &stone.Element, &stone.Tier, &bonusJSON,
		&stone.ElementalPower, &stone.IsGlitched, &stone.Consumed, &stone.AcquiredAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stone: %w", err)
	}

	if err := json.Unmarshal(bonusJSON, &stone.StatBonus); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stat bonus: %w", err)
	}

	return &stone, nil
}
