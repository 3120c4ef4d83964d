package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"creatures/internal/database"
	"creatures/internal/models"
)

// CreatureRepositoryInterface définit les méthodes du repository créatures
type CreatureRepositoryInterface interface {
	Create(creature *models.Creature) error
	GetByID(id uuid.UUID) (*models.Creature, error)
	ListByOwner(ownerID uuid.UUID) ([]*models.Creature, error)
	CountFusions(ownerID uuid.UUID) (int, error)
}

// CreatureRepository implémente l'interface CreatureRepositoryInterface
type CreatureRepository struct {
	db *database.DB
}

// NewCreatureRepository crée une nouvelle instance du repository créatures
func NewCreatureRepository(db *database.DB) CreatureRepositoryInterface {
	return &CreatureRepository{db: db}
}

// abilityDoc regroupe les trois pools de capacités dans une seule colonne JSONB
type abilityDoc struct {
	Passives []models.Ability `json:"passives,omitempty"`
	Actives  []models.Ability `json:"actives"`
	Ultimate *models.Ability  `json:"ultimate,omitempty"`
}

// Create insère une nouvelle créature
func (r *CreatureRepository) Create(creature *models.Creature) error {
	statsJSON, err := json.Marshal(creature.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	abilitiesJSON, err := json.Marshal(abilityDoc{
		Passives: creature.Passives,
		Actives:  creature.Actives,
		Ultimate: creature.Ultimate,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal abilities: %w", err)
	}
	historyJSON, err := json.Marshal(creature.FusionHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal fusion history: %w", err)
	}
	appearanceJSON, err := json.Marshal(creature.Appearance)
	if err != nil {
		return fmt.Errorf("failed to marshal appearance: %w", err)
	}
	countersJSON, err := json.Marshal(creature.Counters)
	if err != nil {
		return fmt.Errorf("failed to marshal counters: %w", err)
	}

	query := `
		INSERT INTO creatures (
			id, owner_id, name, family, rarity, template_id,
			stats, abilities, fusion_history, appearance, counters, created_at
		) VALUES (
			:id, :owner_id, :name, :family, :rarity, :template_id,
			:stats, :abilities, :fusion_history, :appearance, :counters, :created_at
		)`

	data := map[string]interface{}{
		"id":             creature.ID,
		"owner_id":       creature.OwnerID,
		"name":           creature.Name,
		"family":         creature.Family,
		"rarity":         creature.Rarity,
		"template_id":    creature.TemplateID,
		"stats":          statsJSON,
		"abilities":      abilitiesJSON,
		"fusion_history": historyJSON,
		"appearance":     appearanceJSON,
		"counters":       countersJSON,
		"created_at":     creature.CreatedAt,
	}

	if _, err := r.db.NamedExec(query, data); err != nil {
		return fmt.Errorf("failed to create creature: %w", err)
	}

	return nil
}

// GetByID récupère une créature par son ID
func (r *CreatureRepository) GetByID(id uuid.UUID) (*models.Creature, error) {
	query := `
		SELECT id, owner_id, name, family, rarity, template_id,
		       stats, abilities, fusion_history, appearance, counters, created_at
		FROM creatures
		WHERE id = $1`

	return r.scanCreature(r.db.QueryRow(query, id))
}

// ListByOwner récupère toutes les créatures d'un joueur
func (r *CreatureRepository) ListByOwner(ownerID uuid.UUID) ([]*models.Creature, error) {
	query := `
		SELECT id, owner_id, name, family, rarity, template_id,
		       stats, abilities, fusion_history, appearance, counters, created_at
		FROM creatures
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list creatures: %w", err)
	}
	defer rows.Close()

	var creatures []*models.Creature
	for rows.Next() {
		creature, err := r.scanCreature(rows)
		if err != nil {
			return nil, err
		}
		creatures = append(creatures, creature)
	}

	return creatures, rows.Err()
}

// CountFusions compte les fusions déjà réalisées par un joueur
func (r *CreatureRepository) CountFusions(ownerID uuid.UUID) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM creatures
		WHERE owner_id = $1 AND jsonb_array_length(fusion_history) > 0`

	if err := r.db.Get(&count, query, ownerID); err != nil {
		return 0, fmt.Errorf("failed to count fusions: %w", err)
	}

	return count, nil
}

// rowScanner couvre sql.Row et sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *CreatureRepository) scanCreature(row rowScanner) (*models.Creature, error) {
	var creature models.Creature
	var statsJSON, abilitiesJSON, historyJSON, appearanceJSON, countersJSON []byte

	err := row.Scan(
		&creature.ID, &creature.OwnerID, &creature.Name, &creature.Family,
		&creature.Rarity, &creature.TemplateID, &statsJSON, &abilitiesJSON,
		&historyJSON, &appearanceJSON, &countersJSON, &creature.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get creature: %w", err)
	}

	if err := json.Unmarshal(statsJSON, &creature.Stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	var doc abilityDoc
	if err := json.Unmarshal(abilitiesJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal abilities: %w", err)
	}
	creature.Passives = doc.Passives
	creature.Actives = doc.Actives
	creature.Ultimate = doc.Ultimate

	if err := json.Unmarshal(historyJSON, &creature.FusionHistory); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fusion history: %w", err)
	}
	if err := json.Unmarshal(appearanceJSON, &creature.Appearance); err != nil {
		return nil, fmt.Errorf("failed to unmarshal appearance: %w", err)
	}
	if err := json.Unmarshal(countersJSON, &creature.Counters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal counters: %w", err)
	}

	return &creature, nil
}
