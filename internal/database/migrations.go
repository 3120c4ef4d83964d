package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Migration 1: Table des créatures
const createCreaturesTable = `
CREATE TABLE IF NOT EXISTS creatures (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    owner_id UUID NOT NULL,
    name VARCHAR(48) NOT NULL,
    family VARCHAR(20) NOT NULL CHECK (family IN ('ember', 'tide', 'terra', 'gale', 'volt', 'frost', 'flora', 'shade', 'lumen', 'chrono')),
    rarity INTEGER NOT NULL CHECK (rarity >= 0 AND rarity <= 5),
    template_id VARCHAR(100),

    -- Documents imbriqués
    stats JSONB NOT NULL DEFAULT '{}',
    abilities JSONB NOT NULL DEFAULT '{}',
    fusion_history JSONB NOT NULL DEFAULT '[]',
    appearance JSONB NOT NULL DEFAULT '{}',
    counters JSONB NOT NULL DEFAULT '{}',

    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);`

// Migration 2: Table des pierres catalyseurs
const createStonesTable = `
CREATE TABLE IF NOT EXISTS stones (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    owner_id UUID NOT NULL,
    element VARCHAR(20) NOT NULL CHECK (element IN ('fire', 'water', 'earth', 'air', 'lightning', 'ice', 'shadow', 'light')),
    tier INTEGER NOT NULL CHECK (tier >= 1 AND tier <= 5),
    stat_bonus JSONB NOT NULL DEFAULT '{}',
    elemental_power INTEGER NOT NULL DEFAULT 0,
    is_glitched BOOLEAN NOT NULL DEFAULT false,
    consumed BOOLEAN NOT NULL DEFAULT false,
    acquired_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);`

// Migration 3: Table des combats
const createBattlesTable = `
CREATE TABLE IF NOT EXISTS battles (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    turn INTEGER NOT NULL DEFAULT 1,
    round INTEGER NOT NULL DEFAULT 1,
    current_actor INTEGER NOT NULL DEFAULT 0,
    seed BIGINT NOT NULL,
    completed BOOLEAN NOT NULL DEFAULT false,
    winner VARCHAR(10) CHECK (winner IN ('team1', 'team2', 'draw')),

    -- État complet sérialisé
    team1 JSONB NOT NULL DEFAULT '[]',
    team2 JSONB NOT NULL DEFAULT '[]',
    turn_order JSONB NOT NULL DEFAULT '[]',
    log JSONB NOT NULL DEFAULT '[]',
    domain_effects JSONB NOT NULL DEFAULT '[]',

    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);`

// Migration 4: Table des classements joueurs
const createPlayerRatingsTable = `
CREATE TABLE IF NOT EXISTS player_ratings (
    player_id UUID PRIMARY KEY,
    rating INTEGER NOT NULL DEFAULT 1000,
    wins INTEGER NOT NULL DEFAULT 0,
    losses INTEGER NOT NULL DEFAULT 0,
    draws INTEGER NOT NULL DEFAULT 0,
    win_streak INTEGER NOT NULL DEFAULT 0,
    loss_streak INTEGER NOT NULL DEFAULT 0,
    best_win_streak INTEGER NOT NULL DEFAULT 0,
    division VARCHAR(20) NOT NULL DEFAULT 'Gold',
    last_match_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);`

// Migration 5: Index pour les performances
const createIndexes = `
-- Index pour creatures
CREATE INDEX IF NOT EXISTS idx_creatures_owner_id ON creatures(owner_id);
CREATE INDEX IF NOT EXISTS idx_creatures_family ON creatures(family);
CREATE INDEX IF NOT EXISTS idx_creatures_rarity ON creatures(rarity);
CREATE INDEX IF NOT EXISTS idx_creatures_created_at ON creatures(created_at);

-- Index pour stones
CREATE INDEX IF NOT EXISTS idx_stones_owner_id ON stones(owner_id);
CREATE INDEX IF NOT EXISTS idx_stones_consumed ON stones(owner_id, consumed);

-- Index pour battles
CREATE INDEX IF NOT EXISTS idx_battles_completed ON battles(completed);
CREATE INDEX IF NOT EXISTS idx_battles_created_at ON battles(created_at);

-- Index pour player_ratings
CREATE INDEX IF NOT EXISTS idx_player_ratings_rating ON player_ratings(rating DESC);`

// RunMigrations exécute les migrations de base de données
func RunMigrations(db *DB) error {
	logrus.Info("Running creatures database migrations...")

	migrations := []string{
		createCreaturesTable,
		createStonesTable,
		createBattlesTable,
		createPlayerRatingsTable,
		createIndexes,
	}

	for i, migration := range migrations {
		logrus.WithField("migration", i+1).Debug("Executing migration")

		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration %d: %w", i+1, err)
		}
	}

	logrus.Info("Creatures database migrations completed successfully")
	return nil
}
