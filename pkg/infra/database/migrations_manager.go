package database

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migration is one schema step. Migrations self-register from their package
// init and are applied in lexicographic ID order, so IDs start with a date.
type Migration struct {
	ID   string
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

var registeredMigrations []Migration

func RegisterMigration(m Migration) {
	for _, existing := range registeredMigrations {
		if existing.ID == m.ID {
			panic(fmt.Sprintf("duplicate migration ID %s", m.ID))
		}
	}
	registeredMigrations = append(registeredMigrations, m)
}

// MigrationsManager applies pending schema migrations at startup. Applied IDs
// are tracked in schema_migrations; each migration runs in its own
// transaction together with the row that records it.
type MigrationsManager struct {
	logger *logrus.Logger
	db     *gorm.DB
}

func NewMigrationsManager(logger *logrus.Logger, db *gorm.DB) *MigrationsManager {
	return &MigrationsManager{
		logger: logger,
		db:     db,
	}
}

func (m *MigrationsManager) ApplyPending() error {
	const trackingTableSQL = `
CREATE TABLE IF NOT EXISTS public.schema_migrations (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`
	if err := m.db.Exec(trackingTableSQL).Error; err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	applied, err := m.appliedIDs()
	if err != nil {
		return fmt.Errorf("failed to load applied migrations: %w", err)
	}

	for _, mig := range pendingMigrations(applied) {
		m.logger.WithFields(logrus.Fields{
			"migration_id": mig.ID,
			"name":         mig.Name,
		}).Info("applying schema migration")

		if err := m.apply(mig); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", mig.ID, err)
		}
	}
	return nil
}

func (m *MigrationsManager) appliedIDs() (map[string]struct{}, error) {
	var ids []string
	if err := m.db.Raw("SELECT id FROM public.schema_migrations").Scan(&ids).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		applied[id] = struct{}{}
	}
	return applied, nil
}

func (m *MigrationsManager) apply(mig Migration) error {
	if mig.Up == nil {
		return fmt.Errorf("migration %s has no Up function", mig.ID)
	}
	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := mig.Up(tx); err != nil {
			return err
		}
		return tx.Exec(
			"INSERT INTO public.schema_migrations (id, name, applied_at) VALUES (?, ?, ?)",
			mig.ID, mig.Name, time.Now(),
		).Error
	})
}

// pendingMigrations returns the registered migrations that have not been
// applied yet, ordered by ID.
func pendingMigrations(applied map[string]struct{}) []Migration {
	pending := make([]Migration, 0, len(registeredMigrations))
	for _, mig := range registeredMigrations {
		if _, ok := applied[mig.ID]; !ok {
			pending = append(pending, mig)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ID < pending[j].ID })
	return pending
}
