package db

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Soneshaps/musicgpt-clone/models"
)

type Migration struct {
	Version string
	Name    string
	Up      func(*gorm.DB) error
	Down    func(*gorm.DB) error
}

type SchemaMigration struct {
	Version   string    `gorm:"primaryKey;size:64"`
	Name      string    `gorm:"size:255;not null"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

const searchNameIndex = "idx_voices_search_name"

type MigrationStatus struct {
	Version string
	Name    string
	Applied bool
}

type Migrator struct {
	db         *gorm.DB
	migrations []Migration
}

func CreateNewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{
		db:         db,
		migrations: make([]Migration, 0),
	}
}

// NewSchemaMigrator returns a migrator loaded with the application schema.
func NewSchemaMigrator(db *gorm.DB) *Migrator {
	m := CreateNewMigrator(db)

	m.AddMigration("20250601000001", "create_voices", func(tx *gorm.DB) error {
		return tx.AutoMigrate(&models.Voice{})
	}, func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&models.Voice{})
	})

	m.AddMigration("20250601000002", "create_speech_requests", func(tx *gorm.DB) error {
		return tx.AutoMigrate(&models.SpeechRequest{})
	}, func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&models.SpeechRequest{})
	})

	m.AddMigration("20250601000003", "index_voices_language_name", func(tx *gorm.DB) error {
		if tx.Migrator().HasIndex(&models.Voice{}, "idx_voices_language_name") {
			return nil
		}
		return tx.Exec("CREATE INDEX idx_voices_language_name ON voices (language, name)").Error
	}, func(tx *gorm.DB) error {
		return tx.Migrator().DropIndex(&models.Voice{}, "idx_voices_language_name")
	})

	m.AddMigration("20250601000004", "add_voices_search_name", func(tx *gorm.DB) error {
		migrator := tx.Migrator()
		if !migrator.HasColumn(&models.Voice{}, "SearchName") {
			if err := migrator.AddColumn(&models.Voice{}, "SearchName"); err != nil {
				return err
			}
		}
		if !migrator.HasIndex(&models.Voice{}, searchNameIndex) {
			if err := migrator.CreateIndex(&models.Voice{}, searchNameIndex); err != nil {
				return err
			}
		}

		var voices []models.Voice
		if err := tx.Select("id", "name").Find(&voices).Error; err != nil {
			return err
		}
		for _, v := range voices {
			err := tx.Model(&models.Voice{}).Where("id = ?", v.ID).
				UpdateColumn("search_name", models.FoldName(v.Name)).Error
			if err != nil {
				return err
			}
		}
		return nil
	}, func(tx *gorm.DB) error {
		if tx.Migrator().HasIndex(&models.Voice{}, searchNameIndex) {
			if err := tx.Migrator().DropIndex(&models.Voice{}, searchNameIndex); err != nil {
				return err
			}
		}
		return tx.Exec("ALTER TABLE voices DROP COLUMN search_name").Error
	})

	return m
}

func (m *Migrator) AddMigration(version, name string, up, down func(*gorm.DB) error) {
	m.migrations = append(m.migrations, Migration{
		Version: version,
		Name:    name,
		Up:      up,
		Down:    down,
	})
	sort.SliceStable(m.migrations, func(i, j int) bool {
		return m.migrations[i].Version < m.migrations[j].Version
	})
}

// Up applies every pending migration in version order and returns the
// versions it applied.
func (m *Migrator) Up() ([]string, error) {
	if err := m.createMigrationsTable(); err != nil {
		return nil, err
	}

	applied, err := m.getAppliedMigrations()
	if err != nil {
		return nil, err
	}

	var ran []string
	for _, migration := range m.migrations {
		if applied[migration.Version] {
			continue
		}

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			return m.recordMigration(tx, migration.Version, migration.Name)
		})
		if err != nil {
			return ran, fmt.Errorf("failed to apply migration %s: %w", migration.Version, err)
		}
		ran = append(ran, migration.Version)
	}

	return ran, nil
}

// Down rolls back applied migrations newer than version.
func (m *Migrator) Down(version string) error {
	applied, err := m.getAppliedMigrations()
	if err != nil {
		return err
	}

	for i := len(m.migrations) - 1; i >= 0; i-- {
		migration := m.migrations[i]
		if migration.Version <= version {
			break
		}

		if !applied[migration.Version] {
			continue
		}

		if err := migration.Down(m.db); err != nil {
			return fmt.Errorf("failed to rollback migration %s: %w", migration.Version, err)
		}

		if err := m.removeMigration(migration.Version); err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) createMigrationsTable() error {
	return m.db.AutoMigrate(&SchemaMigration{})
}

func (m *Migrator) getAppliedMigrations() (map[string]bool, error) {
	var versions []string
	if err := m.db.Model(&SchemaMigration{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}

	return applied, nil
}

func (m *Migrator) recordMigration(tx *gorm.DB, version, name string) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&SchemaMigration{Version: version, Name: name}).Error
}

func (m *Migrator) removeMigration(version string) error {
	return m.db.Delete(&SchemaMigration{}, "version = ?", version).Error
}

func (m *Migrator) Status() ([]MigrationStatus, error) {
	if err := m.createMigrationsTable(); err != nil {
		return nil, err
	}

	applied, err := m.getAppliedMigrations()
	if err != nil {
		return nil, err
	}

	statuses := make([]MigrationStatus, 0, len(m.migrations))
	for _, migration := range m.migrations {
		statuses = append(statuses, MigrationStatus{
			Version: migration.Version,
			Name:    migration.Name,
			Applied: applied[migration.Version],
		})
	}

	return statuses, nil
}
