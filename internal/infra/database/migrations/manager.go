package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"subspace-catalog/internal/pkg/log/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Category separa as migrations de estrutura (update) das de carga inicial (seed).
type Category string

const (
	Seed   Category = "seed"
	Update Category = "update"

	versionLayout = "20060102150405"
)

//go:embed sql
var scripts embed.FS

// Migration é um script SQL embarcado, identificado pelo prefixo de versão do nome.
type Migration struct {
	Name     string
	Version  time.Time
	Category Category
	SQL      string
}

// schemaMigration registra cada script já executado.
type schemaMigration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_schema_migrations_name_category"`
	Category  string    `gorm:"size:50;not null;uniqueIndex:idx_schema_migrations_name_category"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

type Manager struct {
	db  *gorm.DB
	fs  fs.FS
	log *zap.Logger
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db, fs: scripts, log: logger.With("migrations")}
}

// Apply executa, numa única transação, os scripts da categoria ainda não
// registrados e devolve os nomes aplicados em ordem de versão.
func (m *Manager) Apply(ctx context.Context, category Category) ([]string, error) {
	pending, err := Load(m.fs, category)
	if err != nil || len(pending) == 0 {
		return nil, err
	}

	var applied []string
	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&schemaMigration{}); err != nil {
			return fmt.Errorf("falha ao preparar schema_migrations: %w", err)
		}

		var done []string
		if err := tx.Model(&schemaMigration{}).
			Where("category = ?", string(category)).
			Pluck("name", &done).Error; err != nil {
			return fmt.Errorf("falha ao consultar migrations aplicadas (%s): %w", category, err)
		}
		skip := make(map[string]struct{}, len(done))
		for _, name := range done {
			skip[name] = struct{}{}
		}

		for _, mig := range pending {
			if _, ok := skip[mig.Name]; ok {
				continue
			}
			if err := tx.Exec(mig.SQL).Error; err != nil {
				return fmt.Errorf("falha ao aplicar migration %s: %w", mig.Name, err)
			}
			record := schemaMigration{Name: mig.Name, Category: string(category), AppliedAt: time.Now().UTC()}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("falha ao registrar migration %s: %w", mig.Name, err)
			}
			applied = append(applied, mig.Name)
			m.log.Info("migration aplicada", zap.String("category", string(category)), zap.String("name", mig.Name))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

// Load lê os scripts .sql de sql/<category> e os ordena pela versão.
func Load(fsys fs.FS, category Category) ([]Migration, error) {
	if category != Seed && category != Update {
		return nil, fmt.Errorf("categoria de migration desconhecida: %s", category)
	}

	dir := path.Join("sql", string(category))
	names, err := fs.Glob(fsys, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		base := path.Base(name)
		version, err := parseVersion(base)
		if err != nil {
			return nil, err
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler migration %s: %w", base, err)
		}
		migrations = append(migrations, Migration{
			Name:     base,
			Version:  version,
			Category: category,
			SQL:      string(content),
		})
	}

	sort.SliceStable(migrations, func(i, j int) bool {
		if !migrations[i].Version.Equal(migrations[j].Version) {
			return migrations[i].Version.Before(migrations[j].Version)
		}
		return migrations[i].Name < migrations[j].Name
	})
	return migrations, nil
}

// parseVersion extrai o carimbo YYYYMMDDHHMMSS do início do nome.
func parseVersion(name string) (time.Time, error) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok || len(prefix) != len(versionLayout) {
		return time.Time{}, fmt.Errorf("migration %s não segue o padrão 'YYYYMMDDHHMMSS_nome.sql'", name)
	}
	version, err := time.Parse(versionLayout, prefix)
	if err != nil {
		return time.Time{}, fmt.Errorf("versão inválida na migration %s: %w", name, err)
	}
	return version, nil
}
