package admin

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Tabelas que o catálogo espera encontrar após as migrations de atualização.
var RequiredTables = []string{"access_log", "audit_log", "brand", "solution", "tenant"}

type Status struct {
	Tables    []string
	Missing   []string
	CheckedAt time.Time
}

// Healthy indica que nenhuma tabela obrigatória está ausente.
func (s Status) Healthy() bool {
	return len(s.Missing) == 0
}

func Check(ctx context.Context, db *gorm.DB) (Status, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return Status{}, fmt.Errorf("falha ao obter conexão subjacente: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return Status{}, fmt.Errorf("banco de dados indisponível: %w", err)
	}

	var tables []string
	err = db.WithContext(ctx).Raw(`
SELECT tablename
FROM pg_catalog.pg_tables
WHERE schemaname = current_schema()
ORDER BY tablename;
        `).Scan(&tables).Error
	if err != nil {
		return Status{}, fmt.Errorf("falha ao listar tabelas: %w", err)
	}

	return Status{
		Tables:    tables,
		Missing:   missingTables(tables, RequiredTables),
		CheckedAt: time.Now().UTC(),
	}, nil
}

func missingTables(found, required []string) []string {
	present := make(map[string]struct{}, len(found))
	for _, t := range found {
		present[t] = struct{}{}
	}
	var missing []string
	for _, t := range required {
		if _, ok := present[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}
