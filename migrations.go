package anticrisis

import "embed"

// MigrationsFS содержит sql миграции схемы, применяемые при старте приложения.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
