// Package migrations встраивает SQL-миграции для goose
package migrations

import "embed"

// FS все *.sql миграции, применяются при старте сервиса
//
//go:embed *.sql
var FS embed.FS
