// Package storage реализует шлюз персистентности: всё состояние приложения
// сериализуется в JSON и хранится в одном именованном слоте таблицы
// app_state локальной базы SQLite. Load при отсутствии или повреждении
// данных возвращает пустое состояние и только логирует сбой.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/mehtaarjun/paisa-tracker/internal/lib/sl"
	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// StateKey имя слота. Значение унаследовано от предыдущей версии трекера,
// менять нельзя: по нему находятся уже сохранённые данные.
const StateKey = "paisa_tracker_data_v2"

// Storage хранилище состояния поверх SQLite.
type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

// New открывает базу по указанному пути и прогоняет миграции.
func New(path string, log *slog.Logger) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{db: db, log: log}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Load читает состояние из слота. Отсутствие слота и любой сбой чтения
// или разбора деградируют до пустого состояния; ошибка не возвращается.
func (s *Storage) Load(ctx context.Context) models.State {
	const op = "storage.Load"

	query := `SELECT value FROM app_state WHERE key = ?`
	var raw string
	err := s.db.QueryRowContext(ctx, query, StateKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EmptyState()
	}
	if err != nil {
		s.log.Error("failed to read state slot", slog.String("op", op), sl.Err(err))
		return models.EmptyState()
	}

	var state models.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.log.Error("failed to parse stored state", slog.String("op", op), sl.Err(err))
		return models.EmptyState()
	}
	if state.Transactions == nil {
		state.Transactions = []models.Transaction{}
	}
	if state.Subscriptions == nil {
		state.Subscriptions = []models.Subscription{}
	}
	if state.Goals == nil {
		state.Goals = []models.Goal{}
	}
	return state
}

// Save сериализует состояние целиком и перезаписывает слот.
func (s *Storage) Save(ctx context.Context, state models.State) error {
	const op = "storage.Save"

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO app_state (key, value) VALUES (?, ?)
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, StateKey, string(raw)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с базой.
func (s *Storage) Close() error {
	return s.db.Close()
}
