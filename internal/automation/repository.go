package automation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nerrad567/slate-logic-core/internal/conduct"
	"github.com/nerrad567/slate-logic-core/internal/device"
)

// Repository defines the interface for process persistence.
// The abstraction keeps the engine testable without a database.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Process, error)
	List(ctx context.Context) ([]Process, error)

	// GetStateTriggered retrieves every process with at least one
	// trigger, in stable (alias) order. Disabled processes are
	// included; the engine filters them so the skip is observable.
	GetStateTriggered(ctx context.Context) ([]Process, error)

	Create(ctx context.Context, p *Process) error
	Update(ctx context.Context, p *Process) error
	Delete(ctx context.Context, id string) error
}

// processColumns is the SELECT column list for process queries.
const processColumns = `id, alias, disabled, condition, triggers, conducts, created_at, updated_at`

// SQLiteRepository implements Repository using SQLite. Triggers and
// conducts are stored as JSON columns.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetByID retrieves a process by its unique identifier.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Process, error) {
	query := `SELECT ` + processColumns + ` FROM processes WHERE id = ?`

	p, err := scanProcess(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrProcessNotFound, id)
		}
		return nil, fmt.Errorf("querying process by id: %w", err)
	}
	return p, nil
}

// List retrieves all processes ordered by alias.
func (r *SQLiteRepository) List(ctx context.Context) ([]Process, error) {
	query := `SELECT ` + processColumns + ` FROM processes ORDER BY alias`
	return r.queryProcesses(ctx, query)
}

// GetStateTriggered retrieves all processes with at least one trigger,
// ordered by alias for deterministic evaluation order.
func (r *SQLiteRepository) GetStateTriggered(ctx context.Context) ([]Process, error) {
	query := `SELECT ` + processColumns + ` FROM processes
		WHERE triggers != '[]' AND triggers != '' ORDER BY alias`
	return r.queryProcesses(ctx, query)
}

// Create inserts a new process.
func (r *SQLiteRepository) Create(ctx context.Context, p *Process) error {
	if p.ID == "" || p.Alias == "" {
		return fmt.Errorf("%w: id and alias are required", ErrInvalidProcess)
	}

	triggersJSON, conductsJSON, err := marshalLists(p)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	query := `
		INSERT INTO processes (
			id, alias, disabled, condition, triggers, conducts, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Alias,
		boolToInt(p.Disabled),
		p.Condition,
		triggersJSON,
		conductsJSON,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: %s", ErrProcessExists, p.Alias)
		}
		return fmt.Errorf("inserting process: %w", err)
	}
	return nil
}

// Update modifies an existing process.
func (r *SQLiteRepository) Update(ctx context.Context, p *Process) error {
	triggersJSON, conductsJSON, err := marshalLists(p)
	if err != nil {
		return err
	}

	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE processes SET
			alias = ?, disabled = ?, condition = ?, triggers = ?, conducts = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		p.Alias,
		boolToInt(p.Disabled),
		p.Condition,
		triggersJSON,
		conductsJSON,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: %s", ErrProcessExists, p.Alias)
		}
		return fmt.Errorf("updating process: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrProcessNotFound, p.ID)
	}
	return nil
}

// Delete removes a process.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM processes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting process: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrProcessNotFound, id)
	}
	return nil
}

func (r *SQLiteRepository) queryProcesses(ctx context.Context, query string, args ...any) ([]Process, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying processes: %w", err)
	}
	defer rows.Close()

	var processes []Process
	for rows.Next() {
		p, err := scanProcessFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning process: %w", err)
		}
		processes = append(processes, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating processes: %w", err)
	}
	return processes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProcess(row *sql.Row) (*Process, error) {
	return scanRow(row)
}

func scanProcessFromRows(rows *sql.Rows) (*Process, error) {
	return scanRow(rows)
}

func scanRow(s rowScanner) (*Process, error) {
	var (
		p            Process
		disabled     int
		triggersJSON string
		conductsJSON string
		createdAt    string
		updatedAt    string
	)

	if err := s.Scan(
		&p.ID,
		&p.Alias,
		&disabled,
		&p.Condition,
		&triggersJSON,
		&conductsJSON,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	p.Disabled = disabled != 0

	if triggersJSON != "" {
		if err := json.Unmarshal([]byte(triggersJSON), &p.Triggers); err != nil {
			return nil, fmt.Errorf("unmarshalling triggers: %w", err)
		}
	}
	if conductsJSON != "" {
		if err := json.Unmarshal([]byte(conductsJSON), &p.Conducts); err != nil {
			return nil, fmt.Errorf("unmarshalling conducts: %w", err)
		}
	}

	var err error
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

func marshalLists(p *Process) (triggers, conducts string, err error) {
	if p.Triggers == nil {
		p.Triggers = []device.Target{}
	}
	if p.Conducts == nil {
		p.Conducts = []conduct.Conduct{}
	}

	t, err := json.Marshal(p.Triggers)
	if err != nil {
		return "", "", fmt.Errorf("marshalling triggers: %w", err)
	}
	c, err := json.Marshal(p.Conducts)
	if err != nil {
		return "", "", fmt.Errorf("marshalling conducts: %w", err)
	}
	return string(t), string(c), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
