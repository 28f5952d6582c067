package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateZone(ctx context.Context, in Zone) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO zones (id, name, icon, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Name, in.Icon, in.SortOrder, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetZone(ctx context.Context, id string) (Zone, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, icon, sort_order, created_at FROM zones WHERE id = ?`, id)
	zone, err := scanZone(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Zone{}, ErrNotFound
		}
		return Zone{}, err
	}
	return zone, nil
}

func (r *SQLiteRepository) UpdateZone(ctx context.Context, in Zone) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE zones SET name = ?, icon = ?, sort_order = ? WHERE id = ?`,
		in.Name, in.Icon, in.SortOrder, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteZone(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM zones WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListZones(ctx context.Context) ([]Zone, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, icon, sort_order, created_at FROM zones ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Zone, 0)
	for rows.Next() {
		zone, scanErr := scanZone(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, zone)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, name, description, frequency, zone_id, season, enabled, custom,
			last_completed, next_due, reminder_timing, reminders_enabled, notes, icon, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Name, in.Description, in.Frequency, nullString(in.ZoneID), in.Season,
		boolInt(in.Enabled), boolInt(in.Custom), nullTime(in.LastCompleted), nullTime(in.NextDue),
		in.ReminderTiming, boolInt(in.RemindersEnabled), in.Notes, in.Icon, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, frequency, zone_id, season, enabled, custom,
			last_completed, next_due, reminder_timing, reminders_enabled, notes, icon, created_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanStoredTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET name = ?, description = ?, frequency = ?, zone_id = ?, season = ?, enabled = ?,
			custom = ?, last_completed = ?, next_due = ?, reminder_timing = ?,
			reminders_enabled = ?, notes = ?, icon = ?
		WHERE id = ?`,
		in.Name, in.Description, in.Frequency, nullString(in.ZoneID), in.Season, boolInt(in.Enabled),
		boolInt(in.Custom), nullTime(in.LastCompleted), nullTime(in.NextDue), in.ReminderTiming,
		boolInt(in.RemindersEnabled), in.Notes, in.Icon, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	query := `SELECT id, name, description, frequency, zone_id, season, enabled, custom,
		last_completed, next_due, reminder_timing, reminders_enabled, notes, icon, created_at FROM tasks`
	clauses := make([]string, 0, 4)
	args := make([]any, 0, 6)
	if filter.ZoneID != "" {
		clauses = append(clauses, "zone_id = ?")
		args = append(args, filter.ZoneID)
	}
	if filter.Season != "" {
		clauses = append(clauses, "season = ?")
		args = append(args, filter.Season)
	}
	if filter.Custom != nil {
		clauses = append(clauses, "custom = ?")
		args = append(args, boolInt(*filter.Custom))
	}
	if filter.Enabled != nil {
		clauses = append(clauses, "enabled = ?")
		args = append(args, boolInt(*filter.Enabled))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY next_due IS NULL, next_due ASC, name ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanStoredTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateCompletion(ctx context.Context, in CompletionRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO completion_records (id, task_id, completed_at, notes)
		VALUES (?, ?, ?, ?)`,
		in.ID, in.TaskID, mustTime(in.CompletedAt), in.Notes,
	)
	return err
}

func (r *SQLiteRepository) ListCompletions(ctx context.Context, filter CompletionListFilter) ([]CompletionRecord, error) {
	query := `SELECT id, task_id, completed_at, notes FROM completion_records`
	args := make([]any, 0, 3)
	if filter.TaskID != "" {
		query += ` WHERE task_id = ?`
		args = append(args, filter.TaskID)
	}
	query += ` ORDER BY completed_at DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CompletionRecord, 0)
	for rows.Next() {
		record, scanErr := scanCompletion(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func nullString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanZone(s scanner) (Zone, error) {
	var out Zone
	var created string
	if err := s.Scan(&out.ID, &out.Name, &out.Icon, &out.SortOrder, &created); err != nil {
		return Zone{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Zone{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}

func scanStoredTask(s scanner) (Task, error) {
	var out Task
	var zoneID sql.NullString
	var enabled, custom, remindersEnabled int
	var lastCompleted, nextDue sql.NullString
	var created string
	if err := s.Scan(&out.ID, &out.Name, &out.Description, &out.Frequency, &zoneID, &out.Season,
		&enabled, &custom, &lastCompleted, &nextDue, &out.ReminderTiming, &remindersEnabled,
		&out.Notes, &out.Icon, &created); err != nil {
		return Task{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Task{}, err
	}
	lastCompletedAt, err := parseNullableTime(lastCompleted)
	if err != nil {
		return Task{}, err
	}
	nextDueAt, err := parseNullableTime(nextDue)
	if err != nil {
		return Task{}, err
	}
	out.ZoneID = zoneID.String
	out.Enabled = enabled == 1
	out.Custom = custom == 1
	out.RemindersEnabled = remindersEnabled == 1
	out.LastCompleted = lastCompletedAt
	out.NextDue = nextDueAt
	out.CreatedAt = createdAt
	return out, nil
}

func scanCompletion(s scanner) (CompletionRecord, error) {
	var out CompletionRecord
	var completed string
	if err := s.Scan(&out.ID, &out.TaskID, &completed, &out.Notes); err != nil {
		return CompletionRecord{}, err
	}
	completedAt, err := parseRequiredTime(completed)
	if err != nil {
		return CompletionRecord{}, err
	}
	out.CompletedAt = completedAt
	return out, nil
}
