package seed

import (
	"context"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/sandeepkv93/homekeep/internal/catalog"
	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/storage"
)

type memoryRepo struct {
	zones       map[string]storage.Zone
	tasks       map[string]storage.Task
	completions []storage.CompletionRecord
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		zones: make(map[string]storage.Zone),
		tasks: make(map[string]storage.Task),
	}
}

func (m *memoryRepo) CreateZone(_ context.Context, in storage.Zone) error {
	m.zones[in.ID] = in
	return nil
}

func (m *memoryRepo) GetZone(_ context.Context, id string) (storage.Zone, error) {
	zone, ok := m.zones[id]
	if !ok {
		return storage.Zone{}, storage.ErrNotFound
	}
	return zone, nil
}

func (m *memoryRepo) UpdateZone(_ context.Context, in storage.Zone) error {
	if _, ok := m.zones[in.ID]; !ok {
		return storage.ErrNotFound
	}
	m.zones[in.ID] = in
	return nil
}

func (m *memoryRepo) DeleteZone(_ context.Context, id string) error {
	if _, ok := m.zones[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.zones, id)
	for taskID, task := range m.tasks {
		if task.ZoneID == id {
			task.ZoneID = ""
			m.tasks[taskID] = task
		}
	}
	return nil
}

func (m *memoryRepo) ListZones(_ context.Context) ([]storage.Zone, error) {
	out := make([]storage.Zone, 0, len(m.zones))
	for _, zone := range m.zones {
		out = append(out, zone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (m *memoryRepo) CreateTask(_ context.Context, in storage.Task) error {
	m.tasks[in.ID] = in
	return nil
}

func (m *memoryRepo) GetTask(_ context.Context, id string) (storage.Task, error) {
	task, ok := m.tasks[id]
	if !ok {
		return storage.Task{}, storage.ErrNotFound
	}
	return task, nil
}

func (m *memoryRepo) UpdateTask(_ context.Context, in storage.Task) error {
	if _, ok := m.tasks[in.ID]; !ok {
		return storage.ErrNotFound
	}
	m.tasks[in.ID] = in
	return nil
}

func (m *memoryRepo) DeleteTask(_ context.Context, id string) error {
	if _, ok := m.tasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.tasks, id)
	kept := m.completions[:0]
	for _, record := range m.completions {
		if record.TaskID != id {
			kept = append(kept, record)
		}
	}
	m.completions = kept
	return nil
}

func (m *memoryRepo) ListTasks(_ context.Context, filter storage.TaskListFilter) ([]storage.Task, error) {
	out := make([]storage.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if filter.Custom != nil && task.Custom != *filter.Custom {
			continue
		}
		if filter.Enabled != nil && task.Enabled != *filter.Enabled {
			continue
		}
		if filter.ZoneID != "" && task.ZoneID != filter.ZoneID {
			continue
		}
		if filter.Season != "" && task.Season != filter.Season {
			continue
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryRepo) CreateCompletion(_ context.Context, in storage.CompletionRecord) error {
	m.completions = append(m.completions, in)
	return nil
}

func (m *memoryRepo) ListCompletions(_ context.Context, filter storage.CompletionListFilter) ([]storage.CompletionRecord, error) {
	out := make([]storage.CompletionRecord, 0, len(m.completions))
	for _, record := range m.completions {
		if filter.TaskID != "" && record.TaskID != filter.TaskID {
			continue
		}
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

var testLogger = slog.New(slog.DiscardHandler)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func seededRepo(t *testing.T) (*memoryRepo, *Seeder) {
	t.Helper()
	repo := newMemoryRepo()
	seeder := NewSeeder(repo, testLogger).WithClock(fixedClock)
	if err := seeder.SeedIfNeeded(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo, seeder
}

func taskByName(t *testing.T, repo *memoryRepo, name string) storage.Task {
	t.Helper()
	for _, task := range repo.tasks {
		if task.Name == name {
			return task
		}
	}
	t.Fatalf("task %q not found", name)
	return storage.Task{}
}

func TestSeedCreatesCatalog(t *testing.T) {
	repo, _ := seededRepo(t)

	if len(repo.zones) != len(catalog.Zones) {
		t.Fatalf("zone count = %d, want %d", len(repo.zones), len(catalog.Zones))
	}
	if len(repo.tasks) != len(catalog.Templates) {
		t.Fatalf("task count = %d, want %d", len(repo.tasks), len(catalog.Templates))
	}

	starter := taskByName(t, repo, "Test Smoke Detectors")
	if !starter.Enabled {
		t.Fatal("starter task should be enabled on first seed")
	}
	regular := taskByName(t, repo, "Clean Windows")
	if regular.Enabled {
		t.Fatal("non-starter task should be disabled on first seed")
	}
	if regular.ZoneID == "" {
		t.Fatal("seeded task should carry a zone link")
	}
	if regular.NextDue == nil || !regular.NextDue.Equal(fixedClock().AddDate(0, 0, model.FrequencyBiannual.Days())) {
		t.Fatalf("seeded next due = %v", regular.NextDue)
	}
}

func TestSeedIfNeededIsIdempotent(t *testing.T) {
	repo, seeder := seededRepo(t)

	before := make(map[string]storage.Task, len(repo.tasks))
	for id, task := range repo.tasks {
		before[id] = task
	}

	if err := seeder.SeedIfNeeded(context.Background()); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	if len(repo.tasks) != len(before) {
		t.Fatalf("task count changed: %d -> %d", len(before), len(repo.tasks))
	}
	if len(repo.zones) != len(catalog.Zones) {
		t.Fatalf("zone count = %d after reseed", len(repo.zones))
	}
	for id, task := range repo.tasks {
		if before[id] != task {
			t.Fatalf("task %q changed on reseed", task.Name)
		}
	}
}

func TestSeedPreservesUserEditsAndResetRestoresThem(t *testing.T) {
	repo, seeder := seededRepo(t)
	ctx := context.Background()

	edited := taskByName(t, repo, "Clean Gutters")
	edited.Description = "hire the neighbor kid"
	edited.Frequency = string(model.FrequencyQuarterly)
	repo.tasks[edited.ID] = edited

	if err := seeder.SeedIfNeeded(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	after := taskByName(t, repo, "Clean Gutters")
	if after.Description != "hire the neighbor kid" || after.Frequency != string(model.FrequencyQuarterly) {
		t.Fatalf("reseed clobbered user edits: %#v", after)
	}

	if err := seeder.ResetDefaults(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	restored := taskByName(t, repo, "Clean Gutters")
	if restored.Description != "Remove leaves and debris from gutters and downspouts." {
		t.Fatalf("reset did not restore description: %q", restored.Description)
	}
	if restored.Frequency != string(model.FrequencyBiannual) {
		t.Fatalf("reset did not restore frequency: %q", restored.Frequency)
	}
}

func TestSeedHealsMissingZoneLink(t *testing.T) {
	repo, seeder := seededRepo(t)

	broken := taskByName(t, repo, "Flush Water Heater")
	broken.ZoneID = ""
	broken.Description = "custom flushing routine"
	repo.tasks[broken.ID] = broken

	if err := seeder.SeedIfNeeded(context.Background()); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	healed := taskByName(t, repo, "Flush Water Heater")
	if healed.ZoneID == "" {
		t.Fatal("reseed should heal a missing zone link")
	}
	if healed.Description != "custom flushing routine" {
		t.Fatal("zone healing must not touch other fields")
	}
}

func TestCustomTasksAreImmune(t *testing.T) {
	repo, seeder := seededRepo(t)
	ctx := context.Background()

	// Deliberately colliding with a template name.
	custom := storage.FromModelTask(model.NewTask("custom-1", "Clean Gutters", model.FrequencyWeekly, fixedClock()))
	custom.Custom = true
	custom.Description = "my own gutter ritual"
	repo.tasks[custom.ID] = custom

	if err := seeder.SeedIfNeeded(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if err := seeder.ResetDefaults(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got := repo.tasks["custom-1"]
	if got.Description != "my own gutter ritual" || got.Frequency != string(model.FrequencyWeekly) {
		t.Fatalf("custom task was modified: %#v", got)
	}
	if !got.Custom {
		t.Fatal("custom flag must survive reconciliation")
	}
}

func TestResetRestoresStarterEnabledAndKeepsHistory(t *testing.T) {
	repo, seeder := seededRepo(t)
	ctx := context.Background()

	task := taskByName(t, repo, "Replace HVAC Filter")
	completed := fixedClock().AddDate(0, 0, -5)
	task.Enabled = false
	task.RemindersEnabled = false
	task.ReminderTiming = string(model.TimingWeekBefore)
	task.LastCompleted = &completed
	repo.tasks[task.ID] = task
	repo.completions = append(repo.completions, storage.CompletionRecord{
		ID: "rec-1", TaskID: task.ID, CompletedAt: completed,
	})

	if err := seeder.ResetDefaults(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got := taskByName(t, repo, "Replace HVAC Filter")
	if !got.Enabled {
		t.Fatal("starter-set membership should win on reset")
	}
	if !got.RemindersEnabled || got.ReminderTiming != string(model.TimingDayBefore) {
		t.Fatalf("reset should restore reminder defaults: %#v", got)
	}
	want := completed.AddDate(0, 0, model.FrequencyMonthly.Days())
	if got.NextDue == nil || !got.NextDue.Equal(want) {
		t.Fatalf("reset next due = %v, want %s", got.NextDue, want)
	}
	if len(repo.completions) != 1 {
		t.Fatalf("history length = %d, want 1", len(repo.completions))
	}
}

func TestZoneUpsertNeverShrinks(t *testing.T) {
	repo, seeder := seededRepo(t)

	repo.zones["zone-extra"] = storage.Zone{
		ID: "zone-extra", Name: "Wine Cellar", Icon: "bottle", SortOrder: 99, CreatedAt: fixedClock(),
	}

	if err := seeder.SeedIfNeeded(context.Background()); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if _, ok := repo.zones["zone-extra"]; !ok {
		t.Fatal("reconciliation must never delete zones")
	}
	if len(repo.zones) != len(catalog.Zones)+1 {
		t.Fatalf("zone count = %d, want %d", len(repo.zones), len(catalog.Zones)+1)
	}
}

func TestZoneUpsertRefreshesIconAndOrder(t *testing.T) {
	repo, seeder := seededRepo(t)

	var kitchen storage.Zone
	for _, zone := range repo.zones {
		if zone.Name == "Kitchen" {
			kitchen = zone
		}
	}
	kitchen.Icon = "old-icon"
	kitchen.SortOrder = 50
	repo.zones[kitchen.ID] = kitchen

	if err := seeder.SeedIfNeeded(context.Background()); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	got := repo.zones[kitchen.ID]
	if got.Icon != "refrigerator" || got.SortOrder != 0 {
		t.Fatalf("zone not refreshed from catalog: %#v", got)
	}
}
