// Package seed reconciles the static catalog against the store. Both passes
// are idempotent and name-keyed: template names are the stable identity,
// since templates are rebuilt from the catalog table on every run and carry
// no persisted id of their own.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/homekeep/internal/catalog"
	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/storage"
)

type Seeder struct {
	repo  storage.Repository
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

func NewSeeder(repo storage.Repository, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// WithClock overrides the time source, for tests.
func (s *Seeder) WithClock(now func() time.Time) *Seeder {
	s.now = now
	return s
}

// SeedIfNeeded upserts the default zones and creates any catalog task that
// has no stored non-custom counterpart. Existing default tasks keep every
// user-edited field; only a missing zone link is healed. Custom tasks are
// never touched. Safe to call on every launch.
func (s *Seeder) SeedIfNeeded(ctx context.Context) error {
	zones, err := s.upsertZones(ctx)
	if err != nil {
		return err
	}
	return s.reconcileTasks(ctx, zones, false)
}

// ResetDefaults force-applies every template onto its matching default task:
// description, frequency, season, zone, icon come back from the catalog,
// enabled returns to starter-set membership, reminders to on/day-before, and
// the due date is recomputed from the last completion. Zones, custom tasks,
// and completion history are preserved.
func (s *Seeder) ResetDefaults(ctx context.Context) error {
	zones, err := s.upsertZones(ctx)
	if err != nil {
		return err
	}
	return s.reconcileTasks(ctx, zones, true)
}

// upsertZones grows or updates the zone set from the catalog, never shrinks
// it. Returns the full name-to-zone map for template resolution.
func (s *Seeder) upsertZones(ctx context.Context) (map[string]storage.Zone, error) {
	existing, err := s.repo.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]storage.Zone, len(existing))
	for _, zone := range existing {
		byName[zone.Name] = zone
	}

	for index, def := range catalog.Zones {
		if zone, ok := byName[def.Name]; ok {
			zone.Icon = def.Icon
			zone.SortOrder = index
			if err := s.repo.UpdateZone(ctx, zone); err != nil {
				s.log.Error("zone update failed", "zone", def.Name, "error", err)
				continue
			}
			byName[def.Name] = zone
			continue
		}
		zone := storage.Zone{
			ID:        s.newID(),
			Name:      def.Name,
			Icon:      def.Icon,
			SortOrder: index,
			CreatedAt: s.now(),
		}
		if err := s.repo.CreateZone(ctx, zone); err != nil {
			s.log.Error("zone create failed", "zone", def.Name, "error", err)
			continue
		}
		byName[def.Name] = zone
	}
	return byName, nil
}

func (s *Seeder) reconcileTasks(ctx context.Context, zones map[string]storage.Zone, reset bool) error {
	notCustom := false
	stored, err := s.repo.ListTasks(ctx, storage.TaskListFilter{Custom: &notCustom})
	if err != nil {
		return err
	}

	// First seen wins on duplicate names; duplicates only exist after data
	// corruption and reconciliation must not make things worse.
	defaultsByName := make(map[string]storage.Task, len(stored))
	for _, task := range stored {
		if _, ok := defaultsByName[task.Name]; !ok {
			defaultsByName[task.Name] = task
		}
	}

	for _, template := range catalog.Templates {
		if existing, ok := defaultsByName[template.Name]; ok {
			if reset {
				s.applyTemplate(ctx, template, existing, zones)
			} else if existing.ZoneID == "" {
				s.healZoneLink(ctx, template, existing, zones)
			}
			continue
		}
		s.createFromTemplate(ctx, template, zones)
	}
	return nil
}

func (s *Seeder) createFromTemplate(ctx context.Context, template catalog.TaskTemplate, zones map[string]storage.Zone) {
	task := model.NewTask(s.newID(), template.Name, template.Frequency, s.now())
	task.Description = template.Description
	task.Season = template.Season
	task.Enabled = catalog.IsStarter(template.Name)
	task.Icon = template.Icon

	stored := storage.FromModelTask(task)
	stored.ZoneID = s.resolveZone(template, zones)
	if err := s.repo.CreateTask(ctx, stored); err != nil {
		s.log.Error("task create failed", "task", template.Name, "error", err)
	}
}

func (s *Seeder) healZoneLink(ctx context.Context, template catalog.TaskTemplate, task storage.Task, zones map[string]storage.Zone) {
	zoneID := s.resolveZone(template, zones)
	if zoneID == "" {
		return
	}
	task.ZoneID = zoneID
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		s.log.Error("zone link heal failed", "task", task.Name, "error", err)
	}
}

func (s *Seeder) applyTemplate(ctx context.Context, template catalog.TaskTemplate, task storage.Task, zones map[string]storage.Zone) {
	task.Description = template.Description
	task.Frequency = string(template.Frequency)
	task.Season = string(template.Season)
	task.ZoneID = s.resolveZone(template, zones)
	task.Icon = template.Icon
	task.Enabled = catalog.IsStarter(template.Name)
	task.RemindersEnabled = true
	task.ReminderTiming = string(model.TimingDayBefore)

	domain := task.ToModel()
	domain.RefreshNextDue(s.now())
	task.NextDue = domain.NextDue

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		s.log.Error("template reset failed", "task", task.Name, "error", err)
	}
}

// resolveZone returns "" when the template names an unknown zone; the task is
// still created or reset, just without a zone link.
func (s *Seeder) resolveZone(template catalog.TaskTemplate, zones map[string]storage.Zone) string {
	zone, ok := zones[template.Zone]
	if !ok {
		s.log.Warn("template references unknown zone", "task", template.Name, "zone", template.Zone)
		return ""
	}
	return zone.ID
}
