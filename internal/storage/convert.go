package storage

import "github.com/sandeepkv93/homekeep/internal/model"

// Conversions between domain entities and stored rows. Enum raw values are
// stored as-is; unknown values surface through model.Validate at the boundary
// that cares.

func FromModelZone(in model.Zone) Zone {
	return Zone{
		ID:        in.ID,
		Name:      in.Name,
		Icon:      in.Icon,
		SortOrder: in.SortOrder,
		CreatedAt: in.CreatedAt,
	}
}

func (z Zone) ToModel() model.Zone {
	return model.Zone{
		ID:        z.ID,
		Name:      z.Name,
		Icon:      z.Icon,
		SortOrder: z.SortOrder,
		CreatedAt: z.CreatedAt,
	}
}

func FromModelTask(in model.Task) Task {
	return Task{
		ID:               in.ID,
		Name:             in.Name,
		Description:      in.Description,
		Frequency:        string(in.Frequency),
		ZoneID:           in.ZoneID,
		Season:           string(in.Season),
		Enabled:          in.Enabled,
		Custom:           in.Custom,
		LastCompleted:    in.LastCompleted,
		NextDue:          in.NextDue,
		ReminderTiming:   string(in.ReminderTiming),
		RemindersEnabled: in.RemindersEnabled,
		Notes:            in.Notes,
		Icon:             in.Icon,
		CreatedAt:        in.CreatedAt,
	}
}

func (t Task) ToModel() model.Task {
	return model.Task{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		Frequency:        model.Frequency(t.Frequency),
		ZoneID:           t.ZoneID,
		Season:           model.Season(t.Season),
		Enabled:          t.Enabled,
		Custom:           t.Custom,
		LastCompleted:    t.LastCompleted,
		NextDue:          t.NextDue,
		ReminderTiming:   model.ReminderTiming(t.ReminderTiming),
		RemindersEnabled: t.RemindersEnabled,
		Notes:            t.Notes,
		Icon:             t.Icon,
		CreatedAt:        t.CreatedAt,
	}
}

func FromModelCompletion(in model.CompletionRecord) CompletionRecord {
	return CompletionRecord{
		ID:          in.ID,
		TaskID:      in.TaskID,
		CompletedAt: in.CompletedAt,
		Notes:       in.Notes,
	}
}

func (r CompletionRecord) ToModel() model.CompletionRecord {
	return model.CompletionRecord{
		ID:          r.ID,
		TaskID:      r.TaskID,
		CompletedAt: r.CompletedAt,
		Notes:       r.Notes,
	}
}
