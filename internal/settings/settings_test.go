package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.RemindersEnabled || got.ReminderHour != DefaultReminderHour {
		t.Fatalf("unexpected defaults: %#v", got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	want := Settings{RemindersEnabled: false, ReminderHour: 18}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %#v, want %#v", got, want)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("reminder_hour: 7\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.RemindersEnabled || got.ReminderHour != 7 {
		t.Fatalf("unexpected settings: %#v", got)
	}
}

func TestHourFallsBackWhenOutOfRange(t *testing.T) {
	cases := []struct {
		hour int
		want int
	}{
		{9, 9},
		{6, 6},
		{21, 21},
		{5, DefaultReminderHour},
		{22, DefaultReminderHour},
		{-1, DefaultReminderHour},
		{25, DefaultReminderHour},
	}
	for _, tc := range cases {
		s := Settings{ReminderHour: tc.hour}
		if got := s.Hour(); got != tc.want {
			t.Fatalf("hour(%d) = %d, want %d", tc.hour, got, tc.want)
		}
	}
}
