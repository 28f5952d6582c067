package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/homekeep/internal/model"
	"github.com/sandeepkv93/homekeep/internal/service"
	"github.com/sandeepkv93/homekeep/internal/views"
)

func (m *Model) openForm() {
	m.Form = NewTaskFormState{Active: true, Frequency: model.FrequencyMonthly, ZoneIdx: -1}
	m.nameInput.SetValue("")
	m.nameInput.Focus()
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Form.Active = false
		m.nameInput.Blur()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.Form.Err = "name is required"
			return m, nil
		}
		in := service.NewTaskInput{
			Name:      name,
			Frequency: m.Form.Frequency,
			ZoneID:    m.formZoneID(),
			Season:    m.Form.Season,
		}
		m.Form.Active = false
		m.nameInput.Blur()
		return m, m.createTaskCmd(in)
	case "ctrl+f":
		m.Form.Frequency = nextFrequency(m.Form.Frequency)
		return m, nil
	case "ctrl+z":
		m.Form.ZoneIdx = nextZoneIdx(m.Form.ZoneIdx, len(m.Zones.Zones))
		return m, nil
	case "ctrl+s":
		m.Form.Season = nextSeason(m.Form.Season)
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.Form.Err = ""
	return m, cmd
}

func (m Model) formZoneID() string {
	if m.Form.ZoneIdx < 0 || m.Form.ZoneIdx >= len(m.Zones.Zones) {
		return ""
	}
	return m.Zones.Zones[m.Form.ZoneIdx].ID
}

func (m Model) renderFormIfVisible() string {
	if !m.Form.Active {
		return ""
	}
	zone := ""
	if m.Form.ZoneIdx >= 0 && m.Form.ZoneIdx < len(m.Zones.Zones) {
		zone = m.Zones.Zones[m.Form.ZoneIdx].Name
	}
	return views.RenderNewTaskForm(views.NewTaskFormData{
		Active:    true,
		NameInput: m.nameInput.View(),
		Frequency: string(m.Form.Frequency),
		Zone:      zone,
		Season:    string(m.Form.Season),
		ErrorText: m.Form.Err,
	})
}

func nextFrequency(current model.Frequency) model.Frequency {
	for i, f := range model.Frequencies {
		if f == current {
			return model.Frequencies[(i+1)%len(model.Frequencies)]
		}
	}
	return model.Frequencies[0]
}

// nextZoneIdx cycles through the zones with -1 meaning no zone.
func nextZoneIdx(current, count int) int {
	if count == 0 {
		return -1
	}
	current++
	if current >= count {
		return -1
	}
	return current
}

func nextSeason(current model.Season) model.Season {
	if current == model.SeasonNone {
		return model.Seasons[0]
	}
	for i, s := range model.Seasons {
		if s == current {
			if i == len(model.Seasons)-1 {
				return model.SeasonNone
			}
			return model.Seasons[i+1]
		}
	}
	return model.SeasonNone
}
