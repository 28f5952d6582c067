package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/homekeep/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard, Action: "switch to Dashboard"},
		{Key: m.Keys.Zones, Action: "switch to Zones"},
		{Key: m.Keys.Seasonal, Action: "switch to Seasonal"},
		{Key: m.Keys.History, Action: "switch to History"},
		{Key: m.Keys.Settings, Action: "switch to Settings"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewDashboard:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "c", Action: "complete task"},
			{Key: "e", Action: "enable/disable task"},
			{Key: "n", Action: "new custom task"},
			{Key: "d", Action: "delete custom task"},
		}
	case ViewZones:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next zone"},
			{Key: "j/k", Action: "move selection"},
			{Key: "c", Action: "complete task"},
			{Key: "e", Action: "enable/disable task"},
		}
	case ViewSeasonal:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next season"},
			{Key: "j/k", Action: "move selection"},
			{Key: "c", Action: "complete task"},
			{Key: "e", Action: "enable/disable task"},
		}
	case ViewHistory:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
		}
	case ViewSettings:
		return []KeyBinding{
			{Key: "space", Action: "toggle reminders"},
			{Key: "+/-", Action: "adjust reminder hour"},
			{Key: "w", Action: "save settings"},
			{Key: "R", Action: "restore default catalog"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
