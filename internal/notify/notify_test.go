package notify

import "testing"

func TestLoadPreferencesEnvOverride(t *testing.T) {
	t.Setenv("PINVIEW_NOTIFY_TITLE", "Custom Title")
	t.Setenv("PINVIEW_NOTIFY_SAVE_TEXT", "saved %s")

	prefs := LoadPreferences()
	if prefs.Title != "Custom Title" {
		t.Errorf("title = %q, want Custom Title", prefs.Title)
	}
	if prefs.Events[EventSave].Template != "saved %s" {
		t.Errorf("save template = %q", prefs.Events[EventSave].Template)
	}
	if prefs.Events[EventCopy].Template != DefaultPreferences().Events[EventCopy].Template {
		t.Errorf("copy template should keep its default")
	}
}

func TestNotifierDisabledByDefault(t *testing.T) {
	n := New(DefaultPreferences())
	if n.enabledFor(EventSave) || n.enabledFor(EventCopy) {
		t.Fatal("events must be disabled until enabled explicitly")
	}
	n.Enable(EventSave, true)
	if !n.enabledFor(EventSave) {
		t.Fatal("enable did not take effect")
	}
	if n.enabledFor(EventCopy) {
		t.Fatal("enabling one event must not enable the other")
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.Enable(EventSave, true)
	n.Save(1)
	n.Copy(2)
}
