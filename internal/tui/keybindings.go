package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/hay-kot/threads/internal/core/config"
	"github.com/hay-kot/threads/internal/threads"
)

// Action represents a resolved keybinding ready for execution.
type Action struct {
	Key     string
	Intent  string
	Help    string
	Confirm string // non-empty if confirmation required
}

// NeedsConfirm returns true if the action requires user confirmation.
func (a Action) NeedsConfirm() bool {
	return a.Confirm != ""
}

// KeybindingHandler resolves key presses to intents.
type KeybindingHandler struct {
	keybindings map[string]config.Keybinding
}

// NewKeybindingHandler creates a new handler with the merged keybindings.
func NewKeybindingHandler(keybindings map[string]config.Keybinding) *KeybindingHandler {
	return &KeybindingHandler{keybindings: keybindings}
}

// Resolve attempts to resolve a key press to an action. Deletes always
// confirm; a binding without a prompt gets the default one.
func (h *KeybindingHandler) Resolve(key string) (Action, bool) {
	kb, exists := h.keybindings[key]
	if !exists || kb.Intent == "" {
		return Action{}, false
	}

	action := Action{
		Key:     key,
		Intent:  kb.Intent,
		Help:    kb.Help,
		Confirm: kb.Confirm,
	}
	if action.Help == "" {
		action.Help = kb.Intent
	}
	if kb.Intent == config.IntentDelete && action.Confirm == "" {
		action.Confirm = threads.DeletePrompt
	}

	return action, true
}

// KeyFor returns the first key, in sorted order, bound to intent.
func (h *KeybindingHandler) KeyFor(intent string) (string, bool) {
	for _, k := range slices.Sorted(maps.Keys(h.keybindings)) {
		if h.keybindings[k].Intent == intent {
			return k, true
		}
	}
	return "", false
}

// HelpEntries returns all configured keybindings for display, sorted by key.
func (h *KeybindingHandler) HelpEntries() []string {
	keys := slices.Sorted(maps.Keys(h.keybindings))

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		action, ok := h.Resolve(k)
		if !ok {
			continue
		}
		entries = append(entries, fmt.Sprintf("[%s] %s", k, action.Help))
	}
	return entries
}

// HelpString returns a formatted help string for all keybindings.
func (h *KeybindingHandler) HelpString() string {
	return strings.Join(h.HelpEntries(), "  ")
}

// KeyBindings returns key.Binding objects for integration with bubbles help system.
func (h *KeybindingHandler) KeyBindings() []key.Binding {
	keys := slices.Sorted(maps.Keys(h.keybindings))
	bindings := make([]key.Binding, 0, len(keys))

	for _, k := range keys {
		action, ok := h.Resolve(k)
		if !ok {
			continue
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, action.Help),
		))
	}

	return bindings
}
