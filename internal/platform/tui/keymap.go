package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuigames/flappy/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// The primary binding set comes from configuration; quit keys are fixed.
type KeyMapper struct {
	primary map[string]struct{}
}

// NewKeyMapper creates a key mapper with the given primary-action keys.
func NewKeyMapper(primaryKeys []string) *KeyMapper {
	primary := make(map[string]struct{}, len(primaryKeys))
	for _, k := range primaryKeys {
		primary[k] = struct{}{}
	}
	return &KeyMapper{primary: primary}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit
	}

	if _, ok := km.primary[key]; ok {
		return core.ActionPrimary
	}

	return core.ActionNone
}
