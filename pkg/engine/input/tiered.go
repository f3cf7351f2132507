package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the explorer.
type Action int

const (
	ActionNone Action = iota

	// Generation
	ActionRegenerate
	ActionNextAlgorithm
	ActionPrevAlgorithm
	ActionSelectAlgorithm // Code names the algorithm (a number or name)

	// Meta / UI
	ActionHelp
	ActionQuit
	ActionScreenshot
	ActionDump
	ActionClearMessages
)

// Intent is the 4th‑layer, high‑level description of what the user wants to do.
type Intent struct {
	Action Action
	// Code is the code the intent was mapped from
	Code string
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "n", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Terminal raw mode already delivers one event per key, but the type keeps
// the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// New map
	"":       ActionRegenerate,
	"enter":  ActionRegenerate,
	"n":      ActionRegenerate,
	"new":    ActionRegenerate,
	"r":      ActionRegenerate,
	"reroll": ActionRegenerate,

	// Cycle algorithms (arrows, Vim)
	"arrow_right": ActionNextAlgorithm,
	"arrow_down":  ActionNextAlgorithm,
	"l":           ActionNextAlgorithm,
	"j":           ActionNextAlgorithm,
	"next":        ActionNextAlgorithm,
	"arrow_left":  ActionPrevAlgorithm,
	"arrow_up":    ActionPrevAlgorithm,
	"h":           ActionPrevAlgorithm,
	"k":           ActionPrevAlgorithm,
	"prev":        ActionPrevAlgorithm,

	// Help
	"?":    ActionHelp,
	"help": ActionHelp,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	// Output
	"screenshot": ActionScreenshot,
	"p":          ActionScreenshot,
	"dump":       ActionDump,
	"d":          ActionDump,
	"clear":      ActionClearMessages,
	"c":          ActionClearMessages,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent. Codes without a binding
// are treated as algorithm selections for the caller to resolve.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Code: ev.Code}
	}
	return Intent{Action: ActionSelectAlgorithm, Code: ev.Code}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionRegenerate:
		return "New Map"
	case ActionNextAlgorithm:
		return "Next Algorithm"
	case ActionPrevAlgorithm:
		return "Previous Algorithm"
	case ActionSelectAlgorithm:
		return "Select Algorithm"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDump:
		return "Dump Map"
	case ActionClearMessages:
		return "Clear Messages"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		if code == "" {
			continue
		}
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so help text doesn't change between calls.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
