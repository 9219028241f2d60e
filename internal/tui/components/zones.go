package components

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"
)

// Clickable zone ids.
const (
	ZoneFab = "fab"

	zoneNavPrefix    = "nav:"
	zoneCheckPrefix  = "check:"
	zoneLabelPrefix  = "label:"
	zoneRemovePrefix = "remove:"
)

// ZoneAction is what a click on a zone asks for.
type ZoneAction int

const (
	ZoneNone ZoneAction = iota
	ZoneAdd
	ZoneNav
	ZoneToggle
	ZoneEdit
	ZoneRemove
)

// NavZone returns the zone id for a nav button.
func NavZone(name string) string { return zoneNavPrefix + name }

// CheckZone returns the zone id for a row's checkbox.
func CheckZone(taskID string) string { return zoneCheckPrefix + taskID }

// LabelZone returns the zone id for a row's label.
func LabelZone(taskID string) string { return zoneLabelPrefix + taskID }

// RemoveZone returns the zone id for a row's remove button.
func RemoveZone(taskID string) string { return zoneRemovePrefix + taskID }

// ParseZone splits a zone id into its action and argument.
func ParseZone(id string) (ZoneAction, string) {
	switch {
	case id == ZoneFab:
		return ZoneAdd, ""
	case strings.HasPrefix(id, zoneNavPrefix):
		return ZoneNav, strings.TrimPrefix(id, zoneNavPrefix)
	case strings.HasPrefix(id, zoneCheckPrefix):
		return ZoneToggle, strings.TrimPrefix(id, zoneCheckPrefix)
	case strings.HasPrefix(id, zoneLabelPrefix):
		return ZoneEdit, strings.TrimPrefix(id, zoneLabelPrefix)
	case strings.HasPrefix(id, zoneRemovePrefix):
		return ZoneRemove, strings.TrimPrefix(id, zoneRemovePrefix)
	}
	return ZoneNone, ""
}

// mark wraps s in a zone when a manager is available.
func mark(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}
