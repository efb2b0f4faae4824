// Package slot defines the closed set of valid save locations. Every public
// store operation validates its slot identifier here before any filesystem
// path is constructed, which rules out path traversal and keeps key
// derivation unambiguous.
package slot

import (
	"fmt"

	"github.com/dkarpov/savevault/internal/common"
)

// Auto is the reserved autosave slot. It is written by the simulation loop
// and is never renamed by the user.
const Auto = "auto"

// IDs enumerates every valid slot identifier: ten numbered slots plus the
// autosave slot. The order is the order slot pickers display them in.
var IDs = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", Auto}

// Slot is a validated save location. The zero value is not valid; obtain one
// through Parse.
type Slot struct {
	id string
}

// Parse validates a raw slot identifier. Anything outside the closed set
// ("0" through "9", or exactly "auto") is rejected with common.ErrInvalidSlot
// before any path is formed. Matching is case-sensitive.
func Parse(id string) (Slot, error) {
	if id == Auto {
		return Slot{id: id}, nil
	}
	if len(id) == 1 && id[0] >= '0' && id[0] <= '9' {
		return Slot{id: id}, nil
	}
	return Slot{}, fmt.Errorf("%w: %q", common.ErrInvalidSlot, id)
}

// ID returns the validated identifier.
func (s Slot) ID() string { return s.id }

// IsAuto reports whether s is the reserved autosave slot.
func (s Slot) IsAuto() bool { return s.id == Auto }

// Filename maps the slot to its archive file name. The mapping is
// deterministic so one slot always owns exactly one file.
func (s Slot) Filename() string { return "slot_" + s.id + ".sav" }
