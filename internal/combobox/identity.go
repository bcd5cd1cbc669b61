package combobox

import (
	"strconv"

	"github.com/google/uuid"
)

// Identity derives stable element ids for one combobox instance.
type Identity struct {
	base string
}

// NewIdentity returns an identity with a random base id.
func NewIdentity() Identity {
	return Identity{base: uuid.NewString()}
}

// IdentityFromBase returns an identity rooted at base. Useful for snapshots
// that need deterministic ids.
func IdentityFromBase(base string) Identity {
	return Identity{base: base}
}

// Base returns the per-instance base id.
func (id Identity) Base() string {
	return id.base
}

// Input returns the id of the text input.
func (id Identity) Input() string {
	return id.base + "-input"
}

// Menu returns the id of the dropdown listbox.
func (id Identity) Menu() string {
	return id.base + "-menu"
}

// Result returns the id of the result row at index.
func (id Identity) Result(index int) string {
	return id.base + "-result" + strconv.Itoa(index)
}
