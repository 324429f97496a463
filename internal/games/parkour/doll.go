package parkour

import "github.com/vovakirdan/parkour/internal/config"

// Doll tracks the outfit pieces collected on a dress-up level.
// Each slot counts once; the most recent new slot is highlighted for a few
// frames.
type Doll struct {
	items       []config.DressUpItem
	collected   map[string]bool
	flashSlot   string
	flashTimer  int
	flashFrames int
}

// NewDoll creates an empty doll for the given items. A new slot stays
// highlighted for flashFrames updates.
func NewDoll(items []config.DressUpItem, flashFrames int) *Doll {
	return &Doll{
		items:       items,
		collected:   make(map[string]bool, len(items)),
		flashFrames: flashFrames,
	}
}

// Reset clears all collected slots.
func (d *Doll) Reset() {
	clear(d.collected)
	d.flashSlot = ""
	d.flashTimer = 0
}

// Collect adds slot to the doll. It returns false if the slot was already
// collected.
func (d *Doll) Collect(slot string) bool {
	if d.collected[slot] {
		return false
	}
	d.collected[slot] = true
	d.flashSlot = slot
	d.flashTimer = d.flashFrames
	return true
}

// Count returns the number of unique slots collected.
func (d *Doll) Count() int {
	return len(d.collected)
}

// Has reports whether slot was collected.
func (d *Doll) Has(slot string) bool {
	return d.collected[slot]
}

// Flashing reports whether slot is the highlighted new piece.
func (d *Doll) Flashing(slot string) bool {
	return d.flashTimer > 0 && d.flashSlot == slot
}

// Items returns the outfit pieces in display order.
func (d *Doll) Items() []config.DressUpItem {
	return d.items
}

// Update counts down the highlight.
func (d *Doll) Update() {
	if d.flashTimer > 0 {
		d.flashTimer--
	}
}
