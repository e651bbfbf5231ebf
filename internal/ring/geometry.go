package ring

import "fmt"

const (
	// SectionCount is the number of physical sections (one per touch sensor).
	SectionCount = 16
	// SlotCount includes the two wraparound duplicates at either end.
	SlotCount = SectionCount + 2
	// PixelCount is the total number of pixels on the ring.
	PixelCount = 284
	// TrapezoidWidth is the length of the fade profiles in pixels.
	TrapezoidWidth = 18
)

// lengths holds the pixel length of every slot. Slots 1..16 are the physical
// sections. Slot 0 duplicates section 16 and slot 17 duplicates section 1 so
// that neighbour lookups never need to wrap.
var lengths = [SlotCount]int{
	18,
	17, 18, 18, 18,
	17, 18, 18, 18,
	17, 18, 18, 18,
	17, 18, 18, 18,
	17,
}

// starts holds the cumulative start offset of each slot, prefix-summed over
// the physical sections. starts[1] is 0 and starts[17] is PixelCount.
var starts [SlotCount]int

func init() {
	sum := 0
	for s := 1; s < SlotCount; s++ {
		starts[s] = sum
		sum += lengths[s]
	}
}

// Length returns the pixel length of the given slot.
func Length(slot int) int {
	checkSlot(slot)
	return lengths[slot]
}

// Start returns the absolute pixel offset at which the given slot begins.
// Slot 0 has no physical position of its own; its start is that of slot 1.
func Start(slot int) int {
	checkSlot(slot)
	return starts[slot]
}

// RampUp returns the i:th value of the rising trapezoid fade profile,
// in [0,255].
func RampUp(i int) int {
	checkRamp(i)
	return i * 255 / (TrapezoidWidth - 1)
}

// RampDown returns the i:th value of the falling trapezoid fade profile.
// It is the exact reverse of RampUp.
func RampDown(i int) int {
	checkRamp(i)
	return RampUp(TrapezoidWidth - 1 - i)
}

func checkSlot(slot int) {
	if slot < 0 || slot >= SlotCount {
		panic(fmt.Sprintf("ring: slot %d out of range", slot))
	}
}

func checkRamp(i int) {
	if i < 0 || i >= TrapezoidWidth {
		panic(fmt.Sprintf("ring: ramp index %d out of range", i))
	}
}
