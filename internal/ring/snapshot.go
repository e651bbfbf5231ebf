package ring

// Snapshot is the touch state of the ring for one frame, as boolean-as-integer
// values indexed by slot. Slots 1..16 carry the sensor states; slot 0 copies
// slot 16 and slot 17 copies slot 1, so that the renderers can look at both
// neighbours of any physical section without wrapping. A Snapshot is a value
// and is never modified during a frame.
type Snapshot [SlotCount]uint8

// NewSnapshot builds a Snapshot from one reading of the sixteen touch
// sensors, installing the wraparound copies at either end.
func NewSnapshot(touched [SectionCount]bool) Snapshot {
	var s Snapshot
	for i, t := range touched {
		if t {
			s[i+1] = 1
		}
	}
	s[0] = s[SectionCount]
	s[SlotCount-1] = s[1]
	return s
}

// Lowest returns the lowest touched physical section, or ok=false when the
// ring is untouched.
func (s Snapshot) Lowest() (slot int, ok bool) {
	for slot = 1; slot <= SectionCount; slot++ {
		if s[slot] != 0 {
			return slot, true
		}
	}
	return 0, false
}
