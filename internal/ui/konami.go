package ui

// konamiSequence is the classic code, expressed as Bubble Tea key names.
var konamiSequence = []string{
	"up", "up", "down", "down", "left", "right", "left", "right", "b", "a",
}

// Konami watches the key stream for the easter-egg sequence.
type Konami struct {
	recent []string
}

// Observe feeds one key press into the detector and reports whether it
// completed the sequence. A completed sequence resets the detector.
func (k *Konami) Observe(key string) bool {
	k.recent = append(k.recent, key)
	if len(k.recent) > len(konamiSequence) {
		k.recent = k.recent[1:]
	}

	if len(k.recent) < len(konamiSequence) {
		return false
	}
	for i, want := range konamiSequence {
		if k.recent[i] != want {
			return false
		}
	}

	k.recent = nil
	return true
}
