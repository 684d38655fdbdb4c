package console

// Stores w as the destination for level, growing the table when level is past its end.
// Negative levels and levels above _MAX_OUTPUT_SLOT are ignored. Slot 0 can be
// replaced but never cleared.
func (t *sinkTable) register(level LogLevel, w OutType) {
	if level < 0 || level > _MAX_OUTPUT_SLOT || (level == 0 && w == nil) {
		return
	}
	if int(level) >= len(t.outputs) {
		grown := make([]OutType, int(level)+1)
		copy(grown, t.outputs)
		t.outputs = grown
	}
	t.outputs[level] = w
}

// Returns the destination registered for level or, if unset, the nearest one
// registered for a lower level. Levels past the end are clamped to the last
// slot; negative levels go to slot 0.
func (t *sinkTable) resolve(level LogLevel) OutType {
	if level < 0 || len(t.outputs) == 0 {
		return t.first()
	}
	i := int(level)
	if i >= len(t.outputs) {
		i = len(t.outputs) - 1
	}
	for ; i > 0; i-- {
		if t.outputs[i] != nil {
			return t.outputs[i]
		}
	}
	return t.first()
}

func (t *sinkTable) first() OutType {
	if len(t.outputs) == 0 {
		return nil
	}
	return t.outputs[0]
}

func (t *sinkTable) size() int { return len(t.outputs) }
