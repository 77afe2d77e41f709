package game

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowPath   bool // Show the ball's predicted free-flight path (F1)
	ShowBounds bool // Show collision boxes and circles (F2)
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
