package agent

// ResetForTest clears both singletons.
func ResetForTest() {
	current.Store(nil)
	currentSession.Store(nil)
}
