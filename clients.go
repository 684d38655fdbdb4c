package console

/*
Convenience level-specific helpers for the conventional levels. These are thin
wrappers around Log that add the trailing newline Endl() would add. Like Log they
are atomic and never return errors, destination failures go to the fallback writer.
*/

// Logs a line at LVL_DEBUG. Intended for developer-focused debugging output.
func (c *Console) LogDebug(s string) {
	c.Log(LVL_DEBUG, s+"\n")
}

// Logs a line at LVL_INFO.
func (c *Console) LogInfo(s string) {
	c.Log(LVL_INFO, s+"\n")
}

// Logs a line at LVL_WARNING, for recoverable or noteworthy conditions.
func (c *Console) LogWarning(s string) {
	c.Log(LVL_WARNING, s+"\n")
}

// Logs a line at LVL_ERROR. Use LogErr(e) to log an error value instead of a string.
func (c *Console) LogError(s string) {
	c.Log(LVL_ERROR, s+"\n")
}

// Logs e.Error() at LVL_ERROR. A nil error is ignored.
func (c *Console) LogErr(e error) {
	if e == nil {
		return
	}
	c.Log(LVL_ERROR, e.Error()+"\n")
}
