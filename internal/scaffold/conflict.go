package scaffold

// ConflictState records, for one run, whether a project-specific
// serialization configuration was materialized. A set flag suppresses the
// generic fallback.
type ConflictState struct {
	usingCustomSerializationConfig bool
}

// MarkOverride records that a project-specific configuration was written.
func (c *ConflictState) MarkOverride() {
	c.usingCustomSerializationConfig = true
}

// UsingCustomSerializationConfig reports whether MarkOverride was called.
func (c *ConflictState) UsingCustomSerializationConfig() bool {
	return c.usingCustomSerializationConfig
}
