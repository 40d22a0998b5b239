// Package masking scrubs credentials from agent tool output before it is
// persisted to execution logs or streamed to dashboard clients. Agents
// routinely cat config files, print environment variables, and paste API
// responses; none of that may land in the database verbatim.
package masking

// Masker is the interface for code-based maskers that need structural
// awareness beyond regex pattern matching (e.g. parsing dotenv output and
// masking only the values of secret-looking keys).
type Masker interface {
	// Name returns the unique identifier for this masker.
	Name() string

	// AppliesTo performs a lightweight check on whether this masker
	// should process the data. Should be fast (string contains, not parsing).
	AppliesTo(data string) bool

	// Mask applies masking logic and returns the masked result.
	// Must be defensive: return original data on parse/processing errors.
	Mask(data string) string
}
