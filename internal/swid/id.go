package swid

import "fmt"

// ValidateSoftwareID checks an identifier against the allow-listed
// grammar before it may be interpolated into a generator command line.
// Targets originate from network input, so anything outside the grammar
// is rejected outright rather than escaped.
//
// The grammar covers the shapes real regid/tagId values take: dotted
// reverse-domain and URI registration IDs, versioned tag IDs.
func ValidateSoftwareID(id string) error {
	if id == "" {
		return NewStatusError(StatusFailed, "empty software identifier")
	}
	for i := 0; i < len(id); i++ {
		if !isIDByte(id[i]) {
			return NewStatusError(StatusFailed,
				fmt.Sprintf("software identifier %q contains forbidden byte %q at offset %d", id, id[i], i))
		}
	}
	return nil
}

// isIDByte reports whether c belongs to the identifier grammar
// [A-Za-z0-9._~:/+-].
func isIDByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '.', '-', '_', '~', ':', '/', '+':
		return true
	}
	return false
}
