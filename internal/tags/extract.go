// Package tags parses SWID tag content: it extracts canonical software
// identifiers from individual tag documents and frames byte streams
// (generator output or files) into such documents.
//
// Extraction is deliberately not an XML parser. Tags are treated as
// untrusted text and scanned for two attribute tokens; nothing else
// about the document is validated.
package tags

import (
	"bytes"

	"github.com/roach88/swima/internal/swid"
)

// extractWindow caps how far into a tag the attribute scan looks.
// Pathological inputs beyond the cap are truncated, not rejected.
const extractWindow = 1023

var (
	tagIDToken = []byte(`tagId="`)
	regIDToken = []byte(`regid="`)
)

// Extract scans tag content for `tagId="..."` and, after it,
// `regid="..."`, and returns the canonical identifier
// "<regid>__<tagId>". It fails with a NOT_FOUND status error if either
// token or its closing quote is missing within the scan window.
func Extract(tag []byte) (string, error) {
	window := tag
	if len(window) > extractWindow {
		window = window[:extractWindow]
	}

	i := bytes.Index(window, tagIDToken)
	if i < 0 {
		return "", swid.NewStatusError(swid.StatusNotFound, "tag has no tagId attribute")
	}
	tagID := window[i+len(tagIDToken):]

	end := bytes.IndexByte(tagID, '"')
	if end < 0 {
		return "", swid.NewStatusError(swid.StatusNotFound, "tagId attribute is unterminated")
	}
	rest := tagID[end:]
	tagID = tagID[:end]

	i = bytes.Index(rest, regIDToken)
	if i < 0 {
		return "", swid.NewStatusError(swid.StatusNotFound, "tag has no regid attribute after tagId")
	}
	regID := rest[i+len(regIDToken):]

	end = bytes.IndexByte(regID, '"')
	if end < 0 {
		return "", swid.NewStatusError(swid.StatusNotFound, "regid attribute is unterminated")
	}
	regID = regID[:end]

	return string(regID) + "__" + string(tagID), nil
}
