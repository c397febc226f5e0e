package tags

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/roach88/swima/internal/swid"
)

// ReadTags reads a stream of full tag documents and appends one
// generator-sourced record per document to inv.
//
// Documents are separated by at least one empty line that follows a
// cleanly terminated line. The assembled document has one trailing line
// terminator stripped; documents of one byte or less are discarded
// silently. Extraction failure aborts the read with NOT_FOUND; records
// appended before the failure are kept (no rollback).
func ReadTags(r io.Reader, inv *swid.Inventory) error {
	br := bufio.NewReader(r)
	moreTags := true

	for moreTags {
		lastNewline := true
		var doc bytes.Buffer

		for {
			line, err := br.ReadString('\n')
			if line == "" && err != nil {
				if errors.Is(err, io.EOF) {
					moreTags = false
					break
				}
				return swid.WrapStatusError(swid.StatusFailed, "reading tag stream", err)
			}
			if lastNewline && line == "\n" {
				break
			}
			lastNewline = line[len(line)-1] == '\n'
			doc.WriteString(line)
		}

		tag := doc.Bytes()
		if len(tag) <= 1 {
			continue
		}
		if tag[len(tag)-1] == '\n' {
			tag = tag[:len(tag)-1]
		}

		swID, err := Extract(tag)
		if err != nil {
			return err
		}
		inv.Add(swid.Record{
			SoftwareID: swID,
			Source:     swid.SourceGenerator,
			Tag:        append([]byte(nil), tag...),
		})
	}

	return nil
}

// ReadIDs reads a stream of software identifiers, one per line, and
// appends one generator-sourced record per line to inv. No payloads are
// attached and there is no parse failure mode; only stream I/O errors
// fail the read.
func ReadIDs(r io.Reader, inv *swid.Inventory) error {
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return swid.WrapStatusError(swid.StatusFailed, "reading identifier stream", err)
		}

		if n := len(line); n > 0 && line[n-1] == '\n' {
			line = line[:n-1]
		}
		inv.Add(swid.Record{
			SoftwareID: line,
			Source:     swid.SourceGenerator,
		})

		if err != nil {
			if errors.Is(err, io.EOF) {
				// Unterminated final line already consumed above.
				return nil
			}
			return swid.WrapStatusError(swid.StatusFailed, "reading identifier stream", err)
		}
	}
}
