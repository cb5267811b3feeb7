package object

import (
	"bytes"
	"fmt"
	"strings"
)

// Commit and tag payloads share one text grammar: an ordered list of
// "key SP value" header lines, then one blank line, then the free-text
// message verbatim. A value containing newlines (signature blocks) is
// continued across physical lines, each continuation prefixed by a single
// space. parseKVLM and encodeKVLM are exact inverses, so well-formed
// payloads round-trip byte for byte.

// parseKVLM splits a payload into its ordered header fields and message.
func parseKVLM(payload []byte) (Fields, string, error) {
	var fields Fields

	pos := 0
	for pos < len(payload) {
		if payload[pos] == '\n' {
			// Blank line: everything after it is the message.
			return fields, string(payload[pos+1:]), nil
		}

		rest := payload[pos:]
		spc := bytes.IndexByte(rest, ' ')
		nl := bytes.IndexByte(rest, '\n')
		if spc <= 0 || (nl >= 0 && nl < spc) {
			return nil, "", fmt.Errorf("header line at offset %d has no key: %w", pos, ErrMalformedObject)
		}
		key := string(rest[:spc])

		// The value runs until the first newline not followed by a space.
		valStart := pos + spc + 1
		end := valStart
		for {
			i := bytes.IndexByte(payload[end:], '\n')
			if i < 0 {
				end = len(payload)
				break
			}
			end += i
			if end+1 < len(payload) && payload[end+1] == ' ' {
				end++ // continuation line, keep scanning
				continue
			}
			break
		}

		// Drop exactly one leading space per continuation line.
		value := strings.ReplaceAll(string(payload[valStart:end]), "\n ", "\n")
		fields.Add(key, value)

		if end >= len(payload) {
			break
		}
		pos = end + 1
	}

	// Header lines with no blank-line terminator: valid, empty message.
	return fields, "", nil
}

// encodeKVLM emits fields in stored order (repeats at their original
// positions), a blank line, then the raw message bytes.
func encodeKVLM(fields Fields, message string) []byte {
	var buf bytes.Buffer
	for _, f := range fields {
		buf.WriteString(f.Key)
		buf.WriteByte(' ')
		buf.WriteString(strings.ReplaceAll(f.Value, "\n", "\n "))
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.WriteString(message)
	return buf.Bytes()
}
