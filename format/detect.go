// Package format provides input format detection for texbody.
package format

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Body indicates a rendered LaTeX body, one fragment per line, with
	// directive events in "% texbody:" comment lines.
	Body
	// Trace indicates a YAML render trace of fragments and directive
	// events.
	Trace
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Body:
		return "Body"
	case Trace:
		return "Trace"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Body:
		return ".tex"
	case Trace:
		return ".yaml"
	default:
		return ""
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tex", ".latex", ".ltx":
		return Body
	case ".yaml", ".yml":
		return Trace
	default:
		return Unknown
	}
}

// DetectFromMagic inspects the first meaningful line of data. A YAML
// document marker or a top-level "steps:" key is a Trace; a line starting
// with a backslash or a percent sign is a Body.
func DetectFromMagic(data []byte) Format {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case line == "---" || strings.HasPrefix(line, "steps:"):
			return Trace
		case strings.HasPrefix(line, `\`) || strings.HasPrefix(line, "%"):
			return Body
		default:
			return Unknown
		}
	}
	return Unknown
}

// DetectContent prefers the extension and falls back to the content.
func DetectContent(filename string, data []byte) Format {
	if f := Detect(filename); f != Unknown {
		return f
	}
	return DetectFromMagic(data)
}
