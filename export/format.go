// Package export writes calculation reports as downloadable documents.
package export

import (
	"fmt"
	"strings"
)

// Format is a document format.
type Format string

const (
	Markdown Format = "md"
	HTML     Format = "html"
	XLSX     Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{Markdown, HTML, XLSX}

// ParseFormat parses a format name or file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "md", "markdown":
		return Markdown, nil
	case "html", "htm":
		return HTML, nil
	case "xlsx", "excel":
		return XLSX, nil
	default:
		return "", fmt.Errorf("unknown format %q, expecting one of md, html or xlsx", s)
	}
}

func (f Format) String() string { return string(f) }

// FileName returns the document name for a stock label,
// "HDFC_Bank_Stock_Average_Report.xlsx".
func FileName(label string, f Format) string {
	name := strings.Join(strings.Fields(label), "_")
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	return fmt.Sprintf("%s_Stock_Average_Report.%s", name, f)
}
