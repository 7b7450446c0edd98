package extract

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-ai-backend/internal/shared/telemetry"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	pdfSalvageCap     = 5000
	defaultSalvageCap = 3000
)

// Text pulls best-effort plain text out of an uploaded payload.
// Libraries used: github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
// It never fails: on any parse problem it degrades to a raw-byte salvage so a
// prompt can still be built from whatever readable content exists.
func Text(data []byte, mimeType string) string {
	switch normalizeMimeType(mimeType) {
	case mimePDF:
		return extractPDF(data)
	case mimeDOCX:
		return extractDOCX(data)
	default:
		return capString(string(data), defaultSalvageCap)
	}
}

func extractPDF(data []byte) (text string) {
	// The pdf reader panics on some malformed files; degraded mode must hold
	// the never-fail contract regardless.
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Warn("extract.pdf_panic", map[string]any{"error": rec})
			text = salvage(data, pdfSalvageCap)
		}
	}()

	if !bytes.HasPrefix(data, []byte("%PDF")) {
		telemetry.Warn("extract.pdf_signature_missing", map[string]any{"bytes": len(data)})
		return salvage(data, pdfSalvageCap)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return salvage(data, pdfSalvageCap)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return salvage(data, pdfSalvageCap)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return salvage(data, pdfSalvageCap)
	}

	if strings.TrimSpace(buf.String()) == "" {
		// Parsed fine but no text layer, likely a scanned image. Surface the
		// document metadata so the prompt has something to work with.
		return "Scanned PDF Detected. Content extraction limited. " + pdfInfo(reader)
	}
	return buf.String()
}

func pdfInfo(reader *pdf.Reader) string {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	fields := map[string]string{}
	for _, key := range []string{"Title", "Author", "Creator", "Producer"} {
		if v := info.Key(key); v.Kind() == pdf.String {
			fields[key] = v.RawString()
		}
	}
	if len(fields) == 0 {
		return ""
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(out)
}

func extractDOCX(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return capString(string(data), defaultSalvageCap)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent())
}

// stripDocxXML flattens document.xml into plain text, keeping paragraph breaks.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// salvage keeps printable ASCII plus basic whitespace from a payload that
// could not be parsed, so a broken upload still yields something readable.
func salvage(data []byte, max int) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		if (c >= 0x20 && c <= 0x7e) || c == '\n' || c == '\r' || c == '\t' {
			b.WriteByte(c)
		} else {
			b.WriteByte(' ')
		}
	}
	return capString(b.String(), max)
}

func capString(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}
