// Package renderer turns the engine's reports and tabular extracts into
// markdown, ready to print on a terminal or feed to an export collaborator.
// It is a pure presentation layer: nothing here reads or mutates the book.
package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/openbroker/brokerbook"
)

// tableSet converts a tabular extract to the markdown table shape, with the
// first column left aligned and every other column right aligned.
func tableSet(t brokerbook.Table) md.TableSet {
	alignment := make([]md.TableAlignment, len(t.Header))
	for i := range alignment {
		alignment[i] = md.AlignRight
	}
	if len(alignment) > 0 {
		alignment[0] = md.AlignLeft
	}
	return md.TableSet{
		Alignment: alignment,
		Header:    t.Header,
		Rows:      t.Rows,
	}
}

// TableMarkdown renders a bare tabular extract under a title.
func TableMarkdown(title string, t brokerbook.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if t.Empty() {
		doc.PlainText("No rows.")
	} else {
		doc.Table(tableSet(t))
	}
	return doc.String()
}
