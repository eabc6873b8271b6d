package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndQuery(t *testing.T) {
	doc, err := Parse(`<html><body><h1 class="title">Produkt</h1></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Produkt", doc.Find("h1.title").Text())
}

func TestBodyTextCollapsesWhitespace(t *testing.T) {
	doc, err := Parse("<body>\n\t<p>5   Stück\nan   Lager</p>\n  <span>Morgen\tgeliefert</span>\n</body>")
	require.NoError(t, err)

	assert.Equal(t, "5 Stück an Lager Morgen geliefert", doc.BodyText())
}

func TestBodyTextOnEmptyInput(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, "", doc.BodyText())
}

func TestRawKeepsOriginalMarkup(t *testing.T) {
	raw := `<div><broken`
	doc, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, raw, doc.Raw())
}
