package extract

import (
	"testing"

	"github.com/stockwatch/digitec-stock-check/internal/document"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *document.Document {
	t.Helper()
	doc, err := document.Parse(html)
	require.NoError(t, err)
	return doc
}

func intPtr(n int) *int {
	return &n
}
