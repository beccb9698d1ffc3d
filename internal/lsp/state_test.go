package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vet-dev/vet/internal/domain/finding"
)

func TestDocumentState_OpenAndGet(t *testing.T) {
	s := newDocumentState()
	doc := &OpenDocument{URI: "file:///a.go", Path: "/a.go", Content: "package main"}
	s.open(doc)

	got, ok := s.get("file:///a.go")
	assert.True(t, ok)
	assert.Equal(t, doc, got)
}

func TestDocumentState_GetMissingReturnsFalse(t *testing.T) {
	s := newDocumentState()
	_, ok := s.get("file:///missing.go")
	assert.False(t, ok)
}

func TestDocumentState_UpdateReplacesContent(t *testing.T) {
	s := newDocumentState()
	s.open(&OpenDocument{URI: "file:///a.go", Content: "old"})
	s.update("file:///a.go", "new")

	got, _ := s.get("file:///a.go")
	assert.Equal(t, "new", got.Content)
}

func TestDocumentState_UpdateOnUnknownURIIsNoOp(t *testing.T) {
	s := newDocumentState()
	assert.NotPanics(t, func() { s.update("file:///unknown.go", "x") })
}

func TestDocumentState_CloseRemovesDocumentAndDiagnostics(t *testing.T) {
	s := newDocumentState()
	s.open(&OpenDocument{URI: "file:///a.go"})
	s.swapDiagnostics("file:///a.go", []finding.Finding{{ID: "x"}})

	s.close("file:///a.go")

	_, ok := s.get("file:///a.go")
	assert.False(t, ok)
	assert.Empty(t, s.diagnosticsFor("file:///a.go"))
}

func TestDocumentState_All_ReturnsEveryOpenDocument(t *testing.T) {
	s := newDocumentState()
	s.open(&OpenDocument{URI: "file:///a.go"})
	s.open(&OpenDocument{URI: "file:///b.go"})

	assert.Len(t, s.all(), 2)
}

func TestDocumentState_SwapDiagnostics_ReplacesAndReturns(t *testing.T) {
	s := newDocumentState()
	findings := []finding.Finding{{ID: "x"}}

	got := s.swapDiagnostics("file:///a.go", findings)
	assert.Equal(t, findings, got)
	assert.Equal(t, findings, s.diagnosticsFor("file:///a.go"))

	replaced := s.swapDiagnostics("file:///a.go", nil)
	assert.Empty(t, replaced)
	assert.Empty(t, s.diagnosticsFor("file:///a.go"))
}
