// Package lsp implements the C11 LSP orchestrator: a glsp-backed language
// server that scans open documents, publishes diagnostics, and serves the
// verify/hover/code-action contract spec.md defines for editors.
package lsp

import (
	"sync"

	"github.com/vet-dev/vet/internal/domain/finding"
)

// OpenDocument is the in-memory state tracked for one editor-visible URI.
type OpenDocument struct {
	URI     string
	Path    string
	LangID  string
	Content string
}

// documentState holds every open document plus the diagnostics last
// published for it, guarded by a single mutex: the orchestrator never
// holds this lock across a scan or an HTTP-bound verification call.
type documentState struct {
	mu          sync.RWMutex
	documents   map[string]*OpenDocument
	diagnostics map[string][]finding.Finding
}

func newDocumentState() *documentState {
	return &documentState{
		documents:   make(map[string]*OpenDocument),
		diagnostics: make(map[string][]finding.Finding),
	}
}

func (s *documentState) open(doc *OpenDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.URI] = doc
}

func (s *documentState) update(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.documents[uri]; ok {
		doc.Content = content
	}
}

func (s *documentState) close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, uri)
	delete(s.diagnostics, uri)
}

func (s *documentState) get(uri string) (*OpenDocument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[uri]
	return doc, ok
}

func (s *documentState) all() []*OpenDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]*OpenDocument, 0, len(s.documents))
	for _, d := range s.documents {
		docs = append(docs, d)
	}
	return docs
}

// swapDiagnostics atomically replaces the finding list published for uri
// and returns it, so the caller can build editor diagnostics from the same
// slice it just stored.
func (s *documentState) swapDiagnostics(uri string, findings []finding.Finding) []finding.Finding {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagnostics[uri] = findings
	return findings
}

func (s *documentState) diagnosticsFor(uri string) []finding.Finding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.diagnostics[uri]
}
