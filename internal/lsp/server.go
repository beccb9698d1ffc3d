package lsp

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/tliron/glsp"
	protocol316 "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/vet-dev/vet/internal/domain/baseline"
	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/protocol"
	"github.com/vet-dev/vet/internal/scanner"
	"github.com/vet-dev/vet/internal/verify"
	"github.com/vet-dev/vet/internal/vetconfig"
	"github.com/vet-dev/vet/internal/walker"
)

const lsName = "vet"

// Server is the vet language server: a glsp.Handler bound to a Scanner, a
// live vetconfig.Config, and the per-document state the LSP contract in
// spec.md §4.10 describes.
type Server struct {
	version string

	state     *documentState
	debouncer *Debouncer
	verifyMu  *VerifyCache

	scanner   *scanner.Scanner
	registry  *pattern.Registry
	verifiers *verify.Registry
	cfg       *vetconfig.Config
	walker    *walker.Walker
	matcher   *baseline.IgnoreMatcher

	roots         []string
	configPath    string
	glspServer    *glspserver.Server
	minConfidence string

	log zerolog.Logger
}

// NewServer wires a Server around the given scan inputs. roots are the
// workspace folder filesystem paths from the initialize request.
func NewServer(version string, sc *scanner.Scanner, reg *pattern.Registry, verifiers *verify.Registry, cfg *vetconfig.Config, matcher *baseline.IgnoreMatcher, w *walker.Walker, roots []string, configPath string) *Server {
	s := &Server{
		version:       version,
		state:         newDocumentState(),
		verifyMu:      NewVerifyCache(),
		scanner:       sc,
		registry:      reg,
		verifiers:     verifiers,
		cfg:           cfg,
		matcher:       matcher,
		walker:        w,
		roots:         roots,
		configPath:    configPath,
		minConfidence: "high",
		log:           zerolog.New(os.Stderr).With().Timestamp().Str("component", "lsp").Logger(),
	}
	if cfg != nil && cfg.MinimumConfidence != "" {
		s.minConfidence = cfg.MinimumConfidence
	}
	s.debouncer = NewDebouncer(s.runScan)
	return s
}

// Run builds the glsp handler and serves it over stdio, blocking until the
// client disconnects or shutdown completes.
func (s *Server) Run() error {
	handler := protocol316.Handler{
		Initialize:                     s.initialize,
		Initialized:                    s.initialized,
		Shutdown:                       s.shutdown,
		SetTrace:                       s.setTrace,
		TextDocumentDidOpen:            s.didOpen,
		TextDocumentDidChange:          s.didChange,
		TextDocumentDidSave:            s.didSave,
		TextDocumentDidClose:           s.didClose,
		TextDocumentHover:              s.hover,
		TextDocumentCodeAction:         s.codeAction,
		WorkspaceExecuteCommand:        s.executeCommand,
		WorkspaceDidChangeConfiguration: s.didChangeConfiguration,
		WorkspaceDidChangeWatchedFiles: s.didChangeWatchedFiles,
	}
	s.glspServer = glspserver.NewServer(&handler, lsName, false)
	s.startConfigWatcher()
	s.log.Info().Msg("vet language server starting")
	return s.glspServer.RunStdio()
}

// startConfigWatcher watches the primary workspace root for .vet.toml and
// .gitignore changes directly on disk, as a fallback for editors that never
// send didChangeWatchedFiles notifications despite advertising the
// capability.
func (s *Server) startConfigWatcher() {
	root := s.primaryRoot()
	if root == "" {
		return
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.log.Warn().Err(err).Msg("config watcher disabled")
		return
	}
	if err := watcher.Add(root); err != nil {
		s.log.Warn().Err(err).Str("root", root).Msg("config watcher: add root")
		watcher.Close()
		return
	}
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if strings.HasSuffix(ev.Name, ".vet.toml") || strings.HasSuffix(ev.Name, ".gitignore") {
					s.log.Debug().Str("file", ev.Name).Msg("config watcher: change detected")
					s.reloadAndRescan(nil)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn().Err(err).Msg("config watcher")
			}
		}
	}()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol316.InitializeParams) (any, error) {
	s.log.Info().Int("workspace_roots", len(s.roots)).Msg("initialize")
	capabilities := protocol316.ServerCapabilities{
		TextDocumentSync: protocol316.TextDocumentSyncKindFull,
		HoverProvider:    true,
		CodeActionProvider: &protocol316.CodeActionOptions{},
		ExecuteCommandProvider: &protocol316.ExecuteCommandOptions{
			Commands: []string{"vet.verifySecret", "vet.ignoreInConfig"},
		},
	}
	return protocol316.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol316.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol316.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.debouncer.Stop()
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol316.SetTraceParams) error {
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol316.DidOpenTextDocumentParams) error {
	doc := &OpenDocument{
		URI:     string(params.TextDocument.URI),
		Path:    uriToPath(params.TextDocument.URI),
		LangID:  params.TextDocument.LanguageID,
		Content: params.TextDocument.Text,
	}
	s.state.open(doc)
	s.publish(ctx, doc.URI)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol316.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// TextDocumentSyncKindFull guarantees the last change event carries the
	// full document text.
	last := params.ContentChanges[len(params.ContentChanges)-1]
	text, ok := last.(protocol316.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	uri := string(params.TextDocument.URI)
	s.state.update(uri, text.Text)
	s.debouncer.Schedule(uri, text.Text)
	return nil
}

func (s *Server) didSave(ctx *glsp.Context, params *protocol316.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.state.update(string(params.TextDocument.URI), *params.Text)
	}
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol316.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.state.close(uri)
	ctx.Notify(protocol316.ServerTextDocumentPublishDiagnostics, protocol316.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol316.Diagnostic{},
	})
	return nil
}

// runScan is the Debouncer's flush callback: it reruns the scan pipeline
// for a single URI on its own goroutine.
func (s *Server) runScan(uri, content string) {
	s.publishContent(nil, uri, content)
}

func (s *Server) publish(ctx *glsp.Context, uri string) {
	doc, ok := s.state.get(uri)
	if !ok {
		return
	}
	s.publishContent(ctx, uri, doc.Content)
}

// publishContent runs the scan pipeline (spec.md §4.10 steps 1-9) and
// publishes diagnostics. ctx may be nil when called from the debouncer's
// own goroutine, which holds no live glsp.Context; in that case diagnostics
// are published through the server's context-free notifier.
func (s *Server) publishContent(ctx *glsp.Context, uri, content string) {
	path := uriToPath(protocol316.DocumentUri(uri))
	if path == "" || !s.inWorkspace(path) {
		return
	}
	// Gitignore/exclude-glob filtering reuses the same Walker logic as a
	// full scan; a path the walker would never visit is skipped here too,
	// clearing any stale diagnostics.
	if !s.walkerAccepts(path) {
		s.clearDiagnostics(ctx, uri)
		return
	}

	findings := s.scanner.ScanContent(content, path)
	findings = filterByConfidence(findings, s.minConfidence)
	findings = s.filterIgnored(path, findings)

	s.state.swapDiagnostics(uri, findings)

	diags := BuildDiagnostics(path, findings, s.isVerifiable, s.verifyMu.Peek)
	s.sendDiagnostics(ctx, uri, diags)
}

func (s *Server) clearDiagnostics(ctx *glsp.Context, uri string) {
	s.state.swapDiagnostics(uri, nil)
	s.sendDiagnostics(ctx, uri, nil)
}

func (s *Server) sendDiagnostics(ctx *glsp.Context, uri string, diags []DiagnosticInfo) {
	wire := make([]protocol316.Diagnostic, 0, len(diags))
	for _, d := range diags {
		wire = append(wire, toWireDiagnostic(d))
	}
	params := protocol316.PublishDiagnosticsParams{URI: uri, Diagnostics: wire}
	if ctx != nil {
		ctx.Notify(protocol316.ServerTextDocumentPublishDiagnostics, params)
		return
	}
	if s.glspServer != nil {
		s.glspServer.Notify(protocol316.ServerTextDocumentPublishDiagnostics, params)
	}
}

func toWireDiagnostic(d DiagnosticInfo) protocol316.Diagnostic {
	sev := protocol316.DiagnosticSeverity(d.Severity)
	code := any(d.Code)
	source := lsName

	var tags []protocol316.DiagnosticTag
	for _, t := range d.Tags {
		if t == "unnecessary" {
			tags = append(tags, protocol316.DiagnosticTagUnnecessary)
		}
	}

	return protocol316.Diagnostic{
		Range: protocol316.Range{
			Start: protocol316.Position{Line: uint32(d.StartLine), Character: uint32(d.StartChar)},
			End:   protocol316.Position{Line: uint32(d.EndLine), Character: uint32(d.EndChar)},
		},
		Severity: &sev,
		Code:     &code,
		Source:   &source,
		Message:  d.Message,
		Tags:     tags,
		Data:     d.Data,
	}
}

func (s *Server) isVerifiable(patternID string) bool {
	return s.verifiers != nil && s.verifiers.SupportsVerification(patternID)
}

func (s *Server) inWorkspace(path string) bool {
	if len(s.roots) == 0 {
		return true
	}
	for _, root := range s.roots {
		if strings.HasPrefix(path, root) {
			return true
		}
	}
	return false
}

func (s *Server) walkerAccepts(path string) bool {
	if s.walker == nil {
		return true
	}
	return s.walker.AcceptsPath(path, s.primaryRoot())
}

func (s *Server) filterIgnored(path string, findings []finding.Finding) []finding.Finding {
	if s.matcher == nil {
		return findings
	}
	out := findings[:0:0]
	for _, f := range findings {
		fp := baseline.CalculateFingerprint(f.PatternID, path, f.Secret.FullHash())
		if !s.matcher.IsIgnored(fp) {
			out = append(out, f)
		}
	}
	return out
}

func filterByConfidence(findings []finding.Finding, minimum string) []finding.Finding {
	if minimum != "high" {
		return findings
	}
	out := findings[:0:0]
	for _, f := range findings {
		if f.Confidence.String() == "high" {
			out = append(out, f)
		}
	}
	return out
}

func (s *Server) hover(ctx *glsp.Context, params *protocol316.HoverParams) (*protocol316.Hover, error) {
	uri := string(params.TextDocument.URI)
	findings := s.state.diagnosticsFor(uri)
	pos := params.Position

	for _, f := range findings {
		if int(pos.Line) != f.Span.Line-1 {
			continue
		}
		startChar := f.Span.Column - 1
		endChar := startChar + (f.Span.ByteEnd - f.Span.ByteStart)
		if int(pos.Character) < startChar || int(pos.Character) > endChar {
			continue
		}

		p, _ := s.registry.ByID(f.PatternID)
		secretText, _ := s.recoverSecretText(uri, f.ID)
		payload := BuildHover(s.primaryRoot(), f, p, secretText, s.cachedVerification)

		contents := protocol316.MarkupContent{
			Kind:  protocol316.MarkupKindMarkdown,
			Value: hoverMarkdown(payload),
		}
		return &protocol316.Hover{Contents: contents}, nil
	}
	return nil, nil
}

func (s *Server) cachedVerification(findingID string) *protocol.VerificationPayload {
	res := s.verifyMu.Peek(findingID)
	if res == nil {
		return nil
	}
	return &protocol.VerificationPayload{Status: res.Status.String(), Service: res.Service, Reason: res.Reason}
}

func (s *Server) primaryRoot() string {
	if len(s.roots) == 0 {
		return ""
	}
	return s.roots[0]
}

func hoverMarkdown(p protocol.HoverPayload) string {
	var b strings.Builder
	b.WriteString("**")
	b.WriteString(p.PatternName)
	b.WriteString("** (")
	b.WriteString(p.Severity)
	b.WriteString(")\n\n")
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n\n")
	}
	if p.Verification != nil {
		b.WriteString("Verification: ")
		b.WriteString(p.Verification.Status)
		b.WriteString("\n\n")
	}
	b.WriteString(p.Remediation)
	return b.String()
}

func (s *Server) codeAction(ctx *glsp.Context, params *protocol316.CodeActionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	findings := s.state.diagnosticsFor(uri)

	startLine := int(params.Range.Start.Line)
	endLine := int(params.Range.End.Line)

	var intersecting []finding.Finding
	for _, f := range findings {
		line := f.Span.Line - 1
		if line >= startLine && line <= endLine {
			intersecting = append(intersecting, f)
		}
	}

	verifiableData := make(map[string]protocol.DiagnosticData, len(intersecting))
	for _, f := range intersecting {
		verifiableData[f.ID] = protocol.DiagnosticData{Verifiable: s.isVerifiable(f.PatternID)}
	}

	actions := BuildCodeActions(intersecting, verifiableData)
	out := make([]protocol316.CodeAction, 0, len(actions))
	for _, a := range actions {
		out = append(out, toWireCodeAction(uri, a))
	}
	return out, nil
}

func toWireCodeAction(uri string, a CodeAction) protocol316.CodeAction {
	kind := protocol316.CodeActionKindQuickFix
	action := protocol316.CodeAction{Title: a.Title, Kind: &kind}

	switch a.Kind {
	case ActionVerify:
		action.Command = &protocol316.Command{
			Title:     a.Title,
			Command:   "vet.verifySecret",
			Arguments: []any{a.Findings[0].ID, a.Findings[0].PatternID, uri},
		}
	case ActionIgnoreInConfig:
		action.Command = &protocol316.Command{
			Title:     a.Title,
			Command:   "vet.ignoreInConfig",
			Arguments: []any{a.Findings[0].ID, a.Findings[0].PatternID, uri},
		}
	case ActionIgnoreLine, ActionIgnoreAllOnLine:
		line := a.Findings[0].Span.Line - 1
		edit := protocol316.TextEdit{
			Range: protocol316.Range{
				Start: protocol316.Position{Line: uint32(line), Character: 0},
				End:   protocol316.Position{Line: uint32(line), Character: 0},
			},
			NewText: " " + a.EditText,
		}
		action.Edit = &protocol316.WorkspaceEdit{
			Changes: map[string][]protocol316.TextEdit{uri: {edit}},
		}
	}
	return action
}

func (s *Server) executeCommand(ctx *glsp.Context, params *protocol316.ExecuteCommandParams) (any, error) {
	switch params.Command {
	case "vet.verifySecret":
		return s.handleVerify(ctx, params.Arguments)
	case "vet.ignoreInConfig":
		return s.handleIgnoreInConfig(params.Arguments)
	}
	return nil, nil
}

func (s *Server) handleVerify(ctx *glsp.Context, args []any) (any, error) {
	if len(args) < 3 {
		return nil, nil
	}
	findingID, _ := args[0].(string)
	patternID, _ := args[1].(string)
	uri, _ := args[2].(string)

	// requestID only correlates log lines for one verify round-trip; it is
	// not part of the cache key, which stays the stable findingID.
	requestID := uuid.NewString()
	log := s.log.With().Str("request_id", requestID).Str("finding_id", findingID).Logger()

	if cached := s.verifyMu.Peek(findingID); cached != nil {
		s.publish(ctx, uri)
		return cached, nil
	}
	if !s.isVerifiable(patternID) {
		log.Debug().Str("pattern_id", patternID).Msg("verify: pattern not verifiable")
		return nil, nil
	}
	if !s.verifyMu.TryBegin(findingID) {
		log.Debug().Msg("verify: already pending")
		return nil, nil
	}

	secretText, ok := s.recoverSecretText(uri, findingID)
	if !ok {
		s.verifyMu.Fail(findingID)
		log.Warn().Msg("verify: could not recover secret text from document")
		return nil, nil
	}

	res, err := s.verifiers.Verify(context.Background(), patternID, secretText)
	if err != nil {
		s.verifyMu.Fail(findingID)
		log.Warn().Err(err).Msg("verify: provider call failed")
		return nil, nil
	}
	s.verifyMu.Complete(findingID, res)
	log.Info().Str("status", res.Status.String()).Msg("verify: completed")
	s.publish(ctx, uri)
	return res, nil
}

// recoverSecretText locates the raw substring a cached Finding's span
// refers to within the document's current content.
func (s *Server) recoverSecretText(uri, findingID string) (string, bool) {
	doc, ok := s.state.get(uri)
	if !ok {
		return "", false
	}
	for _, f := range s.state.diagnosticsFor(uri) {
		if f.ID == findingID {
			if f.Span.ByteEnd > len(doc.Content) {
				return "", false
			}
			return doc.Content[f.Span.ByteStart:f.Span.ByteEnd], true
		}
	}
	return "", false
}

func (s *Server) handleIgnoreInConfig(args []any) (any, error) {
	if len(args) < 2 || s.configPath == "" {
		return nil, nil
	}
	findingID, _ := args[0].(string)
	patternID, _ := args[1].(string)

	s.cfg.Ignore = append(s.cfg.Ignore, vetconfig.IgnoreEntry{
		Fingerprint: findingID,
		PatternID:   patternID,
	})
	if err := vetconfig.Save(s.cfg, s.configPath); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *Server) didChangeConfiguration(ctx *glsp.Context, params *protocol316.DidChangeConfigurationParams) error {
	s.applyLSPSettings(params.Settings)
	s.reloadAndRescan(ctx)
	return nil
}

// applyLSPSettings normalises the editor-supplied `settings` payload (an
// arbitrary JSON value keyed by client convention, not `.vet.toml`'s
// shape) through viper so dotted or nested client keys like
// "vet.minimumConfidence" resolve the same as a flat one.
func (s *Server) applyLSPSettings(settings any) {
	m, ok := settings.(map[string]interface{})
	if !ok {
		return
	}
	v := viper.New()
	if err := v.MergeConfigMap(m); err != nil {
		s.log.Warn().Err(err).Msg("didChangeConfiguration: could not parse settings payload")
		return
	}
	if mc := v.GetString("minimumConfidence"); mc != "" {
		s.minConfidence = mc
	}
	if mc := v.GetString("vet.minimumConfidence"); mc != "" {
		s.minConfidence = mc
	}
}

func (s *Server) didChangeWatchedFiles(ctx *glsp.Context, params *protocol316.DidChangeWatchedFilesParams) error {
	for _, ch := range params.Changes {
		if strings.HasSuffix(ch.URI, ".vet.toml") || strings.HasSuffix(ch.URI, ".gitignore") {
			s.reloadAndRescan(ctx)
			return nil
		}
	}
	return nil
}

func (s *Server) reloadAndRescan(ctx *glsp.Context) {
	if s.configPath != "" {
		if cfg, err := vetconfig.Load(s.configPath); err == nil {
			s.cfg = cfg
			if cfg.MinimumConfidence != "" {
				s.minConfidence = cfg.MinimumConfidence
			}
		}
	}
	for _, doc := range s.state.all() {
		s.publish(ctx, doc.URI)
	}
}

// uriToPath converts a `file://` document URI to a filesystem path,
// returning "" for unnamed or non-file-scheme documents (still valid to
// scan, per spec.md §4.10 step 1 — callers scan by content directly in
// that case and skip the workspace-root check).
func uriToPath(uri protocol316.DocumentUri) string {
	u, err := url.Parse(string(uri))
	if err != nil || u.Scheme != "file" {
		return ""
	}
	return u.Path
}
