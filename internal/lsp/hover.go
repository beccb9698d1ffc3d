package lsp

import (
	"io"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/protocol"
)

// remediationText maps an exposure class to the advice shown in a hover
// payload.
var remediationText = map[protocol.ExposureClass]string{
	protocol.ExposureInHistory:    "This secret is present in git history. Rotate the credential, then use `vet history` to locate every commit it appears in before rewriting history.",
	protocol.ExposureNotInHistory: "This secret has not been committed. Remove it from the working tree or move it to an environment variable before committing.",
	protocol.ExposureUnknown:      "Could not determine whether this secret has been committed. Treat it as exposed and rotate the credential.",
}

// BuildHover constructs the `vet/hoverData` payload for the Finding whose
// span contains the requested position. cached returns a non-nil
// VerificationPayload when a prior `vet.verifySecret` result is cached for
// f.ID. secretText is the raw secret substring recovered from the open
// document via f's span (empty if it could not be recovered), used to
// search git history for the actual committed text rather than the
// masked display form.
func BuildHover(repoRoot string, f finding.Finding, p *pattern.Pattern, secretText string, cached func(findingID string) *protocol.VerificationPayload) protocol.HoverPayload {
	exposure := classifyExposure(repoRoot, f, secretText)

	return protocol.HoverPayload{
		PatternName:   f.PatternID,
		Severity:      f.Severity.String(),
		Description:   descriptionFor(p),
		Verification:  cached(f.ID),
		Remediation:   remediationText[exposure],
		ExposureClass: string(exposure),
	}
}

func descriptionFor(p *pattern.Pattern) string {
	if p == nil {
		return ""
	}
	if p.Description() != "" {
		return p.Description()
	}
	return p.Name()
}

// classifyExposure decides InHistory/NotInHistory/Unknown for f by reading
// the file as it exists at HEAD and checking whether the raw secret
// substring appears in it. secretText empty (recovery failed) is treated
// as Unknown: the masked form's bullet characters never appear in real
// source, so searching for it would always report NotInHistory regardless
// of the truth.
func classifyExposure(repoRoot string, f finding.Finding, secretText string) protocol.ExposureClass {
	if secretText == "" {
		return protocol.ExposureUnknown
	}

	repo, err := git.PlainOpen(repoRoot)
	if err != nil {
		return protocol.ExposureUnknown
	}
	head, err := repo.Head()
	if err != nil {
		return protocol.ExposureUnknown
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return protocol.ExposureUnknown
	}
	tree, err := commit.Tree()
	if err != nil {
		return protocol.ExposureUnknown
	}

	rel := normalizeRel(repoRoot, f.Path)
	file, err := tree.File(rel)
	if err != nil {
		return protocol.ExposureNotInHistory
	}
	r, err := file.Reader()
	if err != nil {
		return protocol.ExposureUnknown
	}
	defer r.Close()
	content, err := io.ReadAll(r)
	if err != nil {
		return protocol.ExposureUnknown
	}

	if strings.Contains(string(content), secretText) {
		return protocol.ExposureInHistory
	}
	return protocol.ExposureNotInHistory
}

func normalizeRel(root, path string) string {
	rel := strings.TrimPrefix(path, root)
	rel = strings.TrimPrefix(rel, "/")
	return strings.ReplaceAll(rel, "\\", "/")
}
