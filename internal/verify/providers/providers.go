// Package providers implements the concrete per-pattern Verifiers wired
// into the verification registry.
package providers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vet-dev/vet/internal/verify"
)

// httpClient is shared across providers; each call still inherits the
// context's 5-second deadline from the registry.
var httpClient = &http.Client{}

// Builtin returns the built-in (patternID -> Verifier) catalogue.
func Builtin() map[string]verify.Verifier {
	return map[string]verify.Verifier{
		"vcs/github-pat":              verifyGitHub,
		"vcs/github-fine-grained-pat": verifyGitHub,
		"payments/stripe-live-secret-key": verifyStripe,
		"messaging/slack-token":           verifySlack,
		"email/sendgrid-api-key":          verifySendGrid,
	}
}

func verifyGitHub(ctx context.Context, secret string) (verify.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.github.com/user", nil)
	if err != nil {
		return verify.Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+secret)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return verify.Result{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return verify.Result{Status: verify.StatusLive, Service: "GitHub"}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return verify.Result{Status: verify.StatusInactive, Service: "GitHub"}, nil
	default:
		return verify.Result{Status: verify.StatusInconclusive, Service: "GitHub", Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}, nil
	}
}

func verifyStripe(ctx context.Context, secret string) (verify.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.stripe.com/v1/balance", nil)
	if err != nil {
		return verify.Result{}, err
	}
	req.SetBasicAuth(secret, "")

	resp, err := httpClient.Do(req)
	if err != nil {
		return verify.Result{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return verify.Result{Status: verify.StatusLive, Service: "Stripe"}, nil
	case http.StatusUnauthorized:
		return verify.Result{Status: verify.StatusInactive, Service: "Stripe"}, nil
	default:
		return verify.Result{Status: verify.StatusInconclusive, Service: "Stripe", Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}, nil
	}
}

func verifySlack(ctx context.Context, secret string) (verify.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://slack.com/api/auth.test", nil)
	if err != nil {
		return verify.Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+secret)

	resp, err := httpClient.Do(req)
	if err != nil {
		return verify.Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return verify.Result{Status: verify.StatusInconclusive, Service: "Slack", Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}, nil
	}
	return verify.Result{Status: verify.StatusLive, Service: "Slack"}, nil
}

func verifySendGrid(ctx context.Context, secret string) (verify.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.sendgrid.com/v3/scopes", nil)
	if err != nil {
		return verify.Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+secret)

	resp, err := httpClient.Do(req)
	if err != nil {
		return verify.Result{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return verify.Result{Status: verify.StatusLive, Service: "SendGrid"}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return verify.Result{Status: verify.StatusInactive, Service: "SendGrid"}, nil
	default:
		return verify.Result{Status: verify.StatusInconclusive, Service: "SendGrid", Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}, nil
	}
}
