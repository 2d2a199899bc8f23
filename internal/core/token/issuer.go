package token

import "time"

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	defaultConfirmTTL = 24 * time.Hour
)

// Issuer builds the three token kinds with their configured lifetimes, all
// via the same Codec.
type Issuer struct {
	codec      *Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
	confirmTTL time.Duration
}

// NewIssuer creates an Issuer. Non-positive TTLs fall back to the defaults
// (15m access, 7d refresh, 24h confirmation).
func NewIssuer(codec *Codec, accessTTL, refreshTTL, confirmTTL time.Duration) *Issuer {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	if confirmTTL <= 0 {
		confirmTTL = defaultConfirmTTL
	}
	return &Issuer{codec: codec, accessTTL: accessTTL, refreshTTL: refreshTTL, confirmTTL: confirmTTL}
}

// IssueAccess returns a short-lived bearer credential for API calls.
func (i *Issuer) IssueAccess(email string) (string, error) {
	return i.codec.Encode(email, ScopeAccess, i.accessTTL)
}

// IssueRefresh returns a long-lived credential exchangeable for a new access
// token without re-entering a password.
func (i *Issuer) IssueRefresh(email string) (string, error) {
	return i.codec.Encode(email, ScopeRefresh, i.refreshTTL)
}

// IssueConfirmation returns the single-purpose token embedded in the
// confirmation email link.
func (i *Issuer) IssueConfirmation(email string) (string, error) {
	return i.codec.Encode(email, ScopeEmailConfirm, i.confirmTTL)
}
