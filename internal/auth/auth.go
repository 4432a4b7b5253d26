package auth

import (
	"github.com/google/uuid"
)

const (
	// APIKeyHeaderName is the out-of-band secret header checked by the
	// admin tier fallback.
	APIKeyHeaderName = "x-api-key"

	AdminClaimName         = "admin"
	TrustedMemberClaimName = "trusted_member"
	UserIDClaimName        = "userid"
)

// Tier is a named privilege level.
type Tier string

const (
	TierAdmin         Tier = "admin"
	TierTrustedMember Tier = "trusted_member"
)

// Decision is the outcome of a single strategy or a full tier evaluation.
type Decision int

const (
	NotApplicable Decision = iota
	Allow
	Deny
)

// ClaimSet is the caller's claims as string key/value pairs.
type ClaimSet map[string]string

// Has reports whether the claim is present with the exact value.
func (c ClaimSet) Has(name, value string) bool {
	return c[name] == value
}

// RequestContext carries everything a strategy may inspect: the claim
// set from the bearer token and the optionally presented API key header.
type RequestContext struct {
	Claims    ClaimSet
	APIKey    string
	HasAPIKey bool
}

// strategy inspects the request context and votes on the outcome.
type strategy func(rc *RequestContext) Decision

// Authorizer evaluates privilege tiers against a request. Strategies
// are evaluated in order; the first Allow wins, anything else is Deny.
// The API key is fixed at construction and never changes afterwards.
type Authorizer struct {
	strategies map[Tier][]strategy
}

func NewAuthorizer(apiKey string) *Authorizer {
	return &Authorizer{
		strategies: map[Tier][]strategy{
			TierAdmin: {
				claimStrategy(AdminClaimName),
				apiKeyStrategy(apiKey),
			},
			TierTrustedMember: {
				claimStrategy(AdminClaimName, TrustedMemberClaimName),
			},
		},
	}
}

// Authorize decides whether the request may proceed at the given tier.
// It must be called once per request; decisions are never cached.
func (a *Authorizer) Authorize(tier Tier, rc *RequestContext) Decision {
	for _, s := range a.strategies[tier] {
		if s(rc) == Allow {
			return Allow
		}
	}
	return Deny
}

// claimStrategy allows when any of the named claims has value "true".
func claimStrategy(names ...string) strategy {
	return func(rc *RequestContext) Decision {
		for _, name := range names {
			if rc.Claims.Has(name, "true") {
				return Allow
			}
		}
		return NotApplicable
	}
}

// apiKeyStrategy allows when the presented header exactly equals the
// configured key. A key-authenticated caller has no identity claim of
// its own, so a synthetic user id is asserted for downstream use.
func apiKeyStrategy(apiKey string) strategy {
	return func(rc *RequestContext) Decision {
		if !rc.HasAPIKey {
			return Deny
		}
		if rc.APIKey != apiKey {
			return Deny
		}

		if rc.Claims == nil {
			rc.Claims = ClaimSet{}
		}
		if _, ok := rc.Claims[UserIDClaimName]; !ok {
			rc.Claims[UserIDClaimName] = uuid.NewString()
		}
		return Allow
	}
}
