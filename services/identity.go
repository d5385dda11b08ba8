package services

import (
	"errors"

	"backend/entity"
)

// ErrIdentityRequired is returned whenever no cart key can be derived. Callers
// must refuse the operation and ask the user to sign in; operating on an
// unnamespaced cart is never acceptable.
var ErrIdentityRequired = errors.New("sign in required")

// ResolveCartKey derives the single key that namespaces a user's persisted
// cart. The same user can show up with different identity shapes (federated
// session, password session, tokens from the old backend), so the precedence
// order below is the one rule every call site shares: provider uid, then
// backend user id, then the legacy id, then email. Two code paths picking
// different keys would silently split one user's cart in two.
func ResolveCartKey(id *entity.Identity) (string, error) {
	if id == nil {
		return "", ErrIdentityRequired
	}
	for _, k := range []string{id.ProviderUID, id.UserID, id.AltID, id.Email} {
		if k != "" {
			return k, nil
		}
	}
	return "", ErrIdentityRequired
}
