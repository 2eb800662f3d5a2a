// Package access decides whether a user may act on a list. The decision
// logic is pure: it takes resolved entities and never reaches into a store,
// so it can be tested without a database. Checker wraps it with the one
// grant lookup the recipient path needs.
package access

import (
	"context"
	"fmt"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
	"github.com/endysusanto13/todo-backend/internal/domain/repository"
)

// Decision is the outcome of an access check. Owner and SharedRecipient are
// behaviorally equivalent today (access is binary) but stay distinct so a
// future read-only recipient mode has somewhere to hang.
type Decision int

const (
	None Decision = iota
	Owner
	SharedRecipient
)

func (d Decision) String() string {
	switch d {
	case Owner:
		return "owner"
	case SharedRecipient:
		return "shared_recipient"
	default:
		return "none"
	}
}

// CanAccess decides what a user may do with a list given the list's share
// grants. Existence and soft-deletion of the list are the caller's 404, not
// this function's concern. Revoked grants never confer access.
func CanAccess(userID int64, userEmail string, list *model.List, grants []model.ListShare) Decision {
	if list == nil {
		return None
	}
	if userID == list.CreateUserID {
		return Owner
	}
	if IsSharedWith(grants, userEmail) {
		return SharedRecipient
	}
	return None
}

// IsSharedWith reports whether any non-revoked grant names the given email
// as recipient.
func IsSharedWith(grants []model.ListShare, email string) bool {
	for _, g := range grants {
		if !g.IsDeleted && g.SharedWithEmail == email {
			return true
		}
	}
	return false
}

// Checker resolves access decisions against the share registry. The owner
// check is a pure comparison and short-circuits the grant lookup, which is
// the common path for users operating on their own lists.
type Checker struct {
	shares repository.ShareRepository
}

// NewChecker creates a new access checker.
func NewChecker(shares repository.ShareRepository) *Checker {
	return &Checker{shares: shares}
}

// Decide returns the access decision for a (user, list) pair, fetching share
// grants only when the user is not the list's creator.
func (c *Checker) Decide(ctx context.Context, user *model.User, list *model.List) (Decision, error) {
	if user.ID == list.CreateUserID {
		return Owner, nil
	}
	// A list that has never been shared cannot have grants.
	if !list.IsShared {
		return None, nil
	}
	grants, err := c.shares.FindByListID(ctx, list.ID)
	if err != nil {
		return None, fmt.Errorf("failed to load share grants for list %d: %w", list.ID, err)
	}
	return CanAccess(user.ID, user.Email, list, grants), nil
}
