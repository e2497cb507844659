// Package authz is the record-level authorization policy engine. Decide is a
// pure function over the requester's identity and role, the operation kind,
// and the target's owner and status; it never touches the clock, storage, or
// request metadata, so every decision is re-derivable from its inputs.
//
// Route middleware performs a coarse role/resource/action gate before a use
// case runs; Decide is the fine-grained check that also sees ownership and
// lifecycle status.
package authz

import (
	vo "accountsforge/internal/domain/profile/valueobjects"
)

// Operation is the kind of access being requested.
type Operation string

const (
	OpRead   Operation = "read"
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Resource identifies the entity variant a request targets.
type Resource string

const (
	ResourceExpense Resource = "expense"
	ResourceRevenue Resource = "revenue"
	ResourceClaim   Resource = "claim"
	ResourceProfile Resource = "profile"
)

// StatusPending is the only ledger status in which owners retain write
// access. The engine compares against the string form so it stays
// independent of the per-variant status types.
const StatusPending = "pending"

// Actor is the authenticated principal making the request.
type Actor struct {
	ProfileID   uint
	AuthSubject string
	Role        vo.Role
}

// Target describes the record a request is aimed at. For inserts, OwnerID
// and AuthSubject carry the intended values from the payload; Status is
// empty for profiles and new records.
type Target struct {
	Resource    Resource
	OwnerID     uint
	AuthSubject string
	Status      string
	// RoleChange is set when a profile update touches the role field.
	RoleChange bool
}

// Request pairs an actor, an operation, and a target.
type Request struct {
	Actor     Actor
	Operation Operation
	Target    Target
}

// Reason tags why a decision came out the way it did.
type Reason string

const (
	ReasonAdmin          Reason = "admin"
	ReasonOwner          Reason = "owner"
	ReasonOwnerPending   Reason = "owner_pending"
	ReasonSelf           Reason = "self"
	ReasonNotOwner       Reason = "not_owner"
	ReasonNotPending     Reason = "not_pending"
	ReasonRoleForbidden  Reason = "role_forbidden"
	ReasonOwnerMismatch  Reason = "owner_mismatch"
	ReasonAdminOnly      Reason = "admin_only"
	ReasonUnknownRequest Reason = "unknown_request"
)

// Decision is the outcome of evaluating a request.
type Decision struct {
	Allow  bool
	Reason Reason
}

func allow(reason Reason) Decision {
	return Decision{Allow: true, Reason: reason}
}

func deny(reason Reason) Decision {
	return Decision{Allow: false, Reason: reason}
}

// Decide evaluates the policy rules for a request. Rules are
// independently-sufficient grants: the request is permitted if any rule
// grants it. Evaluation order only affects the reported reason.
func Decide(req Request) Decision {
	if !req.Actor.Role.IsValid() || req.Actor.ProfileID == 0 {
		return deny(ReasonUnknownRequest)
	}

	if req.Target.Resource == ResourceProfile {
		return decideProfile(req)
	}

	switch req.Operation {
	case OpRead:
		return decideRead(req)
	case OpInsert:
		return decideInsert(req)
	case OpUpdate:
		return decideUpdate(req)
	case OpDelete:
		return decideDelete(req)
	default:
		return deny(ReasonUnknownRequest)
	}
}

// decideRead: owners read their own records in any status; admins read all.
func decideRead(req Request) Decision {
	if req.Actor.Role.IsAdmin() {
		return allow(ReasonAdmin)
	}
	if req.Target.OwnerID == req.Actor.ProfileID {
		return allow(ReasonOwner)
	}
	return deny(ReasonNotOwner)
}

// decideInsert: records may only be inserted with the actor as owner.
// Revenue additionally requires the salesman or admin role.
func decideInsert(req Request) Decision {
	if req.Target.OwnerID != req.Actor.ProfileID {
		return deny(ReasonOwnerMismatch)
	}
	if req.Target.Resource == ResourceRevenue && !req.Actor.Role.CanRecordRevenue() {
		return deny(ReasonRoleForbidden)
	}
	return allow(ReasonOwner)
}

// decideUpdate: admins update any record in any status (workflow legality
// is checked separately by the aggregate); owners update their own records
// only while pending.
func decideUpdate(req Request) Decision {
	if req.Actor.Role.IsAdmin() {
		return allow(ReasonAdmin)
	}
	if req.Target.OwnerID != req.Actor.ProfileID {
		return deny(ReasonNotOwner)
	}
	if req.Target.Status != StatusPending {
		return deny(ReasonNotPending)
	}
	return allow(ReasonOwnerPending)
}

// decideDelete: admins delete anything; claim owners delete their own
// pending claims. No other deletion is granted.
func decideDelete(req Request) Decision {
	if req.Actor.Role.IsAdmin() {
		return allow(ReasonAdmin)
	}
	if req.Target.Resource == ResourceClaim &&
		req.Target.OwnerID == req.Actor.ProfileID &&
		req.Target.Status == StatusPending {
		return allow(ReasonOwnerPending)
	}
	if req.Target.OwnerID != req.Actor.ProfileID {
		return deny(ReasonNotOwner)
	}
	return deny(ReasonAdminOnly)
}

// decideProfile: profile self-service. Every principal reads and updates
// its own row; inserts must match the authenticated subject; only admins
// touch another profile or any role field.
func decideProfile(req Request) Decision {
	isSelf := req.Target.OwnerID != 0 && req.Target.OwnerID == req.Actor.ProfileID ||
		req.Target.AuthSubject != "" && req.Target.AuthSubject == req.Actor.AuthSubject

	switch req.Operation {
	case OpRead:
		if req.Actor.Role.IsAdmin() {
			return allow(ReasonAdmin)
		}
		if isSelf {
			return allow(ReasonSelf)
		}
		return deny(ReasonNotOwner)
	case OpInsert:
		// The stricter identity-matching rule: a principal may only insert
		// a profile for its own authenticated subject. Uniqueness of the
		// subject is enforced by the store, not here.
		if req.Target.AuthSubject != "" && req.Target.AuthSubject == req.Actor.AuthSubject {
			return allow(ReasonSelf)
		}
		return deny(ReasonOwnerMismatch)
	case OpUpdate:
		if req.Target.RoleChange {
			if req.Actor.Role.IsAdmin() {
				return allow(ReasonAdmin)
			}
			return deny(ReasonAdminOnly)
		}
		if req.Actor.Role.IsAdmin() {
			return allow(ReasonAdmin)
		}
		if isSelf {
			return allow(ReasonSelf)
		}
		return deny(ReasonNotOwner)
	case OpDelete:
		if req.Actor.Role.IsAdmin() {
			return allow(ReasonAdmin)
		}
		return deny(ReasonAdminOnly)
	default:
		return deny(ReasonUnknownRequest)
	}
}
