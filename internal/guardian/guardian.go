// Package guardian decides whether a moderator may act on a protected user.
// The decision is pure: callers gather the guild facts and the policy here
// stays testable without a Discord session.
package guardian

// Verdict explains why an action on a protected user was allowed or denied.
type Verdict int

const (
	// Denied means the target is protected and no bypass applies.
	Denied Verdict = iota
	// NotProtected means the target carries no protection at all.
	NotProtected
	// OwnerBypass allows the guild owner through unconditionally.
	OwnerBypass
	// ProtectorBypass allows the moderator who set the protection.
	ProtectorBypass
	// ExceptionRoleBypass allows moderators holding an exception role.
	ExceptionRoleBypass
	// HierarchyBypass allows moderators ranked above the protector.
	HierarchyBypass
)

// Allowed reports whether the verdict permits the action.
func (v Verdict) Allowed() bool { return v != Denied }

// Request carries the facts needed to evaluate one moderation attempt.
type Request struct {
	TargetProtected bool
	ProtectorID     string
	ActorID         string
	ActorIsOwner    bool
	ActorRoles      []string
	ExceptionRoles  []string
	// Highest role positions, as Discord reports them. Only consulted when
	// both are known (non-negative).
	ActorTopRole     int
	ProtectorTopRole int
}

// Evaluate applies the protection policy in bypass order: owner, protector,
// exception role, then role hierarchy over the protector.
func Evaluate(req Request) Verdict {
	if !req.TargetProtected {
		return NotProtected
	}
	if req.ActorIsOwner {
		return OwnerBypass
	}
	if req.ProtectorID != "" && req.ActorID == req.ProtectorID {
		return ProtectorBypass
	}
	for _, held := range req.ActorRoles {
		for _, exc := range req.ExceptionRoles {
			if held == exc {
				return ExceptionRoleBypass
			}
		}
	}
	if req.ActorTopRole >= 0 && req.ProtectorTopRole >= 0 && req.ActorTopRole > req.ProtectorTopRole {
		return HierarchyBypass
	}
	return Denied
}
