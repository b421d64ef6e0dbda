package guardian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	base := Request{
		TargetProtected:  true,
		ProtectorID:      "protector",
		ActorID:          "mod",
		ActorTopRole:     -1,
		ProtectorTopRole: -1,
	}

	t.Run("unprotected target", func(t *testing.T) {
		req := base
		req.TargetProtected = false
		assert.Equal(t, NotProtected, Evaluate(req))
	})

	t.Run("denied by default", func(t *testing.T) {
		v := Evaluate(base)
		assert.Equal(t, Denied, v)
		assert.False(t, v.Allowed())
	})

	t.Run("owner bypass", func(t *testing.T) {
		req := base
		req.ActorIsOwner = true
		assert.Equal(t, OwnerBypass, Evaluate(req))
	})

	t.Run("protector bypass", func(t *testing.T) {
		req := base
		req.ActorID = "protector"
		assert.Equal(t, ProtectorBypass, Evaluate(req))
	})

	t.Run("exception role bypass", func(t *testing.T) {
		req := base
		req.ActorRoles = []string{"r1", "r2"}
		req.ExceptionRoles = []string{"r2"}
		assert.Equal(t, ExceptionRoleBypass, Evaluate(req))
	})

	t.Run("hierarchy bypass", func(t *testing.T) {
		req := base
		req.ActorTopRole = 10
		req.ProtectorTopRole = 5
		assert.Equal(t, HierarchyBypass, Evaluate(req))
	})

	t.Run("equal rank is denied", func(t *testing.T) {
		req := base
		req.ActorTopRole = 5
		req.ProtectorTopRole = 5
		assert.Equal(t, Denied, Evaluate(req))
	})

	t.Run("unknown ranks never bypass", func(t *testing.T) {
		req := base
		req.ActorTopRole = 10
		req.ProtectorTopRole = -1
		assert.Equal(t, Denied, Evaluate(req))
	})
}
