package bot

import (
	"testing"

	"github.com/TifouDragon/Slimboy-Bot/internal/banlist"
	"github.com/TifouDragon/Slimboy-Bot/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestGateView(t *testing.T) {
	key, ok := gateView(nil, "42")
	assert.False(t, ok)
	assert.Equal(t, "view_expired", key)

	view := &banView{
		invokerID: "42",
		pager:     banlist.NewPager(12, 5, 2),
	}

	key, ok = gateView(view, "99")
	assert.False(t, ok)
	assert.Equal(t, "denial_not_invoker", key)
	// A refused actor leaves the view untouched.
	assert.Equal(t, 2, view.currentPager().Page)
	assert.Nil(t, view.selection())

	key, ok = gateView(view, "42")
	assert.True(t, ok)
	assert.Empty(t, key)
}

func TestViewNavigationAccessors(t *testing.T) {
	view := &banView{pager: banlist.NewPager(12, 5, 1)}

	assert.Equal(t, 2, view.stepNext().Page)
	assert.Equal(t, 3, view.stepNext().Page)
	// Last page: stepping further is a no-op.
	assert.Equal(t, 3, view.stepNext().Page)
	assert.Equal(t, 2, view.stepPrev().Page)

	entry := &banlist.Entry{Reason: "spam"}
	view.selectEntry(entry)
	assert.Same(t, entry, view.selection())
}

func TestArmViewTimerRearmsAndSkipsClosed(t *testing.T) {
	b := &Bot{
		cfg: config.Config{
			Pagination: config.PaginationConfig{ViewTimeoutSeconds: 60},
		},
		views: make(map[string]*banView),
	}

	view := &banView{messageID: "m1"}
	b.armViewTimer(view)
	assert.NotNil(t, view.timer)

	first := view.timer
	b.armViewTimer(view)
	assert.NotNil(t, view.timer)
	assert.NotSame(t, first, view.timer)
	view.timer.Stop()

	closed := &banView{messageID: "m2", closed: true}
	b.armViewTimer(closed)
	assert.Nil(t, closed.timer)
}
