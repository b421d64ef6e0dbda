package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTempChannelsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp_channels.json")
	s, err := OpenTempChannels(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	tc := TempChannel{
		GuildID:   "g1",
		Name:      "raid-room",
		Kind:      "voice",
		CreatedBy: "u1",
		CreatedAt: now,
		ExpiresAt: now.Add(30 * time.Minute),
	}
	if err := s.Upsert("c1", tc); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	reopened, err := OpenTempChannels(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := reopened.Get("c1")
	if !ok {
		t.Fatal("channel missing after reload")
	}
	if got.Name != "raid-room" || got.GuildID != "g1" {
		t.Fatalf("unexpected channel: %+v", got)
	}
}

func TestTempChannelsExpired(t *testing.T) {
	s, err := OpenTempChannels(filepath.Join(t.TempDir(), "tc.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	now := time.Now()
	_ = s.Upsert("old", TempChannel{GuildID: "g", ExpiresAt: now.Add(-time.Minute)})
	_ = s.Upsert("live", TempChannel{GuildID: "g", ExpiresAt: now.Add(time.Hour)})

	expired := s.Expired(now)
	if len(expired) != 1 || expired[0] != "old" {
		t.Fatalf("expired = %v, want [old]", expired)
	}

	if err := s.Remove("old"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Get("old"); ok {
		t.Fatal("channel still present after remove")
	}
}

func TestGuardianProtection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guardian.json")
	s, err := OpenGuardian(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Protect("g1", "u1", Protection{SetBy: "owner", Reason: "founder", SetAt: time.Now()}); err != nil {
		t.Fatalf("protect: %v", err)
	}
	if !s.IsProtected("g1", "u1") {
		t.Fatal("u1 should be protected")
	}
	if s.IsProtected("g2", "u1") {
		t.Fatal("protection must not leak across guilds")
	}

	reopened, err := OpenGuardian(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	p, ok := reopened.Protection("g1", "u1")
	if !ok || p.SetBy != "owner" {
		t.Fatalf("protection lost on reload: %+v ok=%v", p, ok)
	}

	removed, err := reopened.Unprotect("g1", "u1")
	if err != nil || !removed {
		t.Fatalf("unprotect = %v, %v", removed, err)
	}
	removed, _ = reopened.Unprotect("g1", "u1")
	if removed {
		t.Fatal("second unprotect should report no change")
	}
}

func TestGuardianExceptionRoles(t *testing.T) {
	s, err := OpenGuardian(filepath.Join(t.TempDir(), "guardian.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	added, err := s.AddExceptionRole("g1", "r1")
	if err != nil || !added {
		t.Fatalf("add = %v, %v", added, err)
	}
	added, _ = s.AddExceptionRole("g1", "r1")
	if added {
		t.Fatal("duplicate role should not be added")
	}

	g := s.Guild("g1")
	if len(g.ExceptionRoles) != 1 || g.ExceptionRoles[0] != "r1" {
		t.Fatalf("roles = %v", g.ExceptionRoles)
	}

	removed, _ := s.RemoveExceptionRole("g1", "r1")
	if !removed {
		t.Fatal("role should be removed")
	}
	removed, _ = s.RemoveExceptionRole("g1", "r1")
	if removed {
		t.Fatal("second remove should report no change")
	}
}

func TestScoresRecordAndLeaderboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s, err := OpenScores(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := s.Record("g1", "alice", "win", 3); err != nil {
		t.Fatalf("record: %v", err)
	}
	_, _ = s.Record("g1", "alice", "win", 3)
	_, _ = s.Record("g1", "bob", "loss", -1)
	_, _ = s.Record("g1", "carol", "draw", 1)

	if got := s.Score("g1", "bob").Points; got != 0 {
		t.Fatalf("points floor at zero, got %d", got)
	}

	board := s.Leaderboard("g1", 2)
	if len(board) != 2 {
		t.Fatalf("leaderboard size = %d", len(board))
	}
	if board[0].UserID != "alice" || board[0].Score.Points != 6 {
		t.Fatalf("leader = %+v", board[0])
	}
	if board[1].UserID != "carol" {
		t.Fatalf("second = %+v", board[1])
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := OpenScores(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := s.Leaderboard("g1", 0); len(got) != 0 {
		t.Fatalf("expected empty store, got %v", got)
	}
}
