package storage

import "sort"

// Score is one player's accumulated minigame record in a guild.
type Score struct {
	Points int `json:"points"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

type ScoreStore struct {
	store
	guilds map[string]map[string]Score
}

func OpenScores(path string) (*ScoreStore, error) {
	s := &ScoreStore{
		store:  store{file: jsonFile{path: path}},
		guilds: make(map[string]map[string]Score),
	}
	if err := s.file.load(&s.guilds); err != nil {
		return nil, err
	}
	if s.guilds == nil {
		s.guilds = make(map[string]map[string]Score)
	}
	return s, nil
}

// Record applies one game outcome for a player. Outcome is "win", "loss" or
// "draw"; points may be negative but the running total never drops below zero.
func (s *ScoreStore) Record(guildID, userID, outcome string, points int) (Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	guild := s.guilds[guildID]
	if guild == nil {
		guild = make(map[string]Score)
		s.guilds[guildID] = guild
	}
	sc := guild[userID]
	sc.Points += points
	if sc.Points < 0 {
		sc.Points = 0
	}
	switch outcome {
	case "win":
		sc.Wins++
	case "loss":
		sc.Losses++
	case "draw":
		sc.Draws++
	}
	guild[userID] = sc
	return sc, s.file.save(s.guilds)
}

func (s *ScoreStore) Score(guildID, userID string) Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guilds[guildID][userID]
}

// Entry pairs a user id with their score for leaderboard rendering.
type Entry struct {
	UserID string
	Score  Score
}

// Leaderboard returns up to limit players of a guild ordered by points
// descending, ties broken by user id for stable output.
func (s *ScoreStore) Leaderboard(guildID string, limit int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	guild := s.guilds[guildID]
	entries := make([]Entry, 0, len(guild))
	for id, sc := range guild {
		entries = append(entries, Entry{UserID: id, Score: sc})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score.Points != entries[j].Score.Points {
			return entries[i].Score.Points > entries[j].Score.Points
		}
		return entries[i].UserID < entries[j].UserID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
