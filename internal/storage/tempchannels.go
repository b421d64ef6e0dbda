package storage

import "time"

type TempChannel struct {
	GuildID   string    `json:"guild_id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"` // "text" or "voice"
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type TempChannelStore struct {
	store
	channels map[string]TempChannel
}

func OpenTempChannels(path string) (*TempChannelStore, error) {
	s := &TempChannelStore{
		store:    store{file: jsonFile{path: path}},
		channels: make(map[string]TempChannel),
	}
	if err := s.file.load(&s.channels); err != nil {
		return nil, err
	}
	if s.channels == nil {
		s.channels = make(map[string]TempChannel)
	}
	return s, nil
}

func (s *TempChannelStore) Get(channelID string) (TempChannel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tc, ok := s.channels[channelID]
	return tc, ok
}

func (s *TempChannelStore) Upsert(channelID string, tc TempChannel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[channelID] = tc
	return s.file.save(s.channels)
}

func (s *TempChannelStore) Remove(channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.channels[channelID]; !ok {
		return nil
	}
	delete(s.channels, channelID)
	return s.file.save(s.channels)
}

// ForGuild returns the tracked channels of one guild, keyed by channel id.
func (s *TempChannelStore) ForGuild(guildID string) map[string]TempChannel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]TempChannel)
	for id, tc := range s.channels {
		if tc.GuildID == guildID {
			out[id] = tc
		}
	}
	return out
}

// Expired returns the ids of channels whose lifetime has elapsed at now.
func (s *TempChannelStore) Expired(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, tc := range s.channels {
		if !tc.ExpiresAt.After(now) {
			ids = append(ids, id)
		}
	}
	return ids
}
