package storage

import "time"

// Protection records who shielded a user from moderation and why.
type Protection struct {
	SetBy  string    `json:"set_by"`
	Reason string    `json:"reason,omitempty"`
	SetAt  time.Time `json:"set_at"`
}

// GuardianGuild is the per-guild protection state.
type GuardianGuild struct {
	ProtectedUsers map[string]Protection `json:"protected_users"`
	ExceptionRoles []string              `json:"exception_roles"`
}

type GuardianStore struct {
	store
	guilds map[string]GuardianGuild
}

func OpenGuardian(path string) (*GuardianStore, error) {
	s := &GuardianStore{
		store:  store{file: jsonFile{path: path}},
		guilds: make(map[string]GuardianGuild),
	}
	if err := s.file.load(&s.guilds); err != nil {
		return nil, err
	}
	if s.guilds == nil {
		s.guilds = make(map[string]GuardianGuild)
	}
	return s, nil
}

func (s *GuardianStore) guild(guildID string) GuardianGuild {
	g, ok := s.guilds[guildID]
	if !ok {
		g = GuardianGuild{ProtectedUsers: make(map[string]Protection)}
	}
	if g.ProtectedUsers == nil {
		g.ProtectedUsers = make(map[string]Protection)
	}
	return g
}

func (s *GuardianStore) Protect(guildID, userID string, p Protection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	g.ProtectedUsers[userID] = p
	s.guilds[guildID] = g
	return s.file.save(s.guilds)
}

func (s *GuardianStore) Unprotect(guildID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	if _, ok := g.ProtectedUsers[userID]; !ok {
		return false, nil
	}
	delete(g.ProtectedUsers, userID)
	s.guilds[guildID] = g
	return true, s.file.save(s.guilds)
}

func (s *GuardianStore) IsProtected(guildID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.guild(guildID).ProtectedUsers[userID]
	return ok
}

func (s *GuardianStore) Protection(guildID, userID string) (Protection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.guild(guildID).ProtectedUsers[userID]
	return p, ok
}

func (s *GuardianStore) AddExceptionRole(guildID, roleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	for _, id := range g.ExceptionRoles {
		if id == roleID {
			return false, nil
		}
	}
	g.ExceptionRoles = append(g.ExceptionRoles, roleID)
	s.guilds[guildID] = g
	return true, s.file.save(s.guilds)
}

func (s *GuardianStore) RemoveExceptionRole(guildID, roleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	for i, id := range g.ExceptionRoles {
		if id == roleID {
			g.ExceptionRoles = append(g.ExceptionRoles[:i], g.ExceptionRoles[i+1:]...)
			s.guilds[guildID] = g
			return true, s.file.save(s.guilds)
		}
	}
	return false, nil
}

// Guild returns a copy of one guild's protection state.
func (s *GuardianStore) Guild(guildID string) GuardianGuild {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.guild(guildID)
	out := GuardianGuild{
		ProtectedUsers: make(map[string]Protection, len(g.ProtectedUsers)),
		ExceptionRoles: append([]string(nil), g.ExceptionRoles...),
	}
	for id, p := range g.ProtectedUsers {
		out.ProtectedUsers[id] = p
	}
	return out
}
