// Package storage persists bot state in flat JSON files, one file per
// concern. Each store loads its file once at open time and rewrites the whole
// file after every mutation. A missing or unreadable file means "start
// empty".
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type jsonFile struct {
	path string
}

func (f jsonFile) load(v any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Corrupt state files are not fatal: the store starts empty and
		// the file is rewritten on the next mutation.
		return nil
	}
	return nil
}

func (f jsonFile) save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, data, 0o644)
}

// Stores bundles the three persistent stores under one data directory.
type Stores struct {
	TempChannels *TempChannelStore
	Guardian     *GuardianStore
	Scores       *ScoreStore
}

func Open(dataDir string) (*Stores, error) {
	temp, err := OpenTempChannels(filepath.Join(dataDir, "temp_channels.json"))
	if err != nil {
		return nil, err
	}
	guardian, err := OpenGuardian(filepath.Join(dataDir, "guardian_data.json"))
	if err != nil {
		return nil, err
	}
	scores, err := OpenScores(filepath.Join(dataDir, "game_scores.json"))
	if err != nil {
		return nil, err
	}
	return &Stores{TempChannels: temp, Guardian: guardian, Scores: scores}, nil
}

// store is the shared shape of the per-concern stores: an in-memory map
// guarded by a mutex, mirrored to a JSON file on every change.
type store struct {
	mu   sync.Mutex
	file jsonFile
}
