package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Setting keys.
const (
	SettingSoundOn = "sound_on"
)

// Setting returns the stored value for key and whether it exists.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}

// SoundOn returns the persisted sound preference, or def if none was saved.
func (s *Store) SoundOn(def bool) (bool, error) {
	v, ok, err := s.Setting(SettingSoundOn)
	if err != nil || !ok {
		return def, err
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("storage: bad %s value %q: %w", SettingSoundOn, v, err)
	}
	return on, nil
}

// SetSoundOn persists the sound preference.
func (s *Store) SetSoundOn(on bool) error {
	return s.SetSetting(SettingSoundOn, strconv.FormatBool(on))
}
