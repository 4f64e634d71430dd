package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const maxRecentContacts = 8

// Contact is a phone/name pair used to book. The most recent one prefills
// the booking and bookings-view prompts; the user always confirms or edits
// it interactively.
type Contact struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type contactHistory struct {
	Contacts []Contact `json:"contacts"`
}

func LoadRecentContacts() ([]Contact, error) {
	path, err := configPath("contacts.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history contactHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid contact history format")
	}
	return history.Contacts, nil
}

// RecentContact returns the most recently used contact, if any.
func RecentContact() (Contact, bool) {
	contacts, err := LoadRecentContacts()
	if err != nil || len(contacts) == 0 {
		return Contact{}, false
	}
	recent := contacts[0]
	if strings.TrimSpace(recent.Phone) == "" {
		return Contact{}, false
	}
	return recent, true
}

// RememberContact moves the contact to the front of the history, deduplicated
// by phone number.
func RememberContact(contact Contact) error {
	contact.Phone = strings.TrimSpace(contact.Phone)
	contact.Name = strings.TrimSpace(contact.Name)
	if contact.Phone == "" {
		return errors.New("phone is required")
	}

	history, _ := LoadRecentContacts()
	next := []Contact{contact}
	for _, existing := range history {
		if strings.EqualFold(existing.Phone, contact.Phone) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentContacts {
			break
		}
	}

	return saveRecentContacts(next)
}

func saveRecentContacts(contacts []Contact) error {
	path, err := configPath("contacts.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	history := contactHistory{Contacts: contacts}
	payload, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theater-tickets-cli", name), nil
}
