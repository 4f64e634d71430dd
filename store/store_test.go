package store

import "testing"

func TestRecentContactEmptyHistory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, ok := RecentContact(); ok {
		t.Fatal("RecentContact reported a contact with no history on disk")
	}
}

func TestRememberContactMovesToFront(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	first := Contact{Phone: "+79000000001", Name: "Anna"}
	second := Contact{Phone: "+79000000002", Name: "Boris"}
	if err := RememberContact(first); err != nil {
		t.Fatalf("RememberContact: %v", err)
	}
	if err := RememberContact(second); err != nil {
		t.Fatalf("RememberContact: %v", err)
	}

	recent, ok := RecentContact()
	if !ok || recent != second {
		t.Fatalf("RecentContact = %+v, %v, want %+v", recent, ok, second)
	}

	contacts, err := LoadRecentContacts()
	if err != nil {
		t.Fatalf("LoadRecentContacts: %v", err)
	}
	if len(contacts) != 2 || contacts[1] != first {
		t.Fatalf("contacts = %+v", contacts)
	}
}

func TestRememberContactDedupesByPhone(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := RememberContact(Contact{Phone: "+79000000001", Name: "Anna"}); err != nil {
		t.Fatalf("RememberContact: %v", err)
	}
	if err := RememberContact(Contact{Phone: "+79000000001", Name: "Anna Petrova"}); err != nil {
		t.Fatalf("RememberContact: %v", err)
	}

	contacts, err := LoadRecentContacts()
	if err != nil {
		t.Fatalf("LoadRecentContacts: %v", err)
	}
	if len(contacts) != 1 || contacts[0].Name != "Anna Petrova" {
		t.Fatalf("contacts = %+v", contacts)
	}
}

func TestRememberContactRejectsBlankPhone(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := RememberContact(Contact{Phone: "   ", Name: "Anna"}); err == nil {
		t.Fatal("RememberContact accepted a blank phone")
	}
}

func TestRememberContactCapsHistory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for i := 0; i < maxRecentContacts+3; i++ {
		contact := Contact{Phone: "+7900000000" + string(rune('a'+i)), Name: "Guest"}
		if err := RememberContact(contact); err != nil {
			t.Fatalf("RememberContact: %v", err)
		}
	}

	contacts, err := LoadRecentContacts()
	if err != nil {
		t.Fatalf("LoadRecentContacts: %v", err)
	}
	if len(contacts) > maxRecentContacts {
		t.Fatalf("history holds %d contacts, cap is %d", len(contacts), maxRecentContacts)
	}
}
