package services

import "testing"

func TestChatReplies(t *testing.T) {
	svc := NewChatService()

	cases := []struct {
		msg        string
		wantAction string
		wantCafe   string
	}{
		{"I want to book a slot", "navigate", "ttmm-slot"},
		{"show me hangout cafe", "navigate", "hangout-cafe"},
		{"hagout menu please", "navigate", "hangout-cafe"}, // common typo
		{"cafe house", "navigate", "cafe-house"},
		{"cafehouse", "navigate", "cafe-house"},
		{"what does ttmm serve", "navigate", "ttmm"},
		{"golden bakery", "navigate", "golden-bakery"},
		{"golden-bakery", "navigate", "golden-bakery"}, // hyphen normalized
		{"show me the menu", "", ""},
		{"I need a reservation", "", ""},
		{"where is your location", "", ""},
		{"hello there", "", ""},
	}
	for _, tc := range cases {
		got := svc.Reply(tc.msg)
		if got.Action != tc.wantAction || got.CafeID != tc.wantCafe {
			t.Errorf("Reply(%q) = action %q cafe %q, want %q %q",
				tc.msg, got.Action, got.CafeID, tc.wantAction, tc.wantCafe)
		}
		if got.Message == "" {
			t.Errorf("Reply(%q) returned empty message", tc.msg)
		}
	}
}

func TestChatSlotBeatsCafeKeywords(t *testing.T) {
	svc := NewChatService()

	got := svc.Reply("book a slot at hangout cafe")
	if got.CafeID != "ttmm-slot" {
		t.Errorf("slot keyword should win, got cafe %q", got.CafeID)
	}
}

func TestChatIsCaseInsensitive(t *testing.T) {
	svc := NewChatService()

	if got := svc.Reply("GOLDEN BAKERY"); got.CafeID != "golden-bakery" {
		t.Errorf("got cafe %q, want golden-bakery", got.CafeID)
	}
}
