package enums

import "testing"

func TestParseNotificationKind(t *testing.T) {
	for _, kind := range validNotificationKinds {
		got, err := ParseNotificationKind(kind.String())
		if err != nil || got != kind {
			t.Fatalf("expected %q to parse, got %q err=%v", kind, got, err)
		}
	}
	if _, err := ParseNotificationKind("toast"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if NotificationKind("nope").IsValid() {
		t.Fatalf("unknown kind should be invalid")
	}
}

func TestParseCartCommand(t *testing.T) {
	got, err := ParseCartCommand("update_quantity")
	if err != nil || got != CartCommandUpdateQuantity {
		t.Fatalf("unexpected parse result %q err=%v", got, err)
	}
	if _, err := ParseCartCommand("checkout"); err == nil {
		t.Fatalf("expected error for unknown command")
	}
	if !CartCommandClear.IsValid() {
		t.Fatalf("clear should be valid")
	}
}
