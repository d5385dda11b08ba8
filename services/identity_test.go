package services

import (
	"errors"
	"testing"

	"backend/entity"
)

func TestResolveCartKeyPrecedence(t *testing.T) {
	cases := []struct {
		name string
		id   entity.Identity
		want string
	}{
		{"provider uid wins over everything", entity.Identity{ProviderUID: "fb1", UserID: "7", AltID: "m1", Email: "a@b.c"}, "fb1"},
		{"user id beats alt id and email", entity.Identity{UserID: "7", AltID: "m1", Email: "a@b.c"}, "7"},
		{"alt id beats email", entity.Identity{AltID: "m1", Email: "a@b.c"}, "m1"},
		{"email as last resort", entity.Identity{Email: "a@b.c"}, "a@b.c"},
		{"display name alone is not a key", entity.Identity{DisplayName: "Alice", Email: "a@b.c"}, "a@b.c"},
	}
	for _, tc := range cases {
		got, err := ResolveCartKey(&tc.id)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestResolveCartKeyIsDeterministic(t *testing.T) {
	id := &entity.Identity{UserID: "42", Email: "x@y.z"}
	a, _ := ResolveCartKey(id)
	b, _ := ResolveCartKey(id)
	if a != b {
		t.Errorf("same input produced %q then %q", a, b)
	}
}

func TestResolveCartKeyFailsClosed(t *testing.T) {
	if _, err := ResolveCartKey(nil); !errors.Is(err, ErrIdentityRequired) {
		t.Errorf("nil identity: got %v, want ErrIdentityRequired", err)
	}
	if _, err := ResolveCartKey(&entity.Identity{DisplayName: "Alice"}); !errors.Is(err, ErrIdentityRequired) {
		t.Errorf("identity without key fields: got %v, want ErrIdentityRequired", err)
	}
}
