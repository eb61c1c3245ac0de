package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	const password = "midnight-library-pass"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=3,p=4$") {
		t.Fatalf("unexpected PHC prefix: %s", hash)
	}

	match, err := VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !match {
		t.Error("hash did not verify against its own password")
	}

	match, err = VerifyPassword("midnight-library-typo", hash)
	if err != nil {
		t.Fatalf("VerifyPassword with wrong password: %v", err)
	}
	if match {
		t.Error("wrong password verified")
	}
}

func TestHashPassword_SaltsAreRandom(t *testing.T) {
	t.Parallel()

	const password = "repeat-after-me"

	first, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical")
	}
	for _, hash := range []string{first, second} {
		if match, _ := VerifyPassword(password, hash); !match {
			t.Errorf("hash %s did not verify", hash)
		}
	}
}

func TestVerifyPassword_MalformedHashes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hash string
		want error
	}{
		{"empty string", "", ErrInvalidHash},
		{"no dollar signs", "plaintext", ErrInvalidHash},
		{"bcrypt prefix", "$2a$10$abcdefghijklmnopqrstuv", ErrInvalidHash},
		{"truncated", "$argon2id$v=19$m=65536", ErrInvalidHash},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA", ErrInvalidHash},
		{"bad key encoding", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!", ErrInvalidHash},
		{"future version", "$argon2id$v=20$m=65536,t=3,p=4$c2FsdA$aGFzaA", ErrIncompatibleVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			match, err := VerifyPassword("whatever", tt.hash)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if match {
				t.Error("malformed hash verified")
			}
		})
	}
}
