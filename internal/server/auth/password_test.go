package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "p@ssw0rd" {
		t.Fatalf("hash must not equal the plain password")
	}

	if !CheckPassword(hash, "p@ssw0rd") {
		t.Fatalf("expected password to match its own hash")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHashPassword_SaltedPerRecord(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
}
