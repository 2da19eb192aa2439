package object

import "testing"

func TestHashObjectKnownValue(t *testing.T) {
	// Matches `git hash-object --stdin` for the same content.
	h := HashObject(TypeBlob, []byte("hello\n"))
	want := Hash("ce013625030ba8dba906f756967f9e9ca394464a")
	if h != want {
		t.Errorf("HashObject: got %s, want %s", h, want)
	}
}

func TestHashObjectDeterminism(t *testing.T) {
	data := []byte("hello world")
	if HashObject(TypeBlob, data) != HashObject(TypeBlob, data) {
		t.Error("HashObject not deterministic")
	}
	if len(HashObject(TypeBlob, data)) != 40 {
		t.Errorf("Hash length: got %d, want 40", len(HashObject(TypeBlob, data)))
	}
}

func TestHashObjectEnvelope(t *testing.T) {
	data := []byte("hello")
	if HashObject(TypeBlob, data) == HashObject(TypeTree, data) {
		t.Error("different types should produce different hashes")
	}
	if HashObject(TypeBlob, []byte("aaa")) == HashObject(TypeBlob, []byte("bbb")) {
		t.Error("different inputs produced same hash")
	}
}

func TestHashRawRoundTrip(t *testing.T) {
	h := HashObject(TypeBlob, []byte("raw round trip"))
	raw, err := h.Raw()
	if err != nil {
		t.Fatalf("Raw: %v", err)
	}
	if len(raw) != 20 {
		t.Fatalf("Raw length: got %d, want 20", len(raw))
	}
	back, err := HashFromRaw(raw)
	if err != nil {
		t.Fatalf("HashFromRaw: %v", err)
	}
	if back != h {
		t.Errorf("round trip: got %s, want %s", back, h)
	}
}

func TestHashRawRejectsBadInput(t *testing.T) {
	if _, err := Hash("abc").Raw(); err == nil {
		t.Error("Raw accepted a short hash")
	}
	if _, err := Hash("zz13625030ba8dba906f756967f9e9ca394464a0").Raw(); err == nil {
		t.Error("Raw accepted non-hex characters")
	}
	if _, err := HashFromRaw(make([]byte, 19)); err == nil {
		t.Error("HashFromRaw accepted 19 bytes")
	}
}
