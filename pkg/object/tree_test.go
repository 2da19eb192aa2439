package object

import (
	"errors"
	"strings"
	"testing"
)

func testHash(seed string) Hash {
	return HashObject(TypeBlob, []byte(seed))
}

func TestTreeEntryOrdering(t *testing.T) {
	// "foo" is a directory: compared as "foo/", it sorts after
	// "foo.txt" ('.' < '/') and before "foo2" ('/' < '2').
	entries := []TreeEntry{
		{Mode: ModeFile, Name: "foo2", Hash: testHash("foo2")},
		{Mode: ModeDir, Name: "foo", Hash: testHash("foo")},
		{Mode: ModeFile, Name: "foo.txt", Hash: testHash("foo.txt")},
	}

	body, err := MarshalTree(entries)
	if err != nil {
		t.Fatalf("MarshalTree: %v", err)
	}
	got, err := UnmarshalTree(body)
	if err != nil {
		t.Fatalf("UnmarshalTree: %v", err)
	}

	want := []string{"foo.txt", "foo", "foo2"}
	if len(got) != len(want) {
		t.Fatalf("entry count: got %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("entry %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestTreeRoundTrip(t *testing.T) {
	entries := []TreeEntry{
		{Mode: ModeFile, Name: "README.md", Hash: testHash("readme")},
		{Mode: ModeExecutable, Name: "run.sh", Hash: testHash("script")},
		{Mode: ModeSymlink, Name: "link", Hash: testHash("target")},
		{Mode: ModeDir, Name: "src", Hash: testHash("subtree")},
	}

	body, err := MarshalTree(entries)
	if err != nil {
		t.Fatalf("MarshalTree: %v", err)
	}
	got, err := UnmarshalTree(body)
	if err != nil {
		t.Fatalf("UnmarshalTree: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("entry count: got %d, want %d", len(got), len(entries))
	}
	for _, e := range got {
		var want TreeEntry
		for _, orig := range entries {
			if orig.Name == e.Name {
				want = orig
				break
			}
		}
		if e != want {
			t.Errorf("entry %q: got %+v, want %+v", e.Name, e, want)
		}
	}
}

func TestMarshalTreeEmpty(t *testing.T) {
	body, err := MarshalTree(nil)
	if err != nil {
		t.Fatalf("MarshalTree: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("empty tree body: got %d bytes, want 0", len(body))
	}
	entries, err := UnmarshalTree(body)
	if err != nil {
		t.Fatalf("UnmarshalTree: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("empty tree entries: got %d, want 0", len(entries))
	}
}

func TestMarshalTreeRejectsDuplicates(t *testing.T) {
	entries := []TreeEntry{
		{Mode: ModeFile, Name: "a", Hash: testHash("a1")},
		{Mode: ModeFile, Name: "a", Hash: testHash("a2")},
	}
	if _, err := MarshalTree(entries); err == nil {
		t.Error("MarshalTree accepted duplicate names")
	}
}

func TestUnmarshalTreeRejectsMalformed(t *testing.T) {
	valid, err := MarshalTree([]TreeEntry{{Mode: ModeFile, Name: "a", Hash: testHash("a")}})
	if err != nil {
		t.Fatalf("MarshalTree: %v", err)
	}

	tests := []struct {
		name string
		body []byte
	}{
		{name: "no NUL", body: []byte("100644 name-without-terminator")},
		{name: "no space", body: append([]byte("100644name\x00"), make([]byte, 20)...)},
		{name: "truncated hash", body: valid[:len(valid)-5]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UnmarshalTree(tc.body); !errors.Is(err, ErrDecode) {
				t.Errorf("UnmarshalTree: got %v, want ErrDecode", err)
			}
		})
	}
}

func TestMarshalTreeEmbedsRawHash(t *testing.T) {
	h := testHash("raw check")
	body, err := MarshalTree([]TreeEntry{{Mode: ModeFile, Name: "f", Hash: h}})
	if err != nil {
		t.Fatalf("MarshalTree: %v", err)
	}
	// "100644 f\0" + 20 raw bytes; the hex form must not appear.
	if len(body) != len("100644 f")+1+20 {
		t.Errorf("body length: got %d, want %d", len(body), len("100644 f")+1+20)
	}
	if strings.Contains(string(body), string(h)) {
		t.Error("tree body contains the hex hash; want raw bytes")
	}
}
