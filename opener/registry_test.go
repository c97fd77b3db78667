package opener

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenerFromSpecUnknownScheme(t *testing.T) {
	t.Parallel()

	if _, err := OpenerFromSpec("weird://thing"); err == nil {
		t.Fatalf("OpenerFromSpec(weird://...) err = nil, want error")
	}
}

func TestOpenerFromSpecUsesDefaultFileRegistration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatalf("WriteFile err = %v", err)
	}

	ops, err := OpenerFromSpec(path)
	if err != nil {
		t.Fatalf("OpenerFromSpec err = %v", err)
	}
	if len(ops) != 1 || ops[0].Name() != filepath.Clean(path) {
		t.Fatalf("OpenerFromSpec(%q) = %v, want a single File opener for that path", path, ops)
	}
}

func TestRegisterOpenerRejectsDuplicateScheme(t *testing.T) {
	t.Parallel()

	if err := RegisterOpener(schemeFile, RegularFileOpenerFactory); err == nil {
		t.Fatalf("RegisterOpener(schemeFile) err = nil, want error (already registered by init)")
	}
}

func TestOpenerFromSpecFileURIUsesFileRegistration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatalf("WriteFile err = %v", err)
	}

	ops, err := OpenerFromSpec("file://" + path)
	if err != nil {
		t.Fatalf("OpenerFromSpec err = %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("OpenerFromSpec(file://...) = %v, want a single File opener", ops)
	}
}
