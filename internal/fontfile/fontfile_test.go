package fontfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCandidateResolverPicksFirstExisting(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.ttc")
	if err := os.WriteFile(second, []byte("font"), 0644); err != nil {
		t.Fatal(err)
	}

	r := &candidateResolver{
		name: "test",
		candidates: func() []string {
			return []string{filepath.Join(dir, "first.ttc"), second}
		},
	}

	got, ok := r.Resolve()
	if !ok || got != second {
		t.Errorf("Resolve() = %q, %v; want %q, true", got, ok, second)
	}
}

func TestCandidateResolverNoneExist(t *testing.T) {
	r := &candidateResolver{
		name:       "test",
		candidates: func() []string { return []string{filepath.Join(t.TempDir(), "none.ttc")} },
	}
	if got, ok := r.Resolve(); ok {
		t.Errorf("Resolve() = %q, true; want miss", got)
	}
}

func TestCandidateResolverSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	r := &candidateResolver{
		name:       "test",
		candidates: func() []string { return []string{dir} },
	}
	if got, ok := r.Resolve(); ok {
		t.Errorf("Resolve() = %q, true; directories are not fonts", got)
	}
}
