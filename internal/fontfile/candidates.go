package fontfile

import (
	"os"
	"path/filepath"
)

// candidateResolver returns the first existing path from an ordered list.
type candidateResolver struct {
	name       string
	candidates func() []string
}

func (r *candidateResolver) Name() string { return r.name }

func (r *candidateResolver) Resolve() (string, bool) {
	for _, c := range r.candidates() {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}

func init() {
	Register(&candidateResolver{name: "windows", candidates: windowsCandidates})
	Register(&candidateResolver{name: "linux", candidates: linuxCandidates})
}

// windowsCandidates prefers the bold Meiryo family under %WINDIR%\Fonts.
func windowsCandidates() []string {
	winDir := os.Getenv("WINDIR")
	if winDir == "" {
		return nil
	}
	names := []string{
		"meiryob.ttc",
		"meiryo.ttc",
		"msgothic.ttc",
		"YuGothB.ttc",
		"YuGothM.ttc",
	}
	paths := make([]string, 0, len(names))
	for _, n := range names {
		paths = append(paths, filepath.Join(winDir, "Fonts", n))
	}
	return paths
}

func linuxCandidates() []string {
	return []string{
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Bold.ttc",
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/opentype/noto/NotoSerifCJK-Bold.ttc",
		"/usr/share/fonts/opentype/noto/NotoSerifCJK-Regular.ttc",
	}
}
