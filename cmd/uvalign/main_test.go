package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/uvalign"
	"github.com/gogpu/uvalign/mesh"
)

const lineOBJ = `v 0 0 0
v 1 0 0
v 2 0 0
v 1 2 0
vt 0 0
vt 1 0.5
vt 2 0
vt 1 2
f 1/1 2/2 3/3 4/4
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { uvalign.SetLogger(nil) })
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestOps(t *testing.T) {
	out, _, err := run(t, "ops")
	if err != nil {
		t.Fatalf("ops: %v", err)
	}
	for _, name := range []string{"circle", "smooth", "straighten", "straighten-grid", "axis"} {
		if !strings.Contains(out, name) {
			t.Errorf("ops output missing %q:\n%s", name, out)
		}
	}
}

func TestApply(t *testing.T) {
	in := writeFile(t, "line.obj", lineOBJ)
	job := writeFile(t, "job.toml", "op = \"straighten\"\n[selection]\nfaces = [0]\nloops = [[0, 0], [0, 1], [0, 2]]\n")
	outPath := filepath.Join(t.TempDir(), "out.obj")

	_, stderr, err := run(t, "apply", "--config", job, "--in", in, "--out", outPath)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !strings.Contains(stderr, "straighten: 1 UVs moved") {
		t.Errorf("stderr = %q", stderr)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	m, err := mesh.ReadOBJ(f)
	if err != nil {
		t.Fatalf("ReadOBJ: %v", err)
	}
	if got := m.UV(m.FaceLoop(0, 1)); got.Y != 0 || got.X != 1 {
		t.Errorf("middle UV = %v, want (1, 0)", got)
	}
}

func TestApply_FlagOverridesOperator(t *testing.T) {
	in := writeFile(t, "line.obj", lineOBJ)
	job := writeFile(t, "job.toml", "op = \"circle\"\n[selection]\nfaces = [0]\nloops = [[0, 0], [0, 1], [0, 2], [0, 3]]\n")

	_, _, err := run(t, "apply", "-c", job, "-i", in, "--op", "smooth")
	if err == nil || !strings.Contains(err.Error(), "looped") {
		t.Errorf("err = %v, want looped selection from smooth", err)
	}
}

func TestApply_UnknownOperator(t *testing.T) {
	in := writeFile(t, "line.obj", lineOBJ)
	if _, _, err := run(t, "apply", "-i", in, "--op", "mirror"); err == nil {
		t.Error("unknown operator accepted")
	}
}

func TestPreview(t *testing.T) {
	in := writeFile(t, "line.obj", lineOBJ)
	out := filepath.Join(t.TempDir(), "uv.png")
	if _, _, err := run(t, "preview", "-i", in, "-o", out, "--size", "48"); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if st, err := os.Stat(out); err != nil || st.Size() == 0 {
		t.Errorf("preview file missing or empty: %v", err)
	}
}
