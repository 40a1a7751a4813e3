package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/lumen/utils"
)

func TestFindSourceFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"b.lm", "a.lm", "notes.txt", filepath.Join("sub", "c.lm")} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := utils.FindSourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.lm"),
		filepath.Join(dir, "b.lm"),
		filepath.Join(dir, "sub", "c.lm"),
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("FindSourceFiles() mismatch (-want +got):\n%s", diff)
	}

	single := filepath.Join(dir, "notes.txt")
	files, err = utils.FindSourceFiles(single)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{single}, files); diff != "" {
		t.Errorf("a file root is returned as is (-want +got):\n%s", diff)
	}
}

func TestReadTestData(t *testing.T) {
	t.Parallel()
	data := utils.ReadTestData([]byte(`
- label: on
  enable: true
  input: "x"
  expected:
    parser: "y"
- label: off
  enable: false
  input: "z"
`))
	want := []utils.TestData{{Label: "on", Enable: true, Input: "x", Expected: map[string]string{"parser": "y"}}}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("ReadTestData() mismatch (-want +got):\n%s", diff)
	}
}
