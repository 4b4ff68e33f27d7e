package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

var _ FileSystemProvider = (*OSFileSystem)(nil)
var _ FileSystemProvider = (*MemoryFileSystem)(nil)

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "phq9.json")
	expected := `{"a":1}`
	os.WriteFile(filePath, []byte(expected), 0644)

	fs := NewOSFileSystem()

	data, err := fs.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("ReadFile(nonexistent) should return error")
	}
}

func TestOSFileSystem_WriteFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "sha.json")
	os.WriteFile(filePath, []byte("a much longer previous fingerprint"), 0644)

	fs := NewOSFileSystem()
	if err := fs.WriteFile(filePath, []byte(`{}`), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, _ := os.ReadFile(filePath)
	if string(data) != `{}` {
		t.Errorf("WriteFile() left %q, want %q", string(data), `{}`)
	}
}

func TestOSFileSystem_WriteFile_IntoDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sha.json")
	os.Mkdir(target, 0755)

	fs := NewOSFileSystem()
	if err := fs.WriteFile(target, []byte(`{}`), 0644); err == nil {
		t.Error("WriteFile(directory) should return error")
	}
}

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "phq9"), 0755)
	os.Mkdir(filepath.Join(dir, "gad7"), 0755)
	os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644)

	fs := NewOSFileSystem()
	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	if len(entries) != 3 {
		t.Fatalf("ReadDir() returned %d entries, want 3", len(entries))
	}
	if len(dirs) != 2 || dirs[0] != "gad7" || dirs[1] != "phq9" {
		t.Errorf("directories = %v, want [gad7 phq9]", dirs)
	}
}

func TestOSFileSystem_ReadDir_FollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "shared")
	os.Mkdir(target, 0755)

	if err := os.Symlink(target, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling"))

	fs := NewOSFileSystem()
	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	got := map[string]bool{}
	for _, e := range entries {
		got[e.Name()] = e.IsDir()
	}
	if !got["linked"] {
		t.Error("symlink to directory should report IsDir() = true")
	}
	if isDir, ok := got["dangling"]; !ok || isDir {
		t.Error("dangling symlink should be listed as a non-directory")
	}
}

func TestOSFileSystem_ReadDir_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	if _, err := fs.ReadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ReadDir(nonexistent) should return error")
	}
}

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "phq9.score.js")
	os.WriteFile(filePath, []byte("module.exports={}"), 0644)

	fs := NewOSFileSystem()

	info, err := fs.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "phq9.score.js" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "phq9.score.js")
	}
}

func TestOSFileSystem_Stat_Directory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	info, err := fs.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir) should be a directory")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Stat(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Stat(nonexistent) should return error")
	}
}
