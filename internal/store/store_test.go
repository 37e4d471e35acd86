package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOS_ReadMissing(t *testing.T) {
	s := NewOS()

	text, ok, err := s.Read(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ok {
		t.Errorf("Read() ok = true for missing file")
	}
	if text != "" {
		t.Errorf("Read() text = %q, want empty", text)
	}
}

func TestOS_WriteRead(t *testing.T) {
	s := NewOS()
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	if err := s.Write(path, "servers: []\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	text, ok, err := s.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !ok {
		t.Fatal("Read() ok = false after Write")
	}
	if text != "servers: []\n" {
		t.Errorf("Read() text = %q", text)
	}

	exists, err := s.Exists(path)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false after Write")
	}
}

func TestOS_WriteOverwrites(t *testing.T) {
	s := NewOS()
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}
	if err := s.Write(path, "new"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	text, _, err := s.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if text != "new" {
		t.Errorf("Read() text = %q, want %q", text, "new")
	}
}

func TestMem_Seeded(t *testing.T) {
	s := NewMem(map[string]string{
		"/a.json": `{"servers": {}}`,
	})

	text, ok, err := s.Read("/a.json")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !ok {
		t.Fatal("Read() ok = false for seeded path")
	}
	if text != `{"servers": {}}` {
		t.Errorf("Read() text = %q", text)
	}

	if _, ok, _ := s.Read("/b.json"); ok {
		t.Error("Read() ok = true for unseeded path")
	}
}

func TestMem_WriteAndPaths(t *testing.T) {
	s := NewMem(nil)

	if err := s.Write("/z.toml", "x = 1"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := s.Write("/a.yaml", "x: 1"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if got, want := s.Paths(), []string{"/a.yaml", "/z.toml"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}

	exists, err := s.Exists("/a.yaml")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false after Write")
	}
}
