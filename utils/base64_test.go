package utils

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveBase64Image(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("slip bytes")

	name, err := SaveBase64Image(base64.StdEncoding.EncodeToString(payload), dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("content = %q", got)
	}
}

func TestSaveBase64ImageDataURL(t *testing.T) {
	dir := t.TempDir()
	raw := base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})

	name, err := SaveBase64Image("data:image/png;base64,"+raw, dir)
	if err != nil {
		t.Fatalf("save data url: %v", err)
	}
	if name == "" {
		t.Fatal("empty file name")
	}
}

func TestSaveBase64ImageRejections(t *testing.T) {
	dir := t.TempDir()

	if _, err := SaveBase64Image("%%% not base64 %%%", dir); err == nil {
		t.Fatal("garbage accepted")
	}

	big := base64.StdEncoding.EncodeToString(make([]byte, 5*1024*1024+1))
	if _, err := SaveBase64Image(big, dir); err == nil {
		t.Fatal("oversize payload accepted")
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("rejected uploads left files: %s", strings.Join(names, ", "))
	}
}
