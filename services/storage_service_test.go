package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	if len(files) != 1 {
		t.Fatalf("expected 1 file in form, got %d", len(files))
	}
	return files[0]
}

func TestStorageSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	svc := NewStorageService(root)

	header := uploadHeader(t, "capture.PCAP", "packet bytes")
	path, fileType, err := svc.Save(7, header)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if fileType != "pcap" {
		t.Fatalf("expected file type pcap, got %q", fileType)
	}
	if !strings.HasPrefix(path, filepath.Join(root, "challenge_7")) {
		t.Fatalf("file stored outside challenge dir: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "packet bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
	if !svc.Exists(path) {
		t.Fatal("expected Exists to report stored file")
	}

	if err := svc.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if svc.Exists(path) {
		t.Fatal("expected file gone after Remove")
	}
}

func TestStorageSaveStripsDirectoryComponents(t *testing.T) {
	root := t.TempDir()
	svc := NewStorageService(root)

	header := uploadHeader(t, "../../etc/passwd", "nope")
	path, _, err := svc.Save(1, header)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "passwd" {
		t.Fatalf("expected bare filename, got %s", path)
	}
	if !strings.HasPrefix(path, filepath.Join(root, "challenge_1")) {
		t.Fatalf("file escaped storage root: %s", path)
	}
}

func TestStorageRemoveRefusesOutsideRoot(t *testing.T) {
	root := t.TempDir()
	svc := NewStorageService(root)

	outside := filepath.Join(t.TempDir(), "victim.txt")
	if err := os.WriteFile(outside, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("write victim: %v", err)
	}

	if err := svc.Remove(outside); err == nil {
		t.Fatal("expected Remove to refuse a path outside the root")
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("victim file should survive: %v", err)
	}
}

func TestStorageRemoveMissingFileIsNoop(t *testing.T) {
	root := t.TempDir()
	svc := NewStorageService(root)

	if err := svc.Remove(filepath.Join(root, "challenge_1", "gone.bin")); err != nil {
		t.Fatalf("remove missing file: %v", err)
	}
}
