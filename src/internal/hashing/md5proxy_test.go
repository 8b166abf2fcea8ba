package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestChecksumReaderProxy_ReadAll(t *testing.T) {
	testData := "10.0.0.0/24\n192.168.1.0/24"
	proxy := NewMD5ReaderProxy(strings.NewReader(testData))

	content, err := io.ReadAll(proxy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(content) != testData {
		t.Errorf("Expected content to pass through unchanged, got %q", content)
	}
	if proxy.BytesRead() != int64(len(testData)) {
		t.Errorf("Expected %d bytes read, got %d", len(testData), proxy.BytesRead())
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if checksum != md5Hex(testData) {
		t.Errorf("Expected checksum %s, got %s", md5Hex(testData), checksum)
	}
}

func TestChecksumReaderProxy_ReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	proxy := NewMD5ReaderProxy(&errorReader{err: readErr})

	if _, err := proxy.Read(make([]byte, 8)); err != readErr {
		t.Fatalf("Expected read error to propagate, got %v", err)
	}
	if _, err := proxy.GetChecksum(); err != readErr {
		t.Errorf("Expected GetChecksum to report the read error, got %v", err)
	}
}

func TestBytesChecksum(t *testing.T) {
	checksum, err := BytesChecksum("abc").GetChecksum()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if checksum != md5Hex("abc") {
		t.Errorf("Expected %s, got %s", md5Hex("abc"), checksum)
	}
}

func TestFileChecksum(t *testing.T) {
	dir := t.TempDir()

	if _, exists, err := FileChecksum(filepath.Join(dir, "missing.txt")); err != nil || exists {
		t.Errorf("Expected missing file to report exists=false without error, got exists=%v err=%v", exists, err)
	}

	path := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(path, []byte("10.0.0.0/8"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	checksum, exists, err := FileChecksum(path)
	if err != nil || !exists {
		t.Fatalf("Expected existing file, got exists=%v err=%v", exists, err)
	}
	if checksum != md5Hex("10.0.0.0/8") {
		t.Errorf("Expected %s, got %s", md5Hex("10.0.0.0/8"), checksum)
	}
}

func TestSameContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")

	if same, err := SameContent(path, []byte("x")); err != nil || same {
		t.Errorf("Missing file is never the same, got same=%v err=%v", same, err)
	}

	if err := os.WriteFile(path, []byte("10.0.0.0/8"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if same, err := SameContent(path, []byte("10.0.0.0/8")); err != nil || !same {
		t.Errorf("Expected same content, got same=%v err=%v", same, err)
	}
	if same, err := SameContent(path, []byte("10.0.0.0/8\n")); err != nil || same {
		t.Errorf("Expected different content, got same=%v err=%v", same, err)
	}
}
