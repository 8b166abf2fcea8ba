package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"os"

	"github.com/maksimkurb/ip-ranges/src/internal/utils"
)

type ChecksumProvider interface {
	GetChecksum() (string, error)
}

// ChecksumReaderProxy is a proxy that calculates the MD5 checksum of data as it's read.
type ChecksumReaderProxy struct {
	reader    io.Reader
	checksum  hash.Hash
	bytesRead int64
	readErr   error
}

// NewMD5ReaderProxy creates a new instance of ChecksumReaderProxy.
func NewMD5ReaderProxy(reader io.Reader) *ChecksumReaderProxy {
	return &ChecksumReaderProxy{
		reader:   reader,
		checksum: md5.New(),
	}
}

// Read reads data from the underlying reader and feeds it to the checksum.
func (p *ChecksumReaderProxy) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		p.checksum.Write(buf[:n])
		p.bytesRead += int64(n)
	}
	if err != nil && err != io.EOF {
		p.readErr = err
	}
	return n, err
}

// BytesRead returns the number of bytes passed through the proxy.
func (p *ChecksumReaderProxy) BytesRead() int64 {
	return p.bytesRead
}

// GetChecksum returns the MD5 checksum of everything read so far as a hex string.
// It fails if the underlying reader returned an error other than io.EOF.
func (p *ChecksumReaderProxy) GetChecksum() (string, error) {
	if p.readErr != nil {
		return "", p.readErr
	}
	return hex.EncodeToString(p.checksum.Sum(nil)), nil
}

// BytesChecksum wraps in-memory content as a ChecksumProvider.
type BytesChecksum []byte

// GetChecksum returns the MD5 checksum of the content as a hex string.
func (b BytesChecksum) GetChecksum() (string, error) {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:]), nil
}

// FileChecksum streams the file at path through a ChecksumReaderProxy.
// A missing file is reported with exists=false and no error.
func FileChecksum(path string) (checksum string, exists bool, err error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer utils.CloseOrWarn(file)

	proxy := NewMD5ReaderProxy(file)
	if _, err := io.Copy(io.Discard, proxy); err != nil {
		return "", true, err
	}
	checksum, err = proxy.GetChecksum()
	return checksum, true, err
}

// SameContent reports whether the file at path already holds exactly content.
func SameContent(path string, content []byte) (bool, error) {
	existing, exists, err := FileChecksum(path)
	if err != nil || !exists {
		return false, err
	}
	wanted, _ := BytesChecksum(content).GetChecksum()
	return existing == wanted, nil
}
