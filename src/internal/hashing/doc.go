// Package hashing provides MD5 checksum calculation utilities.
//
// The output writer uses it to detect that a list file already holds the
// content about to be written, so unchanged files are not rewritten.
//
// # Components
//
//   - ChecksumReaderProxy: Calculates MD5 while reading from an io.Reader
//   - BytesChecksum: Checksum of in-memory content
//   - FileChecksum / SameContent: Compare a file on disk with new content
//
// # Example Usage
//
//	same, err := hashing.SameContent("/srv/lists/stingray.txt", content)
//	if err == nil && same {
//	    return // nothing to do
//	}
package hashing
