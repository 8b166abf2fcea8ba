package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/hashing"
	"github.com/maksimkurb/ip-ranges/src/internal/log"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
)

const (
	DefaultServersFile  = "stingray-time.txt"
	DefaultCombinedFile = "stingray.txt"
	DefaultLineFormat   = "{{cidr}}"
)

// Line format variables.
const (
	TmplCIDR      = "cidr"
	TmplAddress   = "address"
	TmplPrefixLen = "prefix_len"
	TmplNetmask   = "netmask"
)

// Writer persists the two result lists.
type Writer interface {
	// CheckDir verifies the destination before any other work is done.
	CheckDir() error
	// Write stores the servers-only and the combined lists.
	Write(servers, combined []ranges.Network) error
}

// FileWriter writes each list to a fixed file name inside Dir.
type FileWriter struct {
	Dir          string
	ServersFile  string
	CombinedFile string
	LineFormat   string
}

// NewFileWriter creates a FileWriter, filling empty names and format with defaults.
func NewFileWriter(dir, serversFile, combinedFile, lineFormat string) *FileWriter {
	if serversFile == "" {
		serversFile = DefaultServersFile
	}
	if combinedFile == "" {
		combinedFile = DefaultCombinedFile
	}
	if lineFormat == "" {
		lineFormat = DefaultLineFormat
	}
	return &FileWriter{
		Dir:          dir,
		ServersFile:  serversFile,
		CombinedFile: combinedFile,
		LineFormat:   lineFormat,
	}
}

// CheckDir fails with a CONFIG_ERROR when Dir does not exist or is not a directory.
func (w *FileWriter) CheckDir() error {
	info, err := os.Stat(w.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewConfigError(fmt.Sprintf("output path %s does not exist", w.Dir), nil)
		}
		return errors.NewConfigError(fmt.Sprintf("cannot access output path %s", w.Dir), err)
	}
	if !info.IsDir() {
		return errors.NewConfigError(fmt.Sprintf("output path %s is not a directory", w.Dir), nil)
	}
	return nil
}

// ServersPath returns the full path of the servers-only file.
func (w *FileWriter) ServersPath() string {
	return filepath.Join(w.Dir, w.ServersFile)
}

// CombinedPath returns the full path of the servers + provider ranges file.
func (w *FileWriter) CombinedPath() string {
	return filepath.Join(w.Dir, w.CombinedFile)
}

// Write renders both lists and writes them, servers file first.
func (w *FileWriter) Write(servers, combined []ranges.Network) error {
	if err := w.CheckDir(); err != nil {
		return err
	}
	if err := w.writeList(w.ServersPath(), servers); err != nil {
		return err
	}
	return w.writeList(w.CombinedPath(), combined)
}

func (w *FileWriter) writeList(path string, networks []ranges.Network) error {
	content, err := Render(networks, w.LineFormat)
	if err != nil {
		return err
	}

	if same, err := hashing.SameContent(path, content); err != nil {
		log.Debugf("Failed to checksum %s, rewriting it: %v", path, err)
	} else if same {
		log.Infof("%s is not changed (%d network(s)), skipping write", path, len(networks))
		return nil
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.NewWriteError(fmt.Sprintf("failed to write %s", path), err)
	}
	log.Infof("Wrote %d network(s) to %s (%s)", len(networks), path, humanize.Bytes(uint64(len(content))))
	return nil
}

// Render formats networks one per line using lineFormat. Lines are joined with
// "\n" and there is no trailing newline.
func Render(networks []ranges.Network, lineFormat string) ([]byte, error) {
	if lineFormat == "" {
		lineFormat = DefaultLineFormat
	}
	tmpl, err := fasttemplate.NewTemplate(lineFormat, "{{", "}}")
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("invalid line format %q", lineFormat), err)
	}

	lines := make([]string, len(networks))
	for i, n := range networks {
		lines[i] = tmpl.ExecuteString(map[string]interface{}{
			TmplCIDR:      n.String(),
			TmplAddress:   n.IP().String(),
			TmplPrefixLen: strconv.Itoa(n.Bits()),
			TmplNetmask:   n.Netmask(),
		})
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// PrintWriter writes both lists to Out instead of files, each preceded by a
// "# <name>" header line.
type PrintWriter struct {
	Out        io.Writer
	LineFormat string
}

func NewPrintWriter(out io.Writer, lineFormat string) *PrintWriter {
	return &PrintWriter{Out: out, LineFormat: lineFormat}
}

// CheckDir always succeeds, nothing is written to disk.
func (w *PrintWriter) CheckDir() error {
	return nil
}

func (w *PrintWriter) Write(servers, combined []ranges.Network) error {
	if err := w.print("servers", servers); err != nil {
		return err
	}
	return w.print("combined", combined)
}

func (w *PrintWriter) print(name string, networks []ranges.Network) error {
	content, err := Render(networks, w.LineFormat)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w.Out, "# %s (%d)\n%s\n", name, len(networks), content); err != nil {
		return errors.NewWriteError(fmt.Sprintf("failed to print %s list", name), err)
	}
	return nil
}
