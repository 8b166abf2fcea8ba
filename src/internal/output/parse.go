package output

import (
	"fmt"
	"io"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
)

var variablePatterns = map[string]string{
	TmplCIDR:      `[0-9./]+`,
	TmplAddress:   `[0-9.]+`,
	TmplPrefixLen: `[0-9]+`,
	TmplNetmask:   `[0-9.]+`,
}

// LineParser reads back lines produced by Render with the same line format.
type LineParser struct {
	format  string
	pattern *regexp.Regexp
	used    map[string]bool
}

// NewLineParser compiles lineFormat into a line matcher. The format must
// carry either {{cidr}}, or {{address}} together with {{prefix_len}} or
// {{netmask}}; each variable may appear once.
func NewLineParser(lineFormat string) (*LineParser, error) {
	if lineFormat == "" {
		lineFormat = DefaultLineFormat
	}
	format := strings.TrimSpace(lineFormat)

	used := make(map[string]bool)
	// Literal text is escaped first, so the tag delimiters are escaped as well.
	expr, err := fasttemplate.ExecuteFuncStringWithErr(regexp.QuoteMeta(format), `\{\{`, `\}\}`,
		func(w io.Writer, tag string) (int, error) {
			pattern, ok := variablePatterns[tag]
			if !ok {
				return 0, fmt.Errorf("unknown variable {{%s}}", tag)
			}
			if used[tag] {
				return 0, fmt.Errorf("variable {{%s}} is used more than once", tag)
			}
			used[tag] = true
			return fmt.Fprintf(w, `(?P<%s>%s)`, tag, pattern)
		})
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("line format %q cannot be read back", lineFormat), err)
	}

	if !used[TmplCIDR] {
		if !used[TmplAddress] {
			return nil, errors.NewConfigError(fmt.Sprintf("line format %q has neither {{%s}} nor {{%s}}", lineFormat, TmplCIDR, TmplAddress), nil)
		}
		if !used[TmplPrefixLen] && !used[TmplNetmask] {
			return nil, errors.NewConfigError(fmt.Sprintf("line format %q has {{%s}} but neither {{%s}} nor {{%s}}", lineFormat, TmplAddress, TmplPrefixLen, TmplNetmask), nil)
		}
	}

	pattern, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("line format %q cannot be read back", lineFormat), err)
	}
	return &LineParser{format: lineFormat, pattern: pattern, used: used}, nil
}

// Parse converts one rendered line back into a network. Surrounding
// whitespace is ignored.
func (p *LineParser) Parse(line string) (ranges.Network, error) {
	match := p.pattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return ranges.Network{}, errors.NewValidationError(fmt.Sprintf("line does not match format %q", p.format), nil)
	}
	value := func(name string) string {
		return match[p.pattern.SubexpIndex(name)]
	}

	if p.used[TmplCIDR] {
		return ranges.ParseNetwork(value(TmplCIDR))
	}

	ip, err := ranges.ParseIPv4(value(TmplAddress))
	if err != nil {
		return ranges.Network{}, err
	}

	var bits int
	if p.used[TmplPrefixLen] {
		if bits, err = strconv.Atoi(value(TmplPrefixLen)); err != nil {
			return ranges.Network{}, errors.NewValidationError(fmt.Sprintf("invalid prefix length %q", value(TmplPrefixLen)), err)
		}
	} else {
		mask, err := ranges.ParseIPv4(value(TmplNetmask))
		if err != nil {
			return ranges.Network{}, err
		}
		ones, size := net.IPMask(mask).Size()
		if size == 0 {
			return ranges.Network{}, errors.NewValidationError(fmt.Sprintf("netmask %s is not contiguous", value(TmplNetmask)), nil)
		}
		bits = ones
	}
	return ranges.NetworkFromIP(ip, bits)
}
