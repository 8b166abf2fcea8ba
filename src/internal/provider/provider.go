package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/log"
	"github.com/maksimkurb/ip-ranges/src/internal/models"
	"github.com/maksimkurb/ip-ranges/src/internal/utils"
)

const (
	// DefaultURL is the AWS published IP range document.
	DefaultURL = "https://ip-ranges.amazonaws.com/ip-ranges.json"
	// DefaultTimeout bounds the whole request, body included.
	DefaultTimeout = 30 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Provider fetches a published list of range records.
type Provider interface {
	Fetch(ctx context.Context) ([]models.Record, error)
}

// HTTPProvider downloads the range document with a single GET request.
type HTTPProvider struct {
	url       string
	userAgent string
	client    *http.Client
}

// NewHTTPProvider creates a provider for url. A zero timeout means DefaultTimeout.
func NewHTTPProvider(url string, timeout time.Duration, userAgent string) *HTTPProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPProvider{
		url:       url,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// URL returns the document URL.
func (p *HTTPProvider) URL() string {
	return p.url
}

// Fetch downloads and decodes the document. Network failures, non-2xx
// statuses, malformed JSON and a missing "prefixes" key all fail the fetch.
func (p *HTTPProvider) Fetch(ctx context.Context) ([]models.Record, error) {
	log.Infof("Fetching provider ranges from %s", p.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, errors.NewFetchError(fmt.Sprintf("invalid provider URL %q", p.url), err)
	}
	req.Header.Set("Accept", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewFetchError(fmt.Sprintf("failed to download %s", p.url), err)
	}
	defer utils.CloseOrWarn(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewFetchError(fmt.Sprintf("failed to download %s: %s", p.url, resp.Status), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewFetchError(fmt.Sprintf("failed to read response from %s", p.url), err)
	}

	records, err := Decode(body)
	if err != nil {
		return nil, err
	}

	log.Infof("Fetched %s record(s) (%s)", humanize.Comma(int64(len(records))), humanize.Bytes(uint64(len(body))))
	return records, nil
}

// Decode parses a range document and returns its records.
func Decode(body []byte) ([]models.Record, error) {
	var doc models.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.NewFetchError("failed to parse provider document", err)
	}
	if doc.Prefixes == nil {
		return nil, errors.NewFetchError("provider document has no \"prefixes\" key", nil)
	}

	if doc.SyncToken != "" || doc.CreateDate != "" {
		log.Debugf("Provider document syncToken=%s createDate=%s", doc.SyncToken, doc.CreateDate)
	}
	return *doc.Prefixes, nil
}
