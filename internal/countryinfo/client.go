// Package countryinfo is a client for the public CountryInfoService SOAP
// directory. It exposes the two operations the tool needs and translates
// transport and service failures into sentinel errors.
package countryinfo

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/ben1998pe/soap-country-info/internal/core/country"
)

const soapActionPrefix = "http://www.oorsprong.org/websamples.countryinfo/"

// Options configures the client transport.
type Options struct {
	// Endpoint is the SOAP service URL.
	Endpoint string
	// Timeout bounds each request attempt.
	Timeout time.Duration
	// Retries is the number of additional attempts on transient failures
	// (network errors, 429 and 5xx statuses). Faults and not-found answers
	// are never retried.
	Retries int
}

// Client issues SOAP calls to the country directory. It holds no state
// beyond the underlying HTTP client.
type Client struct {
	endpoint string
	http     *resty.Client
	logger   zerolog.Logger
}

// New creates a client for the given endpoint.
func New(opts Options, logger zerolog.Logger) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = "http://webservices.oorsprong.org/websamples.countryinfo/CountryInfoService.wso"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || transientStatus(r.StatusCode())
		})

	return &Client{
		endpoint: opts.Endpoint,
		http:     cli,
		logger:   logger,
	}
}

// CountryCodes returns every ISO code known to the directory, sorted
// ascending.
func (c *Client) CountryCodes(ctx context.Context) ([]string, error) {
	body, err := c.call(ctx, methodListCodes, "")
	if err != nil {
		return nil, err
	}

	var parsed listCodesResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode code list: %v", ErrServiceFault, err)
	}

	codes := make([]string, 0, len(parsed.Countries))
	for _, entry := range parsed.Countries {
		if entry.ISOCode != "" {
			codes = append(codes, entry.ISOCode)
		}
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: empty code list", ErrServiceFault)
	}
	sort.Strings(codes)

	c.logger.Debug().Int("count", len(codes)).Msg("fetched country codes")
	return codes, nil
}

// CountryInfo fetches the directory record for a two-letter ISO code.
func (c *Client) CountryInfo(ctx context.Context, code string) (country.Record, error) {
	code = country.NormalizeCode(code)
	if !country.ValidCode(code) {
		return country.Record{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	params := fmt.Sprintf("<sCountryISOCode>%s</sCountryISOCode>", code)
	body, err := c.call(ctx, methodFullCountryInfo, params)
	if err != nil {
		return country.Record{}, err
	}

	var parsed fullCountryInfoResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return country.Record{}, fmt.Errorf("%w: decode country info: %v", ErrServiceFault, err)
	}

	result := parsed.Result
	if result.Name == "" || strings.EqualFold(result.Name, notFoundMarker) {
		return country.Record{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}

	languages := make([]string, 0, len(result.Languages))
	for _, lang := range result.Languages {
		if lang.Name != "" {
			languages = append(languages, lang.Name)
		}
	}

	record := country.Record{
		ISOCode:       code,
		Name:          result.Name,
		Capital:       result.CapitalCity,
		CurrencyCode:  result.CurrencyCode,
		Languages:     languages,
		PhoneCode:     result.PhoneCode,
		ContinentCode: result.ContinentCode,
		FlagURL:       result.CountryFlag,
	}

	c.logger.Debug().Str("code", code).Str("name", record.Name).Msg("fetched country info")
	return record, nil
}

// call posts one SOAP request and returns the raw response body.
func (c *Client) call(ctx context.Context, method, params string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/xml; charset=utf-8").
		SetHeader("SOAPAction", soapActionPrefix+method).
		SetBody(fmt.Sprintf(requestEnvelope, method, params, method)).
		Post(c.endpoint)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Msg("soap call failed")
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, method, err)
	}

	if resp.StatusCode() != http.StatusOK {
		// Transient statuses reaching this point have exhausted the retry
		// budget, which makes the service unreachable rather than broken.
		if transientStatus(resp.StatusCode()) {
			return nil, fmt.Errorf("%w: %s: http %d", ErrUnavailable, method, resp.StatusCode())
		}
		return nil, fmt.Errorf("%w: %s: http %d", ErrServiceFault, method, resp.StatusCode())
	}

	return resp.Body(), nil
}

// transientStatus reports whether an HTTP status is worth retrying.
func transientStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
