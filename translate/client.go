package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akarin-dev/fanyi/textutil"
)

// DefaultEndpoint is the general translation endpoint.
const DefaultEndpoint = "http://api.fanyi.baidu.com/api/trans/vip/translate"

// DefaultLang is the from/to value that lets the API detect the language.
const DefaultLang = "auto"

// MaxQueryBytes is the largest query accepted in a single request.
const MaxQueryBytes = 4000

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// Transport failure budgets for a single Translate call.
const (
	defaultMaxTimeouts = 2
	defaultMaxErrors   = 2
)

// Client calls the Baidu Fanyi API. It is safe for concurrent use.
type Client struct {
	appID       string
	appKey      string
	endpoint    string
	httpClient  *http.Client
	maxTimeouts int
	maxErrors   int
	salt        func() int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// WithEndpoint overrides the API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithRetry sets how many timeouts and how many other transport failures a
// single Translate call tolerates before giving up.
func WithRetry(maxTimeouts, maxErrors int) Option {
	return func(c *Client) {
		c.maxTimeouts = maxTimeouts
		c.maxErrors = maxErrors
	}
}

// WithSaltSource replaces the random salt source. Intended for tests that
// need a predictable signature.
func WithSaltSource(salt func() int) Option {
	return func(c *Client) { c.salt = salt }
}

// New creates a Client with the given credentials.
func New(appID, appKey string, opts ...Option) *Client {
	c := &Client{
		appID:       appID,
		appKey:      appKey,
		endpoint:    DefaultEndpoint,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		maxTimeouts: defaultMaxTimeouts,
		maxErrors:   defaultMaxErrors,
		salt:        newSalt,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request describes one translation call. Empty From/To default to
// language auto-detection.
type Request struct {
	Query string
	From  string
	To    string
}

// Row is one translated line: the source text and its translation.
type Row struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// Result is a decoded translation response.
type Result struct {
	From string
	To   string
	Rows []Row
}

// apiResponse is the wire shape of the API response. error_code is absent
// on success.
type apiResponse struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	TransResult []Row     `json:"trans_result"`
	ErrorCode   errorCode `json:"error_code"`
	ErrorMsg    string    `json:"error_msg"`
}

// errorCode tolerates both the string and numeric encodings the API has
// used for error_code.
type errorCode string

func (c *errorCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = errorCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = errorCode(n.String())
	return nil
}

// Translate sends a single translation request. Transport failures are
// retried with separate budgets for timeouts and other errors; API-level
// failures are returned immediately as a *Error.
func (c *Client) Translate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, &Error{Op: "translate", Err: ErrEmptyQuery}
	}
	if len(req.Query) > MaxQueryBytes {
		return nil, &Error{Op: "translate",
			Err: fmt.Errorf("%w: %d bytes", ErrQueryTooLong, len(req.Query))}
	}

	form := c.buildForm(req)
	slog.Debug("translate request",
		slog.String("from", form.Get("from")),
		slog.String("to", form.Get("to")),
		slog.Int("bytes", len(req.Query)))

	body, err := c.post(ctx, form)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &Error{Op: "translate", Err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
	}
	if code := string(resp.ErrorCode); code != "" && code != "0" {
		sentinel, retryable := apiError(code)
		return nil, &Error{Op: "translate", Code: code, Msg: resp.ErrorMsg,
			Err: sentinel, Retryable: retryable}
	}
	if resp.TransResult == nil {
		return nil, &Error{Op: "translate",
			Err: fmt.Errorf("%w: no trans_result", ErrMalformedResponse)}
	}
	return &Result{From: resp.From, To: resp.To, Rows: resp.TransResult}, nil
}

// TranslateText translates text of any length. Input over MaxQueryBytes is
// split on line boundaries into blocks under the limit; the per-block rows
// are concatenated in input order. From/To of the combined result come from
// the first block's response.
func (c *Client) TranslateText(ctx context.Context, text, from, to string) (*Result, error) {
	if len(text) <= MaxQueryBytes {
		return c.Translate(ctx, Request{Query: text, From: from, To: to})
	}

	blocks, err := textutil.SplitBlocks(strings.Split(text, "\n"), MaxQueryBytes)
	if err != nil {
		return nil, &Error{Op: "translate", Err: err}
	}
	combined := &Result{}
	for _, block := range blocks {
		res, err := c.Translate(ctx, Request{
			Query: strings.Join(block, "\n"),
			From:  from,
			To:    to,
		})
		if err != nil {
			return nil, err
		}
		if combined.From == "" {
			combined.From, combined.To = res.From, res.To
		}
		combined.Rows = append(combined.Rows, res.Rows...)
	}
	return combined, nil
}

// buildForm assembles the signed form payload.
func (c *Client) buildForm(req Request) url.Values {
	from, to := req.From, req.To
	if from == "" {
		from = DefaultLang
	}
	if to == "" {
		to = DefaultLang
	}
	salt := c.salt()
	return url.Values{
		"appid": {c.appID},
		"q":     {req.Query},
		"from":  {from},
		"to":    {to},
		"salt":  {strconv.Itoa(salt)},
		"sign":  {sign(c.appID, req.Query, salt, c.appKey)},
	}
}

// post sends the form, retrying transport failures until a budget runs out.
func (c *Client) post(ctx context.Context, form url.Values) ([]byte, error) {
	encoded := form.Encode()
	timeouts, failures := 0, 0
	for {
		body, err := c.postOnce(ctx, encoded)
		if err == nil {
			return body, nil
		}
		if ctx.Err() != nil {
			return nil, &Error{Op: "translate", Err: ctx.Err()}
		}
		if isTimeout(err) {
			timeouts++
			if timeouts >= c.maxTimeouts {
				return nil, &Error{Op: "translate", Retryable: true,
					Err: fmt.Errorf("gave up after %d timeouts: %w", timeouts, err)}
			}
		} else {
			failures++
			if failures >= c.maxErrors {
				return nil, &Error{Op: "translate",
					Err: fmt.Errorf("gave up after %d failures: %w", failures, err)}
			}
		}
		slog.Debug("translate retry",
			slog.Int("timeouts", timeouts),
			slog.Int("failures", failures),
			slog.String("error", err.Error()))
	}
}

// postOnce performs one HTTP round trip.
func (c *Client) postOnce(ctx context.Context, encoded string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// isTimeout distinguishes timeouts from other transport failures so the
// two retry budgets stay separate.
func isTimeout(err error) bool {
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
