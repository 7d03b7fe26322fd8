package resultpanel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"

	"github.com/gutendex/explorer/pkg/logger"
)

// Texts written to the results region.
const (
	LoadingText = "Loading..."
	ErrorText   = "There was an error. Please check the input and the docs below."
)

// Target is the results region a panel writes to.
type Target interface {
	SetText(ctx context.Context, text string) error
}

// TargetFunc adapts a function to Target.
type TargetFunc func(ctx context.Context, text string) error

func (f TargetFunc) SetText(ctx context.Context, text string) error { return f(ctx, text) }

// DefaultAllowedHosts is the allowlist of a panel created without WithAllowedHosts.
var DefaultAllowedHosts = []string{"gutendex.com"}

// AnyHost in an allowlist lets the panel fetch from every host.
const AnyHost = "*"

// Config holds panel settings read from the environment.
type Config struct {
	// AllowedHosts restricts the hosts a panel may fetch from. AnyHost lifts the
	// restriction; empty keeps DefaultAllowedHosts.
	AllowedHosts []string `env:"RESULTS_ALLOWED_HOSTS" envSeparator:"," envDefault:"gutendex.com"`
	// BaseURL resolves relative input such as "/books/?ids=84". Empty rejects it.
	BaseURL string `env:"RESULTS_BASE_URL" envDefault:"https://gutendex.com/"`
}

// Option configures a Panel.
type Option func(*Panel)

// WithHTTPClient makes the panel issue requests through hc. Nil is ignored. The
// client's transport replaces the panel's, including its private address guard.
func WithHTTPClient(hc *http.Client) Option {
	return func(p *Panel) {
		if hc != nil {
			p.client = newClient(resty.NewWithClient(hc))
		}
	}
}

// WithAllowedHosts replaces the host allowlist. Blank entries are dropped and an
// empty list keeps the current one.
func WithAllowedHosts(hosts ...string) Option {
	return func(p *Panel) {
		allowed := make(map[string]struct{}, len(hosts))
		for _, h := range hosts {
			if h = strings.TrimSpace(strings.ToLower(h)); h != "" {
				allowed[h] = struct{}{}
			}
		}
		if len(allowed) > 0 {
			p.allowed = allowed
		}
	}
}

// WithBaseURL resolves relative input against base. An unparsable or relative
// base is ignored.
func WithBaseURL(base string) Option {
	return func(p *Panel) {
		u, err := url.Parse(strings.TrimSpace(base))
		if err == nil && u.IsAbs() && u.Host != "" {
			p.base = u
		}
	}
}

// WithLogger sets the logger for fetch failures. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Panel) {
		if l != nil {
			p.logger = l
		}
	}
}

// Panel fetches a URL and renders its JSON body, or a fixed error message, into a
// Target.
type Panel struct {
	client   *resty.Client
	validate *validator.Validate
	allowed  map[string]struct{}
	base     *url.URL
	logger   *slog.Logger
}

// New creates a Panel limited to DefaultAllowedHosts. Requests are made once: no
// retries and no client timeout.
func New(opts ...Option) *Panel {
	p := &Panel{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   slog.New(slog.DiscardHandler),
	}
	p.client = newClient(resty.NewWithClient(&http.Client{Transport: p.transport()}))
	WithAllowedHosts(DefaultAllowedHosts...)(p)
	for _, opt := range opts {
		opt(p)
	}
	p.client.SetLogger(restyLogger{log: p.logger})
	return p
}

// NewFromConfig creates a Panel from cfg. Options are applied after cfg.
func NewFromConfig(cfg Config, opts ...Option) *Panel {
	return New(append([]Option{WithAllowedHosts(cfg.AllowedHosts...), WithBaseURL(cfg.BaseURL)}, opts...)...)
}

func newClient(c *resty.Client) *resty.Client {
	return c.SetRetryCount(0).SetHeader("Accept", "application/json")
}

// Submit writes LoadingText to target before returning, then fetches rawURL in
// the background and writes the formatted JSON or ErrorText. Submissions are
// independent: when two race on one target, the last one to finish wins.
func (p *Panel) Submit(ctx context.Context, rawURL string, target Target) *Submission {
	s := newSubmission()

	if err := target.SetText(ctx, LoadingText); err != nil {
		p.logger.WarnContext(ctx, "failed to show loading indicator", logger.URL(rawURL), logger.Error(err))
	}

	go func() {
		defer close(s.done)

		text, err := p.Fetch(ctx, rawURL)
		if err != nil {
			p.logger.InfoContext(ctx, "results fetch failed", logger.URL(rawURL), logger.Error(err))
			text = ErrorText
		}
		s.text = text

		if err := target.SetText(ctx, text); err != nil {
			p.logger.WarnContext(ctx, "failed to show results", logger.URL(rawURL), logger.Error(err))
			s.err = err
		}
	}()

	return s
}

// Fetch issues a single GET to rawURL and returns the body as indented JSON.
// Relative input is resolved against the base URL. The status code is not
// checked: any response with a JSON body is rendered.
func (p *Panel) Fetch(ctx context.Context, rawURL string) (string, error) {
	target, err := p.resolve(rawURL)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", errors.Join(ErrInvalidURL, err)
	}
	if !p.hostAllowed(u.Hostname()) {
		return "", fmt.Errorf("%w: %s", ErrHostNotAllowed, u.Hostname())
	}

	resp, err := p.client.R().SetContext(ctx).Get(target)
	if err != nil {
		return "", errors.Join(ErrFetch, err)
	}

	return Format(resp.Body())
}

// resolve validates rawURL, making it absolute against the base URL first when
// it is relative.
func (p *Panel) resolve(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := p.validate.Var(rawURL, "required"); err != nil {
		return "", errors.Join(ErrInvalidURL, err)
	}

	if p.base != nil {
		ref, err := url.Parse(rawURL)
		if err != nil {
			return "", errors.Join(ErrInvalidURL, err)
		}
		if !ref.IsAbs() {
			rawURL = p.base.ResolveReference(ref).String()
		}
	}

	if err := p.validate.Var(rawURL, "url"); err != nil {
		return "", errors.Join(ErrInvalidURL, err)
	}
	return rawURL, nil
}

// transport dials through guardAddress.
func (p *Panel) transport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			return p.guardAddress(address)
		},
	}
	tr := http.DefaultTransport.(*http.Transport).Clone()
	// Dial targets directly so the guard sees their addresses.
	tr.Proxy = nil
	tr.DialContext = dialer.DialContext
	return tr
}

// guardAddress refuses loopback, private, link-local and other non-public
// addresses when the allowlist contains AnyHost. Explicitly listed hosts are
// dialed wherever they resolve.
func (p *Panel) guardAddress(address string) error {
	if _, ok := p.allowed[AnyHost]; !ok {
		return nil
	}
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		host = address
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrHostNotAllowed, host)
	}
	ip = ip.Unmap()
	if !ip.IsGlobalUnicast() || ip.IsPrivate() {
		return fmt.Errorf("%w: %s is not a public address", ErrHostNotAllowed, ip)
	}
	return nil
}

func (p *Panel) hostAllowed(host string) bool {
	if _, ok := p.allowed[AnyHost]; ok {
		return true
	}
	_, ok := p.allowed[strings.ToLower(host)]
	return ok
}

// restyLogger routes resty's internal messages to slog at debug level.
type restyLogger struct {
	log *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Debug("resty error", slog.String("detail", fmt.Sprintf(format, v...)))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Debug("resty warning", slog.String("detail", fmt.Sprintf(format, v...)))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug("resty debug", slog.String("detail", fmt.Sprintf(format, v...)))
}
