// Package idtoken verifies bearer ID tokens issued by the external identity
// provider. Tokens are RS256-signed; the provider publishes its signing
// certificates at a well-known URL, keyed by key id.
package idtoken

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/scholarstream/scholarstream-backend/internal/auth"
	"github.com/scholarstream/scholarstream-backend/internal/config"
	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

const defaultCertTTL = time.Hour

// Verifier validates ID tokens against the provider's published certificates.
// Certificates are cached until the max-age advertised by the provider.
type Verifier struct {
	audience   string
	issuer     string
	certsURL   string
	httpClient *http.Client
	log        *slog.Logger

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
}

// NewVerifier creates a Verifier from IdentityConfig.
func NewVerifier(cfg config.IdentityConfig, logger *slog.Logger) *Verifier {
	return &Verifier{
		audience:   cfg.ProjectID,
		issuer:     cfg.Issuer,
		certsURL:   cfg.CertsURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "idtoken"),
	}
}

// claims extends the registered claims with the identity fields the provider
// attaches to its ID tokens.
type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Verify checks the raw bearer token and returns the verified principal.
// A missing, malformed, expired, or mis-audienced token yields
// domain.ErrUnauthorized; verification internals are only logged, never
// returned to the caller. An unreachable certificate endpoint yields
// domain.ErrUpstreamUnavailable.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*auth.Principal, error) {
	if rawToken == "" {
		return nil, fmt.Errorf("idtoken: missing credential: %w", domain.ErrUnauthorized)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)

	var upstreamErr error
	token, err := parser.ParseWithClaims(rawToken, &claims{}, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("missing kid header")
		}
		key, err := v.keyFor(ctx, kid)
		if err != nil {
			if errors.Is(err, domain.ErrUpstreamUnavailable) {
				upstreamErr = err
			}
			return nil, err
		}
		return key, nil
	})
	if err != nil {
		if upstreamErr != nil {
			return nil, upstreamErr
		}
		v.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("idtoken: invalid credential: %w", domain.ErrUnauthorized)
	}

	c, ok := token.Claims.(*claims)
	if !ok || c.Email == "" {
		v.log.DebugContext(ctx, "token rejected", slog.String("error", "no email claim"))
		return nil, fmt.Errorf("idtoken: invalid credential: %w", domain.ErrUnauthorized)
	}

	return &auth.Principal{
		Email: strings.ToLower(c.Email),
		Name:  c.Name,
	}, nil
}

// keyFor returns the public key for the given key id, refreshing the
// certificate cache when stale or when the kid is unknown.
func (v *Verifier) keyFor(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	fresh := time.Now().Before(v.expiresAt)
	v.mu.RUnlock()

	if ok && fresh {
		return key, nil
	}

	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return key, nil
}

// refreshKeys fetches the certificate map from the provider and replaces the
// cache. The cache TTL comes from the response's Cache-Control max-age.
func (v *Verifier) refreshKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return fmt.Errorf("idtoken: create certs request: %w", err)
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "certs fetch failed", slog.String("error", err.Error()))
		return fmt.Errorf("idtoken: certs fetch: %w", domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "certs fetch failed", slog.Int("status", resp.StatusCode))
		return fmt.Errorf("idtoken: certs status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("idtoken: read certs body: %w", domain.ErrUpstreamUnavailable)
	}

	var certs map[string]string
	if err := json.Unmarshal(body, &certs); err != nil {
		return fmt.Errorf("idtoken: decode certs: %w", domain.ErrUpstreamUnavailable)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pemCert := range certs {
		key, err := parseCertKey(pemCert)
		if err != nil {
			v.log.WarnContext(ctx, "skipping unparsable cert", slog.String("kid", kid), slog.String("error", err.Error()))
			continue
		}
		keys[kid] = key
	}
	if len(keys) == 0 {
		return fmt.Errorf("idtoken: no usable certs: %w", domain.ErrUpstreamUnavailable)
	}

	ttl := cacheTTL(resp.Header.Get("Cache-Control"))

	v.mu.Lock()
	v.keys = keys
	v.expiresAt = time.Now().Add(ttl)
	v.mu.Unlock()

	v.log.DebugContext(ctx, "certs refreshed", slog.Int("keys", len(keys)), slog.Duration("ttl", ttl))
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := v.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return v.httpClient.Do(req)
}

func parseCertKey(pemCert string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemCert))
	if block == nil {
		return nil, fmt.Errorf("no PEM block")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}
	key, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("certificate key is not RSA")
	}
	return key, nil
}

// cacheTTL extracts max-age from a Cache-Control header, falling back to the
// default TTL when absent or malformed.
func cacheTTL(cacheControl string) time.Duration {
	for _, part := range strings.Split(cacheControl, ",") {
		part = strings.TrimSpace(part)
		if rest, ok := strings.CutPrefix(part, "max-age="); ok {
			if secs, err := strconv.Atoi(rest); err == nil && secs > 0 {
				return time.Duration(secs) * time.Second
			}
		}
	}
	return defaultCertTTL
}
