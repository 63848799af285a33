// Package session owns the authenticated user's identity and token
// pair, renews the access token ahead of expiry and tears the session
// down on renewal failure or explicit logout.
package session

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/mousybusiness/go-web/web"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kirubel606/Blog-Admin/pkg/creds"
	"github.com/kirubel606/Blog-Admin/pkg/keystore"
)

var (
	// ErrAuthentication means the login endpoint rejected the credentials.
	ErrAuthentication = errors.New("invalid credentials")

	// ErrDecode means an access token was received but its claims
	// could not be decoded.
	ErrDecode = errors.New("undecodable access token")
)

// State is the session lifecycle state.
type State int

const (
	LoggedOut State = iota
	Restoring
	LoggedIn
)

func (s State) String() string {
	switch s {
	case Restoring:
		return "restoring"
	case LoggedIn:
		return "logged in"
	default:
		return "logged out"
	}
}

type (
	Config struct {
		// BaseURL of the remote API, without trailing slash.
		BaseURL string
		// Store holds the token pair between runs.
		Store keystore.Store
		// HTTPTimeout bounds the login and refresh round-trips.
		HTTPTimeout time.Duration
		// RenewEarly is the margin before expiry at which renewal
		// runs, leaving room for the round-trip and clock skew.
		RenewEarly time.Duration
	}

	// Manager is the single owner of the token pair, the decoded
	// identity and the pending renewal timer. Construct one and
	// inject it; every reader goes through its accessors.
	Manager struct {
		config Config

		mu       sync.Mutex
		state    State
		creds    creds.Credentials
		identity creds.Identity

		// at most one renewal timer is pending; gen invalidates
		// fires scheduled for a session that no longer exists
		timer *time.Timer
		gen   uint64

		timeNow   func() time.Time
		afterFunc func(time.Duration, func()) *time.Timer
	}
)

func New(config Config) (*Manager, error) {
	if config.BaseURL == "" {
		return nil, errors.New("require BaseURL")
	}

	if config.Store == nil {
		return nil, errors.New("require Store")
	}

	if config.HTTPTimeout == 0 {
		config.HTTPTimeout = time.Second * 30
	}

	if config.RenewEarly == 0 {
		config.RenewEarly = time.Minute // allow 1 minute of buffer
	}

	return &Manager{
		config:    config,
		state:     Restoring,
		timeNow:   time.Now,
		afterFunc: time.AfterFunc,
	}, nil
}

// Restore resolves the initial Restoring state from durable storage
// without prompting for credentials. A stored, still-valid access
// token is adopted as is; an expired-but-decodable one triggers a
// single forced renewal; anything else leaves the session logged out.
func (m *Manager) Restore() {
	access, okAccess := m.config.Store.Get(keystore.KeyAccessToken)
	refresh, okRefresh := m.config.Store.Get(keystore.KeyRefreshToken)

	if !okAccess || !okRefresh {
		m.mu.Lock()
		m.state = LoggedOut
		m.mu.Unlock()
		return
	}

	identity, expiry, err := decodeAccessToken(creds.AccessToken(access))
	if err != nil {
		log.Debug("stored access token is unusable, clearing session")
		m.Logout()
		return
	}

	if expiry.After(m.timeNow()) {
		m.mu.Lock()
		m.adoptLocked(creds.Credentials{
			AccessToken:  creds.AccessToken(access),
			RefreshToken: creds.RefreshToken(refresh),
			Expiry:       expiry,
		}, identity)
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	if err := m.renew(creds.RefreshToken(refresh), gen); err != nil {
		log.Debug(errors.Wrap(err, "session restore failed, starting logged out"))
	}
}

// Login exchanges the credentials for a token pair, decodes the
// identity and starts the renewal cycle. A rejected login returns
// ErrAuthentication and leaves any prior session state untouched.
func (m *Manager) Login(username, password string) error {
	if username == "" || password == "" {
		return errors.Wrap(ErrAuthentication, "require username and password")
	}

	b, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}

	code, body, err := web.Post(m.config.BaseURL+loginPath, m.config.HTTPTimeout, b,
		web.KV{Key: "Content-Type", Value: "application/json"},
	)
	if err != nil {
		return errors.Wrap(err, "login request failed")
	}

	if code != http.StatusOK {
		return errors.Wrapf(ErrAuthentication, "code: %d", code)
	}

	var r loginResponse
	if err := json.Unmarshal(body, &r); err != nil || r.Access == "" || r.Refresh == "" {
		// never half-adopt a session from an unusable token pair
		m.Logout()
		return errors.Wrap(ErrDecode, "login response missing token pair")
	}

	identity, expiry, err := decodeAccessToken(creds.AccessToken(r.Access))
	if err != nil {
		m.Logout()
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.adoptLocked(creds.Credentials{
		AccessToken:  creds.AccessToken(r.Access),
		RefreshToken: creds.RefreshToken(r.Refresh),
		Expiry:       expiry,
	}, identity)

	if err := m.config.Store.Set(keystore.KeyAccessToken, r.Access); err != nil {
		log.Error(errors.Wrap(err, "failed to persist access token"))
	}
	if err := m.config.Store.Set(keystore.KeyRefreshToken, r.Refresh); err != nil {
		log.Error(errors.Wrap(err, "failed to persist refresh token"))
	}

	return nil
}

// Logout cancels the pending renewal, clears the in-memory session
// and removes both stored tokens. Calling it while already logged
// out is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logoutLocked()
}

// CurrentUser returns the identity decoded from the current access
// token, or false when nobody is signed in.
func (m *Manager) CurrentUser() (creds.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity, m.state == LoggedIn
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == LoggedIn
}

// AccessToken returns the live access token for the request gateway.
// Empty when logged out.
func (m *Manager) AccessToken() creds.AccessToken {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creds.AccessToken
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// renew exchanges the refresh token for a new access token. Any
// failure is fail-closed: the session ends immediately, nothing is
// retried and nothing propagates to UI callers. gen pins the renewal
// to the session it was started for, a logout or re-login in the
// meantime makes its outcome moot.
func (m *Manager) renew(refresh creds.RefreshToken, gen uint64) error {
	fail := func(cause error) error {
		m.mu.Lock()
		if gen == m.gen {
			m.logoutLocked()
		}
		m.mu.Unlock()
		return cause
	}

	b, err := json.Marshal(refreshRequest{Refresh: string(refresh)})
	if err != nil {
		return fail(err)
	}

	code, body, err := web.Post(m.config.BaseURL+refreshPath, m.config.HTTPTimeout, b,
		web.KV{Key: "Content-Type", Value: "application/json"},
	)
	if err != nil {
		return fail(errors.Wrap(err, "token refresh request failed"))
	}

	if code != http.StatusOK {
		return fail(errors.Errorf("token refresh rejected, code: %d, error: %v", code, string(body)))
	}

	var r refreshResponse
	if err := json.Unmarshal(body, &r); err != nil || r.Access == "" {
		return fail(errors.New("token refresh response missing access token"))
	}

	identity, expiry, err := decodeAccessToken(creds.AccessToken(r.Access))
	if err != nil {
		return fail(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		// session was replaced while the round-trip was in flight
		return nil
	}

	m.adoptLocked(creds.Credentials{
		AccessToken:  creds.AccessToken(r.Access),
		RefreshToken: refresh,
		Expiry:       expiry,
	}, identity)

	if err := m.config.Store.Set(keystore.KeyAccessToken, r.Access); err != nil {
		log.Error(errors.Wrap(err, "failed to persist renewed access token"))
	}

	return nil
}

// adoptLocked installs a token pair and its identity, then schedules
// the next renewal. Caller holds m.mu.
func (m *Manager) adoptLocked(c creds.Credentials, identity creds.Identity) {
	m.creds = c
	m.identity = identity
	m.state = LoggedIn
	m.scheduleRenewalLocked(c.Expiry)
}

// scheduleRenewalLocked arms the one-shot renewal timer, cancelling
// any previous one. A non-positive delay fires immediately so a
// near-expiry or skewed token still goes through the renewal path.
func (m *Manager) scheduleRenewalLocked(expiry time.Time) {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}

	m.gen++
	gen := m.gen
	refresh := m.creds.RefreshToken

	delay := expiry.Sub(m.timeNow()) - m.config.RenewEarly
	if delay < 0 {
		delay = 0
	}

	log.Debugf("renewal scheduled in %v", delay)
	m.timer = m.afterFunc(delay, func() {
		m.mu.Lock()
		if gen != m.gen || m.state != LoggedIn {
			m.mu.Unlock()
			return
		}
		m.mu.Unlock()

		if err := m.renew(refresh, gen); err != nil {
			log.Error(errors.Wrap(err, "token renewal failed, signing out"))
		}
	})
}

// logoutLocked stops the timer before clearing credentials so a
// stale fire can never use a revoked refresh token. Caller holds m.mu.
func (m *Manager) logoutLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}

	m.gen++
	m.creds = creds.Credentials{}
	m.identity = creds.Identity{}
	m.state = LoggedOut

	if err := m.config.Store.Delete(keystore.KeyAccessToken, keystore.KeyRefreshToken); err != nil {
		log.Error(errors.Wrap(err, "failed to clear stored tokens"))
	}
}
