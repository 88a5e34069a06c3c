package services

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"debtledger/repository"
	"debtledger/utils"
)

// Redirect resolution failures. All of them degrade to the native UI.
var (
	ErrInvalidAddress = errors.New("invalid server address")
	ErrNoSeparator    = errors.New("response does not contain separator")
	ErrInvalidFormat  = errors.New("invalid response format")
)

// RedirectConfig carries the endpoint and the device/locale metadata sent
// as query parameters
type RedirectConfig struct {
	BaseURL     string
	Secret      string
	OS          string
	Language    string
	DeviceModel string
	Country     string
}

// Resolution is a resolved token/link pair
type Resolution struct {
	Token  string
	Link   string
	Cached bool
}

// RedirectService decides on startup whether the client shows the native
// app or a remote web page. A successfully resolved pair is cached in the
// store and reused forever; there is no retry and no expiry. Resolutions
// are serialized so concurrent first launches fetch at most once.
type RedirectService struct {
	mu     sync.Mutex
	store  repository.Store
	config RedirectConfig
	client *http.Client
}

// NewRedirectService creates a new redirect service
func NewRedirectService(store repository.Store, config RedirectConfig) *RedirectService {
	return &RedirectService{
		store:  store,
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// HasCachedPair reports whether both fields were resolved previously
func (s *RedirectService) HasCachedPair() bool {
	_, hasToken := s.store.Get(utils.TokenKey)
	_, hasLink := s.store.Get(utils.LinkKey)
	return hasToken && hasLink
}

// Resolve returns the cached pair when present, otherwise fetches the
// endpoint once. A failed fetch is returned as an error so the caller
// can fall back to the native surface.
func (s *RedirectService) Resolve() (*Resolution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.store.Get(utils.TokenKey); ok {
		if link, ok := s.store.Get(utils.LinkKey); ok {
			return &Resolution{Token: token, Link: link, Cached: true}, nil
		}
	}

	return s.fetch()
}

func (s *RedirectService) fetch() (*Resolution, error) {
	address, err := s.buildRequestAddress()
	if err != nil {
		return nil, ErrInvalidAddress
	}

	resp, err := s.client.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	responseString := string(body)
	if !strings.Contains(responseString, "#") {
		return nil, ErrNoSeparator
	}

	components := strings.Split(responseString, "#")
	if len(components) < 2 {
		return nil, ErrInvalidFormat
	}

	token := components[0]
	link := components[1]

	if err := s.store.Set(utils.TokenKey, token); err != nil {
		return nil, err
	}
	if err := s.store.Set(utils.LinkKey, link); err != nil {
		return nil, err
	}

	return &Resolution{Token: token, Link: link}, nil
}

func (s *RedirectService) buildRequestAddress() (string, error) {
	parsed, err := url.Parse(s.config.BaseURL)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("p", s.config.Secret)
	query.Set("os", s.config.OS)
	query.Set("lng", s.config.Language)
	query.Set("devicemodel", s.config.DeviceModel)
	query.Set("country", s.config.Country)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
