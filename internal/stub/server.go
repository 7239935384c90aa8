// Package stub is a small in-memory contact backend serving the endpoints the
// client consumes. It exists for local runs and integration tests.
package stub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"contactup/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 16

var phoneRE = regexp.MustCompile(`^\d{9}$`)

// Store is an ordered, append-only contact collection.
type Store struct {
	mu       sync.Mutex
	contacts []models.Contact
}

func NewStore(seed ...models.Contact) *Store {
	return &Store{contacts: append([]models.Contact(nil), seed...)}
}

func (s *Store) Exists(phone, countryCode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.existsLocked(phone, countryCode)
}

func (s *Store) existsLocked(phone, countryCode string) bool {
	for _, c := range s.contacts {
		if c.Phone == phone && c.CountryCode == countryCode {
			return true
		}
	}
	return false
}

// Insert appends c unless its (phone, country code) is taken.
func (s *Store) Insert(c models.Contact) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.existsLocked(c.Phone, c.CountryCode) {
		return false
	}
	s.contacts = append(s.contacts, c)
	return true
}

func (s *Store) List() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Contact{}, s.contacts...)
}

// NewHandler wires the three endpoints onto a chi router.
func NewHandler(store *Store, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	r.Post("/check-contact", handleCheck(store))
	r.Post("/upload", handleUpload(store, logger))
	r.Get("/contacts", handleList(store))

	return r
}

func handleCheck(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Phone       string `json:"phone"`
			CountryCode string `json:"country_code"`
		}
		if err := decodeBody(w, r, &req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"exists": store.Exists(req.Phone, req.CountryCode)})
	}
}

func handleUpload(store *Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c models.Contact
		if err := decodeBody(w, r, &c); err != nil {
			httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" || c.CountryCode == "" || c.Phone == "" {
			httpError(w, http.StatusBadRequest, "name, phone and country_code are required")
			return
		}
		if !phoneRE.MatchString(c.Phone) {
			httpError(w, http.StatusBadRequest, "phone must be exactly 9 digits")
			return
		}
		if !store.Insert(c) {
			httpError(w, http.StatusConflict, "Contact already exists")
			return
		}
		logger.Info("contact stored", zap.String("country_code", c.CountryCode))
		writeJSON(w, http.StatusCreated, map[string]any{"message": "Contact added", "contact": c})
	}
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.List())
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", r.Header.Get("X-Request-ID")))
			next.ServeHTTP(w, r)
		})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}
