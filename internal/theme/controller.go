// Package theme owns the applied light/dark preference and its persistence.
package theme

import (
	"contactup/internal/models"

	"go.uber.org/zap"
)

// PreferenceKey is the settings key the preference is stored under.
const PreferenceKey = "theme"

// Store is the key-value persistence the controller reads and writes.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Controller holds the single applied theme.
type Controller struct {
	store      Store
	systemDark func() bool
	logger     *zap.Logger
	current    models.Theme
}

// NewController builds a controller. store and systemDark may be nil; both fall back to light.
func NewController(store Store, systemDark func() bool, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store:      store,
		systemDark: systemDark,
		logger:     logger,
		current:    models.ThemeLight,
	}
}

// Init resolves the preference: persisted value first, then the system signal.
func (c *Controller) Init() models.Theme {
	if t, ok := c.persisted(); ok {
		c.current = t
		return c.current
	}
	if c.systemDark != nil && c.systemDark() {
		c.current = models.ThemeDark
	} else {
		c.current = models.ThemeLight
	}
	c.logger.Debug("theme from system signal", zap.String("theme", string(c.current)))
	return c.current
}

// Toggle flips the applied theme one step and persists it.
func (c *Controller) Toggle() models.Theme {
	c.current = c.current.Toggle()
	if c.store != nil {
		if err := c.store.Set(PreferenceKey, string(c.current)); err != nil {
			c.logger.Warn("persisting theme preference failed", zap.Error(err))
		}
	}
	return c.current
}

func (c *Controller) Current() models.Theme {
	return c.current
}

func (c *Controller) persisted() (models.Theme, bool) {
	if c.store == nil {
		return "", false
	}
	raw, ok, err := c.store.Get(PreferenceKey)
	if err != nil {
		c.logger.Warn("reading theme preference failed", zap.Error(err))
		return "", false
	}
	if !ok {
		return "", false
	}
	t, err := models.ParseTheme(raw)
	if err != nil {
		c.logger.Warn("ignoring stored theme preference", zap.String("value", raw))
		return "", false
	}
	return t, true
}
