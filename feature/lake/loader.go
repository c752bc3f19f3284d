package lake

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the lake feature around an existing store.
func NewFeature(store *Store, logger *zap.Logger, allowReset bool) *Feature {
	return &Feature{handler: NewHandler(store, logger, allowReset)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "lake"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
