package auction

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the auction feature. archiver may be nil.
func NewFeature(db *gorm.DB, logger *zap.Logger, archiver *Archiver) *Feature {
	svc := NewService(db, logger, archiver)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "auction"
}

// IsEnabled checks if the feature is enabled. Auctions are unusable without
// a database.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
