package handlers

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"restaurant-ordering-api/cart"
)

// Handler carries the dependencies every route handler needs. The cart
// storage and identifier store are injected here explicitly — there is
// no ambient cart singleton.
type Handler struct {
	DB          *gorm.DB
	Logger      *zap.Logger
	Carts       cart.Storage
	Identifiers cart.IdentifierStore
}

func New(db *gorm.DB, logger *zap.Logger, carts cart.Storage, identifiers cart.IdentifierStore) *Handler {
	return &Handler{
		DB:          db,
		Logger:      logger,
		Carts:       carts,
		Identifiers: identifiers,
	}
}
