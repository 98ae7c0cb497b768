package store

import (
	"context"

	"fortumars-mart/models"
)

// View is the active top-level screen.
type View string

const (
	ViewHome          View = "HOME"
	ViewLogin         View = "LOGIN"
	ViewAdmin         View = "ADMIN"
	ViewProductDetail View = "PRODUCT_DETAIL"
	ViewProfile       View = "PROFILE"
)

// CatalogSource tags where a resolved catalog came from, so tests and
// operators can tell the degraded path from the healthy one even though the
// storefront renders both identically.
type CatalogSource string

const (
	// SourceRemote: the remote store answered with a non-empty catalog.
	SourceRemote CatalogSource = "remote"
	// SourceSeeded: the remote store was reachable but empty; it was seeded
	// from the bundled catalog, which is what this call returned.
	SourceSeeded CatalogSource = "seeded"
	// SourceFallback: the remote store was unreachable; the bundled catalog
	// was substituted.
	SourceFallback CatalogSource = "fallback"
)

// CatalogStore is the catalog collaborator. Resolve never fails: any remote
// error degrades to the bundled catalog. After a successful Add the caller
// must re-resolve to observe the change.
type CatalogStore interface {
	Resolve(ctx context.Context) ([]models.Product, CatalogSource)
	Add(ctx context.Context, p models.Product) error
}

// SessionStore is the identity collaborator. Reconcile looks up the remote
// profile keyed by lowercased email, returning the remote record when found,
// creating one from the given identity otherwise; it degrades silently to
// the given identity on any failure. Persist writes local and, best-effort,
// remote.
type SessionStore interface {
	LoadCached() *models.User
	Reconcile(ctx context.Context, user models.User) models.User
	Persist(user models.User)
	Clear()
}

// DeviceStore holds per-device preferences. DarkMode returns the stored
// preference when one exists, systemDefault otherwise.
type DeviceStore interface {
	DarkMode(systemDefault bool) bool
	SetDarkMode(on bool)
}

// Notifier delivers the checkout confirmation. Failures are log-only.
type Notifier interface {
	SendOrderConfirmation(user models.User, lines []models.CartLine, total float64) error
}
