package store

import (
	"context"
	"fmt"
	"log"
	"sync"

	"fortumars-mart/models"
)

const (
	noticeSignInRequired = "Please sign in to complete your purchase."
)

// Controller owns every piece of mutable application state: the catalog
// snapshot, filter criteria, cart ledger, identity, and the active view.
// Collaborators never mutate this state directly; they only return values
// for the controller to adopt. A single mutex serializes all actions, which
// is the event-loop discipline of the storefront expressed in Go.
type Controller struct {
	mu sync.Mutex

	catalog  CatalogStore
	session  SessionStore
	device   DeviceStore
	notifier Notifier

	systemDark bool

	view     View
	loading  bool
	busy     bool
	criteria Criteria
	products []models.Product
	source   CatalogSource
	selected *models.Product
	cart     CartLedger
	cartOpen bool
	user     *models.User
	darkMode bool
	notice   string

	// fetchSeq tags each catalog fetch; a resolution carrying a stale tag is
	// discarded so it cannot overwrite state adopted from a newer fetch.
	fetchSeq uint64
}

func NewController(catalog CatalogStore, session SessionStore, device DeviceStore, notifier Notifier, systemDark bool) *Controller {
	return &Controller{
		catalog:    catalog,
		session:    session,
		device:     device,
		notifier:   notifier,
		systemDark: systemDark,
		view:       ViewHome,
		loading:    true,
		criteria:   DefaultCriteria(),
	}
}

// Init runs the startup sequence: resolve the dark-mode preference, fetch
// the catalog, then reconcile any cached identity. The controller lands on
// Home regardless of how the identity load goes.
func (c *Controller) Init(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = true
	c.darkMode = c.device.DarkMode(c.systemDark)

	c.refreshCatalogLocked(ctx)

	if cached := c.session.LoadCached(); cached != nil {
		synced := c.session.Reconcile(ctx, *cached)
		c.user = &synced
		c.session.Persist(synced)
	}

	c.loading = false
	c.view = ViewHome
}

// refreshCatalogLocked re-resolves the catalog while temporarily releasing
// the lock for the remote call. Must be called with the lock held. If a
// newer fetch was issued while this one was in flight, its result is
// dropped.
func (c *Controller) refreshCatalogLocked(ctx context.Context) {
	c.fetchSeq++
	seq := c.fetchSeq

	c.mu.Unlock()
	products, source := c.catalog.Resolve(ctx)
	c.mu.Lock()

	if seq != c.fetchSeq {
		log.Printf("Discarding stale catalog fetch %d (current %d)", seq, c.fetchSeq)
		return
	}
	c.products = products
	c.source = source
}

// VisibleProducts applies the current filter criteria to the catalog.
func (c *Controller) VisibleProducts() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return FilterProducts(c.products, c.criteria)
}

func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Query = query
}

// SelectCategory switches departments: criteria reset to the chosen category
// with an empty query, any product selection is cleared, and the view
// returns to Home. Unknown categories are rejected.
func (c *Controller) SelectCategory(category string) bool {
	if !models.IsValidCategory(category) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = Criteria{Query: "", Category: category}
	c.selected = nil
	c.view = ViewHome
	return true
}

// GoHome is the logo/home navigation: criteria back to defaults, selection
// cleared, view Home.
func (c *Controller) GoHome() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = DefaultCriteria()
	c.selected = nil
	c.view = ViewHome
}

// SelectProduct opens the detail view for the product with the given id.
// The transition is guarded: without a matching product in the current
// catalog there is no selection and no view change.
func (c *Controller) SelectProduct(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			selected := p
			c.selected = &selected
			c.view = ViewProductDetail
			return true
		}
	}
	return false
}

func (c *Controller) ShowLogin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewLogin
}

func (c *Controller) ShowAdmin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewAdmin
}

func (c *Controller) ShowProfile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewProfile
}

func (c *Controller) OpenCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cartOpen = true
}

func (c *Controller) CloseCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cartOpen = false
}

// AddToCart adds the catalog product with the given id to the ledger.
// Returns false when the id is not in the current catalog.
func (c *Controller) AddToCart(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			c.cart.Add(p)
			return true
		}
	}
	return false
}

func (c *Controller) AdjustCartQuantity(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.AdjustQuantity(id, delta)
}

func (c *Controller) RemoveFromCart(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Remove(id)
}

// Checkout completes the purchase. Without a signed-in identity it moves to
// the Login view, closes the cart panel, and keeps the cart contents for
// after sign-in. With an identity it clears the ledger, closes the panel,
// and sends a best-effort confirmation email.
func (c *Controller) Checkout(ctx context.Context) (bool, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		c.view = ViewLogin
		c.cartOpen = false
		c.notice = noticeSignInRequired
		return false, c.notice
	}

	lines := c.cart.Lines()
	total := c.cart.Total()
	user := *c.user

	c.cart.Clear()
	c.cartOpen = false
	c.notice = fmt.Sprintf("Success! Thanks, %s. Your order has been placed.", user.Name)

	if c.notifier != nil && len(lines) > 0 {
		if err := c.notifier.SendOrderConfirmation(user, lines, total); err != nil {
			log.Printf("Order confirmation email failed: %v", err)
		}
	}
	return true, c.notice
}

// Login adopts the given identity after reconciling it with the remote
// profile store, then persists the result. Landing view is Profile when the
// user came from the Login or Profile screens, Home otherwise.
func (c *Controller) Login(ctx context.Context, user models.User) models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	synced := c.session.Reconcile(ctx, user)
	c.user = &synced
	c.session.Persist(synced)

	if c.view == ViewLogin || c.view == ViewProfile {
		c.view = ViewProfile
	} else {
		c.view = ViewHome
	}
	return synced
}

// UpdateProfile adopts the edited identity and persists it.
func (c *Controller) UpdateProfile(ctx context.Context, user models.User) models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = &user
	c.session.Persist(user)
	return user
}

// Logout clears the identity everywhere and returns to Home unconditionally.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.session.Clear()
	c.view = ViewHome
}

// AddProduct runs the administrator add-flow: busy flag on, write through
// the catalog store, then an unconditional re-fetch so the visible catalog
// reflects the remote truth. On failure the catalog is left untouched and
// the error is returned for the caller to surface.
func (c *Controller) AddProduct(ctx context.Context, p models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.busy = true
	defer func() { c.busy = false }()

	if err := c.catalog.Add(ctx, p); err != nil {
		return err
	}

	c.refreshCatalogLocked(ctx)
	return nil
}

// ToggleDarkMode flips and persists the preference, returning the new value.
func (c *Controller) ToggleDarkMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.darkMode = !c.darkMode
	c.device.SetDarkMode(c.darkMode)
	return c.darkMode
}

func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

func (c *Controller) Catalog() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Controller) CartLines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Lines()
}

// AppState is a point-in-time snapshot of everything a renderer needs.
type AppState struct {
	View          View              `json:"view"`
	Loading       bool              `json:"loading"`
	Busy          bool              `json:"busy"`
	DarkMode      bool              `json:"dark_mode"`
	Criteria      Criteria          `json:"criteria"`
	CatalogSource CatalogSource     `json:"catalog_source"`
	Visible       []models.Product  `json:"visible"`
	Selected      *models.Product   `json:"selected,omitempty"`
	CartLines     []models.CartLine `json:"cart_lines"`
	CartTotal     float64           `json:"cart_total"`
	CartCount     int               `json:"cart_count"`
	CartOpen      bool              `json:"cart_open"`
	User          *models.User      `json:"user,omitempty"`
	Notice        string            `json:"notice,omitempty"`
}

func (c *Controller) Snapshot() AppState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := AppState{
		View:          c.view,
		Loading:       c.loading,
		Busy:          c.busy,
		DarkMode:      c.darkMode,
		Criteria:      c.criteria,
		CatalogSource: c.source,
		Visible:       FilterProducts(c.products, c.criteria),
		CartLines:     c.cart.Lines(),
		CartTotal:     c.cart.Total(),
		CartCount:     c.cart.Count(),
		CartOpen:      c.cartOpen,
		Notice:        c.notice,
	}
	if c.selected != nil {
		selected := *c.selected
		state.Selected = &selected
	}
	if c.user != nil {
		user := *c.user
		state.User = &user
	}
	return state
}
