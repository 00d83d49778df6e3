package output

import "bookmart/internal/domain"

// CartRepository interface - Output port
// Defines what the application needs from the shopping cart store.
type CartRepository interface {
	// GetUserCart returns the user's open cart with its lines and books
	// preloaded. A user without a cart gets an empty cart, not an error.
	GetUserCart(userID string) (*domain.ShoppingCart, error)
}
