package model

// Cart is the ordered set of game ids a visitor has collected before
// materializing a training session. It is a plain value: the caller loads
// it from the session store, mutates it and persists it back, which keeps
// the cart logic store-agnostic.
type Cart struct {
	GameIDs []string
}

// NewCart builds a cart from a stored id list.
func NewCart(ids []string) Cart {
	return Cart{GameIDs: ids}
}

// Add appends id if absent and returns the new size. Adding an id that is
// already present is a no-op.
func (c *Cart) Add(id string) int {
	if !c.Contains(id) {
		c.GameIDs = append(c.GameIDs, id)
	}
	return len(c.GameIDs)
}

// Remove deletes id if present and returns the new size. Removing an id
// that is absent is a no-op.
func (c *Cart) Remove(id string) int {
	for i, existing := range c.GameIDs {
		if existing == id {
			c.GameIDs = append(c.GameIDs[:i], c.GameIDs[i+1:]...)
			break
		}
	}
	return len(c.GameIDs)
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.GameIDs = nil
}

// Contains reports whether id is in the cart.
func (c *Cart) Contains(id string) bool {
	for _, existing := range c.GameIDs {
		if existing == id {
			return true
		}
	}
	return false
}

// Size returns the number of games in the cart.
func (c *Cart) Size() int {
	return len(c.GameIDs)
}
