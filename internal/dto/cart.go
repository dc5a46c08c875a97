package dto

// ── cart DTOs ──

// CartMutationRequest identifies the game to add or remove.
type CartMutationRequest struct {
	GameID string `json:"game_id" binding:"required,uuid"`
}

// CartCountResponse is returned by cart mutations.
type CartCountResponse struct {
	CartCount int `json:"cart_count"`
}

// CartResponse is the full cart view: games in cart order plus the
// aggregated duration preview.
type CartResponse struct {
	Games        []GameResponse `json:"games"`
	CartCount    int            `json:"cart_count"`
	TotalMinutes float64        `json:"total_minutes"`
}

// MaterializeCartRequest names the training session the cart becomes.
type MaterializeCartRequest struct {
	Name        string `json:"name"        binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// MaterializeCartResponse returns the id of the created session.
type MaterializeCartResponse struct {
	SessionID string `json:"session_id"`
}
