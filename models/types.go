package models

// Vote type constants
const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
	VoteNone VoteType = "none"
)

// VoteType is a visitor's preference for one restaurant.
// Only VoteUp and VoteDown are ever stored; VoteNone clears a vote.
type VoteType string

// VisitorID is the self-chosen display name identifying a visitor.
// It is compared by exact string equality and carries no authentication.
type VisitorID string

// Domain types

type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Cuisine     *string   `json:"cuisine"`
	IsDefault   bool      `json:"isDefault"`
	SuggestedBy VisitorID `json:"suggestedBy,omitempty"`
	SuggestedAt string    `json:"suggestedAt,omitempty"`
}

// Document is the single persisted aggregate.
// visitor -> restaurant id -> value
type Document struct {
	Restaurants []Restaurant                        `json:"restaurants"`
	Votes       map[VisitorID]map[string]VoteType `json:"votes"`
	Notes       map[VisitorID]map[string]string   `json:"notes"`
}

// Projection types

type NoteView struct {
	Author VisitorID `json:"author"`
	Text   string    `json:"text"`
}

type RestaurantView struct {
	Restaurant
	Upvotes    int         `json:"upvotes"`
	Downvotes  int         `json:"downvotes"`
	NetScore   int         `json:"netScore"`
	Upvoters   []VisitorID `json:"upvoters"`
	Downvoters []VisitorID `json:"downvoters"`
	Notes      []NoteView  `json:"notes"`
	UserVote   *VoteType   `json:"userVote"`
	UserNote   *string     `json:"userNote"`
}

// Request types

type SetUserRequest struct {
	Name string `json:"name"`
}

type VoteRequest struct {
	RestaurantID string   `json:"restaurantId"`
	VoteType     VoteType `json:"voteType"`
}

type NoteRequest struct {
	RestaurantID string `json:"restaurantId"`
	Note         string `json:"note"`
}

type SuggestRequest struct {
	Name    string  `json:"name"`
	Cuisine *string `json:"cuisine,omitempty"`
}

// Response types

type RestaurantsResponse struct {
	Restaurants []RestaurantView `json:"restaurants"`
	CurrentUser *VisitorID       `json:"currentUser"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SetUserResponse struct {
	Success bool      `json:"success"`
	Name    VisitorID `json:"name"`
}

type SuggestResponse struct {
	Success    bool       `json:"success"`
	Restaurant Restaurant `json:"restaurant"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
