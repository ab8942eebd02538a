package newsletter

import "github.com/lumiera/backend/internal/domain/notification"

// SubscribeRequest represents a newsletter subscribe/unsubscribe request
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email,max=200"`
}

// SubscriptionResponse represents the state of a newsletter subscription
type SubscriptionResponse struct {
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
}

// ToSubscriptionResponse converts a domain subscription to its API representation
func ToSubscriptionResponse(sub *notification.NewsletterSubscription) SubscriptionResponse {
	return SubscriptionResponse{
		Email:      sub.Email,
		Subscribed: sub.Subscribed,
	}
}
