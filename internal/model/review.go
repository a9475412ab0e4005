package model

// Review source distinguishes moderated customer reviews from admin-authored
// testimonials, which share a collection upstream but follow different status
// vocabularies.
const (
	ReviewSourceUser  = "user"
	ReviewSourceAdmin = "admin"

	ReviewPending  = "Pending"
	ReviewApproved = "Approved"
	ReviewRejected = "Rejected"

	TestimonialActive   = "Active"
	TestimonialInactive = "Inactive"
)

type Review struct {
	Meta
	Source    string `json:"source"`
	Author    string `json:"author"`
	ProductID string `json:"product_id,omitempty"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Status    string `json:"status"`
}
