package domain

import "time"

// Email is one ingested marketing email together with its classification.
// Brand, Industry, Subcategory, and CampaignType are filled by the
// classification pipeline; ClassifiedBy records which pass produced the
// industry label.
type Email struct {
	ID           string    `json:"id"`
	Sender       string    `json:"sender"`
	SenderEmail  string    `json:"sender_email"`
	Subject      string    `json:"subject"`
	Preview      string    `json:"preview"`
	HTMLBody     string    `json:"html_body,omitempty"`
	Brand        string    `json:"brand"`
	Industry     string    `json:"industry"`
	Subcategory  string    `json:"subcategory"`
	CampaignType string    `json:"campaign_type"`
	Confidence   float64   `json:"confidence"`
	ClassifiedBy string    `json:"classified_by"`
	ReceivedAt   time.Time `json:"received_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
