package api

import (
	"context"
	"net/http"
)

const applyPath = "/apply"

type ApplicationInput struct {
	CandidateID int `json:"candidat_id"`
	OfferID     int `json:"offre_id"`
}

// Apply submits the candidate to the offer. Applications are not listed back
// by the client, the API owns them.
func (c *Client) Apply(ctx context.Context, candidateID, offerID int) error {
	_, err := c.do(ctx, "apply", http.MethodPost, applyPath, ApplicationInput{
		CandidateID: candidateID,
		OfferID:     offerID,
	})
	return err
}
