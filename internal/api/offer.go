package api

import (
	"context"
	"fmt"
	"net/http"
)

const offersPath = "/offers"

type Offer struct {
	ID          int      `json:"id"`
	Title       string   `json:"titre"`
	Description string   `json:"description"`
	Skills      []string `json:"competences"`
	Salary      float64  `json:"salaire"`
}

// OfferInput is the creation payload. A nil Salary is sent as null, the way
// an unparsable amount reaches the API.
type OfferInput struct {
	Title       string   `json:"titre"`
	Description string   `json:"description"`
	Skills      []string `json:"competences"`
	Salary      *float64 `json:"salaire"`
}

func (c *Client) ListOffers(ctx context.Context) ([]Offer, error) {
	const op = "list offers"

	envelope, err := c.do(ctx, op, http.MethodGet, offersPath, nil)
	if err != nil {
		return nil, err
	}

	var offers []Offer
	if err := decode(op, envelope, "offres", &offers); err != nil {
		return nil, err
	}

	if offers == nil {
		offers = []Offer{}
	}

	return offers, nil
}

func (c *Client) CreateOffer(ctx context.Context, input OfferInput) error {
	if input.Skills == nil {
		input.Skills = []string{}
	}

	_, err := c.do(ctx, "create offer", http.MethodPost, offersPath, input)
	return err
}

func (c *Client) DeleteOffer(ctx context.Context, id int) error {
	_, err := c.do(ctx, "delete offer", http.MethodDelete, fmt.Sprintf("%s/%d", offersPath, id), nil)
	return err
}

// ListApplicants returns the candidates who applied to the offer.
func (c *Client) ListApplicants(ctx context.Context, offerID int) ([]Candidate, error) {
	const op = "list applicants"

	envelope, err := c.do(ctx, op, http.MethodGet, fmt.Sprintf("%s/%d/candidates", offersPath, offerID), nil)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	if err := decode(op, envelope, "candidats", &candidates); err != nil {
		return nil, err
	}

	if candidates == nil {
		candidates = []Candidate{}
	}

	return candidates, nil
}
