package api

import (
	"context"
	"fmt"
	"net/http"
)

const candidatesPath = "/candidates"

type Candidate struct {
	ID     int    `json:"id"`
	Name   string `json:"nom"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
	Degree string `json:"diplome"`
}

type CandidateInput struct {
	Name   string `json:"nom"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
	Degree string `json:"diplome"`
}

func (c *Client) ListCandidates(ctx context.Context) ([]Candidate, error) {
	const op = "list candidates"

	envelope, err := c.do(ctx, op, http.MethodGet, candidatesPath, nil)
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

func (c *Client) CreateCandidate(ctx context.Context, input CandidateInput) error {
	_, err := c.do(ctx, "create candidate", http.MethodPost, candidatesPath, input)
	return err
}

func (c *Client) DeleteCandidate(ctx context.Context, id int) error {
	_, err := c.do(ctx, "delete candidate", http.MethodDelete, fmt.Sprintf("%s/%d", candidatesPath, id), nil)
	return err
}
