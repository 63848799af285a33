package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	Quote struct {
		ID       int64  `json:"id"`
		Quote    string `json:"quote"`
		QuoteAm  string `json:"quote_am"`
		Author   string `json:"author"`
		AuthorAm string `json:"author_am"`
	}

	QuoteInput struct {
		Quote    string
		QuoteAm  string
		Author   string
		AuthorAm string
	}

	QuoteService struct {
		gw *gateway.Client
	}
)

func (in QuoteInput) fields() map[string]string {
	return map[string]string{
		"quote":     in.Quote,
		"quote_am":  in.QuoteAm,
		"author":    in.Author,
		"author_am": in.AuthorAm,
	}
}

func (s *QuoteService) All(ctx context.Context) ([]Quote, error) {
	var out []Quote
	return out, fetchList(ctx, s.gw, "/quotes/", nil, &out)
}

func (s *QuoteService) Create(ctx context.Context, in QuoteInput) (Quote, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPost, "/quotes/", in.fields())
	if err := checkResp(code, body, err, "create quote"); err != nil {
		return Quote{}, err
	}

	var out Quote
	return out, decodeInto(body, &out)
}

// Update is a partial update sent as form data, the shape the
// quotes endpoint expects.
func (s *QuoteService) Update(ctx context.Context, id int64, in QuoteInput) (Quote, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPatch, fmt.Sprintf("/quotes/%d/", id), in.fields())
	if err := checkResp(code, body, err, "update quote"); err != nil {
		return Quote{}, err
	}

	var out Quote
	return out, decodeInto(body, &out)
}

func (s *QuoteService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/quotes/%d/", id))
	return checkResp(code, body, err, "delete quote")
}
