// Package api exposes one small client per content entity of the
// Blog-Admin backend. Every service is a thin, uniform CRUD surface
// over the authenticated gateway.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"

	"github.com/kirubel606/Blog-Admin/internal/errs"
	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

// Client bundles the per-entity services, all sharing one gateway.
type Client struct {
	News           *NewsService
	Events         *EventService
	Galleries      *GalleryService
	Categories     *CategoryService
	FAQs           *FAQService
	Quotes         *QuoteService
	Collaborations *CollaborationService
	RND            *RNDService
	Resources      *ResourceService
	Vacancies      *VacancyService
	Users          *UserService
	Settings       *SettingsService
}

func New(gw *gateway.Client) *Client {
	return &Client{
		News:           &NewsService{gw: gw},
		Events:         &EventService{gw: gw},
		Galleries:      &GalleryService{gw: gw},
		Categories:     &CategoryService{gw: gw},
		FAQs:           &FAQService{gw: gw},
		Quotes:         &QuoteService{gw: gw},
		Collaborations: &CollaborationService{gw: gw},
		RND:            &RNDService{gw: gw},
		Resources:      &ResourceService{gw: gw},
		Vacancies:      &VacancyService{gw: gw},
		Users:          &UserService{gw: gw},
		Settings:       &SettingsService{gw: gw},
	}
}

// checkResp folds transport errors and non-2xx responses into one
// error. Server errors keep their status code and the Django
// "detail" message when present.
func checkResp(code int, body []byte, err error, op string) error {
	if err != nil {
		return errors.Wrap(err, op)
	}

	if code < 200 || code > 299 {
		return errs.NewHTTPError(code, body, op+" failed")
	}

	return nil
}

// unwrapList digs the array payload out of whichever envelope the
// backend used: results.result, a bare array, or results.
func unwrapList(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] == '[' {
		if len(trimmed) == 0 {
			return json.RawMessage("[]")
		}
		return json.RawMessage(trimmed)
	}

	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil || len(envelope.Results) == 0 {
		return json.RawMessage("[]")
	}

	results := bytes.TrimSpace(envelope.Results)
	if len(results) > 0 && results[0] == '{' {
		var inner struct {
			Result json.RawMessage `json:"result"`
		}
		if err := json.Unmarshal(results, &inner); err == nil && len(inner.Result) > 0 {
			return inner.Result
		}
		return json.RawMessage("[]")
	}

	if len(results) == 0 {
		return json.RawMessage("[]")
	}

	return results
}

func fetchList(ctx context.Context, gw *gateway.Client, path string, query url.Values, out any) error {
	code, body, err := gw.Get(ctx, path, query)
	if err := checkResp(code, body, err, "list "+path); err != nil {
		return err
	}

	return json.Unmarshal(unwrapList(body), out)
}

func fetchOne(ctx context.Context, gw *gateway.Client, path string, out any) error {
	code, body, err := gw.Get(ctx, path, nil)
	if err := checkResp(code, body, err, "get "+path); err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}

func decodeInto(body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	return json.Unmarshal(body, out)
}
