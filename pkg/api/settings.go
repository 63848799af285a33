package api

import (
	"context"
	"fmt"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	// Settings is the single site-wide configuration record.
	Settings struct {
		ID       int64  `json:"id"`
		Email    string `json:"email"`
		Line     string `json:"line"`
		Location string `json:"location"`
		MapLink  string `json:"map_link"`
	}

	SettingsService struct {
		gw *gateway.Client
	}
)

// Get returns the current settings record. The backend exposes it
// as a one-element list.
func (s *SettingsService) Get(ctx context.Context) (Settings, error) {
	var out []Settings
	if err := fetchList(ctx, s.gw, "/settings/", nil, &out); err != nil {
		return Settings{}, err
	}

	if len(out) == 0 {
		return Settings{}, nil
	}

	return out[0], nil
}

func (s *SettingsService) Update(ctx context.Context, in Settings) (Settings, error) {
	code, body, err := s.gw.Put(ctx, fmt.Sprintf("/settings/%d/", in.ID), in)
	if err := checkResp(code, body, err, "update settings"); err != nil {
		return Settings{}, err
	}

	var out Settings
	return out, decodeInto(body, &out)
}
