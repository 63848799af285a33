package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	Event struct {
		ID            int64  `json:"id"`
		Title         string `json:"title"`
		TitleAm       string `json:"title_am"`
		Description   string `json:"description"`
		DescriptionAm string `json:"description_am"`
		Category      int64  `json:"category"`
		Location      string `json:"location"`
		LocationAm    string `json:"location_am"`
		Venue         string `json:"venue"`
		VenueAm       string `json:"venue_am"`
		Type          string `json:"type"`
		Status        string `json:"status"`
		Timestamp     string `json:"timestamp"`
		IsLive        bool   `json:"is_live"`
		VideoLink     string `json:"video_link,omitempty"`
		Image         string `json:"image,omitempty"`
	}

	EventInput struct {
		Title         string
		TitleAm       string
		Description   string
		DescriptionAm string
		Category      string
		Location      string
		LocationAm    string
		Venue         string
		VenueAm       string
		Type          string
		Status        string
		Timestamp     string
		IsLive        bool
		VideoLink     string
		Image         *gateway.FileField
	}

	EventService struct {
		gw *gateway.Client
	}
)

func (in EventInput) fields() map[string]string {
	return map[string]string{
		"title":          in.Title,
		"title_am":       in.TitleAm,
		"description":    in.Description,
		"description_am": in.DescriptionAm,
		"category":       in.Category,
		"location":       in.Location,
		"location_am":    in.LocationAm,
		"venue":          in.Venue,
		"venue_am":       in.VenueAm,
		"type":           in.Type,
		"status":         in.Status,
		"timestamp":      in.Timestamp,
		"is_live":        strconv.FormatBool(in.IsLive),
		"video_link":     in.VideoLink,
	}
}

func (in EventInput) files() []gateway.FileField {
	if in.Image == nil {
		return nil
	}

	image := *in.Image
	image.Field = "image"
	return []gateway.FileField{image}
}

func (s *EventService) All(ctx context.Context) ([]Event, error) {
	var out []Event
	return out, fetchList(ctx, s.gw, "/events/", nil, &out)
}

func (s *EventService) Get(ctx context.Context, id int64) (Event, error) {
	var out Event
	return out, fetchOne(ctx, s.gw, fmt.Sprintf("/events/%d/", id), &out)
}

func (s *EventService) Create(ctx context.Context, in EventInput) (Event, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPost, "/events/", in.fields(), in.files()...)
	if err := checkResp(code, body, err, "create event"); err != nil {
		return Event{}, err
	}

	var out Event
	return out, decodeInto(body, &out)
}

func (s *EventService) Update(ctx context.Context, id int64, in EventInput) (Event, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPut, fmt.Sprintf("/events/%d/", id), in.fields(), in.files()...)
	if err := checkResp(code, body, err, "update event"); err != nil {
		return Event{}, err
	}

	var out Event
	return out, decodeInto(body, &out)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/events/%d/", id))
	return checkResp(code, body, err, "delete event")
}
