package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	Collaboration struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Link     string `json:"link"`
		Logo     string `json:"logo,omitempty"`
	}

	CollaborationInput struct {
		Name     string
		Category string
		Link     string
		Logo     *gateway.FileField
	}

	CollaborationService struct {
		gw *gateway.Client
	}
)

func (in CollaborationInput) fields() map[string]string {
	return map[string]string{
		"name":     in.Name,
		"category": in.Category,
		"link":     in.Link,
	}
}

func (in CollaborationInput) files() []gateway.FileField {
	if in.Logo == nil {
		return nil
	}

	logo := *in.Logo
	logo.Field = "logo"
	return []gateway.FileField{logo}
}

func (s *CollaborationService) All(ctx context.Context) ([]Collaboration, error) {
	var out []Collaboration
	return out, fetchList(ctx, s.gw, "/collaborations/", nil, &out)
}

func (s *CollaborationService) Create(ctx context.Context, in CollaborationInput) (Collaboration, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPost, "/collaborations/", in.fields(), in.files()...)
	if err := checkResp(code, body, err, "create collaboration"); err != nil {
		return Collaboration{}, err
	}

	var out Collaboration
	return out, decodeInto(body, &out)
}

func (s *CollaborationService) Update(ctx context.Context, id int64, in CollaborationInput) (Collaboration, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPut, fmt.Sprintf("/collaborations/%d/", id), in.fields(), in.files()...)
	if err := checkResp(code, body, err, "update collaboration"); err != nil {
		return Collaboration{}, err
	}

	var out Collaboration
	return out, decodeInto(body, &out)
}

func (s *CollaborationService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/collaborations/%d/", id))
	return checkResp(code, body, err, "delete collaboration")
}
