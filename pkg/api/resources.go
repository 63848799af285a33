package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	Resource struct {
		ID             int64  `json:"id"`
		Title          string `json:"title"`
		Author         string `json:"author"`
		Publisher      string `json:"plublisher"`
		Category       int64  `json:"category"`
		Classification string `json:"classification"`
		Link           string `json:"link"`
		Tags           string `json:"tags"`
		PublishedAt    string `json:"published_at"`
	}

	// ResourceInput mirrors the resource form. The backend spells
	// the publisher field "plublisher"; keep its spelling on the wire.
	ResourceInput struct {
		Title          string
		Author         string
		Publisher      string
		Category       string
		Classification string
		Link           string
		Tags           string
		PublishedAt    string
		File           *gateway.FileField
	}

	ResourceService struct {
		gw *gateway.Client
	}
)

func (in ResourceInput) fields() map[string]string {
	return map[string]string{
		"title":          in.Title,
		"author":         in.Author,
		"plublisher":     in.Publisher,
		"category":       in.Category,
		"classification": in.Classification,
		"link":           in.Link,
		"tags":           in.Tags,
		"published_at":   in.PublishedAt,
	}
}

func (in ResourceInput) files() []gateway.FileField {
	if in.File == nil {
		return nil
	}

	file := *in.File
	file.Field = "file"
	return []gateway.FileField{file}
}

func (s *ResourceService) All(ctx context.Context) ([]Resource, error) {
	var out []Resource
	return out, fetchList(ctx, s.gw, "/resources/", nil, &out)
}

func (s *ResourceService) Get(ctx context.Context, id int64) (Resource, error) {
	var out Resource
	return out, fetchOne(ctx, s.gw, fmt.Sprintf("/resources/%d/", id), &out)
}

func (s *ResourceService) Create(ctx context.Context, in ResourceInput) (Resource, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPost, "/resources/", in.fields(), in.files()...)
	if err := checkResp(code, body, err, "create resource"); err != nil {
		return Resource{}, err
	}

	var out Resource
	return out, decodeInto(body, &out)
}

func (s *ResourceService) Update(ctx context.Context, id int64, in ResourceInput) (Resource, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPut, fmt.Sprintf("/resources/%d/", id), in.fields(), in.files()...)
	if err := checkResp(code, body, err, "update resource"); err != nil {
		return Resource{}, err
	}

	var out Resource
	return out, decodeInto(body, &out)
}

func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/resources/%d/", id))
	return checkResp(code, body, err, "delete resource")
}
