package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	// RND is a research & development entry.
	RND struct {
		ID            int64    `json:"id"`
		Title         string   `json:"title"`
		TitleAm       string   `json:"title_am"`
		Description   string   `json:"description"`
		DescriptionAm string   `json:"description_am"`
		Category      int64    `json:"category"`
		Type          string   `json:"type"`
		Author        string   `json:"author"`
		Link          string   `json:"link"`
		Tags          string   `json:"tags"`
		CoverImage    string   `json:"coverimage,omitempty"`
		Logo          string   `json:"logo,omitempty"`
		Images        []string `json:"images,omitempty"`
	}

	RNDInput struct {
		Title         string
		TitleAm       string
		Description   string
		DescriptionAm string
		Category      string
		Type          string
		Author        string
		Link          string
		Tags          string
		CoverImage    *gateway.FileField
		Logo          *gateway.FileField
		Images        []gateway.FileField
	}

	RNDService struct {
		gw *gateway.Client
	}
)

func (in RNDInput) fields() map[string]string {
	return map[string]string{
		"title":          in.Title,
		"title_am":       in.TitleAm,
		"description":    in.Description,
		"description_am": in.DescriptionAm,
		"category":       in.Category,
		"type":           in.Type,
		"author":         in.Author,
		"link":           in.Link,
		"tags":           in.Tags,
	}
}

func (in RNDInput) files() []gateway.FileField {
	var files []gateway.FileField
	if in.CoverImage != nil {
		cover := *in.CoverImage
		cover.Field = "coverimage"
		files = append(files, cover)
	}

	if in.Logo != nil {
		logo := *in.Logo
		logo.Field = "logo"
		files = append(files, logo)
	}

	for _, img := range in.Images {
		img.Field = "images"
		files = append(files, img)
	}

	return files
}

func (s *RNDService) All(ctx context.Context) ([]RND, error) {
	var out []RND
	return out, fetchList(ctx, s.gw, "/rnd/", nil, &out)
}

func (s *RNDService) Get(ctx context.Context, id int64) (RND, error) {
	var out RND
	return out, fetchOne(ctx, s.gw, fmt.Sprintf("/rnd/%d/", id), &out)
}

func (s *RNDService) Create(ctx context.Context, in RNDInput) (RND, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPost, "/rnd/", in.fields(), in.files()...)
	if err := checkResp(code, body, err, "create rnd"); err != nil {
		return RND{}, err
	}

	var out RND
	return out, decodeInto(body, &out)
}

func (s *RNDService) Update(ctx context.Context, id int64, in RNDInput) (RND, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPut, fmt.Sprintf("/rnd/%d/", id), in.fields(), in.files()...)
	if err := checkResp(code, body, err, "update rnd"); err != nil {
		return RND{}, err
	}

	var out RND
	return out, decodeInto(body, &out)
}

func (s *RNDService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/rnd/%d/", id))
	return checkResp(code, body, err, "delete rnd")
}
