package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	Category struct {
		ID            int64  `json:"id"`
		Name          string `json:"name"`
		NameAm        string `json:"name_am"`
		Description   string `json:"description"`
		DescriptionAm string `json:"description_am"`
		IsCore        bool   `json:"is_core"`
		Image         string `json:"image,omitempty"`
	}

	CategoryInput struct {
		Name          string
		NameAm        string
		Description   string
		DescriptionAm string
		IsCore        bool
		Image         *gateway.FileField
	}

	CategoryService struct {
		gw *gateway.Client
	}
)

func (in CategoryInput) fields() map[string]string {
	return map[string]string{
		"name":           in.Name,
		"name_am":        in.NameAm,
		"description":    in.Description,
		"description_am": in.DescriptionAm,
		"is_core":        strconv.FormatBool(in.IsCore),
	}
}

func (in CategoryInput) files() []gateway.FileField {
	if in.Image == nil {
		return nil
	}

	image := *in.Image
	image.Field = "image"
	return []gateway.FileField{image}
}

func (s *CategoryService) All(ctx context.Context) ([]Category, error) {
	var out []Category
	return out, fetchList(ctx, s.gw, "/categories/", nil, &out)
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (Category, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPost, "/categories/", in.fields(), in.files()...)
	if err := checkResp(code, body, err, "create category"); err != nil {
		return Category{}, err
	}

	var out Category
	return out, decodeInto(body, &out)
}

func (s *CategoryService) Update(ctx context.Context, id int64, in CategoryInput) (Category, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPut, fmt.Sprintf("/categories/%d/", id), in.fields(), in.files()...)
	if err := checkResp(code, body, err, "update category"); err != nil {
		return Category{}, err
	}

	var out Category
	return out, decodeInto(body, &out)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/categories/%d/", id))
	return checkResp(code, body, err, "delete category")
}
