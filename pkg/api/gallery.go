package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	Gallery struct {
		ID             int64    `json:"id"`
		Title          string   `json:"title"`
		TitleAm        string   `json:"title_am"`
		Caption        string   `json:"caption"`
		CaptionAm      string   `json:"caption_am"`
		Description    string   `json:"discription"`
		DescriptionAm  string   `json:"discription_am"`
		Category       int64    `json:"category"`
		Classification string   `json:"classification"`
		Tags           string   `json:"tags"`
		PublishedAt    string   `json:"published_at"`
		Images         []string `json:"images,omitempty"`
	}

	// GalleryInput mirrors the gallery form. The backend spells the
	// description fields "discription"; keep its spelling on the wire.
	GalleryInput struct {
		Title          string
		TitleAm        string
		Caption        string
		CaptionAm      string
		Description    string
		DescriptionAm  string
		Category       string
		Classification string
		Tags           string
		PublishedAt    string
		// RemovedImages lists previously uploaded images to drop
		// on update.
		RemovedImages string
		Images        []gateway.FileField
	}

	GalleryService struct {
		gw *gateway.Client
	}
)

func (in GalleryInput) fields() map[string]string {
	f := map[string]string{
		"title":          in.Title,
		"title_am":       in.TitleAm,
		"caption":        in.Caption,
		"caption_am":     in.CaptionAm,
		"discription":    in.Description,
		"discription_am": in.DescriptionAm,
		"category":       in.Category,
		"classification": in.Classification,
		"tags":           in.Tags,
		"published_at":   in.PublishedAt,
	}

	if in.RemovedImages != "" {
		f["removed_images"] = in.RemovedImages
	}

	return f
}

func (in GalleryInput) files() []gateway.FileField {
	var files []gateway.FileField
	for _, img := range in.Images {
		img.Field = "images"
		files = append(files, img)
	}

	return files
}

func (s *GalleryService) All(ctx context.Context) ([]Gallery, error) {
	var out []Gallery
	return out, fetchList(ctx, s.gw, "/gallery/", nil, &out)
}

func (s *GalleryService) Create(ctx context.Context, in GalleryInput) (Gallery, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPost, "/gallery/", in.fields(), in.files()...)
	if err := checkResp(code, body, err, "create gallery"); err != nil {
		return Gallery{}, err
	}

	var out Gallery
	return out, decodeInto(body, &out)
}

func (s *GalleryService) Update(ctx context.Context, id int64, in GalleryInput) (Gallery, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPut, fmt.Sprintf("/gallery/%d/", id), in.fields(), in.files()...)
	if err := checkResp(code, body, err, "update gallery"); err != nil {
		return Gallery{}, err
	}

	var out Gallery
	return out, decodeInto(body, &out)
}

func (s *GalleryService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/gallery/%d/", id))
	return checkResp(code, body, err, "delete gallery")
}
