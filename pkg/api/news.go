package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	News struct {
		ID         int64  `json:"id"`
		Title      string `json:"title"`
		TitleAm    string `json:"title_am"`
		Subtitle   string `json:"subtitle"`
		SubtitleAm string `json:"subtitle_am"`
		Category   int64  `json:"category"`
		Content    string `json:"content"`
		ContentAm  string `json:"content_am"`
		Tags       string `json:"tags"`
		Status     string `json:"status"`
		Iframe     string `json:"iframe,omitempty"`
		CoverImage string `json:"cover_image,omitempty"`
		CreatedAt  string `json:"created_at,omitempty"`
	}

	// NewsInput carries the form fields of the article editor.
	// The iframe only goes out when the article embeds a video.
	NewsInput struct {
		Title      string
		TitleAm    string
		Subtitle   string
		SubtitleAm string
		Category   string
		Content    string
		ContentAm  string
		Tags       string
		Status     string
		HasVideo   bool
		Iframe     string
		CoverImage *gateway.FileField
		Images     []gateway.FileField
	}

	NewsService struct {
		gw *gateway.Client
	}
)

func (in NewsInput) fields() map[string]string {
	f := map[string]string{
		"title":       in.Title,
		"title_am":    in.TitleAm,
		"subtitle":    in.Subtitle,
		"subtitle_am": in.SubtitleAm,
		"category":    in.Category,
		"content":     in.Content,
		"content_am":  in.ContentAm,
		"tags":        in.Tags,
		"status":      in.Status,
	}

	if in.HasVideo && in.Iframe != "" {
		f["iframe"] = in.Iframe
	}

	return f
}

func (in NewsInput) files() []gateway.FileField {
	var files []gateway.FileField
	if in.CoverImage != nil {
		cover := *in.CoverImage
		cover.Field = "cover_image"
		files = append(files, cover)
	}

	// every additional image goes out under the same "images" key
	for _, img := range in.Images {
		img.Field = "images"
		files = append(files, img)
	}

	return files
}

func (s *NewsService) All(ctx context.Context) ([]News, error) {
	var out []News
	return out, fetchList(ctx, s.gw, "/news/all/", nil, &out)
}

// Mine lists the signed-in user's own articles, optionally filtered
// by status.
func (s *NewsService) Mine(ctx context.Context, status string) ([]News, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	var out []News
	return out, fetchList(ctx, s.gw, "/news/usernews/", query, &out)
}

func (s *NewsService) Search(ctx context.Context, title string) ([]News, error) {
	query := url.Values{}
	query.Set("title", title)

	var out []News
	return out, fetchList(ctx, s.gw, "/news/search/", query, &out)
}

func (s *NewsService) Get(ctx context.Context, id int64) (News, error) {
	var out News
	return out, fetchOne(ctx, s.gw, fmt.Sprintf("/news/news/%d/", id), &out)
}

func (s *NewsService) Related(ctx context.Context, id int64) ([]News, error) {
	var out []News
	return out, fetchList(ctx, s.gw, fmt.Sprintf("/news/related/%d/", id), nil, &out)
}

func (s *NewsService) Create(ctx context.Context, in NewsInput) (News, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPost, "/news/newspost/", in.fields(), in.files()...)
	if err := checkResp(code, body, err, "create news"); err != nil {
		return News{}, err
	}

	var out News
	return out, decodeInto(body, &out)
}

func (s *NewsService) Update(ctx context.Context, id int64, in NewsInput) (News, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPut, fmt.Sprintf("/news/news/%d/", id), in.fields(), in.files()...)
	if err := checkResp(code, body, err, "update news"); err != nil {
		return News{}, err
	}

	var out News
	return out, decodeInto(body, &out)
}

func (s *NewsService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/news/news/%d/", id))
	return checkResp(code, body, err, "delete news")
}
