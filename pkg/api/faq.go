package api

import (
	"context"
	"fmt"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	FAQ struct {
		ID         int64  `json:"id"`
		Question   string `json:"question"`
		QuestionAm string `json:"question_am"`
		Answer     string `json:"answer"`
		AnswerAm   string `json:"answer_am"`
	}

	FAQInput struct {
		Question   string `json:"question"`
		QuestionAm string `json:"question_am"`
		Answer     string `json:"answer"`
		AnswerAm   string `json:"answer_am"`
	}

	FAQService struct {
		gw *gateway.Client
	}
)

func (s *FAQService) All(ctx context.Context) ([]FAQ, error) {
	var out []FAQ
	return out, fetchList(ctx, s.gw, "/faq/", nil, &out)
}

func (s *FAQService) Create(ctx context.Context, in FAQInput) (FAQ, error) {
	code, body, err := s.gw.Post(ctx, "/faq/", in)
	if err := checkResp(code, body, err, "create faq"); err != nil {
		return FAQ{}, err
	}

	var out FAQ
	return out, decodeInto(body, &out)
}

// Update is a partial update, only the provided fields change.
func (s *FAQService) Update(ctx context.Context, id int64, in FAQInput) (FAQ, error) {
	code, body, err := s.gw.Patch(ctx, fmt.Sprintf("/faq/%d/", id), in)
	if err := checkResp(code, body, err, "update faq"); err != nil {
		return FAQ{}, err
	}

	var out FAQ
	return out, decodeInto(body, &out)
}

func (s *FAQService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/faq/%d/", id))
	return checkResp(code, body, err, "delete faq")
}
