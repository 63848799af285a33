package api

import (
	"context"
	"fmt"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	Vacancy struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Location    string `json:"location"`
		Type        string `json:"type"`
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
		Status      string `json:"status"`
	}

	VacancyInput struct {
		Title       string `json:"title"`
		Location    string `json:"location"`
		Type        string `json:"type"`
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
		Status      string `json:"status"`
	}

	VacancyService struct {
		gw *gateway.Client
	}
)

func (s *VacancyService) All(ctx context.Context) ([]Vacancy, error) {
	var out []Vacancy
	return out, fetchList(ctx, s.gw, "/vacancies/", nil, &out)
}

func (s *VacancyService) Create(ctx context.Context, in VacancyInput) (Vacancy, error) {
	code, body, err := s.gw.Post(ctx, "/vacancies/", in)
	if err := checkResp(code, body, err, "create vacancy"); err != nil {
		return Vacancy{}, err
	}

	var out Vacancy
	return out, decodeInto(body, &out)
}

func (s *VacancyService) Update(ctx context.Context, id int64, in VacancyInput) (Vacancy, error) {
	code, body, err := s.gw.Put(ctx, fmt.Sprintf("/vacancies/%d/", id), in)
	if err := checkResp(code, body, err, "update vacancy"); err != nil {
		return Vacancy{}, err
	}

	var out Vacancy
	return out, decodeInto(body, &out)
}

func (s *VacancyService) Delete(ctx context.Context, id int64) error {
	code, body, err := s.gw.Delete(ctx, fmt.Sprintf("/vacancies/%d/", id))
	return checkResp(code, body, err, "delete vacancy")
}
