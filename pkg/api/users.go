package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kirubel606/Blog-Admin/pkg/gateway"
)

type (
	User struct {
		ID           int64  `json:"id"`
		Name         string `json:"name"`
		Username     string `json:"username"`
		Email        string `json:"email"`
		Role         string `json:"role"`
		Status       string `json:"status"`
		ProfileImage string `json:"profile_image,omitempty"`
		IsAdmin      bool   `json:"is_admin"`
	}

	// UserInput carries the signup/update form. Empty fields are
	// left out of the submission, matching the console's behavior.
	UserInput struct {
		Name         string
		Username     string
		Email        string
		Password     string
		Role         string
		Status       string
		ProfileImage *gateway.FileField
	}

	UserService struct {
		gw *gateway.Client
	}
)

func (in UserInput) fields() map[string]string {
	f := map[string]string{}
	for k, v := range map[string]string{
		"name":     in.Name,
		"username": in.Username,
		"email":    in.Email,
		"password": in.Password,
		"role":     in.Role,
		"status":   in.Status,
	} {
		if v != "" {
			f[k] = v
		}
	}

	return f
}

func (in UserInput) files() []gateway.FileField {
	if in.ProfileImage == nil {
		return nil
	}

	image := *in.ProfileImage
	image.Field = "profile_image"
	return []gateway.FileField{image}
}

// All lists staff users. Unlike the other entities the users
// endpoint wraps its payload in a "users" envelope.
func (s *UserService) All(ctx context.Context) ([]User, error) {
	code, body, err := s.gw.Get(ctx, "/api/users/all/", nil)
	if err := checkResp(code, body, err, "list users"); err != nil {
		return nil, err
	}

	var envelope struct {
		Users []User `json:"users"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	return envelope.Users, nil
}

func (s *UserService) Signup(ctx context.Context, in UserInput) (User, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPost, "/api/users/user/signup/", in.fields(), in.files()...)
	if err := checkResp(code, body, err, "signup user"); err != nil {
		return User{}, err
	}

	var out User
	return out, decodeInto(body, &out)
}

// Update modifies the signed-in user's own account.
func (s *UserService) Update(ctx context.Context, in UserInput) (User, error) {
	code, body, err := s.gw.Submit(ctx, http.MethodPut, "/api/users/", in.fields(), in.files()...)
	if err := checkResp(code, body, err, "update user"); err != nil {
		return User{}, err
	}

	var out User
	return out, decodeInto(body, &out)
}

// Delete removes the signed-in user's own account.
func (s *UserService) Delete(ctx context.Context) error {
	code, body, err := s.gw.Delete(ctx, "/api/users/user/")
	return checkResp(code, body, err, "delete user")
}
