package rest

import (
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/dmitrijs2005/ecosocial/internal/timex"
)

type registerRequest struct {
	Name      string          `json:"name"`
	UserName  string          `json:"username"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Password  string          `json:"password"`
	Interests json.RawMessage `json:"interests"`
}

type postRequest struct {
	AuthorID string `json:"author_id"`
	Topic    string `json:"topic"`
	Content  string `json:"content"`
}

type eventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"start_time"`
	CreatedBy   string `json:"created_by"`
}

type loginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

type userResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	UserName  string   `json:"username"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Interests []string `json:"interests"`
	JoinedAt  string   `json:"joined_at"`
}

type postResponse struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Topic     string `json:"topic"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type eventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"start_time"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type indexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

func toUserResponse(u *models.User) userResponse {
	interests := u.Interests
	if interests == nil {
		interests = []string{}
	}
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		Interests: interests,
		JoinedAt:  timex.FormatISO(u.JoinedAt),
	}
}

func toPostResponse(p *models.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Topic:     p.Topic,
		Content:   p.Content,
		CreatedAt: timex.FormatISO(p.CreatedAt),
	}
}

func toEventResponse(e *models.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartTime:   timex.FormatISO(e.StartTime),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   timex.FormatISO(e.CreatedAt),
	}
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// parseInterests accepts a JSON list or a comma-separated string. List
// elements that are not strings are taken in their JSON text form. Items are
// trimmed and empty ones dropped. An absent or null value yields no
// interests; any other JSON type is rejected.
func parseInterests(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, common.ErrInvalidInterestsFormat
	}

	var parts []string
	switch value := v.(type) {
	case nil:
		return []string{}, nil
	case string:
		parts = strings.Split(value, ",")
	case []any:
		parts = make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, interestText(item))
		}
	default:
		return nil, common.ErrInvalidInterestsFormat
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

func interestText(item any) string {
	if s, ok := item.(string); ok {
		return s
	}
	b, err := json.Marshal(item)
	if err != nil {
		return ""
	}
	return string(b)
}
