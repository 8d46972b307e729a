package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/services"
	"github.com/dmitrijs2005/ecosocial/internal/timex"
)

const maxBodyBytes = 1 << 20

var endpoints = []string{
	"GET /users",
	"POST /users",
	"POST /posts",
	"GET /feed",
	"POST /events",
	"GET /events",
	"POST /auth/login",
	"POST /auth/logout",
}

// decodeBody reads a JSON object into dst. An empty body decodes as {}.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidJSON
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Message:   "Environmental social network",
		Endpoints: endpoints,
	})
}

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	interests, err := parseInterests(req.Interests)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	p := services.RegisterParams{
		Name:      strings.TrimSpace(req.Name),
		UserName:  strings.TrimSpace(req.UserName),
		Email:     strings.TrimSpace(req.Email),
		Role:      strings.TrimSpace(req.Role),
		Password:  req.Password,
		Interests: interests,
	}
	if p.Name == "" || p.UserName == "" || p.Email == "" || p.Role == "" || p.Password == "" {
		s.writeError(w, r, common.ErrMissingRequiredFields)
		return
	}

	user, err := s.network.RegisterUser(r.Context(), p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.UsersRegistered.Inc()
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.network.ListUsers(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toUserResponse))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	topic := strings.TrimSpace(req.Topic)
	content := strings.TrimSpace(req.Content)
	if req.AuthorID == "" || topic == "" || content == "" {
		s.writeError(w, r, common.ErrAuthorTopicContentRequired)
		return
	}

	post, err := s.network.AddPost(r.Context(), req.AuthorID, topic, content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.PostsCreated.Inc()
	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

// handleFeed serves the feed of user_id, or of the user owning token when
// user_id is absent. A token that resolves to nobody yields the full feed.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	userID := q.Get(common.UserIDQueryParam)
	if token := q.Get(common.TokenQueryParam); userID == "" && token != "" {
		resolved, ok, err := s.network.ResolveToken(ctx, token)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if ok {
			userID = resolved
		}
	}

	feed, err := s.network.FeedFor(ctx, userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(feed, toPostResponse))
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.Title == "" || req.Description == "" || req.Location == "" || req.StartTime == "" || req.CreatedBy == "" {
		s.writeError(w, r, common.ErrMissingRequiredFields)
		return
	}

	start, err := timex.ParseISO(req.StartTime)
	if err != nil {
		s.writeError(w, r, common.ErrInvalidDatetime)
		return
	}

	event, err := s.network.AddEvent(r.Context(), services.AddEventParams{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   start,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.EventsCreated.Inc()
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := s.network.ListEvents(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toEventResponse))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	username := strings.TrimSpace(req.UserName)
	if username == "" || req.Password == "" {
		s.writeError(w, r, common.ErrMissingCredentials)
		return
	}

	token, err := s.network.Login(r.Context(), username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.metrics.Logins.WithLabelValues(LoginFailure).Inc()
		}
		s.writeError(w, r, err)
		return
	}

	s.metrics.Logins.WithLabelValues(LoginSuccess).Inc()
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.Token == "" {
		s.writeError(w, r, common.ErrTokenRequired)
		return
	}

	ok, err := s.network.Logout(r.Context(), req.Token)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, common.ErrInvalidToken)
		return
	}

	s.metrics.Logouts.Inc()
	writeJSON(w, http.StatusOK, statusResponse{Status: "logged-out"})
}
