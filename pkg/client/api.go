package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"eventide/internal/contract"
)

// API is the HTTP transport behind the stores. One instance per
// authenticated identity.
type API struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewAPI(baseURL, token string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type apiError struct {
	Status  int
	Message string `json:"error"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (a *API) do(ctx context.Context, method, path string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apierr := &apiError{Status: resp.StatusCode}
		_ = json.Unmarshal(raw, apierr)
		return apierr
	}

	if out != nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// Wrapper types give the contract DTOs a store key.

type Event struct{ contract.EventResponse }

func (e Event) Key() string { return e.EventID }

type Todo struct{ contract.TodoResponse }

func (t Todo) Key() string { return t.TodoID }

type Project struct{ contract.ProjectResponse }

func (p Project) Key() string { return p.ProjectID }

type Label struct{ contract.LabelResponse }

func (l Label) Key() string { return l.LabelID }

type Notebook struct{ contract.NotebookResponse }

func (n Notebook) Key() string { return n.NotebookID }

type Note struct{ contract.NoteResponse }

func (n Note) Key() string { return n.NoteID }

// restRemote adapts one REST collection to the Remote interface. The
// server binds only the fields it knows, so posting the full DTO is safe
// for both create and patch.
type restRemote[T Resource] struct {
	api     *API
	path    string
	listKey string
}

func (r restRemote[T]) List(ctx context.Context) ([]T, error) {
	var envelope map[string]json.RawMessage
	if err := r.api.do(ctx, http.MethodGet, r.path, nil, &envelope); err != nil {
		return nil, err
	}

	var items []T
	if raw, ok := envelope[r.listKey]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r restRemote[T]) Create(ctx context.Context, item T) (T, error) {
	var confirmed T
	err := r.api.do(ctx, http.MethodPost, r.path, item, &confirmed)
	return confirmed, err
}

func (r restRemote[T]) Update(ctx context.Context, item T) (T, error) {
	var confirmed T
	err := r.api.do(ctx, http.MethodPatch, r.path+"/"+item.Key(), item, &confirmed)
	return confirmed, err
}

func (r restRemote[T]) Delete(ctx context.Context, key string) error {
	return r.api.do(ctx, http.MethodDelete, r.path+"/"+key, nil, nil)
}

func (a *API) Events() Remote[Event] {
	return restRemote[Event]{api: a, path: "/api/events", listKey: "events"}
}

func (a *API) Todos() Remote[Todo] {
	return restRemote[Todo]{api: a, path: "/api/todos", listKey: "todos"}
}

func (a *API) Projects() Remote[Project] {
	return restRemote[Project]{api: a, path: "/api/projects", listKey: "projects"}
}

func (a *API) Labels() Remote[Label] {
	return restRemote[Label]{api: a, path: "/api/labels", listKey: "labels"}
}

func (a *API) Notebooks() Remote[Notebook] {
	return restRemote[Notebook]{api: a, path: "/api/notebooks", listKey: "notebooks"}
}

func (a *API) Notes() Remote[Note] {
	return restRemote[Note]{api: a, path: "/api/notes", listKey: "notes"}
}

// Chat returns the ChatRemote implementation for message stores.
func (a *API) Chat() ChatRemote {
	return chatRemote{api: a}
}

type chatRemote struct {
	api *API
}

func (r chatRemote) History(ctx context.Context, collabID string) ([]*contract.MessageResponse, error) {
	var envelope struct {
		Messages []*contract.MessageResponse `json:"messages"`
	}
	path := "/api/collaborations/" + collabID + "/messages"
	if err := r.api.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Messages, nil
}

func (r chatRemote) Send(ctx context.Context, collabID string, req *contract.CreateMessageRequest) (*contract.MessageResponse, error) {
	var confirmed contract.MessageResponse
	path := "/api/collaborations/" + collabID + "/messages"
	if err := r.api.do(ctx, http.MethodPost, path, req, &confirmed); err != nil {
		return nil, err
	}
	return &confirmed, nil
}
