// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/dto"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// LifecycleHandler handles HTTP requests for project and task operations
// within one guild. Every route is mounted under /api/v1/guilds/{guild}.
type LifecycleHandler struct {
	svc ports.LifecycleService
	now func() time.Time
}

// NewLifecycleHandler creates a new LifecycleHandler with the given service port.
func NewLifecycleHandler(svc ports.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{svc: svc, now: time.Now}
}

// ListProjects handles GET /projects.
func (h *LifecycleHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context(), chi.URLParam(r, "guild"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /projects.
func (h *LifecycleHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), chi.URLParam(r, "guild"), caller, req.ToNewProject())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /projects/{project}. The response includes the
// project's tasks and progress.
func (h *LifecycleHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	p := pathParams(r, "guild", "project")

	found, err := h.svc.GetProject(r.Context(), p[0], p[1])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	progress, err := h.svc.ProjectProgress(r.Context(), p[0], p[1])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.ToProjectResponse(found)
	pr := dto.ToProgressResponse(progress)
	resp.Progress = &pr
	writeJSON(w, http.StatusOK, resp)
}

// DeleteProject handles DELETE /projects/{project}.
func (h *LifecycleHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	p := pathParams(r, "guild", "project")

	if err := h.svc.DeleteProject(r.Context(), p[0], caller, p[1]); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddProjectMembers handles POST /projects/{project}/members.
func (h *LifecycleHandler) AddProjectMembers(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MembersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p := pathParams(r, "guild", "project")

	added, err := h.svc.AddProjectMembers(r.Context(), p[0], caller, p[1], req.Members)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MembersAddedResponse{Added: nonNil(added)})
}

// UpdateProjectChannel handles PUT /projects/{project}/channel.
func (h *LifecycleHandler) UpdateProjectChannel(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ChannelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p := pathParams(r, "guild", "project")

	updated, err := h.svc.UpdateProjectChannel(r.Context(), p[0], caller, p[1], req.Channel)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(updated))
}

// SetProjectCategory handles PUT /category.
func (h *LifecycleHandler) SetProjectCategory(w http.ResponseWriter, r *http.Request) {
	if _, err := callerID(r); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.SetProjectCategory(r.Context(), chi.URLParam(r, "guild"), req.Category); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateTask handles POST /projects/{project}/tasks.
func (h *LifecycleHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p := pathParams(r, "guild", "project")

	created, err := h.svc.CreateTask(r.Context(), p[0], caller, ports.NewTask{
		Project: p[1],
		Name:    req.Name,
		Value:   req.Value,
		Due:     req.DueTime(h.now()),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// AssignTask handles POST /projects/{project}/tasks/{task}/assign. An empty
// member list assigns the caller.
func (h *LifecycleHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MembersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p := pathParams(r, "guild", "project", "task")

	added, err := h.svc.AssignTask(r.Context(), p[0], caller, p[1], p[2], req.Members)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MembersAddedResponse{Added: nonNil(added)})
}

// CompleteTask handles POST /projects/{project}/tasks/{task}/complete.
func (h *LifecycleHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.CompleteTask)
}

// RevokeTask handles POST /projects/{project}/tasks/{task}/revoke.
func (h *LifecycleHandler) RevokeTask(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.RevokeTask)
}

type transitionFunc func(ctx context.Context, guild, caller, projectName, taskName string) (*ports.Transition, error)

func (h *LifecycleHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	p := pathParams(r, "guild", "project", "task")

	tr, err := fn(r.Context(), p[0], caller, p[1], p[2])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTransitionResponse(tr))
}

// AdjustTaskValue handles PATCH /projects/{project}/tasks/{task}/value.
func (h *LifecycleHandler) AdjustTaskValue(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AdjustValueRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p := pathParams(r, "guild", "project", "task")

	updated, err := h.svc.AdjustTaskValue(r.Context(), p[0], caller, p[1], p[2], req.Delta)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
