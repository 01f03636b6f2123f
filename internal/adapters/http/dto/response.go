// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"errors"
	"sort"
	"time"

	"github.com/fluxcrew/lifecycle/internal/domain/points"
	"github.com/fluxcrew/lifecycle/internal/domain/project"
	"github.com/fluxcrew/lifecycle/internal/domain/reminder"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
	"github.com/fluxcrew/lifecycle/internal/ports"
)

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Owner    string            `json:"owner"`
	Members  []string          `json:"members"`
	Channel  string            `json:"channel,omitempty"`
	Message  string            `json:"message,omitempty"`
	Index    int               `json:"index"`
	Tasks    []TaskResponse    `json:"tasks,omitempty"`
	Progress *ProgressResponse `json:"progress,omitempty"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
// Tasks are included only if the project has any.
func ToProjectResponse(p *project.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:      p.ID,
		Name:    p.Name,
		Owner:   p.Owner,
		Members: nonNil(p.Members),
		Channel: p.Channel,
		Message: p.Message,
		Index:   p.Index,
	}

	if len(p.Tasks) > 0 {
		resp.Tasks = make([]TaskResponse, len(p.Tasks))
		for i := range p.Tasks {
			resp.Tasks[i] = ToTaskResponse(&p.Tasks[i])
		}
	}

	return resp
}

// ToProjectListResponse converts a slice of domain Project entities to an
// HTTP list response DTO. Tasks are omitted from list entries.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
		items[i].Tasks = nil
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Project   string   `json:"project"`
	Status    string   `json:"status"`
	Value     int      `json:"value"`
	Assigned  []string `json:"assigned"`
	StartTime string   `json:"start_time"`
	DueTime   string   `json:"due_time"`
	Index     int      `json:"index"`
}

// ToTaskResponse converts a domain Task entity to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Name:      t.Name,
		Project:   t.Project,
		Status:    t.Status().String(),
		Value:     t.Value,
		Assigned:  nonNil(t.Assigned),
		StartTime: t.StartTime.UTC().Format(time.RFC3339),
		DueTime:   t.DueTime.UTC().Format(time.RFC3339),
		Index:     t.Index,
	}
}

// ProgressResponse reports a project's completion. Percent is omitted when
// the project has no tasks.
type ProgressResponse struct {
	Project string `json:"project"`
	Percent *int   `json:"percent,omitempty"`
	Bar     string `json:"bar"`
}

// ToProgressResponse converts a progress summary to an HTTP response DTO.
func ToProgressResponse(p *ports.Progress) ProgressResponse {
	resp := ProgressResponse{Project: p.Project, Bar: p.Bar}
	if p.HasTasks {
		pct := p.Percent
		resp.Percent = &pct
	}
	return resp
}

// TransitionResponse reports the outcome of completing or revoking a task.
type TransitionResponse struct {
	Task     TaskResponse     `json:"task"`
	Awards   map[string]int   `json:"awards"`
	Progress ProgressResponse `json:"progress"`
}

// ToTransitionResponse converts a transition result to an HTTP response DTO.
func ToTransitionResponse(tr *ports.Transition) TransitionResponse {
	awards := tr.Awards
	if awards == nil {
		awards = map[string]int{}
	}
	return TransitionResponse{
		Task:     ToTaskResponse(&tr.Task),
		Awards:   awards,
		Progress: ToProgressResponse(&tr.Progress),
	}
}

// MembersAddedResponse lists the members a membership or assignment call
// actually added.
type MembersAddedResponse struct {
	Added []string `json:"added"`
}

// BalanceResponse represents a member's point total.
type BalanceResponse struct {
	Member string `json:"member"`
	Points int    `json:"points"`
}

// StandingResponse is one leaderboard row.
type StandingResponse struct {
	Rank   int    `json:"rank"`
	Member string `json:"member"`
	Points int    `json:"points"`
}

// LeaderboardResponse is one page of the guild ranking.
type LeaderboardResponse struct {
	Standings []StandingResponse `json:"standings"`
	Page      int                `json:"page"`
	Pages     int                `json:"pages"`
	Total     int                `json:"total"`
}

// ToLeaderboardResponse converts a leaderboard page to an HTTP response DTO.
func ToLeaderboardResponse(p *points.Page) LeaderboardResponse {
	rows := make([]StandingResponse, len(p.Standings))
	for i, s := range p.Standings {
		rows[i] = StandingResponse{Rank: s.Rank, Member: s.Member, Points: s.Points}
	}
	return LeaderboardResponse{
		Standings: rows,
		Page:      p.Page,
		Pages:     p.Pages,
		Total:     p.Total,
	}
}

// LedgerEntryResponse is one ledger record in a history listing.
type LedgerEntryResponse struct {
	Kind      string `json:"kind"`
	Task      string `json:"task"`
	Amount    int    `json:"amount"`
	Timestamp string `json:"timestamp"`
}

// HistoryResponse lists a member's ledger entries for one task.
type HistoryResponse struct {
	Member  string                `json:"member"`
	Entries []LedgerEntryResponse `json:"entries"`
}

// ToHistoryResponse converts ledger entries to an HTTP response DTO.
func ToHistoryResponse(member string, entries []points.Entry) HistoryResponse {
	items := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = LedgerEntryResponse{
			Kind:      string(e.Kind),
			Task:      e.Task,
			Amount:    e.Amount,
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
		}
	}
	return HistoryResponse{Member: member, Entries: items}
}

// ReminderResponse represents a pending reminder.
type ReminderResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	FireAt  string `json:"fire_at"`
}

// ReminderListResponse represents a member's pending reminders.
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int                `json:"count"`
}

// ToReminderResponse converts a domain Reminder to an HTTP response DTO.
func ToReminderResponse(r *reminder.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:      r.ID,
		Message: r.Message,
		FireAt:  r.FireAt.UTC().Format(time.RFC3339),
	}
}

// ToReminderListResponse converts a slice of reminders to an HTTP list
// response DTO.
func ToReminderListResponse(rs []reminder.Reminder) ReminderListResponse {
	items := make([]ReminderResponse, len(rs))
	for i := range rs {
		items[i] = ToReminderResponse(&rs[i])
	}
	return ReminderListResponse{Reminders: items, Count: len(items)}
}

// Health statuses reported by the readiness endpoint.
const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"
	HealthFailing  = "failing"

	ReadinessReady    = "ready"
	ReadinessDegraded = "degraded"
	ReadinessNotReady = "not_ready"
)

// HealthCheckResponse is one component's readiness result.
type HealthCheckResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse is the body of GET /health/ready. Checks are sorted by name.
type ReadinessResponse struct {
	Status string                `json:"status"`
	Checks []HealthCheckResponse `json:"checks"`
}

// Ready reports whether the service should receive traffic.
func (r ReadinessResponse) Ready() bool {
	return r.Status != ReadinessNotReady
}

// ToReadinessResponse folds registry results into a readiness report. Any
// failing component makes the service not ready; degraded ones only lower
// the overall status.
func ToReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{
		Status: ReadinessReady,
		Checks: make([]HealthCheckResponse, 0, len(results)),
	}
	for name, err := range results {
		check := HealthCheckResponse{Name: name, Status: HealthOK}
		switch {
		case err == nil:
		case errors.Is(err, ports.ErrDegraded):
			check.Status = HealthDegraded
			check.Error = err.Error()
			if resp.Status == ReadinessReady {
				resp.Status = ReadinessDegraded
			}
		default:
			check.Status = HealthFailing
			check.Error = err.Error()
			resp.Status = ReadinessNotReady
		}
		resp.Checks = append(resp.Checks, check)
	}
	sort.Slice(resp.Checks, func(i, j int) bool {
		return resp.Checks[i].Name < resp.Checks[j].Name
	})
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
