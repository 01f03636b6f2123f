package app

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fluxcrew/lifecycle/internal/domain/community"
	"github.com/fluxcrew/lifecycle/internal/domain/points"
	"github.com/fluxcrew/lifecycle/internal/domain/project"
	"github.com/fluxcrew/lifecycle/internal/domain/reminder"
	"github.com/fluxcrew/lifecycle/internal/domain/task"
	"github.com/fluxcrew/lifecycle/internal/domain/timer"
)

// Document collections.
const (
	collectionGuilds    = "guilds"
	collectionLedger    = "ledger"
	collectionTimers    = "timers"
	collectionReminders = "reminders"
)

// The types below are the stored shape of lifecycle state. They are kept
// apart from the domain types so the document layout can evolve without
// touching domain code, and so legacy documents (no ids, a persisted index)
// still decode.

type communityDoc struct {
	GuildID         string         `json:"guild_id"`
	Projects        []projectDoc   `json:"projects"`
	Points          map[string]int `json:"points"`
	ProjectCategory string         `json:"project_category,omitempty"`
}

type projectDoc struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Owner   string    `json:"owner"`
	Members []string  `json:"members"`
	Channel string    `json:"channel,omitempty"`
	Message string    `json:"message,omitempty"`
	Tasks   []taskDoc `json:"tasks"`
	// Index is written for readers of the raw document and ignored on load.
	Index int `json:"index"`
}

type taskDoc struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Project   string    `json:"project"`
	StartTime time.Time `json:"start_time"`
	DueTime   time.Time `json:"due_time"`
	Completed bool      `json:"completed"`
	Assigned  []string  `json:"assigned"`
	Value     int       `json:"value"`
	Index     int       `json:"index"`
}

type ledgerDoc struct {
	Entries []entryDoc `json:"entries"`
}

type entryDoc struct {
	Guild     string    `json:"guild"`
	Member    string    `json:"member"`
	Task      string    `json:"task_name"`
	TaskID    string    `json:"task_id,omitempty"`
	Kind      string    `json:"kind"`
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

type timerDoc struct {
	ID      string            `json:"id"`
	Guild   string            `json:"guild,omitempty"`
	Kind    string            `json:"event_kind"`
	FireAt  time.Time         `json:"fire_at"`
	Payload map[string]string `json:"payload"`
}

type reminderDoc struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	FireAt    time.Time `json:"fire_at"`
	CreatedAt time.Time `json:"created_at"`
}

func encodeCommunity(c *community.Community) (json.RawMessage, error) {
	doc := communityDoc{
		GuildID:         c.GuildID,
		Projects:        make([]projectDoc, len(c.Projects)),
		Points:          c.Points,
		ProjectCategory: c.ProjectCategory,
	}
	if doc.Points == nil {
		doc.Points = map[string]int{}
	}
	for i, p := range c.Projects {
		pd := projectDoc{
			ID:      p.ID,
			Name:    p.Name,
			Owner:   p.Owner,
			Members: nonNil(p.Members),
			Channel: p.Channel,
			Message: p.Message,
			Tasks:   make([]taskDoc, len(p.Tasks)),
			Index:   i,
		}
		for j, t := range p.Tasks {
			pd.Tasks[j] = taskDoc{
				ID:        t.ID,
				Name:      t.Name,
				Project:   p.Name,
				StartTime: t.StartTime,
				DueTime:   t.DueTime,
				Completed: t.Completed,
				Assigned:  nonNil(t.Assigned),
				Value:     t.Value,
				Index:     j,
			}
		}
		doc.Projects[i] = pd
	}
	return marshal(doc)
}

func decodeCommunity(raw json.RawMessage) (*community.Community, error) {
	var doc communityDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding community: %w", err)
	}

	c := &community.Community{
		GuildID:         doc.GuildID,
		Projects:        make([]project.Project, len(doc.Projects)),
		Points:          doc.Points,
		ProjectCategory: doc.ProjectCategory,
	}
	for i, pd := range doc.Projects {
		p := project.Project{
			ID:      pd.ID,
			Name:    pd.Name,
			Owner:   pd.Owner,
			Members: pd.Members,
			Channel: pd.Channel,
			Message: pd.Message,
			Tasks:   make([]task.Task, len(pd.Tasks)),
		}
		for j, td := range pd.Tasks {
			p.Tasks[j] = task.Task{
				ID:        td.ID,
				Name:      td.Name,
				Project:   td.Project,
				StartTime: td.StartTime,
				DueTime:   td.DueTime,
				Completed: td.Completed,
				Assigned:  td.Assigned,
				Value:     td.Value,
			}
		}
		c.Projects[i] = p
	}
	return c, nil
}

func decodeLedger(raw json.RawMessage) ([]points.Entry, error) {
	var doc ledgerDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding ledger: %w", err)
	}
	out := make([]points.Entry, len(doc.Entries))
	for i, e := range doc.Entries {
		out[i] = points.Entry{
			Guild:     e.Guild,
			Member:    e.Member,
			Task:      e.Task,
			TaskID:    e.TaskID,
			Kind:      points.Kind(e.Kind),
			Amount:    e.Amount,
			Timestamp: e.Timestamp,
		}
	}
	return out, nil
}

func encodeLedger(entries []points.Entry) (json.RawMessage, error) {
	doc := ledgerDoc{Entries: make([]entryDoc, len(entries))}
	for i, e := range entries {
		doc.Entries[i] = entryDoc{
			Guild:     e.Guild,
			Member:    e.Member,
			Task:      e.Task,
			TaskID:    e.TaskID,
			Kind:      string(e.Kind),
			Amount:    e.Amount,
			Timestamp: e.Timestamp,
		}
	}
	return marshal(doc)
}

func encodeTimer(r timer.Record) (json.RawMessage, error) {
	return marshal(timerDoc{
		ID:      r.ID,
		Guild:   r.Guild,
		Kind:    string(r.Kind),
		FireAt:  r.FireAt,
		Payload: r.Payload,
	})
}

func decodeTimer(raw json.RawMessage) (timer.Record, error) {
	var doc timerDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return timer.Record{}, fmt.Errorf("decoding timer: %w", err)
	}
	return timer.Record{
		ID:      doc.ID,
		Guild:   doc.Guild,
		Kind:    timer.Kind(doc.Kind),
		FireAt:  doc.FireAt,
		Payload: doc.Payload,
	}, nil
}

func encodeReminder(r *reminder.Reminder) (json.RawMessage, error) {
	return marshal(reminderDoc{
		ID:        r.ID,
		Author:    r.Author,
		Message:   r.Message,
		FireAt:    r.FireAt,
		CreatedAt: r.CreatedAt,
	})
}

func decodeReminder(raw json.RawMessage) (*reminder.Reminder, error) {
	var doc reminderDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding reminder: %w", err)
	}
	return &reminder.Reminder{
		ID:        doc.ID,
		Author:    doc.Author,
		Message:   doc.Message,
		FireAt:    doc.FireAt,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func marshal(v any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return b, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
