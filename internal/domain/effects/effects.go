// Package effects describes the advisory side effects of a lifecycle
// transition as data. Use cases return them after the state change commits;
// the dispatcher performs them independently so none can undo the change.
package effects

import (
	"fmt"

	"plaiz_studio/internal/domain/entities"
)

// Effect is one side effect to run after a committed transition.
type Effect interface {
	EffectType() string
	// Key identifies the effect for deduplication across retries and racing writers.
	Key() string
}

// ChatMessage is a system-authored line in the project's conversation.
// Subject is the record the line is about (agreement, payment or payout id).
type ChatMessage struct {
	ProjectID      string
	ConversationID string
	Subject        string
	Body           string
	Reason         string
}

func (e ChatMessage) EffectType() string { return "chat_message" }
func (e ChatMessage) Key() string {
	return fmt.Sprintf("chat:%s:%s", scope(e.ProjectID, e.Subject), e.Reason)
}

// Notification is an inbox entry for the counter-party of the caller.
type Notification struct {
	RecipientID   string
	RecipientRole entities.Role
	ProjectID     string
	Subject       string
	Kind          string
	Title         string
	Body          string
}

func (e Notification) EffectType() string { return "notification" }
func (e Notification) Key() string {
	to := e.RecipientID
	if to == "" {
		to = "role:" + string(e.RecipientRole)
	}
	return fmt.Sprintf("notify:%s:%s:%s", scope(e.ProjectID, e.Subject), e.Kind, to)
}

func scope(projectID, subject string) string {
	if subject == "" {
		return projectID
	}
	return projectID + "/" + subject
}

// About stamps subject on the chat and notification effects of effs, so that
// repeated rounds over distinct records never share a dedupe key.
func About(subject string, effs ...Effect) []Effect {
	out := make([]Effect, 0, len(effs))
	for _, e := range effs {
		switch v := e.(type) {
		case ChatMessage:
			v.Subject = subject
			e = v
		case Notification:
			v.Subject = subject
			e = v
		}
		out = append(out, e)
	}
	return out
}

// ChangeEvent tells realtime subscribers that an aggregate changed and should
// be re-fetched. It carries no state beyond the identifiers.
type ChangeEvent struct {
	Table     string
	RecordID  string
	ProjectID string
	Status    string
}

func (e ChangeEvent) EffectType() string { return "change_event" }
func (e ChangeEvent) Key() string {
	return fmt.Sprintf("change:%s:%s:%s", e.Table, e.RecordID, e.Status)
}

// Outbox accumulates the effects of one operation in emission order.
type Outbox struct {
	effects []Effect
}

func (o *Outbox) Add(e ...Effect) {
	o.effects = append(o.effects, e...)
}

func (o *Outbox) Effects() []Effect {
	if o == nil {
		return nil
	}
	return append([]Effect(nil), o.effects...)
}

// ForTransition builds the standard effect set of a project status change:
// a chat line, a notification to the counter-party and a change event.
func ForTransition(p entities.Project, from entities.ProjectStatus, actor entities.Session, kind, body string) []Effect {
	out := []Effect{
		ChangeEvent{Table: "projects", RecordID: p.ID, ProjectID: p.ID, Status: string(p.Status)},
	}
	if p.ConversationID != "" && body != "" {
		out = append(out, ChatMessage{
			ProjectID:      p.ID,
			ConversationID: p.ConversationID,
			Body:           body,
			Reason:         fmt.Sprintf("%s:%s->%s", kind, from, p.Status),
		})
	}
	out = append(out, notificationsFor(p, actor, kind, body)...)
	return out
}

// notificationsFor addresses the parties other than the actor.
func notificationsFor(p entities.Project, actor entities.Session, kind, body string) []Effect {
	title := fmt.Sprintf("%s: %s", p.Title, p.Status.DisplayName())
	var out []Effect
	if p.ClientID != "" && p.ClientID != actor.UserID {
		out = append(out, Notification{RecipientID: p.ClientID, ProjectID: p.ID, Kind: kind, Title: title, Body: body})
	}
	if p.WorkerID != "" && p.WorkerID != actor.UserID {
		out = append(out, Notification{RecipientID: p.WorkerID, ProjectID: p.ID, Kind: kind, Title: title, Body: body})
	}
	if !actor.IsAdmin() && len(out) == 0 {
		out = append(out, Notification{RecipientRole: entities.RoleAdmin, ProjectID: p.ID, Kind: kind, Title: title, Body: body})
	}
	return out
}
