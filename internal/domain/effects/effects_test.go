package effects

import (
	"testing"

	"plaiz_studio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForTransition(t *testing.T) {
	p := entities.Project{ID: "p1", ClientID: "c1", WorkerID: "w1", Title: "Logo", Status: entities.ProjectStatusInProgress, ConversationID: "conv"}

	t.Run("client action notifies the worker", func(t *testing.T) {
		effs := ForTransition(p, entities.ProjectStatusPendingDownPayment, entities.Session{UserID: "c1", Role: entities.RoleClient}, "deposit", "paid")
		require.Len(t, effs, 3)
		assert.Equal(t, ChangeEvent{Table: "projects", RecordID: "p1", ProjectID: "p1", Status: "in_progress"}, effs[0])
		chat, ok := effs[1].(ChatMessage)
		require.True(t, ok)
		assert.Equal(t, "conv", chat.ConversationID)
		n, ok := effs[2].(Notification)
		require.True(t, ok)
		assert.Equal(t, "w1", n.RecipientID)
	})

	t.Run("admin action notifies both parties", func(t *testing.T) {
		effs := ForTransition(p, entities.ProjectStatusInProgress, entities.Session{UserID: "a1", Role: entities.RoleAdmin}, "flag", "flagged")
		assert.Len(t, effs, 4)
	})

	t.Run("no conversation means no chat", func(t *testing.T) {
		q := p
		q.ConversationID = ""
		q.WorkerID = ""
		effs := ForTransition(q, entities.ProjectStatusPending, entities.Session{UserID: "c1", Role: entities.RoleClient}, "created", "hello")
		require.Len(t, effs, 2)
		n := effs[1].(Notification)
		assert.Equal(t, entities.RoleAdmin, n.RecipientRole)
		assert.Empty(t, n.RecipientID)
	})
}

func TestKeys(t *testing.T) {
	a := Notification{ProjectID: "p1", Kind: "k", RecipientID: "u1"}
	b := Notification{ProjectID: "p1", Kind: "k", RecipientRole: entities.RoleAdmin}
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, "change:projects:p1:completed", ChangeEvent{Table: "projects", RecordID: "p1", Status: "completed"}.Key())

	var o Outbox
	o.Add(a, b)
	got := o.Effects()
	got[0] = nil
	assert.NotNil(t, o.Effects()[0])
}

func TestAbout_SeparatesRounds(t *testing.T) {
	p := entities.Project{ID: "p1", ClientID: "c1", WorkerID: "w1", Title: "Logo", Status: entities.ProjectStatusPendingAgreement, ConversationID: "conv"}
	worker := entities.Session{UserID: "w1", Role: entities.RoleWorker}

	first := About("agr-1", ForTransition(p, p.Status, worker, "price_proposed", "Price proposed")...)
	second := About("agr-2", ForTransition(p, p.Status, worker, "price_proposed", "Price proposed")...)
	require.Len(t, first, len(second))

	seen := map[string]bool{}
	for _, e := range append(first, second...) {
		if _, ok := e.(ChangeEvent); ok {
			continue
		}
		assert.False(t, seen[e.Key()], "duplicate key %s", e.Key())
		seen[e.Key()] = true
	}
	assert.Len(t, seen, 4)

	chat := first[1].(ChatMessage)
	assert.Equal(t, "agr-1", chat.Subject)
	assert.Equal(t, "chat:p1/agr-1:price_proposed:pending_agreement->pending_agreement", chat.Key())
	assert.Equal(t, first[0], second[0], "change events are left alone")
}
