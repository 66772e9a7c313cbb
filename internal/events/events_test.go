package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch chan string) Event {
	t.Helper()
	select {
	case msg := <-ch:
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(msg), &ev))
		return ev
	default:
		t.Fatal("no event buffered")
		return Event{}
	}
}

func TestSourceSettledPublishesPerSourceOutcome(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	h.SourceSettled("golang", "jsearch", false, 0, 12, "boom")
	h.SourceSettled("golang", "adzuna", true, 3, 40, "")

	ev := recv(t, ch)
	assert.Equal(t, TypeSourceSettled, ev.Type)

	var data map[string]any
	require.NoError(t, json.Unmarshal(ev.Data, &data))
	assert.Equal(t, "jsearch", data["source"])
	assert.Equal(t, false, data["success"])
	assert.Equal(t, "boom", data["error"])

	ev = recv(t, ch)
	var second map[string]any
	require.NoError(t, json.Unmarshal(ev.Data, &second))
	assert.Equal(t, "adzuna", second["source"])
	assert.Equal(t, float64(3), second["count"])
	assert.NotContains(t, second, "error")
}

func TestPublishDropsWhenSubscriberFull(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	for i := 0; i < 40; i++ {
		h.Publish(TypeRefreshTick, nil)
	}

	drained := 0
	for {
		select {
		case <-ch:
			drained++
			continue
		default:
		}
		break
	}
	assert.Equal(t, cap(ch), drained)
}
