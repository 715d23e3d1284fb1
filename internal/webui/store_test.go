package webui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgfriperie/xmlsheets/internal/nfe"
)

func TestStorePutTake(t *testing.T) {
	st := newSessionStore(time.Minute)
	records := []nfe.LineRecord{{NFNumber: "1", ProductCode: "A"}}

	token := st.put(records)
	require.NotEmpty(t, token)

	got, ok := st.take(token)
	require.True(t, ok)
	assert.Equal(t, records, got)

	// Consumed on first take.
	_, ok = st.take(token)
	assert.False(t, ok)
}

func TestStoreUnknownToken(t *testing.T) {
	st := newSessionStore(time.Minute)
	_, ok := st.take("missing")
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	st := newSessionStore(time.Nanosecond)
	token := st.put([]nfe.LineRecord{{NFNumber: "1"}})

	time.Sleep(5 * time.Millisecond)

	_, ok := st.take(token)
	assert.False(t, ok)
}

func TestStoreTokensAreUnique(t *testing.T) {
	st := newSessionStore(time.Minute)
	a := st.put(nil)
	b := st.put(nil)
	assert.NotEqual(t, a, b)
}
