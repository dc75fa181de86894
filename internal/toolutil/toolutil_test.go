package toolutil

import (
	"context"
	"testing"
	"time"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormLang(t *testing.T) {
	engine.Init(engine.Config{DefaultLanguage: "de"})
	assert.Equal(t, "fr", NormLang(" FR "))
	assert.Equal(t, "de", NormLang(""))

	engine.Init(engine.Config{})
	assert.Equal(t, "en", NormLang(""))
}

func TestNormTopN(t *testing.T) {
	engine.Init(engine.Config{DefaultTopN: 3})
	assert.Equal(t, 7, NormTopN(7))
	assert.Equal(t, 3, NormTopN(0))
	assert.Equal(t, 3, NormTopN(-2))

	engine.Init(engine.Config{})
	assert.Equal(t, 5, NormTopN(0))
}

func TestNormLevel(t *testing.T) {
	assert.Equal(t, "beginner", NormLevel(""))
	assert.Equal(t, "intermediate", NormLevel(" Intermediate "))
	assert.Equal(t, "expert", NormLevel("EXPERT"))
}

func TestOpenSession(t *testing.T) {
	engine.InitSessions("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	fresh := OpenSession(ctx, "")
	assert.NotEmpty(t, fresh.ID)

	named := OpenSession(ctx, "client-chosen")
	assert.Equal(t, "client-chosen", named.ID)
	assert.Empty(t, named.ChatMessages)

	named.TutorialQuery = "go"
	engine.SessionSave(ctx, named)
	assert.Equal(t, "go", OpenSession(ctx, "client-chosen").TutorialQuery)
}

func TestRequireSession(t *testing.T) {
	engine.InitSessions("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	_, err := RequireSession(ctx, "")
	assert.Error(t, err)

	_, err = RequireSession(ctx, "missing")
	assert.ErrorIs(t, err, engine.ErrSessionNotFound)

	engine.SessionSave(ctx, engine.SessionState{ID: "present"})
	st, err := RequireSession(ctx, "present")
	require.NoError(t, err)
	assert.Equal(t, "present", st.ID)
}
