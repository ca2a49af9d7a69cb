package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boss-brief-api/internal/domain/entity"
)

func testWorker(id string) *entity.Worker {
	return &entity.Worker{
		ID:   id,
		Name: "テスト編集者",
		Capabilities: []entity.Capability{{
			ID:        "c1",
			WorkerID:  id,
			Type:      "video_edit",
			Platforms: []string{"TikTok", "Reels"},
			Tools:     []string{"Premiere"},
			Strengths: []string{"Hook", "Captions"},
		}},
	}
}

func TestDeriveProfileDeterministic(t *testing.T) {
	w := testWorker("8f14e45f-ceea-4e2e-a0f9-92b1b4a0c9d3")
	assert.Equal(t, DeriveProfile(w), DeriveProfile(w))
}

func TestDeriveProfileVariesByID(t *testing.T) {
	a := DeriveProfile(testWorker("worker-a"))
	b := DeriveProfile(testWorker("worker-b"))
	assert.NotEqual(t, a, b)
}

func TestDeriveProfileShape(t *testing.T) {
	p := DeriveProfile(testWorker("w1"))

	assert.GreaterOrEqual(t, p.Level, 5)
	assert.LessOrEqual(t, p.Level, 42)
	assert.GreaterOrEqual(t, p.XPProgress, 10)
	assert.LessOrEqual(t, p.XPProgress, 95)
	assert.Contains(t, editorClasses, p.EditorClass)

	require.Len(t, p.Stats, 6)
	for _, s := range p.Stats {
		assert.GreaterOrEqual(t, s.Value, 40)
		assert.LessOrEqual(t, s.Value, 95)
	}

	// スキルは capability のタグから
	names := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		names[i] = s.Name
		assert.GreaterOrEqual(t, s.Proficiency, 30)
		assert.LessOrEqual(t, s.Proficiency, 98)
	}
	assert.Equal(t, []string{"TikTok", "Reels", "Premiere", "Hook", "Captions"}, names)

	assert.GreaterOrEqual(t, len(p.Badges), 3)
	assert.LessOrEqual(t, len(p.Badges), 5)

	// 装備はスロット重複なしの 4 枠
	require.Len(t, p.Equipment, 4)
	slots := map[string]bool{}
	for _, eq := range p.Equipment {
		assert.False(t, slots[eq.Slot])
		slots[eq.Slot] = true
		assert.Contains(t, rarities, eq.Rarity)
	}

	require.Len(t, p.ActivityLog, 5)
	for i, a := range p.ActivityLog {
		assert.Equal(t, timeAgoOptions[i], a.TimeAgo)
		assert.GreaterOrEqual(t, a.XPDelta, 10)
		assert.LessOrEqual(t, a.XPDelta, 60)
	}
}

func TestDeriveProfileFallbackSkills(t *testing.T) {
	p := DeriveProfile(&entity.Worker{ID: "w-empty", Name: "n"})

	names := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Editing", "Color", "Transitions", "Pacing"}, names)
}
