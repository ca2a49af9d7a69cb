package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boss-brief-api/internal/domain/entity"
)

func TestCheckReadinessComplete(t *testing.T) {
	w := testWorker("w1")
	w.Status = entity.WorkerStatusAvailable

	r := CheckReadiness(w)
	assert.Equal(t, 100, r.Pct)
	assert.Empty(t, r.Missing)
}

func TestCheckReadinessEmptyWorker(t *testing.T) {
	r := CheckReadiness(&entity.Worker{})
	assert.Equal(t, 0, r.Pct)
	assert.Equal(t, []string{"Name", "Status", "Platforms", "Tools", "Strengths"}, r.Missing)
}

func TestCheckReadinessPartial(t *testing.T) {
	w := &entity.Worker{
		Name:   "  ",
		Status: entity.WorkerStatusBusy,
		Capabilities: []entity.Capability{{
			Platforms: []string{"YouTube"},
			Tools:     []string{"DaVinci"},
		}},
	}

	r := CheckReadiness(w)
	// 5 項目中 3 項目充足
	assert.Equal(t, 60, r.Pct)
	assert.Equal(t, []string{"Name", "Strengths"}, r.Missing)
}
