package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sellerconsole/internal/types"
)

func TestNextOption(t *testing.T) {
	options := []string{"all", "new", "contacted"}

	assert.Equal(t, "new", nextOption(options, "all"))
	assert.Equal(t, "all", nextOption(options, "contacted"), "wraps around")
	assert.Equal(t, "all", nextOption(options, "bogus"), "unknown resets to the first option")
}

func TestNextStatusFilter(t *testing.T) {
	// The full cycle visits "all" plus every status exactly once.
	seen := map[string]bool{}
	current := types.StatusAll
	for i := 0; i <= len(types.LeadStatuses); i++ {
		seen[current] = true
		current = nextStatusFilter(current)
	}
	assert.Len(t, seen, len(types.LeadStatuses)+1)
	assert.Equal(t, types.StatusAll, current, "cycle returns to the sentinel")
}

func TestCycleStatus(t *testing.T) {
	assert.Equal(t, types.StatusContacted, cycleStatus(types.StatusNew, 1))
	assert.Equal(t, types.StatusConverted, cycleStatus(types.StatusNew, -1), "wraps backwards")
	assert.Equal(t, types.StatusNew, cycleStatus("bogus", 1))
}

func TestCycleStage(t *testing.T) {
	assert.Equal(t, types.StageProposal, cycleStage(types.StageProspecting, 1))
	assert.Equal(t, types.StageLost, cycleStage(types.StageProspecting, -1))
}

func TestNextOppField(t *testing.T) {
	assert.Equal(t, oppFieldAccount, nextOppField(oppFieldName, 1))
	assert.Equal(t, oppFieldAmount, nextOppField(oppFieldName, -1), "wraps backwards")
	assert.Equal(t, oppFieldName, nextOppField(oppFieldAmount, 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, clamp(5, 0, 3))
	assert.Equal(t, 0, clamp(-1, 0, 3))
	assert.Equal(t, 2, clamp(2, 0, 3))
	assert.Equal(t, 0, clamp(2, 0, -1), "empty range collapses to the low bound")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "L1", shortID("L1"))
	assert.Equal(t, "abcdefgh", shortID("abcdefgh-1234-uuid"))
}
