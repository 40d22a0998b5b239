package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicSimpleCreateTask(t *testing.T) {
	score, reasoning := Heuristic(Input{
		Title:       "Create simple add function",
		Description: "create a function add(a, b) that returns a+b",
		TaskType:    "code",
		Priority:    5,
	})

	// create -0.5, add -0.5, simple -0.5, type code +1, priority +0.25
	// sums below the floor, so the score clamps to the minimum.
	assert.Equal(t, MinComplexity, score)
	assert.Contains(t, reasoning, `low "create"`)
	assert.Contains(t, reasoning, "type code")
}

func TestHeuristicHighSignalKeywords(t *testing.T) {
	score, reasoning := Heuristic(Input{
		Title:       "Refactor the storage layer",
		Description: "refactor the database access behind a new api",
		TaskType:    "code",
		Priority:    0,
	})

	// refactor +2, database +2, api +2, type code +1
	assert.InDelta(t, 7.0, score, 0.001)
	assert.Contains(t, reasoning, `high-signal "refactor"`)
}

func TestHeuristicNumberedSteps(t *testing.T) {
	withSteps, _ := Heuristic(Input{
		Title:       "Migration plan",
		Description: "Step 1: dump the data. Step 2: load it. Step 3: verify counts.",
		TaskType:    "code",
	})
	without, _ := Heuristic(Input{
		Title:       "Migration plan",
		Description: "dump the data, load it, verify counts",
		TaskType:    "code",
	})

	// three "Step N:" markers add 0.5 each
	assert.InDelta(t, 1.5, withSteps-without, 0.001)
}

func TestHeuristicStepPatternCaseInsensitive(t *testing.T) {
	a, _ := Heuristic(Input{Description: "STEP 1: one thing", TaskType: "code"})
	b, _ := Heuristic(Input{Description: "step 1: one thing", TaskType: "code"})
	assert.Equal(t, a, b)
}

func TestHeuristicTaskTypeWeights(t *testing.T) {
	base := Input{Title: "x", Description: "y", Priority: 0}

	codeIn := base
	codeIn.TaskType = "code"
	testIn := base
	testIn.TaskType = "test"
	reviewIn := base
	reviewIn.TaskType = "review"

	codeScore, _ := Heuristic(codeIn)
	testScore, _ := Heuristic(testIn)
	reviewScore, _ := Heuristic(reviewIn)

	// "test" in the type also matches the medium keyword list only via text,
	// and "x y" contains none, so the spread is purely the type weight.
	assert.InDelta(t, 0.5, testScore-codeScore, 0.001)
	assert.InDelta(t, 1.0, reviewScore-codeScore, 0.001)
}

func TestHeuristicIterationBump(t *testing.T) {
	first, _ := Heuristic(Input{
		Title: "Fix the flaky handler", Description: "fix it", TaskType: "code",
	})
	second, _ := Heuristic(Input{
		Title: "Fix the flaky handler", Description: "fix it", TaskType: "code",
		CurrentIteration: 2,
	})

	// each prior failed attempt adds 1.5
	assert.InDelta(t, 3.0, second-first, 0.001)
}

func TestHeuristicClampUpper(t *testing.T) {
	score, _ := Heuristic(Input{
		Title: "Everything at once",
		Description: "refactor the architecture, redesign the api and database, " +
			"integrate multi-file changes, test, verify, validate, debug",
		TaskType:         "review",
		Priority:         10,
		CurrentIteration: 2,
	})
	assert.Equal(t, MaxComplexity, score)
}

func TestHeuristicNoSignals(t *testing.T) {
	score, reasoning := Heuristic(Input{Title: "qq", Description: "zz"})
	assert.Equal(t, MinComplexity, score)
	assert.Contains(t, reasoning, "no signals")
}

func TestHeuristicKeywordCountedOncePerKeyword(t *testing.T) {
	once, _ := Heuristic(Input{
		Title: "api", Description: "the api", TaskType: "code",
	})
	thrice, _ := Heuristic(Input{
		Title: "api api", Description: "api api api", TaskType: "code",
	})
	assert.Equal(t, once, thrice)
}
