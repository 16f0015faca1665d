package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avvvet/dsbuddy/internal/dataset"
	"github.com/avvvet/dsbuddy/internal/models"
)

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Path:    "data.csv",
		Columns: []string{"age", "income", "churn"},
		Rows:    [][]string{{"34", "52000", "0"}, {"29", "48000", "1"}},
	}
}

func TestBuildFixedPrompts(t *testing.T) {
	assert.Contains(t, BuildPreprocessing(), "preprocessing steps")
	assert.Contains(t, BuildHyperparameterTuning(), "hyperparameter tuning")
}

func TestBuildTrainModel(t *testing.T) {
	prompt := BuildTrainModel("random_forest", testDataset(), "churn")

	assert.Contains(t, prompt, "random_forest")
	assert.Contains(t, prompt, "'churn'")
	assert.Contains(t, prompt, "age, income, churn")
	assert.Contains(t, prompt, "Rows: 2")
	assert.Contains(t, prompt, "data.csv")
	assert.Contains(t, prompt, "code block only, no prose")
}

func TestBuildEDA(t *testing.T) {
	with := BuildEDA(testDataset(), "scatter, heatmap")
	assert.Contains(t, with, "Include scatter, heatmap plots")

	without := BuildEDA(testDataset(), "")
	assert.NotContains(t, without, "Include")
	assert.Contains(t, without, "exploratory data analysis")
}

func TestBuildDispatch(t *testing.T) {
	prompt := Build(models.IntentSuggestPreprocessing, Params{})
	assert.Equal(t, BuildPreprocessing(), prompt)

	prompt = Build(models.IntentTrainModel, Params{
		ModelName:    "xgboost",
		TargetColumn: "churn",
		Dataset:      testDataset(),
	})
	assert.Contains(t, prompt, "xgboost")
}

func TestBuildUnknownIntentPanics(t *testing.T) {
	require.Panics(t, func() {
		Build(models.IntentLoad, Params{})
	})
}
