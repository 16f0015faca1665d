package prompts

import (
	"fmt"
	"strings"

	"github.com/avvvet/dsbuddy/internal/dataset"
	"github.com/avvvet/dsbuddy/internal/models"
)

// SystemPrompt is the fixed persona sent as the first message of every
// conversation.
const SystemPrompt = `You are an assistant for question-answering tasks.
If you don't know the answer, say that you don't know.
Use three sentences maximum and keep the answer concise.
You are also a coding assistant for data science work: when asked for code,
respond with a single fenced Python code block and nothing else.`

const preprocessingPrompt = `Suggest the best preprocessing steps for a CSV dataset.`

const hyperparameterTuningPrompt = `Suggest hyperparameter tuning steps for a llama 3.2 model.`

const trainModelPrompt = `Create Python code to train a %s model on the dataset described below, using '%s' as the target variable.

%s

Assume the full dataset can be loaded with pandas from '%s'.
Respond with a single fenced Python code block only, no prose.`

const edaPrompt = `Generate an exploratory data analysis (EDA) report as Python code for the dataset described below.

%s

Assume the full dataset can be loaded with pandas from '%s'.%s
Respond with a single fenced Python code block only, no prose.`

// summaryRows caps how many sample rows are embedded in an instruction.
const summaryRows = 5

// Params carries the contextual inputs a templated intent may need.
type Params struct {
	ModelName    string
	TargetColumn string
	PlotSpec     string
	Dataset      *dataset.Dataset
}

// Build maps an intent plus its parameters to a finished instruction.
// An unknown intent is a programming error and panics.
func Build(intent models.Intent, params Params) string {
	switch intent {
	case models.IntentSuggestPreprocessing:
		return BuildPreprocessing()
	case models.IntentSuggestHyperparameters:
		return BuildHyperparameterTuning()
	case models.IntentTrainModel:
		return BuildTrainModel(params.ModelName, params.Dataset, params.TargetColumn)
	case models.IntentGenerateEDA:
		return BuildEDA(params.Dataset, params.PlotSpec)
	}
	panic(fmt.Sprintf("prompts: no template for intent %q", intent))
}

func BuildPreprocessing() string {
	return preprocessingPrompt
}

func BuildHyperparameterTuning() string {
	return hyperparameterTuningPrompt
}

// BuildTrainModel embeds a schema/sample summary of the dataset rather than
// the raw table, so large files cannot blow the model context.
func BuildTrainModel(modelName string, ds *dataset.Dataset, target string) string {
	return fmt.Sprintf(trainModelPrompt, modelName, target, ds.Summary(summaryRows), ds.Path)
}

func BuildEDA(ds *dataset.Dataset, plotSpec string) string {
	plotClause := ""
	if strings.TrimSpace(plotSpec) != "" {
		plotClause = fmt.Sprintf("\nInclude %s plots if applicable.", plotSpec)
	}
	return fmt.Sprintf(edaPrompt, ds.Summary(summaryRows), ds.Path, plotClause)
}
