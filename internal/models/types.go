package models

// Intent is the user's selected high-level request type. It is chosen once
// per invocation and never changes while a request is in flight.
type Intent string

const (
	IntentInteractiveChat        Intent = "interactive-chat"
	IntentLoad                   Intent = "load"
	IntentSuggestPreprocessing   Intent = "suggest-preprocessing"
	IntentSuggestHyperparameters Intent = "suggest-hyperparameters"
	IntentTrainModel             Intent = "train-model"
	IntentGenerateEDA            Intent = "generate-eda"
)

// Message roles
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged entry in a Conversation.
type Message struct {
	Role    string
	Content string
}

// Conversation is the ordered message sequence sent to the model for one
// completion. It is constructed fresh per request; no history is carried
// between turns, even in interactive mode.
type Conversation []Message

// NewConversation builds the standard two-message conversation: the fixed
// system persona followed by the user instruction.
func NewConversation(systemPrompt, userPrompt string) Conversation {
	return Conversation{
		{Role: RoleSystem, Content: systemPrompt},
		{Role: RoleUser, Content: userPrompt},
	}
}

// ExecutionResult is the outcome of running a completion as code: captured
// output on success, or the execution failure. It is request-scoped and
// never persisted.
type ExecutionResult struct {
	Output string
	Err    error
}

// Failed reports whether the execution produced a failure.
func (r ExecutionResult) Failed() bool {
	return r.Err != nil
}
