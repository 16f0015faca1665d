package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/avvvet/dsbuddy/internal/dataset"
	"github.com/avvvet/dsbuddy/internal/llm"
	"github.com/avvvet/dsbuddy/internal/models"
	"github.com/avvvet/dsbuddy/internal/prompts"
)

const exitKeyword = "exit"

// Runner executes a code string and reports the outcome in-band.
type Runner interface {
	Execute(ctx context.Context, code string) models.ExecutionResult
}

// Session drives the Loader -> Prompt Builder -> Gateway -> Sandbox chain
// and reports results to the user. Every dispatch error is contained here:
// converted to a diagnostic line and handed back typed for exit-code
// mapping, never allowed to crash the process. The only state carried
// across interactive turns is the turn counter.
type Session struct {
	provider llm.Provider
	runner   Runner
	loader   *dataset.Loader
	logger   *slog.Logger

	// In and Out default to the process stdio; tests swap them out.
	In  io.Reader
	Out io.Writer

	turns int
}

func New(provider llm.Provider, runner Runner, loader *dataset.Loader, logger *slog.Logger) *Session {
	return &Session{
		provider: provider,
		runner:   runner,
		loader:   loader,
		logger:   logger,
		In:       os.Stdin,
		Out:      os.Stdout,
	}
}

// Turns returns how many conversations this session has dispatched.
func (s *Session) Turns() int {
	return s.turns
}

// Interactive reads user lines until the exit keyword or EOF. Each line is
// an independent single-turn conversation; no history is sent to the model.
func (s *Session) Interactive(ctx context.Context) error {
	sessionID := uuid.New().String()
	s.logger.Info("starting interactive session", "session_id", sessionID)

	banner := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintln(s.Out, "=======================================================================")
	fmt.Fprintln(s.Out, banner("Starting Interactive Session with LLM"))
	fmt.Fprintf(s.Out, "Type your request and press Enter. Type '%s' to quit.\n", exitKeyword)
	fmt.Fprintln(s.Out, "=======================================================================")

	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, "USER>> ")
		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.EqualFold(query, exitKeyword) {
			break
		}

		reply, err := s.chat(ctx, query)
		if err != nil {
			s.report(err)
			continue
		}
		s.printReply(reply)
	}

	s.logger.Info("interactive session ended", "session_id", sessionID, "turns", s.turns)
	return scanner.Err()
}

// Load loads the file and reports its shape. No model call is involved.
func (s *Session) Load(path string) error {
	fmt.Fprintf(s.Out, "Loading data from %s...\n", path)

	ds, err := s.loader.Load(path)
	if err != nil {
		s.report(err)
		return err
	}

	rows, cols := ds.Shape()
	fmt.Fprintf(s.Out, "Loaded %d rows and %d columns.\n", rows, cols)
	return nil
}

// Suggest dispatches one of the fixed-prompt intents and prints the reply.
func (s *Session) Suggest(ctx context.Context, task string) error {
	var instruction string
	switch task {
	case "preprocessing":
		instruction = prompts.BuildPreprocessing()
	case "hyperparameter_tuning":
		instruction = prompts.BuildHyperparameterTuning()
	default:
		err := &models.ValidationError{Reason: fmt.Sprintf("unknown suggestion task %q", task)}
		s.report(err)
		return err
	}

	reply, err := s.chat(ctx, instruction)
	if err != nil {
		s.report(err)
		return err
	}
	s.printReply(reply)
	return nil
}

// Train asks the model for training code and executes it. The dataset must
// load and contain the target column before the gateway is contacted.
func (s *Session) Train(ctx context.Context, modelName, path, target string) error {
	ds, err := s.loader.Load(path)
	if err != nil {
		s.report(err)
		return err
	}

	if !ds.HasColumn(target) {
		err := &models.ValidationError{Reason: fmt.Sprintf("target column '%s' not found in the dataset", target)}
		s.report(err)
		return err
	}

	instruction := prompts.BuildTrainModel(modelName, ds, target)
	return s.generateAndRun(ctx, instruction)
}

// EDA asks the model for an exploratory analysis report and executes it.
func (s *Session) EDA(ctx context.Context, path, plotSpec string) error {
	ds, err := s.loader.Load(path)
	if err != nil {
		s.report(err)
		return err
	}

	instruction := prompts.BuildEDA(ds, plotSpec)
	return s.generateAndRun(ctx, instruction)
}

// generateAndRun completes the instruction, extracts the code block from the
// reply, and runs it in the sandbox.
func (s *Session) generateAndRun(ctx context.Context, instruction string) error {
	reply, err := s.chat(ctx, instruction)
	if err != nil {
		s.report(err)
		return err
	}
	s.printReply(reply)

	code, err := prompts.ExtractCode(reply)
	if err != nil {
		execErr := &models.ExecutionError{Reason: err.Error()}
		s.report(execErr)
		return execErr
	}

	result := s.runner.Execute(ctx, code)
	if result.Failed() {
		s.report(result.Err)
		if result.Output != "" {
			fmt.Fprintln(s.Out, result.Output)
		}
		return result.Err
	}

	fmt.Fprintln(s.Out, result.Output)
	return nil
}

// chat sends one fresh two-message conversation and counts the turn.
func (s *Session) chat(ctx context.Context, query string) (string, error) {
	conv := models.NewConversation(prompts.SystemPrompt, query)
	reply, err := s.provider.Complete(ctx, conv)
	if err != nil {
		return "", err
	}
	s.turns++
	return reply, nil
}

func (s *Session) printReply(reply string) {
	label := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(s.Out, "%s\n%s\n", label("LLM Response:"), reply)
}

// report converts any dispatch failure into a user-facing diagnostic line.
func (s *Session) report(err error) {
	errLabel := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(s.Out, "%s %v\n", errLabel("Error:"), err)
	s.logger.Debug("dispatch failed", "error", err)
}
