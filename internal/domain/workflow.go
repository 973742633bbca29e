// Package domain contains the exercise verification core: the assertion
// toolkit, the rule-set contract, the exercise registry and the workflow
// driving them.
package domain

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/gitex/internal/controller"
	m "github.com/mouse-blink/gitex/internal/model"
)

// ErrVerificationFailed is returned once results were displayed and at least
// one of them did not pass.
var ErrVerificationFailed = errors.New("verification failed")

// VerifyArgs identifies a single revision range to verify.
type VerifyArgs struct {
	Exercise string
	Old      m.Revision
	New      m.Revision
}

// HookArgs holds the ref updates received by a pre-receive hook.
type HookArgs struct {
	Updates []m.RefUpdate
	Threads int
}

// HintsArgs selects the exercise whose hints are shown.
type HintsArgs struct {
	Exercise string
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Verify(args VerifyArgs) error
	Hook(args HookArgs) error
	List() error
	Hints(args HintsArgs) error
}

type workflow struct {
	factory  Factory
	registry *Registry
	ui       controller.UI
	logger   *zap.Logger
}

// NewWorkflow creates a Workflow verifying exercises registered in registry.
func NewWorkflow(factory Factory, registry *Registry, ui controller.UI, logger *zap.Logger) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		factory:  factory,
		registry: registry,
		ui:       ui,
		logger:   logger,
	}
}

// Verify checks one revision range. An unknown exercise is returned as is,
// before anything is displayed.
func (w *workflow) Verify(args VerifyArgs) error {
	v, err := w.factory.Create(args.Exercise, args.Old, args.New)
	if err != nil {
		w.logger.Warn("exercise did not resolve", zap.String("exercise", args.Exercise), zap.Error(err))
		return err
	}

	result := w.run(v, args.Exercise)
	w.ui.DisplayResult(result)

	if !result.Passed() {
		return ErrVerificationFailed
	}

	return nil
}

// Hook verifies every pushed ref. Each update gets its own Verification, so
// they run concurrently on up to Threads workers.
func (w *workflow) Hook(args HookArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	updates := make([]m.RefUpdate, 0, len(args.Updates))

	for _, update := range args.Updates {
		if update.IsDeletion() {
			w.logger.Debug("skipping deleted ref", zap.String("ref", update.Ref))
			continue
		}

		updates = append(updates, update)
	}

	if len(updates) == 0 {
		w.logger.Info("no refs to verify")
		return nil
	}

	if err := w.ui.Start(); err != nil {
		return err
	}

	w.ui.DisplayConcurrencyInfo(threads, len(updates))

	results := make([]m.Result, len(updates))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, update := range updates {
		i, update := i, update

		g.Go(func() error {
			w.ui.DisplayStartingRef(update)
			results[i] = w.verifyUpdate(update)
			w.ui.DisplayCompletedRef(results[i])

			return nil
		})
	}

	_ = g.Wait()

	w.ui.DisplaySummary(results)
	w.ui.Close()
	w.ui.Wait()

	for _, result := range results {
		if !result.Passed() {
			return ErrVerificationFailed
		}
	}

	return nil
}

// List displays every registered exercise.
func (w *workflow) List() error {
	names := w.registry.Names()
	exercises := make([]m.Exercise, 0, len(names))

	for _, name := range names {
		v, err := w.factory.Create(name, "", "")
		if err != nil {
			return err
		}

		_, found, err := v.Hints()
		if err != nil {
			w.logger.Warn("hint lookup failed", zap.String("exercise", name), zap.Error(err))
		}

		exercises = append(exercises, m.Exercise{
			Name:      name,
			ShortInfo: v.ShortInfo(),
			HasHints:  found,
		})
	}

	return w.ui.DisplayExercises(exercises)
}

// Hints displays the hint text of one exercise.
func (w *workflow) Hints(args HintsArgs) error {
	v, err := w.factory.Create(args.Exercise, "", "")
	if err != nil {
		return err
	}

	text, found, err := v.Hints()
	if err != nil {
		return err
	}

	w.ui.DisplayHints(v.Exercise(), text, found)

	return nil
}

func (w *workflow) verifyUpdate(update m.RefUpdate) m.Result {
	v, err := w.factory.Create(update.Ref, update.Old, update.New)
	if err != nil {
		w.logger.Warn("exercise did not resolve", zap.String("ref", update.Ref), zap.Error(err))

		return m.Result{
			Ref:    update.Ref,
			Range:  update.Range(),
			Status: m.StatusError,
			Err:    err,
		}
	}

	return w.run(v, update.Ref)
}

func (w *workflow) run(v *Verification, ref string) m.Result {
	rng := v.Range()
	logger := w.logger.With(
		zap.String("exercise", v.Exercise()),
		zap.String("old", string(rng.Old)),
		zap.String("new", string(rng.New)),
	)

	result := m.Result{
		Exercise:  v.Exercise(),
		Ref:       ref,
		Range:     rng,
		ShortInfo: v.ShortInfo(),
	}

	logger.Debug("verifying exercise")

	err := v.Verify()

	var failure *m.Failure

	switch {
	case err == nil:
		result.Status = m.StatusPassed

		committer, cerr := v.CommitterName("")
		if cerr != nil {
			logger.Warn("committer lookup failed", zap.Error(cerr))
		}

		result.Committer = committer
	case errors.As(err, &failure):
		result.Status = m.StatusFailed
		result.Failure = failure
		result.Hints = w.hintsFor(v, logger)
	default:
		result.Status = m.StatusError
		result.Err = err
	}

	logger.Info("verification finished", zap.String("status", string(result.Status)))

	return result
}

func (w *workflow) hintsFor(v *Verification, logger *zap.Logger) string {
	text, found, err := v.Hints()
	if err != nil {
		logger.Warn("hint lookup failed", zap.Error(err))
		return ""
	}

	if !found {
		return ""
	}

	return text
}
