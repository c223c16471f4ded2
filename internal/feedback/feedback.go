// Package feedback turns progress signals into something the player notices:
// styled terminal lines, a terminal bell, or log entries.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"pookie4u/internal/progress"
	"pookie4u/internal/ui"
)

// Terminal prints one styled line per signal. With Bell set, level-ups and
// badges also ring the terminal bell, the closest thing a terminal has to a
// haptic buzz.
type Terminal struct {
	mu   sync.Mutex
	out  io.Writer
	bell bool
}

func NewTerminal(out io.Writer, bell bool) *Terminal {
	return &Terminal{out: out, bell: bell}
}

func (t *Terminal) TaskComplete(_ context.Context) error {
	return t.write(ui.Good.Render(ui.IconDone+" Task complete"), false)
}

func (t *Terminal) LevelUp(_ context.Context, level int) error {
	return t.write(fmt.Sprintf("%s %s", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("You reached level %d", level))), true)
}

func (t *Terminal) Achievement(_ context.Context, badge progress.BadgeID) error {
	b := progress.LookupBadge(badge)
	return t.write(fmt.Sprintf("%s %s %s", ui.Gold.Render(ui.IconTrophy+" Badge unlocked:"), b.Icon, ui.Title.Render(b.Name)), true)
}

func (t *Terminal) write(line string, ring bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ring && t.bell {
		line = "\a" + line
	}
	_, err := fmt.Fprintln(t.out, line)
	return err
}

// Log writes signals as structured log entries.
type Log struct {
	log *zap.Logger
}

func NewLog(l *zap.Logger) *Log {
	if l == nil {
		l = zap.NewNop()
	}
	return &Log{log: l.With(zap.String("component", "feedback"))}
}

func (l *Log) TaskComplete(_ context.Context) error {
	l.log.Info("task complete")
	return nil
}

func (l *Log) LevelUp(_ context.Context, level int) error {
	l.log.Info("level up", zap.Int("level", level))
	return nil
}

func (l *Log) Achievement(_ context.Context, badge progress.BadgeID) error {
	l.log.Info("achievement", zap.String("badge", string(badge)))
	return nil
}

// Multi fans a signal out to every notifier and joins their errors.
type Multi []progress.Notifier

func (m Multi) TaskComplete(ctx context.Context) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.TaskComplete(ctx))
	}
	return errors.Join(errs...)
}

func (m Multi) LevelUp(ctx context.Context, level int) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.LevelUp(ctx, level))
	}
	return errors.Join(errs...)
}

func (m Multi) Achievement(ctx context.Context, badge progress.BadgeID) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.Achievement(ctx, badge))
	}
	return errors.Join(errs...)
}

// New picks a notifier for the configured mode: terminal, log or none.
// Terminal feedback is also logged.
func New(mode string, out io.Writer, bell bool, l *zap.Logger) progress.Notifier {
	switch mode {
	case "terminal":
		return Multi{NewTerminal(out, bell), NewLog(l)}
	case "log":
		return NewLog(l)
	default:
		return progress.NopNotifier()
	}
}
