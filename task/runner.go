// Package task runs conversions off the caller's goroutine and streams
// progress to whoever owns the presentation state.
package task

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/go-imsto/imconv/convert"
	zlog "github.com/go-imsto/imconv/log"
)

// ErrBusy is returned while another job is still in flight.
var ErrBusy = errors.New("a conversion is already running")

const defaultBuffer = 16

// Kind of an Event.
type Kind uint8

const (
	KindProgress Kind = iota + 1
	KindDone
)

// Event is sent by the worker. Progress events carry one item result;
// the single Done event carries the summary and is always the last one.
type Event struct {
	Kind     Kind
	Index    int
	Total    int
	Fraction float64
	Result   convert.Result
	Summary  *convert.Summary
	Err      error
}

type job func(ctx context.Context, emit convert.ProgressFunc) (*convert.Summary, error)

// Runner runs at most one job at a time.
type Runner struct {
	busy   atomic.Bool
	buffer int
}

// New ...
func New() *Runner {
	return &Runner{buffer: defaultBuffer}
}

// Busy reports whether a job is in flight; front ends disable their
// trigger while it is true.
func (r *Runner) Busy() bool {
	return r.busy.Load()
}

// Batch starts convert.Batch on a worker goroutine. The caller must drain
// the channel until it is closed.
func (r *Runner) Batch(ctx context.Context, br convert.BatchRequest) (<-chan Event, error) {
	return r.start(ctx, func(ctx context.Context, emit convert.ProgressFunc) (*convert.Summary, error) {
		return convert.Batch(ctx, br, emit)
	})
}

// Single starts one convert.Convert on a worker goroutine.
func (r *Runner) Single(ctx context.Context, req convert.Request) (<-chan Event, error) {
	return r.start(ctx, func(ctx context.Context, emit convert.ProgressFunc) (*convert.Summary, error) {
		sum := &convert.Summary{Total: 1}
		res := convert.Convert(req)
		sum.Add(res)
		emit(1, 1, res)
		return sum, res.Err
	})
}

func (r *Runner) start(ctx context.Context, fn job) (<-chan Event, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	buffer := r.buffer
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	ch := make(chan Event, buffer)
	go func() {
		defer close(ch)
		emit := func(index, total int, res convert.Result) {
			ev := Event{Kind: KindProgress, Index: index, Total: total, Result: res}
			if total > 0 {
				ev.Fraction = float64(index) / float64(total)
			}
			ch <- ev
		}
		sum, err := fn(ctx, emit)
		if err != nil {
			logger().Infow("task end with error", "err", err)
		}
		done := Event{Kind: KindDone, Summary: sum, Err: err}
		if sum != nil && sum.Total > 0 {
			done.Index, done.Total = sum.Done(), sum.Total
			done.Fraction = float64(sum.Done()) / float64(sum.Total)
		}
		r.busy.Store(false)
		ch <- done
	}()
	return ch, nil
}

func logger() zlog.Logger {
	return zlog.Get()
}
