package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-imsto/imconv/convert"
	"github.com/go-imsto/imconv/task"
)

var cmdBatch = &Command{
	UsageLine: "batch [-f format] [-w width] [-q quality] [-o dir] [-p pattern] [-json] dir",
	Short:     "convert every image of a directory",
	Long: `
Convert all files of dir whose name matches -p and whose extension is a
supported image type. Subdirectories are not visited. Interrupt stops
after the current file.
`,
}

var (
	batchFlag    convFlags
	batchPattern string
	batchJSON    bool
)

func init() {
	cmdBatch.Run = runBatch
	batchFlag.register(&cmdBatch.Flag)
	cmdBatch.Flag.StringVar(&batchPattern, "p", convert.DefaultPattern, "glob matched against file names")
	cmdBatch.Flag.BoolVar(&batchJSON, "json", false, "print the summary as JSON")
}

func runBatch(args []string) bool {
	if len(args) != 1 {
		return false
	}
	format, opts, err := batchFlag.options()
	if err != nil {
		errorf("%s", err)
		setExitStatus(2)
		return true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	br := convert.NewBatchRequest(args[0], batchPattern, format, opts...)
	ch, err := task.New().Batch(ctx, br)
	if err != nil {
		errorf("%s", err)
		setExitStatus(1)
		return true
	}
	sum, err := render(os.Stdout, ch, br, batchJSON)
	if err != nil {
		if sum == nil || convert.KindOf(err) == convert.InputError {
			errorf("%s", task.Status(sum, err))
		}
		setExitStatus(1)
		return true
	}
	if sum.Failed > 0 {
		setExitStatus(1)
	}
	return true
}

// render prints progress lines as events arrive, then the summary. It
// returns once the channel is closed.
func render(w io.Writer, ch <-chan task.Event, br convert.BatchRequest, asJSON bool) (*convert.Summary, error) {
	var done task.Event
	for ev := range ch {
		if ev.Kind == task.KindDone {
			done = ev
			continue
		}
		if !asJSON {
			fmt.Fprintf(w, "[%d/%d] %s\n", ev.Index, ev.Total, resultLine(ev.Result, br.Format, br.Quality))
		}
	}
	sum := done.Summary
	if sum == nil || (done.Err != nil && convert.KindOf(done.Err) == convert.InputError) {
		return sum, done.Err
	}
	if asJSON {
		b, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			return sum, err
		}
		fmt.Fprintf(w, "%s\n", b)
		return sum, done.Err
	}
	if sum.Canceled {
		fmt.Fprintln(w, task.Status(sum, done.Err))
	} else {
		fmt.Fprintln(w, task.Report(sum, br.OutputDir))
	}
	return sum, done.Err
}
