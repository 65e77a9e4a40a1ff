package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/go-imsto/imconv/convert"
	"github.com/go-imsto/imconv/image"
)

var cmdConvert = &Command{
	UsageLine: "convert [-f format] [-w width] [-q quality] [-o dir] file ...",
	Short:     "convert one or more image files",
	Long: `
Convert each file to the target format, writing <name>_converted.<ext>
beside the source or into -o. Width is reduced to -w when wider, keeping
the aspect ratio.
`,
}

var convFlag convFlags

func init() {
	cmdConvert.Run = runConvert
	convFlag.register(&cmdConvert.Flag)
}

func runConvert(args []string) bool {
	if len(args) == 0 {
		return false
	}
	format, opts, err := convFlag.options()
	if err != nil {
		errorf("%s", err)
		setExitStatus(2)
		return true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reqs := make([]convert.Request, len(args))
	for i, src := range args {
		reqs[i] = convert.NewRequest(src, format, opts...)
	}
	results := convertAll(ctx, reqs)
	for i, res := range results {
		if res.Source == "" {
			errorf("skipped %s: %s", reqs[i].Source, ctx.Err())
			setExitStatus(1)
			continue
		}
		fmt.Println(resultLine(res, format, reqs[i].Quality))
		if !res.OK {
			setExitStatus(1)
		}
	}
	return true
}

// convertAll runs the requests on up to NumCPU goroutines. Results keep the
// order of reqs; entries not started before ctx ended stay zero.
func convertAll(ctx context.Context, reqs []convert.Request) []convert.Result {
	results := make([]convert.Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range reqs {
		i := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			results[i] = convert.Convert(reqs[i])
			logger().Debugw("converted", "src", reqs[i].Source, "ok", results[i].OK)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

var cmdFormats = &Command{
	UsageLine: "formats",
	Short:     "list supported target formats",
	Long: `
List the formats accepted by -f. Lossy formats honor -q.
`,
}

func init() {
	cmdFormats.Run = runFormats
}

func runFormats(args []string) bool {
	for _, f := range image.Formats {
		note := ""
		if f.IsLossy() {
			note = "lossy"
		}
		fmt.Printf("%-6s .%-5s %s\n", f, f.Ext(), note)
	}
	return true
}
