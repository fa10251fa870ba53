package driver

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"shunt/internal/eval"
)

// BatchLine is the outcome of one expression in a batch evaluation.
// Err is nil on success.
type BatchLine struct {
	Index      int    // номер строки в исходном файле, с единицы
	Expression string
	Value      float64
	Err        error
}

// EvalLines evaluates expressions concurrently with at most jobs workers.
// Each evaluation is pure and shares no state, so results land in their
// input slots without locking. Results keep input order.
func EvalLines(ctx context.Context, exprs []string, jobs int) ([]BatchLine, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]BatchLine, len(exprs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(exprs), 1)))

	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			value, err := eval.Evaluate(expr)
			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = BatchLine{Index: i + 1, Expression: expr, Value: value, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// EvalFile reads a file with one expression per line and evaluates every
// non-empty line concurrently. Lines starting with '#' are skipped.
// Returned indexes refer to the original line numbers.
func EvalFile(ctx context.Context, path string, jobs int) ([]BatchLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open expression file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var exprs []string
	var lineNums []int

	sc := bufio.NewScanner(f)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
		lineNums = append(lineNums, lineNo)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expression file: %w", err)
	}

	results, err := EvalLines(ctx, exprs, jobs)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Index = lineNums[i]
	}
	return results, nil
}
