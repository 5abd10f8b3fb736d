package loop

import (
	"context"
	"sync"
)

// GenerateBatch runs one generation per input concurrently. Each goroutine
// gets its own Generator and Oscillator, so runs share no mutable state.
// Inputs whose goroutine sees a canceled context are left as zero Results.
func GenerateBatch(ctx context.Context, inputs []Input) []Result {
	results := make([]Result, len(inputs))

	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			results[idx] = NewGenerator().Generate(inputs[idx])
		}(i)
	}

	wg.Wait()
	return results
}
