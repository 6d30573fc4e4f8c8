package channel_utils

import (
	"sync"

	"vocalize-lambda/application/ports/outbound"
)

// MergeChannels fans several channels into one, running the readers on the
// shared worker pool. The merged channel closes once every input closes.
func MergeChannels[T any](workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	var wg sync.WaitGroup
	merged := make(chan T)

	wg.Add(len(channels))
	for _, c := range channels {
		ch := c
		err := workerPool.Submit(func() {
			defer wg.Done()
			for val := range ch {
				merged <- val
			}
		})
		if err != nil {
			return nil, err
		}
	}

	err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}
