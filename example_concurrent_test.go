// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples with concurrent producer/consumer
// goroutines. These trigger false positives with Go's race detector
// because the cursor protocol synchronizes the sample buffers through
// atomic orderings the detector cannot see. The examples are correct;
// they're excluded from race testing.

package freeq_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/freeq"
	"code.hybscloud.com/iox"
)

// Example_renderLoop demonstrates the intended deployment: a render
// goroutine pushes fixed-size blocks while an I/O goroutine pulls at
// its own cadence, both polling with adaptive backoff.
func Example_renderLoop() {
	const (
		blocks    = 8
		blockSize = 16
	)
	q := freeq.New[float32](64, 1)

	var wg sync.WaitGroup
	wg.Add(2)

	// Render thread: produce a ramp, one block at a time.
	go func() {
		defer wg.Done()
		block := make([]float32, blockSize)
		backoff := iox.Backoff{}
		for b := range blocks {
			for i := range block {
				block[i] = float32(b*blockSize + i)
			}
			for q.Push(block) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	// I/O thread: consume and checksum.
	var sum float64
	go func() {
		defer wg.Done()
		block := make([]float32, blockSize)
		backoff := iox.Backoff{}
		for range blocks {
			for q.Pull(block) != nil {
				backoff.Wait()
			}
			backoff.Reset()
			for _, v := range block {
				sum += float64(v)
			}
		}
	}()

	wg.Wait()
	fmt.Println(sum) // 0+1+...+127

	// Output:
	// 8128
}
