package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

// TestShift pushes N documents and then drains the queue from the
// front, so the head pool policy is exercised under load.
func TestShift(c Config) {

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
	}

	queue := CreateQueue(c.Base)

	client := &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
	}

	// fill
	body := &bytes.Buffer{}
	for i := int64(0); i < c.N; i++ {
		fmt.Fprintf(body, "{\"id\":%d}\n", i)
	}
	resp, err := client.Post(c.Base+"/v1/queues/"+queue+":push", "application/json", body)
	if err != nil {
		fmt.Println("ERROR: fill queue:", err.Error())
		os.Exit(3)
	}
	io.Copy(io.Discard, resp.Body)

	// drain
	var drained int64

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for {
			resp, err := client.Post(c.Base+"/v1/queues/"+queue+":shift", "application/json", nil)
			if err != nil {
				fmt.Println("ERROR: shift:", err.Error())
				os.Exit(4)
			}
			io.Copy(io.Discard, resp.Body)
			if resp.StatusCode == http.StatusNoContent {
				break
			}
			atomic.AddInt64(&drained, 1)
		}
	})

	took := time.Since(t0)
	fmt.Println("drained:", drained)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f docs/sec\n", float64(drained)/took.Seconds())
}
