package apiqueuev1

import (
	"encoding/json"
	"fmt"

	"github.com/SierraSoftworks/connor"
	jsonv2 "github.com/go-json-experiment/json"

	"github.com/fulldump/dequedb/queue"
)

func traverseFullscan(input []byte, q *queue.Queue, f func(payload json.RawMessage)) error {

	params := &struct {
		Filter map[string]interface{} `json:"filter"`
		Skip   int64                  `json:"skip"`
		Limit  int64                  `json:"limit"`
	}{
		Filter: map[string]interface{}{},
		Skip:   0,
		Limit:  1,
	}
	err := jsonv2.Unmarshal(input, params)
	if err != nil {
		return err
	}

	hasFilter := len(params.Filter) > 0

	var matchErr error
	skip := params.Skip
	limit := params.Limit
	q.Traverse(func(payload json.RawMessage) bool {

		if limit == 0 {
			return false
		}

		if hasFilter {
			itemData := map[string]interface{}{}
			json.Unmarshal(payload, &itemData)

			match, err := connor.Match(params.Filter, itemData)
			if err != nil {
				matchErr = fmt.Errorf("match: %w", err)
				return false
			}
			if !match {
				return true
			}
		}

		if skip > 0 {
			skip--
			return true
		}

		limit--
		f(payload)
		return true
	})

	return matchErr
}

// traverseRange walks the logical window [from, to), honoring the same
// filter as fullscan.
func traverseRange(input []byte, q *queue.Queue, f func(payload json.RawMessage)) error {

	params := &struct {
		From   int                    `json:"from"`
		To     int                    `json:"to"`
		Filter map[string]interface{} `json:"filter"`
	}{
		From: 0,
		To:   -1,
	}
	err := jsonv2.Unmarshal(input, params)
	if err != nil {
		return err
	}

	to := params.To
	if to < 0 || to > q.Len() {
		to = q.Len()
	}

	hasFilter := len(params.Filter) > 0

	for i := params.From; i < to; i++ {
		payload := q.Item(i)
		if payload == nil {
			break
		}

		if hasFilter {
			itemData := map[string]interface{}{}
			json.Unmarshal(payload, &itemData)

			match, err := connor.Match(params.Filter, itemData)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		f(payload)
	}

	return nil
}
