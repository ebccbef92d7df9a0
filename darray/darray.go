// Package darray implements a growable double-ended array.
//
// The distinguishing feature is a pool of empty slots kept before the
// first element, so values can be added at the front in O(1) without
// relocating the rest of the array. The pool normally grows when a
// value is shifted off the front and is rebuilt when
// (pool size)/(array length) exceeds MaxPoolSize. All methods are
// aware of the pool; callers never manipulate it directly.
//
// A DArray is not safe for concurrent use. It stores values, not
// ownership: whatever the elements reference stays the caller's
// responsibility.
package darray

// DArray is a dynamic array over a single contiguous backing store.
// The live elements occupy the window [startIndex, startIndex+length);
// every slot outside the window holds the zero value of T.
type DArray[T any] struct {
	length      int
	startIndex  int
	expandRate  float64
	maxPoolSize float64
	items       []T
}

// New allocates a backing store of capacity slots and reserves the
// first poolSize slots as the head pool. The array starts with no
// elements.
//
// expandRate is the multiplicative growth factor of the store (1.5 is
// a suitable value) and must be greater than 1. maxPoolSize is the
// tolerated ratio of pool slots to array length, between 0 and 1; with
// a maxPoolSize of 0 no pool is kept and poolSize must be 0.
func New[T any](capacity int, maxPoolSize, expandRate float64, poolSize int) (*DArray[T], error) {
	if capacity <= 0 {
		return nil, errArgs("init", DetailCapacity)
	}
	if maxPoolSize < 0 || maxPoolSize > 1 {
		return nil, errArgs("init", DetailMaxPoolSize)
	}
	if expandRate <= 1 {
		return nil, errArgs("init", DetailExpandRate)
	}
	if poolSize < 0 || poolSize >= capacity {
		return nil, errArgs("init", DetailPoolSize)
	}
	if maxPoolSize == 0 {
		if poolSize != 0 {
			return nil, errArgs("init", DetailPoolSize)
		}
	} else if float64(poolSize) > float64(capacity)/maxPoolSize {
		return nil, errArgs("init", DetailPoolSize)
	}

	return &DArray[T]{
		startIndex:  poolSize,
		expandRate:  expandRate,
		maxPoolSize: maxPoolSize,
		items:       make([]T, capacity),
	}, nil
}

// Len returns the number of elements in the array.
func (d *DArray[T]) Len() int {
	return d.length
}

// Cap returns the total number of slots in the backing store.
func (d *DArray[T]) Cap() int {
	return len(d.items)
}

// Pool returns the number of reserved slots before the first element.
func (d *DArray[T]) Pool() int {
	return d.startIndex
}

// Index returns the element at position i. Positions outside
// [0, Len()) yield the zero value of T instead of an error, so
// defensive reads past the end are cheap and safe.
func (d *DArray[T]) Index(i int) T {
	var zero T
	if i < 0 || i >= d.length {
		return zero
	}
	return d.items[d.startIndex+i]
}

// Expand grows the backing store by the expand rate, with a minimum
// growth of one slot. Elements and the head pool keep their offsets;
// the new slots appear empty at the tail. The array is left untouched
// on failure.
func (d *DArray[T]) Expand() error {
	if d.items == nil {
		return errData("expand", DetailReleased)
	}
	if d.expandRate <= 1 {
		return errData("expand", DetailExpandRate)
	}

	size := int(float64(len(d.items)) * d.expandRate)
	if size <= len(d.items) {
		size = len(d.items) + 1
	}

	items := make([]T, size)
	copy(items, d.items)
	d.items = items

	return nil
}

// Move relocates the window of live elements dist slots within the
// backing store. Positive dist moves toward the tail, negative toward
// the head. The store expands first, as many times as needed, when the
// destination would fall beyond it. Vacated slots are cleared so the
// pool never holds stale values. Length never changes.
//
// Callers must not request a move past the head of the store; that
// request is refused with ClassArgs before any mutation.
func (d *DArray[T]) Move(dist int) error {
	if d.items == nil {
		return errData("move", DetailReleased)
	}
	if dist == 0 {
		return nil
	}

	target := d.startIndex + dist
	if target < 0 {
		return errArgs("move", DetailMoveBounds)
	}
	for target+d.length > len(d.items) {
		err := d.Expand()
		if err != nil {
			return wrap("move", DetailExpandFailed, err)
		}
	}

	// copy is memmove: overlapping source and destination are fine in
	// either direction
	copy(d.items[target:target+d.length], d.items[d.startIndex:d.startIndex+d.length])

	var zero T
	if dist > 0 {
		end := d.startIndex + d.length
		if target < end {
			end = target
		}
		for i := d.startIndex; i < end; i++ {
			d.items[i] = zero
		}
	} else {
		begin := target + d.length
		if begin < d.startIndex {
			begin = d.startIndex
		}
		for i := begin; i < d.startIndex+d.length; i++ {
			d.items[i] = zero
		}
	}

	d.startIndex = target

	return nil
}

// Push appends value after the last element, expanding the store when
// the tail has no free slot left.
func (d *DArray[T]) Push(value T) error {
	if d.items == nil {
		return errData("push", DetailReleased)
	}

	if d.startIndex+d.length == len(d.items) {
		err := d.Expand()
		if err != nil {
			return wrap("push", DetailExpandFailed, err)
		}
	}

	d.items[d.startIndex+d.length] = value
	d.length++

	return nil
}

// Pop removes and returns the last element. On an empty array it
// returns the zero value and ErrEmpty.
func (d *DArray[T]) Pop() (T, error) {
	var zero T
	if d.items == nil {
		return zero, errData("pop", DetailReleased)
	}
	if d.length == 0 {
		return zero, ErrEmpty
	}

	i := d.startIndex + d.length - 1
	value := d.items[i]
	d.items[i] = zero
	d.length--

	return value, nil
}

// Unshift inserts value before the first element. While pool slots are
// available this is O(1). With the window already at the head of the
// store, the whole window first moves toward the tail to rebuild the
// pool: by max(1, maxPoolSize*(length+1)) slots, so the pool ratio
// stays within policy, or by exactly 1 when no pool is configured.
func (d *DArray[T]) Unshift(value T) error {
	if d.items == nil {
		return errData("unshift", DetailReleased)
	}

	if d.startIndex == 0 {
		dist := 1
		if d.maxPoolSize > 0 {
			dist = int(d.maxPoolSize * float64(d.length+1))
			if dist < 1 {
				dist = 1
			}
		}
		err := d.Move(dist)
		if err != nil {
			return wrap("unshift", DetailMoveFailed, err)
		}
	}

	d.startIndex--
	d.items[d.startIndex] = value
	d.length++

	return nil
}

// Shift removes and returns the first element; the vacated slot joins
// the head pool. When the pool outgrows maxPoolSize relative to the
// remaining length, the window is compacted back toward the head of
// the store so the pool is exactly int(maxPoolSize*length) again,
// amortizing future unshifts. On an empty array it returns the zero
// value and ErrEmpty.
func (d *DArray[T]) Shift() (T, error) {
	var zero T
	if d.items == nil {
		return zero, errData("shift", DetailReleased)
	}
	if d.length == 0 {
		return zero, ErrEmpty
	}

	value := d.items[d.startIndex]
	d.items[d.startIndex] = zero
	d.startIndex++
	d.length--

	if float64(d.startIndex) > d.maxPoolSize*float64(d.length) {
		pool := int(d.maxPoolSize * float64(d.length))
		err := d.Move(pool - d.startIndex)
		if err != nil {
			return value, wrap("shift", DetailMoveFailed, err)
		}
	}

	return value, nil
}

// Destroy releases the backing store. The array must not be used
// afterwards: every later operation reports ClassData with
// DetailReleased, and Index returns the zero value.
func (d *DArray[T]) Destroy() {
	d.items = nil
	d.length = 0
	d.startIndex = 0
}
