package darray

import (
	"errors"
	"testing"

	. "github.com/fulldump/biff"
)

func TestNewWithPool(t *testing.T) {
	d, err := New[*int](10, 0.3, 1.5, 2)

	AssertNil(err)
	AssertEqual(d.Len(), 0)
	AssertEqual(d.Cap(), 10)
	AssertEqual(d.Pool(), 2)

	for i := range d.items {
		AssertNil(d.items[i])
	}
}

func TestNewWithoutPool(t *testing.T) {
	d, err := New[*int](10, 0.0, 1.5, 0)

	AssertNil(err)
	AssertEqual(d.Pool(), 0)
	AssertEqual(d.Cap(), 10)
}

func TestNewInvalidArguments(t *testing.T) {

	cases := []struct {
		name        string
		capacity    int
		maxPoolSize float64
		expandRate  float64
		poolSize    int
		detail      Detail
	}{
		{"zero capacity", 0, 0.3, 1.5, 0, DetailCapacity},
		{"negative capacity", -5, 0.3, 1.5, 0, DetailCapacity},
		{"negative max pool size", 10, -0.1, 1.5, 0, DetailMaxPoolSize},
		{"max pool size above one", 10, 1.1, 1.5, 0, DetailMaxPoolSize},
		{"expand rate one", 10, 0.3, 1.0, 0, DetailExpandRate},
		{"expand rate below one", 10, 0.3, 0.5, 0, DetailExpandRate},
		{"negative pool size", 10, 0.3, 1.5, -1, DetailPoolSize},
		{"pool size fills store", 10, 0.3, 1.5, 10, DetailPoolSize},
		{"pool without max pool size", 10, 0.0, 1.5, 2, DetailPoolSize},
	}

	for _, c := range cases {
		d, err := New[*int](c.capacity, c.maxPoolSize, c.expandRate, c.poolSize)

		AssertNil(d)
		e := &Error{}
		AssertTrue(errors.As(err, &e))
		AssertEqual(e.Class, ClassArgs)
		AssertEqual(e.Detail, c.detail)
	}
}

func TestIndexWithPool(t *testing.T) {
	d, _ := New[*int](10, 0.3, 1.5, 2)

	a, b, c := 0, 1, 2
	d.items[2] = &a
	d.items[3] = &b
	d.items[4] = &c
	d.length = 3

	AssertEqual(d.Index(0), &a)
	AssertEqual(d.Index(1), &b)
	AssertEqual(d.Index(2), &c)
}

func TestIndexWithoutPool(t *testing.T) {
	d, _ := New[*int](10, 0.0, 1.5, 0)

	a, b, c := 0, 1, 2
	d.items[0] = &a
	d.items[1] = &b
	d.items[2] = &c
	d.length = 3

	AssertEqual(d.Index(0), &a)
	AssertEqual(d.Index(1), &b)
	AssertEqual(d.Index(2), &c)
}

func TestIndexOutOfRange(t *testing.T) {
	d, _ := New[*int](10, 0.3, 1.5, 2)

	a := 0
	d.Push(&a)

	// beyond length, still inside the store, and beyond the store:
	// all empty, never an error
	AssertNil(d.Index(1))
	AssertNil(d.Index(9))
	AssertNil(d.Index(100))
	AssertNil(d.Index(-1))
}

func TestExpand(t *testing.T) {
	d, _ := New[*int](10, 0.1, 1.5, 2)

	a, b, c := 0, 1, 2
	d.items[2] = &a
	d.items[3] = &b
	d.items[4] = &c
	d.length = 3

	err := d.Expand()

	AssertNil(err)
	AssertEqual(d.Cap(), 15) // int(10 * 1.5)
	AssertEqual(d.Pool(), 2)
	AssertEqual(d.items[2], &a)
	AssertEqual(d.items[3], &b)
	AssertEqual(d.items[4], &c)
	for i := 5; i < 15; i++ {
		AssertNil(d.items[i])
	}
}

func TestExpandMinimumGrowth(t *testing.T) {
	d, _ := New[*int](1, 0.0, 1.2, 0)

	err := d.Expand()

	AssertNil(err)
	AssertEqual(d.Cap(), 2) // int(1*1.2) == 1, so grow by one
}

func TestMove(t *testing.T) {
	d, _ := New[*int](10, 0.1, 1.5, 2)

	a, b, c := 0, 1, 2
	d.items[2] = &a
	d.items[3] = &b
	d.items[4] = &c
	d.length = 3

	errMove := d.Move(1)
	AssertNil(errMove)
	AssertEqual(d.Pool(), 3)
	AssertNil(d.items[2])
	AssertEqual(d.items[3], &a)
	AssertEqual(d.items[4], &b)
	AssertEqual(d.items[5], &c)

	errMove = d.Move(-2)
	AssertNil(errMove)
	AssertEqual(d.Pool(), 1)
	AssertEqual(d.items[1], &a)
	AssertEqual(d.items[2], &b)
	AssertEqual(d.items[3], &c)
	AssertNil(d.items[4])
	AssertNil(d.items[5])
	AssertEqual(d.Len(), 3)
}

func TestMoveExpandsFirst(t *testing.T) {
	d, _ := New[*int](4, 0.25, 1.5, 1)

	a, b, c := 0, 1, 2
	d.items[1] = &a
	d.items[2] = &b
	d.items[3] = &c
	d.length = 3

	err := d.Move(2)

	AssertNil(err)
	AssertEqual(d.Cap(), 6) // one expansion: int(4 * 1.5)
	AssertEqual(d.Pool(), 3)
	AssertEqual(d.items[3], &a)
	AssertEqual(d.items[4], &b)
	AssertEqual(d.items[5], &c)
	AssertNil(d.items[1])
	AssertNil(d.items[2])
}

func TestMoveBeforeStart(t *testing.T) {
	d, _ := New[*int](10, 0.3, 1.5, 2)

	a := 0
	d.Push(&a)

	err := d.Move(-3)

	e := &Error{}
	AssertTrue(errors.As(err, &e))
	AssertEqual(e.Class, ClassArgs)
	AssertEqual(e.Detail, DetailMoveBounds)
	AssertEqual(d.Pool(), 2) // untouched
	AssertEqual(d.Index(0), &a)
}

func TestPushPop(t *testing.T) {
	d, _ := New[*int](10, 0.1, 1.5, 2)

	a, b, c := 0, 1, 2
	AssertNil(d.Push(&a))
	AssertNil(d.Push(&b))
	AssertNil(d.Push(&c))

	AssertEqual(d.Index(0), &a)
	AssertEqual(d.Index(1), &b)
	AssertEqual(d.Index(2), &c)

	v, err := d.Pop()
	AssertNil(err)
	AssertEqual(v, &c)

	v, _ = d.Pop()
	AssertEqual(v, &b)

	v, _ = d.Pop()
	AssertEqual(v, &a)

	AssertEqual(d.Len(), 0)
	for i := range d.items {
		AssertNil(d.items[i])
	}
}

func TestPopEmpty(t *testing.T) {
	d, _ := New[*int](10, 0.3, 1.5, 2)

	v, err := d.Pop()

	AssertNil(v)
	AssertTrue(errors.Is(err, ErrEmpty))
	AssertEqual(d.Len(), 0)
}

func TestPushExpands(t *testing.T) {
	d, _ := New[*int](3, 0.0, 1.5, 0)

	a, b, c, e := 0, 1, 2, 3
	d.Push(&a)
	d.Push(&b)
	d.Push(&c)
	AssertEqual(d.Cap(), 3)

	AssertNil(d.Push(&e))

	AssertEqual(d.Cap(), 4) // int(3 * 1.5)
	AssertEqual(d.Len(), 4)
	AssertEqual(d.Index(3), &e)
}

func TestUnshiftWithPool(t *testing.T) {
	d, _ := New[*int](10, 0.3, 1.5, 3)

	a, b, c := 0, 1, 2
	AssertNil(d.Unshift(&a))
	AssertEqual(d.Pool(), 2)
	AssertNil(d.Unshift(&b))
	AssertEqual(d.Pool(), 1)
	AssertNil(d.Unshift(&c))

	// pool consumed exactly when its slots ran out, with no relocation
	AssertEqual(d.Pool(), 0)
	AssertEqual(d.Index(0), &c)
	AssertEqual(d.Index(1), &b)
	AssertEqual(d.Index(2), &a)
}

func TestUnshiftPoolExhausted(t *testing.T) {
	d, _ := New[*int](10, 0.3, 1.5, 3)

	a, b, c, e := 0, 1, 2, 3
	d.Unshift(&a)
	d.Unshift(&b)
	d.Unshift(&c)
	AssertEqual(d.Pool(), 0)

	// no pool slack left: the window moves to rebuild the pool
	AssertNil(d.Unshift(&e))

	AssertEqual(d.Len(), 4)
	AssertEqual(d.Index(0), &e)
	AssertEqual(d.Index(1), &c)
	AssertEqual(d.Index(2), &b)
	AssertEqual(d.Index(3), &a)
}

func TestUnshiftWithoutPool(t *testing.T) {
	d, _ := New[*int](10, 0.0, 1.5, 0)

	a, b, c := 0, 1, 2

	AssertNil(d.Unshift(&a))
	AssertEqual(d.Pool(), 0) // moved +1, then took the freed slot

	AssertNil(d.Unshift(&b))
	AssertEqual(d.Pool(), 0)

	AssertNil(d.Unshift(&c))
	AssertEqual(d.Pool(), 0)

	AssertEqual(d.Index(0), &c)
	AssertEqual(d.Index(1), &b)
	AssertEqual(d.Index(2), &a)
	AssertNil(d.items[3])
}

func TestShift(t *testing.T) {
	d, _ := New[*int](10, 0.3, 1.5, 2)

	a, b, c := 0, 1, 2
	d.Push(&a)
	d.Push(&b)
	d.Push(&c)

	v, err := d.Shift()
	AssertNil(err)
	AssertEqual(v, &a)
	// pool outgrew 0.3*2, so the window compacted back to the head
	AssertEqual(d.Pool(), 0)
	AssertEqual(d.Index(0), &b)

	v, _ = d.Shift()
	AssertEqual(v, &b)

	v, _ = d.Shift()
	AssertEqual(v, &c)

	AssertEqual(d.Len(), 0)

	v, err = d.Shift()
	AssertNil(v)
	AssertTrue(errors.Is(err, ErrEmpty))
}

func TestShiftKeepsPoolWithinPolicy(t *testing.T) {
	d, _ := New[*int](10, 1.0, 1.5, 2)

	a, b, c := 0, 1, 2
	d.Push(&a)
	d.Push(&b)
	d.Push(&c)

	v, err := d.Shift()

	AssertNil(err)
	AssertEqual(v, &a)
	// pool of 3 against length 2 exceeds ratio 1.0: compact to 2
	AssertEqual(d.Pool(), 2)
	AssertEqual(d.Index(0), &b)
	AssertEqual(d.Index(1), &c)
}

func TestShiftThenUnshiftReusesPool(t *testing.T) {
	d, _ := New[*int](10, 1.0, 1.5, 0)

	a, b := 0, 1
	d.Push(&a)
	d.Push(&b)

	d.Shift() // leaves one pool slot within policy

	pool := d.Pool()
	AssertEqual(pool, 1)

	c := 2
	AssertNil(d.Unshift(&c))
	AssertEqual(d.Pool(), pool-1) // O(1), no relocation
	AssertEqual(d.Index(0), &c)
	AssertEqual(d.Index(1), &b)
}

func TestDestroy(t *testing.T) {
	d, _ := New[*int](10, 0.3, 1.5, 2)

	a := 0
	d.Push(&a)
	d.Destroy()

	AssertNil(d.Index(0))

	errPush := d.Push(&a)
	AssertEqual(ClassOf(errPush), ClassData)

	_, errPop := d.Pop()
	AssertEqual(ClassOf(errPop), ClassData)
	AssertFalse(errors.Is(errPop, ErrEmpty))

	errMove := d.Move(1)
	AssertEqual(ClassOf(errMove), ClassData)

	AssertEqual(ClassOf(d.Expand()), ClassData)
}

func TestSortNotImplemented(t *testing.T) {
	d, _ := New[*int](10, 0.3, 1.5, 2)

	err := d.Sort(func(a, b *int) bool { return *a < *b })

	AssertTrue(errors.Is(err, errors.ErrUnsupported))
}
