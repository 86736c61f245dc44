package ringq_test

import (
	"fmt"
	"testing"

	"github.com/tychoish/ringq"
	"github.com/tychoish/ringq/assert"
	"github.com/tychoish/ringq/assert/check"
	"github.com/tychoish/ringq/ers"
)

func makeQueue(t testing.TB, values ...string) *ringq.Queue {
	t.Helper()
	q := ringq.New()
	for _, v := range values {
		assert.True(t, q.InsertTail(v))
	}
	assert.Equal(t, q.Size(), len(values))
	return q
}

func randomValues(seed uint64, size, spread int) []string {
	r := ringq.NewRand(seed)
	out := make([]string, size)
	for idx := range out {
		out[idx] = fmt.Sprintf("v%03d", r.IntN(spread))
	}
	return out
}

func TestQueue(t *testing.T) {
	t.Run("Constructor", func(t *testing.T) {
		q := ringq.New()
		assert.True(t, q.Empty())
		assert.Equal(t, q.Size(), 0)
		assert.True(t, !q.Front().Ok())
		assert.True(t, !q.Back().Ok())
		assert.NotErrorIs(t, q.Validate(), ringq.ErrContainerStateImpossible)
		assert.True(t, ers.Ok(q.Validate()))
	})
	t.Run("ZeroValue", func(t *testing.T) {
		q := &ringq.Queue{}
		assert.True(t, q.Empty())
		assert.True(t, q.InsertHead("a"))
		assert.Equal(t, q.Size(), 1)
		assert.Equal(t, q.Front().Value(), "a")
		assert.NotError(t, q.Validate())
	})
	t.Run("NilQueue", func(t *testing.T) {
		var q *ringq.Queue
		assert.NotPanic(t, func() {
			check.True(t, !q.InsertHead("a"))
			check.True(t, !q.InsertTail("a"))
			check.True(t, !q.InsertElementTail(ringq.NewElement("a")))
			check.True(t, q.RemoveHead(nil) == nil)
			check.True(t, q.RemoveTail(make([]byte, 4)) == nil)
			check.Equal(t, q.Size(), 0)
			check.True(t, q.Empty())
			check.True(t, !q.Singular())
			check.True(t, !q.DeleteMid())
			check.True(t, !q.DeleteDup())
			check.Equal(t, q.Ascend(), 0)
			check.Equal(t, q.Descend(), 0)
			check.True(t, !q.Shuffle(nil))
			check.True(t, q.IsSorted(false))
			check.True(t, q.Front() == nil)
			check.True(t, q.Back() == nil)
			check.EqualItems(t, q.Values(), []string{})
			check.NotError(t, q.Validate())
			q.Reverse()
			q.ReverseK(3)
			q.Swap()
			q.Sort(true)
			q.Splice(ringq.New())
			q.Free()
		})
	})
	t.Run("InsertTail", func(t *testing.T) {
		q := makeQueue(t, "a", "b", "c")
		assert.NotZero(t, q.Size())
		assert.Equal(t, q.Size(), 3)
		assert.EqualItems(t, q.Values(), []string{"a", "b", "c"})
		assert.Equal(t, q.Front().Value(), "a")
		assert.Equal(t, q.Back().Value(), "c")
	})
	t.Run("InsertHead", func(t *testing.T) {
		q := ringq.New()
		for _, v := range []string{"a", "b", "c"} {
			assert.True(t, q.InsertHead(v))
		}
		assert.EqualItems(t, q.Values(), []string{"c", "b", "a"})
	})
	t.Run("WrapAroundEffects", func(t *testing.T) {
		q := ringq.New()
		for i := 0; i < 9; i++ {
			if i%2 == 0 {
				q.InsertTail(fmt.Sprint(i))
			} else {
				q.InsertHead(fmt.Sprint(i))
			}
		}
		assert.EqualItems(t, q.Values(), []string{"7", "5", "3", "1", "0", "2", "4", "6", "8"})
		assert.NotError(t, q.Validate())
	})
	t.Run("SizeAccounting", func(t *testing.T) {
		q := ringq.New()
		r := ringq.NewRand(42)
		expected := 0
		for i := 0; i < 1000; i++ {
			switch r.IntN(4) {
			case 0:
				check.True(t, q.InsertHead(fmt.Sprint(i)))
				expected++
			case 1:
				check.True(t, q.InsertTail(fmt.Sprint(i)))
				expected++
			case 2:
				if q.RemoveHead(nil) != nil {
					expected--
				}
			case 3:
				if q.RemoveTail(nil) != nil {
					expected--
				}
			}
			if q.Size() != expected {
				t.Fatal(i, q.Size(), expected)
			}
		}
		assert.NotError(t, q.Validate())
	})
	t.Run("RoundTrip", func(t *testing.T) {
		values := randomValues(7, 128, 1000)
		q := makeQueue(t, values...)
		out := make([]string, 0, len(values))
		for e := q.RemoveHead(nil); e != nil; e = q.RemoveHead(nil) {
			out = append(out, e.Value())
		}
		assert.EqualItems(t, out, values)
		assert.True(t, q.Empty())
	})
	t.Run("Remove", func(t *testing.T) {
		t.Run("Empty", func(t *testing.T) {
			q := ringq.New()
			buf := []byte("xyz")
			assert.NilPtr(t, q.RemoveHead(buf))
			assert.NilPtr(t, q.RemoveTail(buf))
			assert.Equal(t, string(buf), "xyz")
		})
		t.Run("Detaches", func(t *testing.T) {
			q := makeQueue(t, "a", "b", "c")
			head := q.RemoveHead(nil)
			tail := q.RemoveTail(nil)
			assert.Equal(t, head.Value(), "a")
			assert.Equal(t, tail.Value(), "c")
			assert.True(t, head.Next() == nil)
			assert.True(t, tail.Previous() == nil)
			assert.EqualItems(t, q.Values(), []string{"b"})
			assert.True(t, q.Singular())
			assert.NotError(t, q.Validate())
		})
		t.Run("BufferCopy", func(t *testing.T) {
			q := makeQueue(t, "hello")
			buf := make([]byte, 16)
			e := q.RemoveHead(buf)
			assert.Equal(t, e.Value(), "hello")
			assert.Equal(t, string(buf[:5]), "hello")
			assert.Equal(t, buf[5], byte(0))
		})
		t.Run("BufferTruncates", func(t *testing.T) {
			q := makeQueue(t, "hello", "world")
			buf := []byte("xxxxxxxx")[:4]
			e := q.RemoveTail(buf)
			assert.Equal(t, e.Value(), "world")
			assert.Equal(t, string(buf[:3]), "wor")
			assert.Equal(t, buf[3], byte(0))
		})
		t.Run("SingleByteBuffer", func(t *testing.T) {
			q := makeQueue(t, "hello")
			buf := []byte{'x'}
			assert.NotNilPtr(t, q.RemoveHead(buf))
			assert.Equal(t, buf[0], byte(0))
		})
	})
	t.Run("Ownership", func(t *testing.T) {
		one := makeQueue(t, "a", "b")
		two := ringq.New()

		e := one.RemoveHead(nil)
		assert.True(t, two.InsertElementTail(e))
		assert.True(t, !one.InsertElementTail(e))
		assert.True(t, !two.InsertElementHead(e))
		assert.True(t, !two.InsertElementHead(nil))
		assert.True(t, !two.InsertElementHead(two.Front().Previous()))

		f := one.RemoveTail(nil)
		assert.True(t, two.InsertElementHead(f))
		assert.EqualItems(t, two.Values(), []string{"b", "a"})
		assert.True(t, one.Empty())
		assert.NotError(t, two.Validate())
	})
	t.Run("Release", func(t *testing.T) {
		q := makeQueue(t, "a", "b")
		e := q.Front()
		e.Release()
		assert.Equal(t, e.Value(), "a")

		e = q.RemoveHead(nil)
		e.Release()
		assert.Equal(t, e.Value(), "")
		assert.Equal(t, q.Size(), 1)

		var nilElem *ringq.Element
		assert.NotPanic(t, nilElem.Release)
		assert.Equal(t, nilElem.Value(), "")
		assert.True(t, nilElem.Next() == nil)
		assert.True(t, nilElem.Previous() == nil)
	})
	t.Run("Free", func(t *testing.T) {
		q := makeQueue(t, "a", "b", "c")
		first := q.Front()
		q.Free()
		assert.True(t, q.Empty())
		assert.Equal(t, q.Size(), 0)
		assert.Equal(t, first.Value(), "")
		assert.True(t, first.Next() == nil)
		assert.NotError(t, q.Validate())

		assert.True(t, q.InsertTail("d"))
		assert.EqualItems(t, q.Values(), []string{"d"})
	})
	t.Run("Singular", func(t *testing.T) {
		q := ringq.New()
		assert.True(t, !q.Singular())
		q.InsertTail("a")
		assert.True(t, q.Singular())
		q.InsertTail("b")
		assert.True(t, !q.Singular())
	})
	t.Run("Iteration", func(t *testing.T) {
		q := makeQueue(t, "a", "b", "c", "d")
		t.Run("Forwards", func(t *testing.T) {
			seen := []string{}
			for e := q.Front(); e.Ok(); e = e.Next() {
				seen = append(seen, e.String())
			}
			assert.EqualItems(t, seen, []string{"a", "b", "c", "d"})
		})
		t.Run("Backwards", func(t *testing.T) {
			seen := []string{}
			for e := q.Back(); e.Ok(); e = e.Previous() {
				seen = append(seen, e.Value())
			}
			assert.EqualItems(t, seen, []string{"d", "c", "b", "a"})
		})
		t.Run("SeqBreak", func(t *testing.T) {
			seen := []string{}
			for v := range q.Seq() {
				if v == "c" {
					break
				}
				seen = append(seen, v)
			}
			assert.EqualItems(t, seen, []string{"a", "b"})
		})
		t.Run("String", func(t *testing.T) {
			assert.Equal(t, q.String(), "[a b c d]")
			assert.Equal(t, ringq.New().String(), "[]")
		})
	})
	t.Run("Splice", func(t *testing.T) {
		one := makeQueue(t, "a", "b")
		two := makeQueue(t, "c", "d", "e")
		one.Splice(two)
		assert.EqualItems(t, one.Values(), []string{"a", "b", "c", "d", "e"})
		assert.True(t, two.Empty())
		assert.NotError(t, one.Validate())
		assert.NotError(t, two.Validate())

		one.Splice(one)
		one.Splice(nil)
		one.Splice(two)
		assert.Equal(t, one.Size(), 5)

		empty := ringq.New()
		empty.Splice(one)
		assert.Equal(t, empty.Size(), 5)
		assert.True(t, one.Empty())
	})
}
