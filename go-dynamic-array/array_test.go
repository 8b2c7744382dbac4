package go_dynamic_array

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Array_PushBack_Then_PopBack(t *testing.T) {
	a := &Array[int]{}

	for i := 0; i < 100; i++ {
		a.PushBack(i)
		assert.Equal(t, i+1, a.Size(), "size should track successful pushes")
		assert.GreaterOrEqual(t, a.Capacity(), a.Size(), "capacity should never fall below size")
	}

	assert.Equal(t, 0, a.Front())
	assert.Equal(t, 99, a.Back())

	a.PushBack(1000)
	a.PopBack()
	assert.Equal(t, 100, a.Size(), "push then pop should restore the prior sequence")
	assert.Equal(t, 99, a.Back())
}

func Test_Array_Growth_Is_Geometric(t *testing.T) {
	a := &Array[int]{}

	a.PushBack(1)
	assert.Equal(t, 1, a.Capacity(), "first growth should allocate exactly one cell")

	prev := a.Capacity()
	for i := 0; i < 1000; i++ {
		a.PushBack(i)
		if a.Capacity() != prev {
			assert.Equal(t, 2*prev, a.Capacity(), "growth should double capacity")
			prev = a.Capacity()
		}
	}
}

func Test_Array_At_OutOfRange(t *testing.T) {
	a := New(3, 7)

	v, err := a.At(2)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = a.At(3)
	assert.ErrorIs(t, err, OutOfRange)
	_, err = a.At(-1)
	assert.ErrorIs(t, err, OutOfRange)
}

func Test_Array_Insert_And_Erase(t *testing.T) {
	type param struct {
		desc     string
		build    func() *Array[int]
		expected []int
	}

	tests := []param{
		{
			desc: "erase an interior element",
			build: func() *Array[int] {
				a := &Array[int]{}
				for i := 0; i < 5; i++ {
					a.PushBack(i)
				}
				a.Erase(2)
				return a
			},
			expected: []int{0, 1, 3, 4},
		},
		{
			desc: "erase the last element",
			build: func() *Array[int] {
				a := &Array[int]{}
				for i := 0; i < 3; i++ {
					a.PushBack(i)
				}
				a.Erase(2)
				return a
			},
			expected: []int{0, 1},
		},
		{
			desc: "insert in the middle shifts the suffix",
			build: func() *Array[int] {
				a := &Array[int]{}
				for i := 0; i < 4; i++ {
					a.PushBack(i)
				}
				a.Insert(1, 42)
				return a
			},
			expected: []int{0, 42, 1, 2, 3},
		},
		{
			desc: "insert at size appends",
			build: func() *Array[int] {
				a := &Array[int]{}
				a.PushBack(1)
				a.Insert(1, 2)
				return a
			},
			expected: []int{1, 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			a := tc.build()
			assert.Equal(t, len(tc.expected), a.Size())
			for i, want := range tc.expected {
				assert.Equal(t, want, a.Get(i))
			}
		})
	}
}

func Test_Array_Reserve_And_ShrinkToFit(t *testing.T) {
	a := &Array[string]{}
	a.Reserve(64)
	assert.Equal(t, 64, a.Capacity())
	assert.Equal(t, 0, a.Size(), "reserve should not change size")

	a.PushBack("x")
	a.PushBack("y")
	a.ShrinkToFit()
	assert.Equal(t, 2, a.Capacity())
	assert.Equal(t, "x", a.Get(0))
	assert.Equal(t, "y", a.Get(1))
}

func Test_Array_Resize(t *testing.T) {
	a := &Array[int]{}
	a.Resize(4, 9)
	assert.Equal(t, 4, a.Size())
	for i := 0; i < 4; i++ {
		assert.Equal(t, 9, a.Get(i))
	}

	a.Resize(2, 0)
	assert.Equal(t, 2, a.Size(), "truncation should only reduce the visible length")
	assert.Equal(t, 9, a.Get(0))

	a.Resize(6, 5)
	assert.Equal(t, 6, a.Size())
	assert.Equal(t, 9, a.Get(1))
	assert.Equal(t, 5, a.Get(2), "grown slots should take the fill value")
}

func Test_Array_Clear_Retains_Capacity(t *testing.T) {
	a := &Array[int]{}
	for i := 0; i < 10; i++ {
		a.PushBack(i)
	}
	cap := a.Capacity()

	a.Clear()
	assert.True(t, a.Empty())
	assert.Equal(t, cap, a.Capacity())

	a.PushBack(42)
	assert.Equal(t, 42, a.Front())
}

func Test_Array_Ref_Mutates_In_Place(t *testing.T) {
	a := New(2, 0)
	*a.Ref(1) = 11
	assert.Equal(t, 11, a.Get(1))
}

func Test_Array_Clone_Is_Deep(t *testing.T) {
	a := &Array[int]{}
	for i := 0; i < 5; i++ {
		a.PushBack(i)
	}

	b := a.Clone()
	b.Set(0, 100)
	b.PushBack(5)

	assert.Equal(t, 0, a.Get(0), "mutating the clone should not change the source")
	assert.Equal(t, 5, a.Size())
	assert.Equal(t, 6, b.Size())
}

func Test_Array_Position_Walks_Live_Prefix(t *testing.T) {
	a := &Array[int]{}
	for i := 0; i < 4; i++ {
		a.PushBack(i * 10)
	}
	a.Reserve(32)

	var got []int
	for p := a.Begin(); p.Valid(); p = p.Next() {
		got = append(got, p.Value())
	}
	assert.Equal(t, []int{0, 10, 20, 30}, got, "positions should stop at size, not capacity")
}
