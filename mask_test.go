package sparsecs

import (
	"reflect"
	"testing"
)

func TestBitmaskSetUnset(t *testing.T) {
	var m bitmask256
	for _, bit := range []uint8{0, 1, 63, 64, 127, 128, 255} {
		m.set(bit)
		if !m.containsBit(bit) {
			t.Errorf("bit %d not set", bit)
		}
	}
	m.unset(64)
	if m.containsBit(64) {
		t.Error("bit 64 still set after unset")
	}
	if !m.containsBit(63) || !m.containsBit(127) {
		t.Error("neighboring bits disturbed by unset")
	}
}

func TestBitmaskContains(t *testing.T) {
	var m, sub bitmask256
	m.set(3)
	m.set(70)
	m.set(200)
	sub.set(3)
	sub.set(200)
	if !m.contains(sub) {
		t.Error("expected contains")
	}
	sub.set(71)
	if m.contains(sub) {
		t.Error("expected not contains")
	}
}

func TestBitmaskEachBit(t *testing.T) {
	var m bitmask256
	want := []uint8{0, 5, 63, 64, 129, 255}
	for _, bit := range want {
		m.set(bit)
	}
	var got []uint8
	m.eachBit(func(id uint8) {
		got = append(got, id)
	})
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestColumnSwapRemove(t *testing.T) {
	c := newColumn[int]()
	c.add(1, 10)
	c.add(2, 20)
	c.add(3, 30)

	if !c.removeEntity(2) {
		t.Fatal("remove failed")
	}
	if c.removeEntity(2) {
		t.Error("second remove should report absent")
	}
	if c.size() != 2 {
		t.Fatalf("expected size 2, got %d", c.size())
	}
	// entity 3 moved into the freed slot and must still resolve
	v, ok := c.get(3)
	if !ok || *v != 30 {
		t.Errorf("moved entity lost its value: %v %v", v, ok)
	}
	if v, _ := c.get(1); *v != 10 {
		t.Errorf("untouched entity corrupted: %d", *v)
	}
}

func TestColumnCopyValue(t *testing.T) {
	c := newColumn[int]()
	c.add(1, 42)
	if !c.copyValue(1, 2) {
		t.Fatal("copy failed")
	}
	if c.copyValue(9, 3) {
		t.Error("copy from absent source should be a no-op")
	}
	if c.copyValue(1, 2) {
		t.Error("copy onto existing owner should be a no-op")
	}
	src, _ := c.get(1)
	dst, _ := c.get(2)
	*src = 7
	if *dst != 42 {
		t.Errorf("copy shares storage with source: %d", *dst)
	}
}

func TestTypeRegistryAssignsStableIDs(t *testing.T) {
	r := typeRegistry{ids: make(map[reflect.Type]uint8)}
	type a struct{}
	type b struct{}
	ta := reflect.TypeOf((*a)(nil)).Elem()
	tb := reflect.TypeOf((*b)(nil)).Elem()

	ida := r.id(ta)
	idb := r.id(tb)
	if ida == idb {
		t.Error("distinct types share an id")
	}
	if again := r.id(ta); again != ida {
		t.Errorf("id not stable: %d then %d", ida, again)
	}
	if _, ok := r.lookup(reflect.TypeOf((*int)(nil)).Elem()); ok {
		t.Error("lookup must not register")
	}
}

func TestTypeRegistryOverflowPanics(t *testing.T) {
	r := typeRegistry{ids: make(map[reflect.Type]uint8)}
	for i := 0; i < MaxComponentTypes; i++ {
		r.id(reflect.ArrayOf(i, reflect.TypeOf((*byte)(nil)).Elem()))
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	r.id(reflect.TypeOf((*int)(nil)).Elem())
}
