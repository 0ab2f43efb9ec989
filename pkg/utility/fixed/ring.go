package fixed

// Ring is a fixed capacity circular buffer of points. Once full, adding a
// point overwrites the oldest one.
type Ring struct {
	points   []Point
	capacity int
	next     int
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		panic("ring capacity must be positive")
	}
	return &Ring{
		points:   make([]Point, 0, capacity),
		capacity: capacity,
	}
}

func (r *Ring) Size() int {
	return len(r.points)
}

func (r *Ring) Capacity() int {
	return r.capacity
}

func (r *Ring) IsEmpty() bool {
	return len(r.points) == 0
}

func (r *Ring) IsFull() bool {
	return len(r.points) == r.capacity
}

func (r *Ring) Clear() {
	r.points = r.points[:0]
	r.next = 0
}

func (r *Ring) Add(p Point) {
	if len(r.points) < r.capacity {
		r.points = append(r.points, p)
		return
	}
	r.points[r.next] = p
	r.next = (r.next + 1) % r.capacity
}

func (r *Ring) Latest() Point {
	if len(r.points) == 0 {
		panic("ring is empty")
	}
	if len(r.points) < r.capacity {
		return r.points[len(r.points)-1]
	}
	idx := r.next - 1
	if idx < 0 {
		idx += r.capacity
	}
	return r.points[idx]
}

func (r *Ring) Oldest() Point {
	if len(r.points) == 0 {
		panic("ring is empty")
	}
	if len(r.points) < r.capacity {
		return r.points[0]
	}
	return r.points[r.next]
}

// Values returns the buffered points in arrival order, oldest first.
func (r *Ring) Values() []Point {
	if len(r.points) == 0 {
		return nil
	}
	if len(r.points) < r.capacity {
		out := make([]Point, len(r.points))
		copy(out, r.points)
		return out
	}
	out := make([]Point, 0, r.capacity)
	out = append(out, r.points[r.next:]...)
	out = append(out, r.points[:r.next]...)
	return out
}

func (r *Ring) Sum() Point {
	sum := Zero
	for _, p := range r.points {
		sum = sum.Add(p)
	}
	return sum
}

func (r *Ring) Mean() Point {
	return Mean(r.points)
}

func (r *Ring) SampleStdDev() Point {
	return SampleStdDev(r.points)
}
