package omath

import "math"

// Sum ...
func Sum(nums []float64) (result float64) {
	for _, v := range nums {
		result += v
	}
	return result
}

// Mean ...
func Mean(nums []float64) float64 {
	if len(nums) == 0 {
		return 0
	}
	return Sum(nums) / float64(len(nums))
}

// Variance returns the population variance of the given samples.
func Variance(nums []float64) (variance float64) {
	count := float64(len(nums))
	if count == 0 {
		return 0.0
	}
	mean := Sum(nums) / count

	for _, number := range nums {
		d := number - mean
		variance += d * d
	}
	return variance / count
}

// StandardDeviation ...
func StandardDeviation(nums []float64) float64 {
	return math.Sqrt(Variance(nums))
}

// SampleWindow keeps the most recent samples up to a fixed capacity, dropping the oldest sample
// once full. The backing storage is allocated once.
type SampleWindow struct {
	items []float64
	// ordered is scratch space for Samples so reading the window does not allocate.
	ordered []float64
	head    int
	size    int
}

// NewSampleWindow returns a window holding up to capacity samples. A capacity below one is raised
// to one.
func NewSampleWindow(capacity int) *SampleWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &SampleWindow{
		items:   make([]float64, capacity),
		ordered: make([]float64, 0, capacity),
	}
}

// Push appends a sample, overwriting the oldest one if the window is full.
func (w *SampleWindow) Push(v float64) {
	tail := (w.head + w.size) % len(w.items)
	w.items[tail] = v
	if w.size == len(w.items) {
		w.head = (w.head + 1) % len(w.items)
		return
	}
	w.size++
}

// Len returns the number of samples currently held.
func (w *SampleWindow) Len() int {
	return w.size
}

// Cap returns the maximum number of samples the window can hold.
func (w *SampleWindow) Cap() int {
	return len(w.items)
}

// Samples returns the held samples from oldest to newest. The returned slice is only valid until
// the next call to Push or Samples.
func (w *SampleWindow) Samples() []float64 {
	w.ordered = w.ordered[:0]
	for i := range w.size {
		w.ordered = append(w.ordered, w.items[(w.head+i)%len(w.items)])
	}
	return w.ordered
}

// Mean returns the mean of the held samples.
func (w *SampleWindow) Mean() float64 {
	return Mean(w.Samples())
}

// StandardDeviation returns the standard deviation of the held samples.
func (w *SampleWindow) StandardDeviation() float64 {
	return StandardDeviation(w.Samples())
}
