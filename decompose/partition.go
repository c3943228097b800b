package decompose

// bounds returns the half-open interval [start, end) owned by one worker
// when n indices are split into contiguous shards. Both endpoints floor via
// integer division, so shard sizes differ by at most one and the shards tile
// [0, n) exactly: worker 0 starts at 0, the last worker ends at n, and every
// shard begins where the previous one ended.
func bounds(worker, workers, n int) (start, end int) {
	start = worker * n / workers
	end = (worker + 1) * n / workers
	return start, end
}
