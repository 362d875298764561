package unionfind

import "sync"

// neighborPairs returns every pair (i, j), i < j, whose distance is at most
// eps. data is flat row-major with n rows and dims columns. Pairs are
// returned in row-major order.
func neighborPairs(data []float64, n, dims int, eps float64, metric DistanceMetric) [][2]int {
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims]) <= eps {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// neighborPairsParallel is neighborPairs split across numWorkers goroutines.
// If numWorkers <= 1 it falls back to the sequential version. The result is
// identical to neighborPairs, order included.
func neighborPairsParallel(data []float64, n, dims int, eps float64, metric DistanceMetric, numWorkers int) [][2]int {
	if numWorkers <= 1 || n <= 1 {
		return neighborPairs(data, n, dims, eps, metric)
	}

	// Each worker owns a contiguous range of source rows and writes only to
	// its own slot, so no locking is needed.
	rowsPerWorker := (n + numWorkers - 1) / numWorkers
	chunks := make([][][2]int, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			var local [][2]int
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					if metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims]) <= eps {
						local = append(local, [2]int{i, j})
					}
				}
			}
			chunks[w] = local
		}(w, startRow, endRow)
	}
	wg.Wait()

	var pairs [][2]int
	for _, c := range chunks {
		pairs = append(pairs, c...)
	}
	return pairs
}
