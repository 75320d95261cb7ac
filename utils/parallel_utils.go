package utils

import (
	"runtime"
	"sync"
)

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		ParallelDegree = runtime.NumCPU()
	}
	if maxIndex > 0 && ParallelDegree > maxIndex {
		ParallelDegree = maxIndex
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	var (
		k1, k2 = pm.GetBucketRange(bn)
	)
	kMax = k2 - k1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into pm.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// Run calls work for every index, one goroutine per partition, and waits for all of them
func (pm *PartitionMap) Run(work func(bucketNum, k int)) {
	var wg sync.WaitGroup
	for bn := 0; bn < pm.ParallelDegree; bn++ {
		if pm.GetBucketDimension(bn) == 0 {
			continue
		}
		kMin, kMax := pm.GetBucketRange(bn)
		wg.Add(1)
		go func(bn, kMin, kMax int) {
			defer wg.Done()
			for k := kMin; k < kMax; k++ {
				work(bn, k)
			}
		}(bn, kMin, kMax)
	}
	wg.Wait()
}
