package galaxy_test

import (
	"runtime"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galaxy/internal/galaxy"
)

var _ = Describe("Pool", func() {
	It("defaults to the logical CPU count", func() {
		p, err := galaxy.NewPool(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Workers()).To(Equal(runtime.NumCPU()))
	})

	It("rejects a negative size", func() {
		_, err := galaxy.NewPool(-1)
		Expect(err).To(MatchError(galaxy.ErrInvalidWorkers))
	})

	DescribeTable("visits every index exactly once in disjoint chunks",
		func(workers, n int) {
			p, err := galaxy.NewPool(workers)
			Expect(err).NotTo(HaveOccurred())

			hits := make([]int, n)
			var mu sync.Mutex
			chunks := map[int]bool{}

			p.For(n, func(chunk, start, end int) {
				for i := start; i < end; i++ {
					hits[i]++
				}
				mu.Lock()
				chunks[chunk] = true
				mu.Unlock()
			})

			for i := range hits {
				Expect(hits[i]).To(Equal(1), "index %d", i)
			}
			Expect(len(chunks)).To(BeNumerically("<=", workers))
		},
		Entry("one worker", 1, 10),
		Entry("even split", 4, 100),
		Entry("uneven split", 3, 10),
		Entry("more workers than items", 8, 3),
		Entry("empty range", 4, 0),
	)
})
