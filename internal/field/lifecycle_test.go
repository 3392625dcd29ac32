package field

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Simulator lifecycle", func() {
	var (
		sim *Simulator
		rec *recorder
		now time.Time
	)

	BeforeEach(func() {
		var err error
		sim, err = New(DefaultConfig(), WithSeed(99))
		Expect(err).NotTo(HaveOccurred())
		rec = &recorder{}
		now = time.Unix(100, 0)
	})

	It("starts uninitialized with an empty store", func() {
		Expect(sim.State()).To(Equal(Uninitialized))
		Expect(sim.Particles()).To(BeEmpty())
	})

	Context("after the first resize", func() {
		BeforeEach(func() {
			sim.Resize(800, 600, 2)
		})

		It("is running with a full store in logical coordinates", func() {
			Expect(sim.State()).To(Equal(Running))
			Expect(sim.Particles()).To(HaveLen(DefaultCount))
			Expect(sim.Viewport().Width).To(Equal(800.0))
			Expect(sim.Viewport().RasterWidth).To(Equal(1600))
		})

		It("paints every scheduled frame", func() {
			for i := 0; i < 5; i++ {
				Expect(sim.Fire(sim.Schedule(), now, rec)).To(BeTrue())
			}
			Expect(rec.clears).To(Equal(5))
			Expect(sim.Ticks()).To(BeEquivalentTo(5))
		})

		It("drops the frame scheduled before a rebuild", func() {
			ticket := sim.Schedule()
			gen := sim.Generation()

			sim.Resize(1024, 768, 1)

			Expect(sim.Generation()).To(BeNumerically(">", gen))
			Expect(sim.State()).To(Equal(Running))
			Expect(sim.Fire(ticket, now, rec)).To(BeFalse())
			Expect(rec.ops).To(BeEmpty())
		})

		It("keeps every particle inside the viewport without a pointer", func() {
			for i := 0; i < 120; i++ {
				sim.Tick(now, Discard)
			}
			for _, p := range sim.Particles() {
				Expect(p.Pos.In(800, 600)).To(BeTrue(), "particle at %v", p.Pos)
			}
		})
	})
})
