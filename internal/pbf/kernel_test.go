package pbf

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testH = 0.045 // 0.015 * 3.0, the default smoothing length

var _ = Describe("Poly6 kernel", func() {
	It("is symmetric and non-negative inside the support", func() {
		r := Vec3{X: 0.01, Y: -0.02, Z: 0.005}
		Expect(poly6(r, testH)).To(BeNumerically(">=", 0))
		Expect(poly6(r, testH)).To(BeNumerically("~", poly6(r.Scale(-1), testH), 1e-12))
	})

	It("is zero outside the support", func() {
		r := Vec3{X: testH * 2, Y: 0, Z: 0}
		Expect(poly6(r, testH)).To(Equal(0.0))
	})

	It("is maximal at the origin", func() {
		origin := poly6(Vec3{}, testH)
		offset := poly6(Vec3{X: testH * 0.5}, testH)
		Expect(origin).To(BeNumerically(">", offset))
	})
})

var _ = Describe("Spiky gradient kernel", func() {
	It("stays finite as r shrinks toward the origin", func() {
		// Spiky's gradient does not vanish at r=0 (that's what makes it
		// useful as a pressure kernel); what must hold
		// is that it converges to a finite value instead of blowing up,
		// since the r_vec/r direction term cancels one power of r.
		eps := 1e-9
		g := spikyGrad(Vec3{X: eps}, testH)
		limit := 45.0 * invPi / (testH * testH * testH * testH)
		Expect(g.Length()).To(BeNumerically("~", limit, limit*1e-3))
	})

	It("is antisymmetric", func() {
		r := Vec3{X: 0.01, Y: 0.003, Z: -0.002}
		g1 := spikyGrad(r, testH)
		g2 := spikyGrad(r.Scale(-1), testH)
		Expect(g1.X).To(BeNumerically("~", -g2.X, 1e-6))
		Expect(g1.Y).To(BeNumerically("~", -g2.Y, 1e-6))
		Expect(g1.Z).To(BeNumerically("~", -g2.Z, 1e-6))
	})

	It("is zero outside the support", func() {
		r := Vec3{X: testH * 1.5}
		Expect(spikyGrad(r, testH)).To(Equal(Vec3{}))
	})

	It("never divides by zero for coincident particles", func() {
		Expect(func() { spikyGrad(Vec3{}, testH) }).NotTo(Panic())
		g := spikyGrad(Vec3{}, testH)
		Expect(math.IsNaN(g.X)).To(BeFalse())
		Expect(math.IsInf(g.X, 0)).To(BeFalse())
	})
})
