package units_test

import (
	"errors"
	"sync"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/llm-d-physical-units/internal/logging"
	"github.com/llm-d/llm-d-physical-units/pkg/units"
)

type countingObserver struct {
	mu        sync.Mutex
	registers int
	lookups   map[string]bool
	loads     []error
}

func (o *countingObserver) ObserveRegister(added, replaced, size int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.registers++
}

func (o *countingObserver) ObserveLoad(_ string, _ units.Format, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loads = append(o.loads, err)
}

func (o *countingObserver) ObserveLookup(name string, found bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.lookups == nil {
		o.lookups = make(map[string]bool)
	}
	o.lookups[name] = found
}

var _ = Describe("Registry", func() {
	var reg *units.Registry

	BeforeEach(func() {
		reg = units.NewDefaultRegistry(units.WithLogger(logging.Log))
	})

	It("should ship the default dimensions in order", func() {
		want := []string{
			"mass", "length", "area", "volume", "time", "temperature", "current", "amount", "luminous intensity",
			"speed", "acceleration", "energy", "momentum", "angular momentum", "force", "torque", "power", "pressure",
		}
		Expect(cmp.Diff(want, reg.Names())).To(BeEmpty())
		Expect(reg.Len()).To(Equal(len(want)))
	})

	It("should start empty without defaults", func() {
		Expect(units.NewRegistry().Len()).To(BeZero())
	})

	It("should not share state between registries", func() {
		other := units.NewDefaultRegistry()
		other.Register(units.Entry{Name: "density", Dimension: units.Dimension{1, -3}})
		_, err := reg.Lookup("density")
		Expect(errors.Is(err, units.ErrUnknownDimension)).To(BeTrue())
	})

	Context("Lookup", func() {
		It("should return a named unit for derived dimensions", func() {
			joule, err := reg.Lookup("energy")
			Expect(err).NotTo(HaveOccurred())
			Expect(joule.Dimension()).To(Equal(units.Dimension{1, 2, -2}))
			Expect(joule.Name()).To(Equal("Joule"))
			Expect(joule.String()).To(Equal("Joule"))
		})

		It("should return an unnamed unit for base dimensions", func() {
			mass, err := reg.Lookup("mass")
			Expect(err).NotTo(HaveOccurred())
			Expect(mass.String()).To(Equal("kg"))
		})

		It("should fail for unknown names", func() {
			_, err := reg.Lookup("charm")
			Expect(errors.Is(err, units.ErrUnknownDimension)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("charm"))
		})
	})

	Context("Register", func() {
		It("should add new entries", func() {
			nums := units.Dimension{1, -3}
			reg.Register(units.Entry{Name: "density", Dimension: nums, DisplayName: "kilograms per cubic meter"})

			dens, err := reg.Lookup("density")
			Expect(err).NotTo(HaveOccurred())
			Expect(dens.Dimension()).To(Equal(nums))
			Expect(dens.Name()).To(Equal("kilograms per cubic meter"))
			Expect(reg.Names()).To(HaveLen(len(units.DefaultEntries()) + 1))
			Expect(reg.Names()[reg.Len()-1]).To(Equal("density"))
		})

		It("should let the last write win and keep the position", func() {
			reg.Register(
				units.Entry{Name: "speed", Dimension: units.Dimension{0, 1, -1}, DisplayName: "m/s"},
				units.Entry{Name: "speed", Dimension: units.Dimension{0, 1, -1}, DisplayName: "velocity"},
			)
			e, ok := reg.Entry("speed")
			Expect(ok).To(BeTrue())
			Expect(e.DisplayName).To(Equal("velocity"))
			Expect(reg.Names()[9]).To(Equal("speed"))
			Expect(reg.Len()).To(Equal(len(units.DefaultEntries())))
		})

		It("should notify the observer", func() {
			obs := &countingObserver{}
			r := units.NewDefaultRegistry(units.WithObserver(obs))
			_, _ = r.Lookup("force")
			_, _ = r.Lookup("nothing")
			Expect(obs.registers).To(Equal(1))
			Expect(obs.lookups).To(Equal(map[string]bool{"force": true, "nothing": false}))
		})
	})

	Context("Classify", func() {
		It("should find force from momentum per second", func() {
			momentum, err := reg.Lookup("momentum")
			Expect(err).NotTo(HaveOccurred())
			f := units.Div(momentum, units.MustNew(0, 0, 1))
			Expect(cmp.Diff([]string{"force"}, reg.Classify(f))).To(BeEmpty())
		})

		It("should find force from its exponent vector", func() {
			Expect(reg.Classify(units.MustNew(1, 1, -2))).To(Equal([]string{"force"}))
		})

		It("should return all matches in registry order", func() {
			Expect(reg.Classify(units.MustNew(1, 2, -2))).To(Equal([]string{"energy", "torque"}))
		})

		It("should ignore display names", func() {
			Expect(reg.Classify(units.MustNew(1).WithName("pound"))).To(Equal([]string{"mass"}))
		})

		It("should return nothing for unregistered dimensions", func() {
			Expect(reg.Classify(units.MustNew(0, 0, 0, 0, 0, 0, 2))).To(BeEmpty())
		})
	})

	Context("ResolveName", func() {
		It("should resolve a single match", func() {
			name, err := reg.ResolveName(units.MustNew(0, 1, -1), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("speed"))
		})

		It("should return no name without a match", func() {
			name, err := reg.ResolveName(units.MustNew(3), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(BeEmpty())
		})

		It("should fail on ambiguity by default", func() {
			_, err := reg.ResolveName(units.MustNew(1, 2, -2), nil)
			var amb *units.AmbiguousNameError
			Expect(errors.As(err, &amb)).To(BeTrue())
			Expect(amb.Candidates).To(Equal([]string{"energy", "torque"}))
			Expect(err.Error()).To(ContainSubstring("energy, torque"))
		})

		It("should delegate ambiguity to the supplied strategy", func() {
			name, err := reg.ResolveName(units.MustNew(1, 2, -2), units.FirstMatch)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("energy"))

			last := func(_ units.Dimension, candidates []string) (string, error) {
				return candidates[len(candidates)-1], nil
			}
			name, err = reg.ResolveName(units.MustNew(1, 2, -2), last)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("torque"))
		})
	})

	It("should be safe for concurrent use", func() {
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				reg.Register(units.Entry{Name: "density", Dimension: units.Dimension{1, -3}})
				_, err := reg.Lookup("force")
				Expect(err).NotTo(HaveOccurred())
				reg.Classify(units.MustNew(1, 2, -2))
			}()
		}
		wg.Wait()
		Expect(reg.Classify(units.MustNew(1, -3))).To(Equal([]string{"density"}))
	})
})

var _ = Describe("Registry logging", func() {
	It("logs through the base logger unless one is given", func() {
		previous := logging.Log
		DeferCleanup(func() { logging.SetLogger(previous) })

		var mu sync.Mutex
		var lines []string
		logging.SetLogger(funcr.New(func(prefix, args string) {
			mu.Lock()
			defer mu.Unlock()
			lines = append(lines, prefix+" "+args)
		}, funcr.Options{Verbosity: logging.DEBUG}))

		r := units.NewRegistry()
		r.Register(units.Entry{Name: "frequency", Dimension: units.Dimension{0, 0, -1}})

		mu.Lock()
		defer mu.Unlock()
		Expect(lines).To(ContainElement(And(ContainSubstring("units"), ContainSubstring("Registered dimensions"))))
	})
})
